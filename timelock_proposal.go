// Package timelock provides the proposal file format of timelock operations and drives their
// scheduling and execution against a timelock controller.
package timelock

import (
	"encoding/json"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"

	"github.com/smartcontractkit/timelock/hasher"
	"github.com/smartcontractkit/timelock/types"
)

// ProposalVersion is the current version of the proposal format.
const ProposalVersion = "v1"

var ZERO_HASH = common.Hash{}

// Proposal is a set of batch operations to be scheduled on, or cancelled from, a single timelock.
// Operations form a chain: every operation has the previous one as its predecessor.
type Proposal struct {
	Version         string                 `json:"version" validate:"required,oneof=v1"`
	Description     string                 `json:"description"`
	Action          types.TimelockAction   `json:"action" validate:"required,oneof=schedule cancel"`
	Delay           types.Duration         `json:"delay"`
	Salt            common.Hash            `json:"salt"`
	TimelockAddress common.Address         `json:"timelockAddress" validate:"required"`
	Operations      []types.BatchOperation `json:"operations" validate:"required,min=1,dive"`
}

// NewProposal unmarshal data from the reader to JSON and returns a new Proposal.
func NewProposal(r io.Reader) (*Proposal, error) {
	var p Proposal
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

func WriteProposal(w io.Writer, p *Proposal) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(p)
}

func (p *Proposal) Validate() error {
	// Run tag-based validation
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return err
	}

	if _, err := p.DelaySeconds(); err != nil {
		return err
	}

	return nil
}

// DelaySeconds returns the delay of the proposal as a timelock delay.
func (p *Proposal) DelaySeconds() (uint64, error) {
	secs, err := p.Delay.DelaySeconds()
	if err != nil {
		return 0, NewInvalidDelayError(p.Delay.String())
	}

	return secs, nil
}

// OperationIDs returns the identifier and the predecessor of every operation. The first
// operation has no predecessor, every other one depends on the operation before it.
func (p *Proposal) OperationIDs() (ids []common.Hash, predecessors []common.Hash) {
	ids = make([]common.Hash, len(p.Operations))
	predecessors = make([]common.Hash, len(p.Operations))

	predecessor := ZERO_HASH
	for i, bop := range p.Operations {
		predecessors[i] = predecessor
		ids[i] = hasher.HashOperation(bop.Calls, predecessor, p.Salt)
		predecessor = ids[i]
	}

	return ids, predecessors
}
