package timelock

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/timelock/types"
)

// ProposalBuilder builder for timelock proposals.
type ProposalBuilder struct {
	proposal Proposal
}

// NewProposalBuilder creates a new ProposalBuilder for a schedule proposal.
func NewProposalBuilder() *ProposalBuilder {
	return &ProposalBuilder{
		proposal: Proposal{
			Version:    ProposalVersion,
			Action:     types.TimelockActionSchedule,
			Operations: []types.BatchOperation{},
		},
	}
}

// SetVersion sets the version of the proposal.
func (b *ProposalBuilder) SetVersion(version string) *ProposalBuilder {
	b.proposal.Version = version
	return b
}

// SetDescription sets the description of the proposal.
func (b *ProposalBuilder) SetDescription(description string) *ProposalBuilder {
	b.proposal.Description = description
	return b
}

// SetAction sets the action of the timelock proposal.
func (b *ProposalBuilder) SetAction(action types.TimelockAction) *ProposalBuilder {
	b.proposal.Action = action
	return b
}

// SetDelay sets the delay of the timelock proposal.
func (b *ProposalBuilder) SetDelay(delay types.Duration) *ProposalBuilder {
	b.proposal.Delay = delay
	return b
}

// SetSalt sets the salt shared by the operations of the proposal.
func (b *ProposalBuilder) SetSalt(salt common.Hash) *ProposalBuilder {
	b.proposal.Salt = salt
	return b
}

// SetTimelockAddress sets the address of the timelock the proposal targets.
func (b *ProposalBuilder) SetTimelockAddress(address common.Address) *ProposalBuilder {
	b.proposal.TimelockAddress = address
	return b
}

// AddOperation adds an operation to the timelock proposal.
func (b *ProposalBuilder) AddOperation(bop types.BatchOperation) *ProposalBuilder {
	b.proposal.Operations = append(b.proposal.Operations, bop)

	return b
}

// SetOperations sets all the operations of the proposal.
func (b *ProposalBuilder) SetOperations(bops []types.BatchOperation) *ProposalBuilder {
	b.proposal.Operations = bops

	return b
}

// Build validates and returns the constructed Proposal.
func (b *ProposalBuilder) Build() (*Proposal, error) {
	// Validate the proposal
	if err := b.proposal.Validate(); err != nil {
		return nil, err
	}

	return &b.proposal, nil
}
