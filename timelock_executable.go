package timelock

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/timelock/sdk"
	"github.com/smartcontractkit/timelock/types"
)

// TimelockExecutable drives a schedule proposal through its timelock: it schedules every
// operation, reports readiness and executes operations once their delay has passed.
type TimelockExecutable struct {
	proposal     *Proposal
	ids          []common.Hash
	predecessors []common.Hash
	executor     sdk.TimelockExecutor
}

// NewTimelockExecutable creates a new TimelockExecutable from a proposal and an executor.
func NewTimelockExecutable(proposal *Proposal, executor sdk.TimelockExecutor) (*TimelockExecutable, error) {
	if proposal.Action != types.TimelockActionSchedule {
		return nil, NewInvalidTimelockActionError(proposal.Action, types.TimelockActionSchedule)
	}

	ids, predecessors := proposal.OperationIDs()

	return &TimelockExecutable{
		proposal:     proposal,
		ids:          ids,
		predecessors: predecessors,
		executor:     executor,
	}, nil
}

// GetOpID returns the identifier of the operation at the given index.
func (t *TimelockExecutable) GetOpID(idx int) (common.Hash, error) {
	if err := t.checkIndex(idx); err != nil {
		return common.Hash{}, err
	}

	return t.ids[idx], nil
}

// Schedule schedules every operation of the proposal, in order, with the proposal delay.
func (t *TimelockExecutable) Schedule(ctx context.Context) error {
	delay, err := t.proposal.DelaySeconds()
	if err != nil {
		return err
	}

	lggr := sdk.LoggerFrom(ctx)
	for i, bop := range t.proposal.Operations {
		id, err := t.executor.Schedule(ctx, bop, t.proposal.TimelockAddress, t.predecessors[i], t.proposal.Salt, delay)
		if err != nil {
			return fmt.Errorf("unable to schedule operation %d: %w", i, err)
		}
		if id != t.ids[i] {
			return fmt.Errorf("operation %d scheduled as %s, expected %s", i, id.Hex(), t.ids[i].Hex())
		}

		lggr.Infof("Scheduled operation %d: %s", i, id.Hex())
	}

	return nil
}

// IsReady checks if ALL the operations in the proposal are ready for execution.
func (t *TimelockExecutable) IsReady(ctx context.Context) error {
	for idx := range t.proposal.Operations {
		if err := t.IsOperationReady(ctx, idx); err != nil {
			return err
		}
	}

	return nil
}

func (t *TimelockExecutable) IsOperationReady(ctx context.Context, idx int) error {
	if err := t.checkIndex(idx); err != nil {
		return err
	}

	isReady, err := t.executor.IsOperationReady(ctx, t.proposal.TimelockAddress, t.ids[idx])
	if err != nil {
		return err
	}
	if !isReady {
		return &OperationNotReadyError{OpIndex: idx}
	}

	return nil
}

// IsOperationPending checks that the operation at the given index is scheduled and not yet done.
func (t *TimelockExecutable) IsOperationPending(ctx context.Context, idx int) error {
	if err := t.checkIndex(idx); err != nil {
		return err
	}

	isPending, err := t.executor.IsOperationPending(ctx, t.proposal.TimelockAddress, t.ids[idx])
	if err != nil {
		return err
	}
	if !isPending {
		return &OperationNotPendingError{OpIndex: idx}
	}

	return nil
}

// IsDone checks if ALL the operations in the proposal have been executed.
func (t *TimelockExecutable) IsDone(ctx context.Context) error {
	for idx, id := range t.ids {
		isDone, err := t.executor.IsOperationDone(ctx, t.proposal.TimelockAddress, id)
		if err != nil {
			return err
		}
		if !isDone {
			return &OperationNotDoneError{OpIndex: idx}
		}
	}

	return nil
}

// Execute executes the operation at the given index. Its predecessor must have been executed.
func (t *TimelockExecutable) Execute(ctx context.Context, idx int) error {
	if err := t.checkIndex(idx); err != nil {
		return err
	}

	err := t.executor.Execute(
		ctx,
		t.proposal.Operations[idx],
		t.proposal.TimelockAddress,
		t.predecessors[idx],
		t.proposal.Salt,
	)
	if err != nil {
		return fmt.Errorf("unable to execute operation %d: %w", idx, err)
	}

	sdk.LoggerFrom(ctx).Infof("Executed operation %d: %s", idx, t.ids[idx].Hex())

	return nil
}

// Cancel cancels the pending operation at the given index.
func (t *TimelockExecutable) Cancel(ctx context.Context, idx int) error {
	if err := t.checkIndex(idx); err != nil {
		return err
	}

	if err := t.executor.Cancel(ctx, t.proposal.TimelockAddress, t.ids[idx]); err != nil {
		return fmt.Errorf("unable to cancel operation %d: %w", idx, err)
	}

	sdk.LoggerFrom(ctx).Infof("Cancelled operation %d: %s", idx, t.ids[idx].Hex())

	return nil
}

func (t *TimelockExecutable) checkIndex(idx int) error {
	if idx < 0 || idx >= len(t.ids) {
		return NewOperationIndexError(idx, len(t.ids))
	}

	return nil
}

// CancelProposal cancels every operation of a cancel proposal. Operations that are no longer
// pending are skipped.
func CancelProposal(ctx context.Context, proposal *Proposal, executor sdk.TimelockExecutor) error {
	if proposal.Action != types.TimelockActionCancel {
		return NewInvalidTimelockActionError(proposal.Action, types.TimelockActionCancel)
	}

	lggr := sdk.LoggerFrom(ctx)
	ids, _ := proposal.OperationIDs()
	for i, id := range ids {
		isPending, err := executor.IsOperationPending(ctx, proposal.TimelockAddress, id)
		if err != nil {
			return err
		}
		if !isPending {
			lggr.Warnf("Operation %d (%s) is not pending, skipping", i, id.Hex())
			continue
		}

		if err := executor.Cancel(ctx, proposal.TimelockAddress, id); err != nil {
			return fmt.Errorf("unable to cancel operation %d: %w", i, err)
		}
		lggr.Infof("Cancelled operation %d: %s", i, id.Hex())
	}

	return nil
}
