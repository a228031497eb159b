package timelock

import (
	"fmt"

	"github.com/smartcontractkit/timelock/types"
)

// OperationNotReadyError is returned when an operation is not yet ready.
type OperationNotReadyError struct {
	OpIndex int
}

// Error implements the error interface.
func (e OperationNotReadyError) Error() string {
	return fmt.Sprintf("operation %d is not ready", e.OpIndex)
}

// OperationNotPendingError is returned when an operation is not pending.
type OperationNotPendingError struct {
	OpIndex int
}

// Error implements the error interface.
func (e OperationNotPendingError) Error() string {
	return fmt.Sprintf("operation %d is not pending", e.OpIndex)
}

// OperationNotDoneError is returned when an operation is not yet done.
type OperationNotDoneError struct {
	OpIndex int
}

// Error implements the error interface.
func (e OperationNotDoneError) Error() string {
	return fmt.Sprintf("operation %d is not done", e.OpIndex)
}

// InvalidTimelockActionError is returned when a proposal has an action that the requested use
// does not accept.
type InvalidTimelockActionError struct {
	ProvidedAction types.TimelockAction
	AcceptedAction types.TimelockAction
}

func (e *InvalidTimelockActionError) Error() string {
	return fmt.Sprintf("invalid timelock action: %s, value accepted is %s", e.ProvidedAction, e.AcceptedAction)
}

func NewInvalidTimelockActionError(provided, accepted types.TimelockAction) *InvalidTimelockActionError {
	return &InvalidTimelockActionError{ProvidedAction: provided, AcceptedAction: accepted}
}

// InvalidDelayError is returned when the delay of a proposal cannot be used as a timelock delay.
type InvalidDelayError struct {
	ReceivedDelay string
}

// NewInvalidDelayError creates a new InvalidDelayError.
func NewInvalidDelayError(receivedDelay string) *InvalidDelayError {
	return &InvalidDelayError{ReceivedDelay: receivedDelay}
}

func (e *InvalidDelayError) Error() string {
	return fmt.Sprintf("invalid delay: %s", e.ReceivedDelay)
}

// OperationIndexError is returned when an operation index is out of the proposal's range.
type OperationIndexError struct {
	OpIndex int
	Count   int
}

// NewOperationIndexError creates a new OperationIndexError.
func NewOperationIndexError(idx, count int) *OperationIndexError {
	return &OperationIndexError{OpIndex: idx, Count: count}
}

func (e *OperationIndexError) Error() string {
	return fmt.Sprintf("operation index %d out of range: proposal has %d operations", e.OpIndex, e.Count)
}
