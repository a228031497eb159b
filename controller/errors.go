package controller

import (
	sdkerrors "github.com/smartcontractkit/timelock/sdk/errors"
)

// Fixed rejection reasons. Errors returned by the controller either are one of these or wrap one,
// so errors.Is identifies the reason and errors.As the category.
var (
	ErrInsufficientDelay = sdkerrors.NewValidationError("Timelock: insufficient delay")
	ErrTimestampOverflow = sdkerrors.NewValidationError("Timelock: timestamp overflow")
	ErrReservedTimestamp = sdkerrors.NewValidationError("Timelock: ready timestamp is reserved")

	ErrAlreadyScheduled  = sdkerrors.NewStateError("Timelock: operation already scheduled")
	ErrNotReady          = sdkerrors.NewStateError("Timelock: operation is not ready")
	ErrMissingDependency = sdkerrors.NewStateError("Timelock: missing dependency")
	ErrNotCancellable    = sdkerrors.NewStateError("Timelock: operation cannot be cancelled")
	ErrAlreadyExecuting  = sdkerrors.NewStateError("Timelock: operation already executing")

	ErrUnknownEntryPoint = sdkerrors.NewValidationError("Timelock: unknown entry point")
	ErrInvalidCalldata   = sdkerrors.NewValidationError("Timelock: invalid calldata")
)

const (
	// CallRevertedReason is the reason of the ExecutionError returned when a call of a batch fails.
	CallRevertedReason = "Timelock: underlying transaction reverted"

	// CallerNotTimelockReason is the reason of the AuthorizationError returned when a
	// self-administered entry point is called by anyone but the controller.
	CallerNotTimelockReason = "Timelock: caller must be timelock"
)
