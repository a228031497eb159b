package sdkerrors

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/timelock/types"
)

// AuthorizationError is returned when the caller is not allowed to perform an operation.
type AuthorizationError struct {
	Account common.Address
	Role    types.Role
	Reason  string
}

// Error implements the error interface.
func (e *AuthorizationError) Error() string {
	return e.Reason
}

// NewAuthorizationError creates a new AuthorizationError with a fixed reason.
func NewAuthorizationError(account common.Address, reason string) *AuthorizationError {
	return &AuthorizationError{Account: account, Reason: reason}
}

// NewMissingRoleError creates the AuthorizationError returned when account lacks role.
func NewMissingRoleError(account common.Address, role types.Role) *AuthorizationError {
	return &AuthorizationError{
		Account: account,
		Role:    role,
		Reason:  fmt.Sprintf("AccessControl: caller is missing role %s", role.Hex()),
	}
}

// StateError is returned when an operation is not in a state that permits the request.
type StateError struct {
	Reason string
}

// NewStateError creates a new StateError.
func NewStateError(reason string) *StateError {
	return &StateError{Reason: reason}
}

func (e *StateError) Error() string {
	return e.Reason
}

// ValidationError is returned for arguments that can never be accepted, such as a delay below
// the minimum or a ready timestamp that overflows.
type ValidationError struct {
	Reason string
}

// NewValidationError creates a new ValidationError.
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ExecutionError is returned when a call of a batch fails at the call executor.
type ExecutionError struct {
	Reason string
	Index  int
	Call   types.Call
	Err    error
}

// NewExecutionError creates a new ExecutionError for the call at index.
func NewExecutionError(reason string, index int, call types.Call, err error) *ExecutionError {
	return &ExecutionError{Reason: reason, Index: index, Call: call, Err: err}
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s: call %d to %s (%s): %v", e.Reason, e.Index, e.Call.Target.Hex(), e.Call.Selector, e.Err)
}

// Unwrap returns the error reported by the call executor.
func (e *ExecutionError) Unwrap() error {
	return e.Err
}
