package sdk

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/timelock/types"
)

// CallExecutor invokes an entry point on a target component. caller is the address the target
// observes as the sender of the call. A non-nil error means the call reverted.
type CallExecutor interface {
	Invoke(ctx context.Context, caller common.Address, call types.Call) ([]types.Word, error)
}

// CallExecutorFunc adapts a function to the CallExecutor interface.
type CallExecutorFunc func(ctx context.Context, caller common.Address, call types.Call) ([]types.Word, error)

func (f CallExecutorFunc) Invoke(ctx context.Context, caller common.Address, call types.Call) ([]types.Word, error) {
	return f(ctx, caller, call)
}
