package sdk

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/timelock/types"
)

// TimelockExecutor is an interface for scheduling, executing and cancelling timelock operations.
type TimelockExecutor interface {
	TimelockInspector
	Schedule(ctx context.Context, bop types.BatchOperation, timelockAddress common.Address, predecessor common.Hash, salt common.Hash, delay uint64) (common.Hash, error)
	Execute(ctx context.Context, bop types.BatchOperation, timelockAddress common.Address, predecessor common.Hash, salt common.Hash) error
	Cancel(ctx context.Context, timelockAddress common.Address, opID common.Hash) error
}
