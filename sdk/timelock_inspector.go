package sdk

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// TimelockInspector reads the state of a timelock controller.
type TimelockInspector interface {
	GetProposers(ctx context.Context, address common.Address) ([]common.Address, error)
	GetExecutors(ctx context.Context, address common.Address) ([]common.Address, error)
	GetCancellers(ctx context.Context, address common.Address) ([]common.Address, error)
	IsOperation(ctx context.Context, address common.Address, opID common.Hash) (bool, error)
	IsOperationPending(ctx context.Context, address common.Address, opID common.Hash) (bool, error)
	IsOperationReady(ctx context.Context, address common.Address, opID common.Hash) (bool, error)
	IsOperationDone(ctx context.Context, address common.Address, opID common.Hash) (bool, error)
	GetMinDelay(ctx context.Context, address common.Address) (uint64, error)
}
