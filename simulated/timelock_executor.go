package simulated

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/timelock/controller"
	"github.com/smartcontractkit/timelock/sdk"
	"github.com/smartcontractkit/timelock/types"
)

var _ sdk.TimelockExecutor = (*TimelockExecutor)(nil)

// TimelockExecutor sends timelock transactions to controllers deployed on a chain on behalf of a
// single account.
type TimelockExecutor struct {
	chain *Chain
	from  common.Address
}

// NewTimelockExecutor creates an executor sending transactions from the given account.
func NewTimelockExecutor(chain *Chain, from common.Address) *TimelockExecutor {
	return &TimelockExecutor{chain: chain, from: from}
}

func (e *TimelockExecutor) Schedule(
	ctx context.Context,
	bop types.BatchOperation,
	timelockAddress common.Address,
	predecessor common.Hash,
	salt common.Hash,
	delay uint64,
) (common.Hash, error) {
	tl, err := e.timelock(timelockAddress)
	if err != nil {
		return common.Hash{}, err
	}

	var id common.Hash
	_, err = e.chain.Transact(ctx, func(ctx context.Context) error {
		var txErr error
		id, txErr = tl.Schedule(ctx, e.from, bop.Calls, predecessor, salt, delay)

		return txErr
	})
	if err != nil {
		return common.Hash{}, err
	}

	return id, nil
}

func (e *TimelockExecutor) Execute(
	ctx context.Context,
	bop types.BatchOperation,
	timelockAddress common.Address,
	predecessor common.Hash,
	salt common.Hash,
) error {
	tl, err := e.timelock(timelockAddress)
	if err != nil {
		return err
	}

	_, err = e.chain.Transact(ctx, func(ctx context.Context) error {
		return tl.Execute(ctx, e.from, bop.Calls, predecessor, salt)
	})

	return err
}

func (e *TimelockExecutor) Cancel(ctx context.Context, timelockAddress common.Address, opID common.Hash) error {
	tl, err := e.timelock(timelockAddress)
	if err != nil {
		return err
	}

	_, err = e.chain.Transact(ctx, func(ctx context.Context) error {
		return tl.Cancel(ctx, e.from, opID)
	})

	return err
}

func (e *TimelockExecutor) GetProposers(_ context.Context, address common.Address) ([]common.Address, error) {
	return e.members(address, types.ProposerRole)
}

func (e *TimelockExecutor) GetExecutors(_ context.Context, address common.Address) ([]common.Address, error) {
	return e.members(address, types.ExecutorRole)
}

func (e *TimelockExecutor) GetCancellers(_ context.Context, address common.Address) ([]common.Address, error) {
	return e.members(address, types.CancellerRole)
}

func (e *TimelockExecutor) IsOperation(_ context.Context, address common.Address, opID common.Hash) (bool, error) {
	return e.check(address, func(tl *controller.Controller) bool { return tl.IsOperation(opID) })
}

func (e *TimelockExecutor) IsOperationPending(_ context.Context, address common.Address, opID common.Hash) (bool, error) {
	return e.check(address, func(tl *controller.Controller) bool { return tl.IsOperationPending(opID) })
}

func (e *TimelockExecutor) IsOperationReady(_ context.Context, address common.Address, opID common.Hash) (bool, error) {
	return e.check(address, func(tl *controller.Controller) bool { return tl.IsOperationReady(opID) })
}

func (e *TimelockExecutor) IsOperationDone(_ context.Context, address common.Address, opID common.Hash) (bool, error) {
	return e.check(address, func(tl *controller.Controller) bool { return tl.IsOperationDone(opID) })
}

func (e *TimelockExecutor) GetMinDelay(_ context.Context, address common.Address) (uint64, error) {
	tl, err := e.timelock(address)
	if err != nil {
		return 0, err
	}

	var delay uint64
	e.chain.View(func() { delay = tl.GetMinDelay() })

	return delay, nil
}

func (e *TimelockExecutor) members(address common.Address, role types.Role) ([]common.Address, error) {
	tl, err := e.timelock(address)
	if err != nil {
		return nil, err
	}

	var members []common.Address
	e.chain.View(func() { members = tl.GetRoleMembers(role) })

	return members, nil
}

func (e *TimelockExecutor) check(address common.Address, fn func(tl *controller.Controller) bool) (bool, error) {
	tl, err := e.timelock(address)
	if err != nil {
		return false, err
	}

	var ok bool
	e.chain.View(func() { ok = fn(tl) })

	return ok, nil
}

func (e *TimelockExecutor) timelock(address common.Address) (*controller.Controller, error) {
	contract, ok := e.chain.Contract(address)
	if !ok {
		return nil, fmt.Errorf("no contract deployed at %s", address.Hex())
	}
	tl, ok := contract.(*controller.Controller)
	if !ok {
		return nil, fmt.Errorf("contract at %s is not a timelock", address.Hex())
	}

	return tl, nil
}
