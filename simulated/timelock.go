package simulated

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/timelock/controller"
	"github.com/smartcontractkit/timelock/types"
)

// DeployTimelock creates a controller at cfg.Address that runs its calls on chain, and deploys
// it. The chain's clock and call executor replace those of cfg.
func DeployTimelock(ctx context.Context, chain *Chain, cfg controller.Config, opts ...controller.Option) (*controller.Controller, []types.Log, error) {
	cfg.Clock = chain
	cfg.CallExecutor = chain
	opts = append(opts, controller.WithJournal(chain.Journal()))

	var tl *controller.Controller
	logs, err := chain.Transact(ctx, func(context.Context) error {
		var err error
		tl, err = controller.New(cfg, opts...)
		if err != nil {
			return err
		}

		return chain.Deploy(cfg.Address, tl)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to deploy timelock: %w", err)
	}

	return tl, logs, nil
}

// DeployCounter deploys a Counter at addr.
func DeployCounter(chain *Chain, addr common.Address) (*Counter, error) {
	counter := NewCounter(addr, chain)
	if err := chain.Deploy(addr, counter); err != nil {
		return nil, err
	}

	return counter, nil
}
