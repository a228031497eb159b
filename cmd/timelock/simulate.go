package timelock

import (
	"context"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/timelock"
	"github.com/smartcontractkit/timelock/controller"
	"github.com/smartcontractkit/timelock/sdk"
	"github.com/smartcontractkit/timelock/simulated"
	"github.com/smartcontractkit/timelock/types"
)

func simulate(ctx context.Context, out io.Writer, proposal *timelock.Proposal, cfg *Config) error {
	if cfg.Address != (common.Address{}) && cfg.Address != proposal.TimelockAddress {
		return fmt.Errorf("proposal targets timelock %s, configured timelock is %s", proposal.TimelockAddress.Hex(), cfg.Address.Hex())
	}

	delay, err := proposal.DelaySeconds()
	if err != nil {
		return err
	}

	proposers, err := orGenerated(cfg.Proposers)
	if err != nil {
		return err
	}
	executors, err := orGenerated(cfg.Executors)
	if err != nil {
		return err
	}
	deployer := cfg.Deployer
	if deployer == (common.Address{}) {
		deployer = proposers[0]
	}

	chain := simulated.NewChain(cfg.StartTime)
	stop := recordLogs(chain)

	err = run(ctx, chain, proposal, controller.Config{
		Address:   proposal.TimelockAddress,
		Deployer:  deployer,
		MinDelay:  cfg.MinDelay,
		Proposers: proposers,
		Executors: executors,
	}, delay)

	for _, l := range stop() {
		fmt.Fprintf(out, "%s %s %+v\n", l.Address.Hex(), l.Name(), l.Event)
	}

	return err
}

func run(ctx context.Context, chain *simulated.Chain, proposal *timelock.Proposal, cfg controller.Config, delay uint64) error {
	lggr := sdk.LoggerFrom(ctx)

	if _, _, err := simulated.DeployTimelock(ctx, chain, cfg); err != nil {
		return err
	}
	for _, bop := range proposal.Operations {
		for _, call := range bop.Calls {
			if _, ok := chain.Contract(call.Target); ok {
				continue
			}
			if _, err := simulated.DeployCounter(chain, call.Target); err != nil {
				return err
			}
			lggr.Infof("Deployed counter at %s", call.Target.Hex())
		}
	}

	proposer := simulated.NewTimelockExecutor(chain, cfg.Proposers[0])
	executor := simulated.NewTimelockExecutor(chain, cfg.Executors[0])

	var err error
	scheduled := *proposal
	scheduled.Action = types.TimelockActionSchedule
	if proposal.Action == types.TimelockActionCancel {
		// Cancel proposals usually carry no delay of their own.
		scheduled.Delay, err = types.NewDurationFromSeconds(max(delay, cfg.MinDelay))
		if err != nil {
			return err
		}
	}
	scheduler, err := timelock.NewTimelockExecutable(&scheduled, proposer)
	if err != nil {
		return err
	}
	if err := scheduler.Schedule(ctx); err != nil {
		return err
	}

	if proposal.Action == types.TimelockActionCancel {
		return timelock.CancelProposal(ctx, proposal, proposer)
	}

	now, err := chain.AdvanceTime(delay)
	if err != nil {
		return err
	}
	lggr.Infof("Advanced clock by %d seconds to %d", delay, now)

	exec, err := timelock.NewTimelockExecutable(proposal, executor)
	if err != nil {
		return err
	}
	if err := exec.IsReady(ctx); err != nil {
		return err
	}
	for i := range proposal.Operations {
		if err := exec.Execute(ctx, i); err != nil {
			return err
		}
	}

	return exec.IsDone(ctx)
}

// recordLogs collects the events committed on chain until the returned function is called.
func recordLogs(chain *simulated.Chain) func() []types.Log {
	ch := make(chan []types.Log, 16)
	sub := chain.SubscribeLogs(ch)

	var logs []types.Log
	done := make(chan struct{})
	go func() {
		defer close(done)
		for batch := range ch {
			logs = append(logs, batch...)
		}
	}()

	return func() []types.Log {
		sub.Unsubscribe()
		close(ch)
		<-done

		return logs
	}
}

func orGenerated(addrs []common.Address) ([]common.Address, error) {
	if len(addrs) > 0 {
		return addrs, nil
	}

	account, err := simulated.NewAccount()
	if err != nil {
		return nil, err
	}

	return []common.Address{account.Address()}, nil
}
