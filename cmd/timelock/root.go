package timelock

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smartcontractkit/timelock"
	"github.com/smartcontractkit/timelock/sdk"
)

func BuildTimelockCmd() *cobra.Command {
	var (
		proposalPath string
		envPath      string
	)

	cmd := cobra.Command{
		Use:          "timelock",
		Short:        "Inspect and simulate timelock proposals",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lggr, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			cmd.SetContext(sdk.WithLogger(cmd.Context(), lggr.Sugar()))

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&proposalPath, "proposal", "", "File path containing the proposal")
	cmd.PersistentFlags().StringVar(&envPath, "env", "", "Path to a .env file configuring the simulated timelock")
	_ = cmd.MarkPersistentFlagRequired("proposal")

	cmd.AddCommand(buildValidateCmd(&proposalPath))
	cmd.AddCommand(buildHashCmd(&proposalPath))
	cmd.AddCommand(buildSimulateCmd(&proposalPath, &envPath))

	return &cmd
}

func buildValidateCmd(proposalPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate a proposal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := loadProposal(*proposalPath); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "OK")

			return nil
		},
	}
}

func buildHashCmd(proposalPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "hash",
		Short: "Print the operation ids of a proposal and their predecessors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			proposal, err := loadProposal(*proposalPath)
			if err != nil {
				return err
			}

			ids, predecessors := proposal.OperationIDs()
			for i := range ids {
				fmt.Fprintf(cmd.OutOrStdout(), "operation %d: id=%s predecessor=%s\n", i, ids[i].Hex(), predecessors[i].Hex())
			}

			return nil
		},
	}
}

func buildSimulateCmd(proposalPath *string, envPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "simulate",
		Short: "Run a proposal against a simulated timelock",
		Long: `Deploys a timelock at the proposal's timelock address and a counter at every other call
target on a simulated chain, then schedules the proposal, advances the clock by its delay and
executes it. Cancel proposals are scheduled and then cancelled. Emitted events are printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			proposal, err := loadProposal(*proposalPath)
			if err != nil {
				return err
			}

			cfg, err := LoadConfig(*envPath)
			if err != nil {
				return err
			}

			return simulate(cmd.Context(), cmd.OutOrStdout(), proposal, cfg)
		},
	}
}

func loadProposal(path string) (*timelock.Proposal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening proposal: %w", err)
	}
	defer f.Close()

	proposal, err := timelock.NewProposal(f)
	if err != nil {
		return nil, fmt.Errorf("error loading proposal: %w", err)
	}

	return proposal, nil
}
