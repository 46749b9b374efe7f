package cli

import (
	"github.com/spf13/cobra"

	"github.com/superstar-lottery/stardeploy/internal/cli/render"
	"github.com/superstar-lottery/stardeploy/internal/domain"
	"github.com/superstar-lottery/stardeploy/internal/usecase"
)

// NewUpdateCmd creates the update command
func NewUpdateCmd() *cobra.Command {
	var contract string
	var interval int64

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change the lottery interval of a deployed contract",
		Long: `Execute update_config on a deployed contract to change its lottery interval.
The contract address is taken from --contract or CONTRACT_ADDR.

Examples:
  stardeploy update --network juno_testnet --contract juno1... --interval 1800`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, runErr := app.UpdateContract.Run(cmd.Context(), usecase.UpdateContractParams{
				Contract:        contract,
				IntervalSeconds: interval,
			})

			renderer := render.NewLifecycleRenderer(cmd.OutOrStdout(), app.Config.JSON)
			if err := renderer.Render(result, runErr); err != nil {
				return err
			}
			return runErr
		},
	}

	cmd.Flags().StringVar(&contract, "contract", "", "Contract address (env CONTRACT_ADDR)")
	cmd.Flags().Int64Var(&interval, "interval", domain.DefaultUpdateInterval, "New lottery interval in seconds")

	return cmd
}
