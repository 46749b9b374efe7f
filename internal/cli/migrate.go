package cli

import (
	"github.com/spf13/cobra"

	"github.com/superstar-lottery/stardeploy/internal/cli/render"
	"github.com/superstar-lottery/stardeploy/internal/usecase"
)

// NewMigrateCmd creates the migrate command
func NewMigrateCmd() *cobra.Command {
	var contract, codeID string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate a deployed contract to new code",
		Long: `Migrate a deployed contract to a new code id. The signer must be the
contract admin. Address and code id default to CONTRACT_ADDR and CODE_ID.

Examples:
  stardeploy migrate --network osmosis_testnet --contract osmo1... --code-id 43`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, runErr := app.MigrateContract.Run(cmd.Context(), usecase.MigrateContractParams{
				Contract: contract,
				CodeID:   codeID,
			})

			renderer := render.NewLifecycleRenderer(cmd.OutOrStdout(), app.Config.JSON)
			if err := renderer.Render(result, runErr); err != nil {
				return err
			}
			return runErr
		},
	}

	cmd.Flags().StringVar(&contract, "contract", "", "Contract address (env CONTRACT_ADDR)")
	cmd.Flags().StringVar(&codeID, "code-id", "", "Target code id (env CODE_ID)")

	return cmd
}
