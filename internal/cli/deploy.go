package cli

import (
	"github.com/spf13/cobra"

	"github.com/superstar-lottery/stardeploy/internal/cli/render"
	"github.com/superstar-lottery/stardeploy/internal/domain"
	"github.com/superstar-lottery/stardeploy/internal/usecase"
)

// NewDeployCmd creates the deploy command (upload followed by instantiate)
func NewDeployCmd() *cobra.Command {
	var artifact, label string
	var noAdmin bool

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Upload the contract and instantiate it",
		Long: `Upload the compiled contract to the selected network and instantiate it
with the network's nois proxy, fee token and the default lottery settings.

Examples:
  stardeploy deploy --network juno_testnet
  CHAIN=osmosis_testnet stardeploy deploy --artifact artifacts/super_star.wasm`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeployFlow(cmd, usecase.DeployContractParams{
				Flow:         domain.FlowDeploy,
				ArtifactPath: artifact,
				Label:        label,
				NoAdmin:      noAdmin,
			})
		},
	}

	cmd.Flags().StringVar(&artifact, "artifact", "", "Path to the compiled wasm (defaults to the project artifact)")
	cmd.Flags().StringVar(&label, "label", "", "Contract label (default "+domain.DefaultLabel+")")
	cmd.Flags().BoolVar(&noAdmin, "no-admin", false, "Instantiate without an admin; the contract cannot be migrated")

	return cmd
}

// NewUploadCmd creates the upload command
func NewUploadCmd() *cobra.Command {
	var artifact string

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload the contract code and print its code id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeployFlow(cmd, usecase.DeployContractParams{
				Flow:         domain.FlowUpload,
				ArtifactPath: artifact,
			})
		},
	}

	cmd.Flags().StringVar(&artifact, "artifact", "", "Path to the compiled wasm (defaults to the project artifact)")

	return cmd
}

// NewInstantiateCmd creates the instantiate command
func NewInstantiateCmd() *cobra.Command {
	var codeID, label string
	var noAdmin bool

	cmd := &cobra.Command{
		Use:   "instantiate",
		Short: "Instantiate previously uploaded code",
		Long: `Instantiate previously uploaded code. The code id is taken from --code-id
or the CODE_ID environment variable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeployFlow(cmd, usecase.DeployContractParams{
				Flow:    domain.FlowInstantiate,
				CodeID:  codeID,
				Label:   label,
				NoAdmin: noAdmin,
			})
		},
	}

	cmd.Flags().StringVar(&codeID, "code-id", "", "Code id to instantiate (env CODE_ID)")
	cmd.Flags().StringVar(&label, "label", "", "Contract label (default "+domain.DefaultLabel+")")
	cmd.Flags().BoolVar(&noAdmin, "no-admin", false, "Instantiate without an admin; the contract cannot be migrated")

	return cmd
}

func runDeployFlow(cmd *cobra.Command, params usecase.DeployContractParams) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	result, runErr := app.DeployContract.Run(cmd.Context(), params)

	renderer := render.NewLifecycleRenderer(cmd.OutOrStdout(), app.Config.JSON)
	if err := renderer.Render(result, runErr); err != nil {
		return err
	}
	return runErr
}
