package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/superstar-lottery/stardeploy/internal/cli/render"
	"github.com/superstar-lottery/stardeploy/internal/domain/models"
	"github.com/superstar-lottery/stardeploy/internal/usecase"
)

// NewDeploymentsCmd creates the deployments command
func NewDeploymentsCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:     "deployments",
		Aliases: []string{"ls"},
		Short:   "List recorded lifecycle runs",
		Long: `List the runs recorded in .stardeploy/deployments.json, grouped by network.
Failed runs that submitted at least one transaction are recorded as PARTIAL.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ListDeploymentsParams{}
			if status != "" {
				params.Status = models.DeploymentStatus(strings.ToUpper(status))
				switch params.Status {
				case models.DeploymentStatusCompleted, models.DeploymentStatusPartial, models.DeploymentStatusFailed:
				default:
					return fmt.Errorf("unknown status %q (expected completed, partial or failed)", status)
				}
			}

			result, err := app.ListDeployments.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewDeploymentsRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.RenderDeploymentList(result)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Only show runs with this status (completed, partial, failed)")

	return cmd
}
