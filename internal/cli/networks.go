package cli

import (
	"github.com/spf13/cobra"

	"github.com/superstar-lottery/stardeploy/internal/cli/render"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List supported networks",
		Long: `List every network profile stardeploy can target, with its fee token,
gas price band and whether a nois proxy is configured in stardeploy.toml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context())
			if err != nil {
				return err
			}

			renderer := render.NewNetworksRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.RenderNetworksList(result)
		},
	}

	cmd.AddCommand(newNetworksShowCmd())

	return cmd
}

func newNetworksShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <network>",
		Short: "Show the full profile of a network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			profile, err := app.ShowNetwork.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			renderer := render.NewNetworksRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.RenderNetwork(profile)
		},
	}
}
