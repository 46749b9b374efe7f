package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/superstar-lottery/stardeploy/internal/adapters/progress"
	"github.com/superstar-lottery/stardeploy/internal/app"
	"github.com/superstar-lottery/stardeploy/internal/config"
	"github.com/superstar-lottery/stardeploy/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stardeploy",
		Short: "Deploy and manage the super star lottery contract on CosmWasm networks",
		Long: `stardeploy uploads, instantiates, updates and migrates the super star
lottery contract on any configured CosmWasm network.

The signing mnemonic is read from MNEMONIC (or STARDEPLOY_MNEMONIC) and the
target network from --network, CHAIN or the local config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot)
			bindGlobalFlags(v, cmd)

			appInstance, err := app.InitApp(v, newProgressSink(v))
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output results as JSON")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (e.g., juno_testnet, osmosis_testnet)")
	rootCmd.PersistentFlags().String("gas-price", "", "Gas price rate override (must lie within the network's gas price band)")
	rootCmd.PersistentFlags().String("fee-denom", "", "Fee denom override (must be a fee token of the network)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Overall timeout for the command (default 5m)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "lifecycle",
		Title: "Contract Lifecycle Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	for _, c := range []*cobra.Command{
		NewDeployCmd(),
		NewUploadCmd(),
		NewInstantiateCmd(),
		NewUpdateCmd(),
		NewMigrateCmd(),
	} {
		c.GroupID = "lifecycle"
		rootCmd.AddCommand(c)
	}

	for _, c := range []*cobra.Command{
		NewNetworksCmd(),
		NewDeploymentsCmd(),
		NewConfigCmd(),
	} {
		c.GroupID = "management"
		rootCmd.AddCommand(c)
	}

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// bindGlobalFlags copies flags that were explicitly set into viper so they
// take precedence over environment and config file values
func bindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	flagKeys := map[string]string{
		"debug":           "debug",
		"non-interactive": "non_interactive",
		"json":            "json",
		"network":         "network",
		"gas-price":       "gas_price",
		"fee-denom":       "fee_denom",
		"timeout":         "timeout",
	}
	var set []string
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			v.Set(key, f.Value.String())
			set = append(set, key)
		}
	})
	v.Set(config.FlagKeysKey, set)
}

// newProgressSink shows a spinner only when a person is watching stderr
func newProgressSink(v *viper.Viper) usecase.ProgressSink {
	if v.GetBool("json") || v.GetBool("non_interactive") || v.GetBool("debug") {
		return progress.NewNopSink()
	}
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return progress.NewNopSink()
	}
	return progress.NewSpinnerProgressReporter()
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	a, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return a, nil
}
