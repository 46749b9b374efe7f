//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/superstar-lottery/stardeploy/internal/adapters"
	"github.com/superstar-lottery/stardeploy/internal/config"
	"github.com/superstar-lottery/stardeploy/internal/logging"
	"github.com/superstar-lottery/stardeploy/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewLifecycle,
		usecase.NewDeployContract,
		usecase.NewUpdateContract,
		usecase.NewMigrateContract,
		usecase.NewListNetworks,
		usecase.NewShowNetwork,
		usecase.NewListDeployments,
		usecase.NewShowConfig,
		usecase.NewSetConfig,
		usecase.NewRemoveConfig,

		// App
		NewApp,
	)
	return nil, nil
}
