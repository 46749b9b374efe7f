package app

import (
	"log/slog"

	"github.com/superstar-lottery/stardeploy/internal/domain/config"
	"github.com/superstar-lottery/stardeploy/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	DeployContract  *usecase.DeployContract
	UpdateContract  *usecase.UpdateContract
	MigrateContract *usecase.MigrateContract
	ListNetworks    *usecase.ListNetworks
	ShowNetwork     *usecase.ShowNetwork
	ListDeployments *usecase.ListDeployments
	ShowConfig      *usecase.ShowConfig
	SetConfig       *usecase.SetConfig
	RemoveConfig    *usecase.RemoveConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	deployContract *usecase.DeployContract,
	updateContract *usecase.UpdateContract,
	migrateContract *usecase.MigrateContract,
	listNetworks *usecase.ListNetworks,
	showNetwork *usecase.ShowNetwork,
	listDeployments *usecase.ListDeployments,
	showConfig *usecase.ShowConfig,
	setConfig *usecase.SetConfig,
	removeConfig *usecase.RemoveConfig,
) (*App, error) {
	return &App{
		Config:          cfg,
		Log:             log,
		DeployContract:  deployContract,
		UpdateContract:  updateContract,
		MigrateContract: migrateContract,
		ListNetworks:    listNetworks,
		ShowNetwork:     showNetwork,
		ListDeployments: listDeployments,
		ShowConfig:      showConfig,
		SetConfig:       setConfig,
		RemoveConfig:    removeConfig,
	}, nil
}
