package adapters

import (
	"github.com/google/wire"

	"github.com/superstar-lottery/stardeploy/internal/adapters/chain"
	"github.com/superstar-lottery/stardeploy/internal/adapters/fs"
	"github.com/superstar-lottery/stardeploy/internal/adapters/interactive"
	"github.com/superstar-lottery/stardeploy/internal/config"
	"github.com/superstar-lottery/stardeploy/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewRegistryStoreAdapter,
	wire.Bind(new(usecase.DeploymentRepository), new(*fs.RegistryStoreAdapter)),

	fs.NewLocalConfigStoreAdapter,
	wire.Bind(new(usecase.LocalConfigRepository), new(*fs.LocalConfigStoreAdapter)),

	fs.NewArtifactReader,
	wire.Bind(new(usecase.ArtifactReader), new(*fs.ArtifactReader)),
)

// ChainSet provides the daemon-backed signing transport
var ChainSet = wire.NewSet(
	chain.NewExecRunner,
	wire.Bind(new(chain.Runner), new(*chain.ExecRunner)),

	chain.NewSessionFactory,
	wire.Bind(new(usecase.SessionFactory), new(*chain.SessionFactory)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.NetworkSelector), new(*interactive.SelectorAdapter)),
)

// ConfigSet provides the network registry and proxy directory
var ConfigSet = wire.NewSet(
	config.ProvideNetworkRegistry,
	wire.Bind(new(usecase.NetworkRegistry), new(*config.NetworkRegistry)),

	config.ProvideProxyDirectory,
	wire.Bind(new(usecase.ProxyDirectory), new(*config.ProxyDirectory)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	ChainSet,
	InteractiveSet,
	ConfigSet,
)
