package config

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/superstar-lottery/stardeploy/internal/domain"
	"github.com/superstar-lottery/stardeploy/internal/domain/config"
)

// builtinNetworks is the compiled-in profile table
var builtinNetworks = []domain.NetworkProfile{
	{
		ChainID:         "uni-5",
		Name:            "juno_testnet",
		PrettyName:      "Juno Testnet",
		AddressPrefix:   "juno",
		CoinType:        118,
		RPCURL:          "https://rpc.uni.juno.deuslabs.fi:443",
		RESTURL:         "https://lcd.uni.juno.deuslabs.fi",
		DefaultFeeToken: "ujunox",
		FeeTokens:       []domain.FeeToken{{Denom: "ujunox", Decimals: 6}},
		StakingToken:    "ujunox",
		DefaultGasPrice: decimal.RequireFromString("0.04"),
		GasPriceStep: domain.GasPriceStep{
			Low:     decimal.RequireFromString("0.03"),
			Average: decimal.RequireFromString("0.04"),
			High:    decimal.RequireFromString("0.05"),
		},
		Daemon: "junod",
	},
	{
		ChainID:         "osmo-test-4",
		Name:            "osmosis_testnet",
		PrettyName:      "Osmosis Testnet",
		AddressPrefix:   "osmo",
		CoinType:        118,
		RPCURL:          "https://testnet-rpc.osmosis.zone/",
		RESTURL:         "https://testnet-rest.osmosis.zone/",
		DefaultFeeToken: "uosmo",
		FeeTokens:       []domain.FeeToken{{Denom: "uosmo", Decimals: 6}},
		StakingToken:    "uosmo",
		DefaultGasPrice: decimal.RequireFromString("0.025"),
		GasPriceStep: domain.GasPriceStep{
			Low:     decimal.Zero,
			Average: decimal.RequireFromString("0.025"),
			High:    decimal.RequireFromString("0.04"),
		},
		Daemon: "osmosisd",
	},
}

// NetworkRegistry is the read-only mapping from network name to profile
type NetworkRegistry struct {
	profiles map[string]domain.NetworkProfile
	names    []string
}

// NewNetworkRegistry builds a registry from profiles, validating each one.
// daemons overrides the chain CLI binary per network.
func NewNetworkRegistry(profiles []domain.NetworkProfile, daemons map[string]string) (*NetworkRegistry, error) {
	r := &NetworkRegistry{
		profiles: make(map[string]domain.NetworkProfile, len(profiles)),
	}

	for _, p := range profiles {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.profiles[p.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate network %s", domain.ErrInvalidProfile, p.Name)
		}
		p = p.Clone()
		if daemon, ok := daemons[p.Name]; ok && daemon != "" {
			p.Daemon = daemon
		}
		r.profiles[p.Name] = p
	}

	r.names = lo.Keys(r.profiles)
	slices.Sort(r.names)

	return r, nil
}

// ProvideNetworkRegistry creates the registry for Wire dependency injection
func ProvideNetworkRegistry(cfg *config.RuntimeConfig) (*NetworkRegistry, error) {
	var daemons map[string]string
	if cfg.Project != nil {
		daemons = cfg.Project.Daemons
	}
	return NewNetworkRegistry(builtinNetworks, daemons)
}

// Resolve returns the profile registered under name
func (r *NetworkRegistry) Resolve(name string) (domain.NetworkProfile, error) {
	profile, ok := r.profiles[name]
	if !ok {
		return domain.NetworkProfile{}, &domain.UnknownNetworkError{Name: name, Known: r.Names()}
	}
	return profile.Clone(), nil
}

// Names returns the registered network names in sorted order
func (r *NetworkRegistry) Names() []string {
	return slices.Clone(r.names)
}
