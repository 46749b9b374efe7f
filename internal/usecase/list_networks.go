package usecase

import (
	"context"

	"github.com/superstar-lottery/stardeploy/internal/domain"
	"github.com/superstar-lottery/stardeploy/internal/domain/config"
)

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
	Current  string
}

// NetworkStatus is one row of the network listing
type NetworkStatus struct {
	Profile  domain.NetworkProfile
	HasProxy bool
	Error    error
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	config   *config.RuntimeConfig
	networks NetworkRegistry
	proxies  ProxyDirectory
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *config.RuntimeConfig, networks NetworkRegistry, proxies ProxyDirectory) *ListNetworks {
	return &ListNetworks{
		config:   cfg,
		networks: networks,
		proxies:  proxies,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context) (*ListNetworksResult, error) {
	names := uc.networks.Names()

	networks := make([]NetworkStatus, 0, len(names))
	for _, name := range names {
		status := NetworkStatus{}

		profile, err := uc.networks.Resolve(name)
		if err != nil {
			status.Profile.Name = name
			status.Error = err
		} else {
			status.Profile = profile
			_, proxyErr := uc.proxies.Lookup(profile)
			status.HasProxy = proxyErr == nil
		}

		networks = append(networks, status)
	}

	return &ListNetworksResult{
		Networks: networks,
		Current:  uc.config.Network,
	}, nil
}

// ShowNetwork returns the full profile of one network
type ShowNetwork struct {
	networks NetworkRegistry
}

// NewShowNetwork creates a new ShowNetwork use case
func NewShowNetwork(networks NetworkRegistry) *ShowNetwork {
	return &ShowNetwork{networks: networks}
}

// Run executes the use case
func (uc *ShowNetwork) Run(ctx context.Context, name string) (*domain.NetworkProfile, error) {
	profile, err := uc.networks.Resolve(name)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
