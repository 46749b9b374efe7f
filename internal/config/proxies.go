package config

import (
	"fmt"
	"maps"

	"github.com/superstar-lottery/stardeploy/internal/domain"
	"github.com/superstar-lottery/stardeploy/internal/domain/config"
)

// ProxyDirectory maps networks to the nois proxy address the lottery consumes
type ProxyDirectory struct {
	addresses map[string]string
}

// NewProxyDirectory copies addresses into a read-only directory
func NewProxyDirectory(addresses map[string]string) *ProxyDirectory {
	return &ProxyDirectory{addresses: maps.Clone(addresses)}
}

// ProvideProxyDirectory creates the directory for Wire dependency injection
func ProvideProxyDirectory(cfg *config.RuntimeConfig) *ProxyDirectory {
	if cfg.Project == nil {
		return NewProxyDirectory(nil)
	}
	return NewProxyDirectory(cfg.Project.Proxies)
}

// Lookup returns the proxy address configured for the profile's network.
// The address must carry the network's bech32 prefix.
func (d *ProxyDirectory) Lookup(profile domain.NetworkProfile) (string, error) {
	addr, ok := d.addresses[profile.Name]
	if !ok || addr == "" {
		return "", fmt.Errorf("%w: no [proxies] entry for %s in %s",
			domain.ErrMissingProxy, profile.Name, config.ProjectFileName)
	}
	if err := domain.ValidateAddress(addr, profile.AddressPrefix); err != nil {
		return "", fmt.Errorf("proxy for %s: %w", profile.Name, err)
	}
	return addr, nil
}
