package usecase

import (
	"context"

	"github.com/superstar-lottery/stardeploy/internal/domain/config"
)

// EffectiveSetting is the value a lifecycle command would use for one key
type EffectiveSetting struct {
	Key    config.ConfigKey
	Value  string
	Source string // "flag", "env CHAIN", "config.local.json", ...; empty when unset
}

// ShowConfigResult contains the stored local config and the settings in effect
type ShowConfigResult struct {
	Config     *config.LocalConfig
	ConfigPath string
	Exists     bool
	Effective  []EffectiveSetting
}

// ShowConfig reports the local config together with where the active
// network and gas price come from
type ShowConfig struct {
	config *config.RuntimeConfig
	store  LocalConfigRepository
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig, store LocalConfigRepository) *ShowConfig {
	return &ShowConfig{config: cfg, store: store}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	local, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &ShowConfigResult{
		Config:     local,
		ConfigPath: uc.store.GetPath(),
		Exists:     uc.store.Exists(),
		Effective: []EffectiveSetting{
			{Key: config.ConfigKeyNetwork, Value: uc.config.Network, Source: uc.source("network")},
			{Key: config.ConfigKeyGasPrice, Value: uc.config.GasPrice, Source: uc.source("gas_price")},
		},
	}, nil
}

func (uc *ShowConfig) source(key string) string {
	if uc.config.Sources == nil {
		return ""
	}
	return uc.config.Sources[key]
}
