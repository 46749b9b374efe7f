package config

// LocalConfig represents the local stardeploy configuration
type LocalConfig struct {
	Network  string `json:"network"`
	GasPrice string `json:"gas_price,omitempty"`
}

// ConfigKey represents a configuration key
type ConfigKey string

const (
	ConfigKeyNetwork  ConfigKey = "network"
	ConfigKeyGasPrice ConfigKey = "gas-price"
)

// DefaultLocalConfig returns the default local configuration
func DefaultLocalConfig() *LocalConfig {
	return &LocalConfig{}
}

// ValidConfigKeys returns all valid configuration keys
func ValidConfigKeys() []ConfigKey {
	return []ConfigKey{
		ConfigKeyNetwork,
		ConfigKeyGasPrice,
	}
}

// IsValidConfigKey checks if a key is valid
func IsValidConfigKey(key string) bool {
	for _, validKey := range ValidConfigKeys() {
		if string(validKey) == key || (key == "chain" && validKey == ConfigKeyNetwork) {
			return true
		}
	}
	return false
}

// NormalizeConfigKey normalizes a config key (e.g., "chain" -> "network")
func NormalizeConfigKey(key string) ConfigKey {
	if key == "chain" {
		return ConfigKeyNetwork
	}
	return ConfigKey(key)
}
