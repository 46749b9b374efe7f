package config

import (
	"time"

	"github.com/superstar-lottery/stardeploy/internal/domain"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Context settings
	Network string // network name as given; resolved by the registry

	// Signing inputs
	Secret   domain.SecretPhrase
	GasPrice string // optional rate override
	FeeDenom string // optional fee denom override

	// Lifecycle inputs sourced from the environment
	CodeID   string
	Contract string

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	Timeout        time.Duration

	// Config source tracking
	ConfigSource string            // "stardeploy.toml" or "" when no project file was found
	Sources      map[string]string // viper key -> layer the value came from

	// Resolved configurations
	Project *ProjectConfig
}
