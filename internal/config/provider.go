package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"github.com/superstar-lottery/stardeploy/internal/domain"
	"github.com/superstar-lottery/stardeploy/internal/domain/config"
)

// DataDirName is the per-project directory holding local config and the deployment registry
const DataDirName = ".stardeploy"

// FlagKeysKey lists the viper keys that were set from command line flags
const FlagKeysKey = "flag_keys"

// legacyEnv maps viper keys to the plain environment variables the deploy scripts always used
var legacyEnv = map[string]string{
	"network":   "CHAIN",
	"mnemonic":  "MNEMONIC",
	"code_id":   "CODE_ID",
	"contract":  "CONTRACT_ADDR",
	"gas_price": "GAS_PRICE",
}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	project, source, err := loadProjectConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load project config: %w", err)
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, DataDirName),
		Network:        strings.TrimSpace(v.GetString("network")),
		Secret:         domain.SecretPhrase(strings.TrimSpace(v.GetString("mnemonic"))),
		GasPrice:       strings.TrimSpace(v.GetString("gas_price")),
		FeeDenom:       strings.TrimSpace(v.GetString("fee_denom")),
		CodeID:         strings.TrimSpace(v.GetString("code_id")),
		Contract:       strings.TrimSpace(v.GetString("contract")),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Timeout:        v.GetDuration("timeout"),
		ConfigSource:   source,
		Project:        project,
		Sources: map[string]string{
			"network":   valueSource(v, "network"),
			"gas_price": valueSource(v, "gas_price"),
		},
	}

	return cfg, nil
}

// valueSource names the layer a setting came from: a flag, an environment
// variable or the local config file. Unset values have no source.
func valueSource(v *viper.Viper, key string) string {
	if strings.TrimSpace(v.GetString(key)) == "" {
		return ""
	}
	if slices.Contains(v.GetStringSlice(FlagKeysKey), key) {
		return "flag"
	}

	names := []string{"STARDEPLOY_" + strings.ToUpper(key)}
	if legacy, ok := legacyEnv[key]; ok {
		names = append(names, legacy)
	}
	for _, name := range names {
		if val, ok := os.LookupEnv(name); ok && val != "" {
			return "env " + name
		}
	}

	if v.InConfig(key) {
		return "config.local.json"
	}
	return "override"
}

// FindProjectRoot walks up from the current directory looking for stardeploy.toml.
// The current directory is the project root when no project file exists.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, config.ProjectFileName)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string) *viper.Viper {
	// .env values must be in the process environment before viper reads it
	loadDotEnv(projectRoot)

	v := viper.New()

	// Set up config file
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, DataDirName))

	// Set up environment variables
	v.SetEnvPrefix("STARDEPLOY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	for key, name := range legacyEnv {
		_ = v.BindEnv(key, "STARDEPLOY_"+strings.ToUpper(key), name)
	}

	// Set defaults
	v.SetDefault("timeout", "5m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("json", false)
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	return v
}
