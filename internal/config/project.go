package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/superstar-lottery/stardeploy/internal/domain/config"
)

// loadDotEnv loads .env and .env.local from the project root.
// Variables already set in the process environment win.
func loadDotEnv(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// loadProjectConfig loads and parses stardeploy.toml if it exists.
// Returns the defaults and an empty source when the file does not exist.
func loadProjectConfig(projectRoot string) (*config.ProjectConfig, string, error) {
	path := filepath.Join(projectRoot, config.ProjectFileName)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.DefaultProjectConfig(), "", nil
	}

	cfg := config.DefaultProjectConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse %s: %w", config.ProjectFileName, err)
	}

	cfg.Artifact = strings.TrimSpace(os.ExpandEnv(cfg.Artifact))
	if cfg.Artifact == "" {
		cfg.Artifact = config.DefaultArtifactPath
	}
	cfg.Label = os.ExpandEnv(cfg.Label)

	// Expand environment variables in per-network tables
	for network, addr := range cfg.Proxies {
		cfg.Proxies[network] = strings.TrimSpace(os.ExpandEnv(addr))
	}
	for network, daemon := range cfg.Daemons {
		cfg.Daemons[network] = strings.TrimSpace(os.ExpandEnv(daemon))
	}

	return cfg, config.ProjectFileName, nil
}
