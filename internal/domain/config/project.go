package config

// ProjectFileName is the project configuration file looked up from the working directory
const ProjectFileName = "stardeploy.toml"

// DefaultArtifactPath is where the optimized contract is expected when no path is configured
const DefaultArtifactPath = "artifacts/super_star.wasm"

// ProjectConfig represents stardeploy.toml
type ProjectConfig struct {
	// Artifact is the path of the compiled contract, relative to the project root
	Artifact string `toml:"artifact,omitempty"`

	// Label is the instantiate label
	Label string `toml:"label,omitempty"`

	// Proxies maps network names to the nois proxy contract used by the lottery
	Proxies map[string]string `toml:"proxies,omitempty"`

	// Daemons overrides the chain CLI binary per network
	Daemons map[string]string `toml:"daemons,omitempty"`
}

// DefaultProjectConfig returns the configuration used when no project file exists
func DefaultProjectConfig() *ProjectConfig {
	return &ProjectConfig{
		Artifact: DefaultArtifactPath,
		Proxies:  map[string]string{},
		Daemons:  map[string]string{},
	}
}
