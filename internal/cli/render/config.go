package render

import (
	"fmt"
	"io"

	"github.com/superstar-lottery/stardeploy/internal/domain/config"
	"github.com/superstar-lottery/stardeploy/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// RenderConfig renders the settings in effect and the stored local config
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult, configSource string) error {
	fmt.Fprintln(r.out, "⚙️  Active settings:")
	for _, setting := range result.Effective {
		if setting.Value == "" {
			fmt.Fprintf(r.out, "  %-10s %s\n", setting.Key+":", unsetText(setting.Key))
			continue
		}
		if setting.Source == "" {
			fmt.Fprintf(r.out, "  %-10s %s\n", setting.Key+":", setting.Value)
			continue
		}
		fmt.Fprintf(r.out, "  %-10s %s (from %s)\n", setting.Key+":", setting.Value, setting.Source)
	}
	fmt.Fprintln(r.out)

	if !result.Exists {
		fmt.Fprintf(r.out, "❌ No %s file found\n", getRelativePath(result.ConfigPath))
		fmt.Fprintf(r.out, "⚠️  Without config, commands require --network (or CHAIN) to be set\n")
		return nil
	}

	fmt.Fprintln(r.out, "📋 Stored config:")

	network := result.Config.Network
	if network == "" {
		network = "(not set)"
	}
	fmt.Fprintf(r.out, "  Network:   %s\n", network)

	gasPrice := result.Config.GasPrice
	if gasPrice == "" {
		gasPrice = "(network default)"
	}
	fmt.Fprintf(r.out, "  Gas price: %s\n", gasPrice)

	if configSource != "" {
		fmt.Fprintf(r.out, "\n📦 Project file: %s\n", configSource)
	}
	fmt.Fprintf(r.out, "📁 config file: %s\n", getRelativePath(result.ConfigPath))

	return nil
}

func unsetText(key config.ConfigKey) string {
	if key == config.ConfigKeyGasPrice {
		return "(network default)"
	}
	return "(not set)"
}

// RenderSet renders the result of setting a configuration value
func (r *ConfigRenderer) RenderSet(result *usecase.SetConfigResult) error {
	fmt.Fprintf(r.out, "✅ Set %s to: %s\n", result.Key, result.Value)
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

// RenderRemove renders the result of removing a configuration value
func (r *ConfigRenderer) RenderRemove(result *usecase.RemoveConfigResult) error {
	switch result.Key {
	case config.ConfigKeyNetwork:
		fmt.Fprintf(r.out, "✅ Removed network from config (will be required as flag)\n")
	case config.ConfigKeyGasPrice:
		fmt.Fprintf(r.out, "✅ Removed gas price from config (network default applies)\n")
	}

	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}
