package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"github.com/superstar-lottery/stardeploy/internal/domain"
	"github.com/superstar-lottery/stardeploy/internal/usecase"
)

// NetworksRenderer renders network lists and profiles
type NetworksRenderer struct {
	out  io.Writer
	json bool
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, json bool) *NetworksRenderer {
	return &NetworksRenderer{out: out, json: json}
}

// RenderNetworksList renders the network table
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if r.json {
		profiles := make([]domain.NetworkProfile, 0, len(result.Networks))
		for _, n := range result.Networks {
			if n.Error == nil {
				profiles = append(profiles, n.Profile)
			}
		}
		return writeJSON(r.out, profiles)
	}

	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = true
	t.Style().Box.PaddingRight = "   "
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
	})
	t.AppendHeader(table.Row{"NETWORK", "CHAIN ID", "FEE TOKEN", "GAS PRICE", "BAND", "PROXY"})

	for _, n := range result.Networks {
		name := n.Profile.Name
		if name == result.Current {
			name = color.New(color.FgGreen, color.Bold).Sprint(name + " *")
		}
		if n.Error != nil {
			t.AppendRow(table.Row{name, color.New(color.FgRed).Sprintf("error: %v", n.Error), "", "", "", ""})
			continue
		}

		p := n.Profile
		proxy := color.New(color.FgRed).Sprint("missing")
		if n.HasProxy {
			proxy = color.New(color.FgGreen).Sprint("✓")
		}
		t.AppendRow(table.Row{
			name,
			p.ChainID,
			p.DefaultFeeToken,
			p.DefaultGasPrice.String(),
			fmt.Sprintf("%s – %s", p.GasPriceStep.Low, p.GasPriceStep.High),
			proxy,
		})
	}

	fmt.Fprintln(r.out, t.Render())
	return nil
}

// RenderNetwork dumps one profile as YAML, or JSON in json mode.
// Decimals go through their MarshalText in both encodings.
func (r *NetworksRenderer) RenderNetwork(profile *domain.NetworkProfile) error {
	if r.json {
		return writeJSON(r.out, profile)
	}

	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(profile); err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}
