package interactive

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/sahilm/fuzzy"

	"github.com/superstar-lottery/stardeploy/internal/domain/config"
	"github.com/superstar-lottery/stardeploy/internal/usecase"
)

// SelectorAdapter handles interactive network selection
type SelectorAdapter struct {
	config     *config.RuntimeConfig
	networks   usecase.NetworkRegistry
	isTerminal func() bool
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig, networks usecase.NetworkRegistry) *SelectorAdapter {
	return &SelectorAdapter{config: cfg, networks: networks, isTerminal: stdinIsTerminal}
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// SelectNetwork asks the user to pick one of names.
// Piped or closed stdin counts as non-interactive.
func (s *SelectorAdapter) SelectNetwork(ctx context.Context, names []string, prompt string) (string, error) {
	if s.config.NonInteractive || !s.isTerminal() {
		return "", usecase.ErrSelectionUnavailable
	}

	if len(names) == 0 {
		return "", fmt.Errorf("no networks configured")
	}
	if len(names) == 1 {
		return names[0], nil
	}

	options := s.formatNetworkOptions(names)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:     prompt,
		Items:     options,
		Templates: templates,
		Size:      10,
		Searcher:  createFuzzySearchFunc(options),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return "", fmt.Errorf("selection cancelled: %w", err)
	}

	return names[index], nil
}

// formatNetworkOptions renders "juno_testnet (Juno Testnet, uni-5)"
func (s *SelectorAdapter) formatNetworkOptions(names []string) []string {
	options := make([]string, len(names))
	for i, name := range names {
		label := color.New(color.FgWhite, color.Bold).Sprint(name)

		profile, err := s.networks.Resolve(name)
		if err != nil {
			options[i] = label
			continue
		}

		detail := profile.ChainID
		if profile.PrettyName != "" {
			detail = profile.PrettyName + ", " + profile.ChainID
		}
		options[i] = fmt.Sprintf("%s (%s)", label, color.New(color.FgBlue).Sprint(detail))
	}
	return options
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

var _ usecase.NetworkSelector = (*SelectorAdapter)(nil)
