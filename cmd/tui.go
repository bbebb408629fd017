package cmd

import (
	"fmt"

	"dkbudget/internal/config"
	"dkbudget/internal/tui"
	"dkbudget/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor so lipgloss doesn't fall back to the Ascii profile.
	lipgloss.SetColorProfile(termenv.TrueColor)

	household, err := config.ResolveScenario(flagScenario, cfg)
	if err != nil {
		return err
	}

	app := tui.NewApp(cfg, household)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
