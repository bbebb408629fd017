// Package cmd implements the dkbudget CLI commands.
package cmd

import (
	"os"

	"dkbudget/internal/config"
	"dkbudget/internal/model"

	"github.com/spf13/cobra"
)

var flagScenario string

var rootCmd = &cobra.Command{
	Use:   "dkbudget",
	Short: "Household budget calculator for a Danish married couple",
	Long: "Estimate a couple's monthly net income under Danish tax rules\n" +
		"(AM-bidrag, bracket tax, commuter and interest deductions, spousal\n" +
		"allowance sharing) and the disposable income left after housing,\n" +
		"car, and fixed monthly expenses.",
	RunE: runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagScenario, "scenario", "s", "",
		"Household scenario TOML file (defaults to the built-in example couple)")
}

// loadInputs is the shared loading path used by all commands: config with
// rate overrides applied, plus the household scenario.
func loadInputs() (config.TaxRates, model.Household, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.TaxRates{}, model.Household{}, err
	}

	household, err := config.ResolveScenario(flagScenario, cfg)
	if err != nil {
		return config.TaxRates{}, model.Household{}, err
	}

	return config.EffectiveRates(cfg), household, nil
}
