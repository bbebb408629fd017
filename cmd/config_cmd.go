// Package cmd implements the dkbudget CLI commands.
package cmd

import (
	"fmt"

	"dkbudget/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration and effective tax rates",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.ScenarioPath != "" {
		fmt.Printf("    Scenario file: %s\n", cfg.General.ScenarioPath)
	} else {
		fmt.Println("    Scenario file: not set (built-in defaults)")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	rates := config.EffectiveRates(cfg)
	fmt.Println("  [Rates]")
	fmt.Printf("    Kommuneskat:          %.2f%%\n", rates.MunicipalRate*100)
	fmt.Printf("    Kirkeskat:            %.2f%%\n", rates.ChurchRate*100)
	fmt.Printf("    Bundskat:             %.2f%%\n", rates.BottomRate*100)
	fmt.Printf("    Topskat:              %.2f%%\n", rates.TopRate*100)
	fmt.Printf("    AM-bidrag:            %.2f%%\n", rates.AMRate*100)
	fmt.Printf("    Topskattegrænse:      %.0f kr.\n", rates.TopTaxThreshold)
	fmt.Printf("    Personfradrag:        %.0f kr.\n", rates.PersonalAllowance)
	fmt.Printf("    Beskæftigelsesfradrag: %.1f%% (maks %.0f kr.)\n",
		rates.EmploymentDeductionRate*100, rates.EmploymentDeductionCap)
	fmt.Printf("    Befordring zone 1:    %.2f kr./km (%.0f-%.0f km/dag)\n",
		rates.CommuteZone1Rate, rates.CommuteLowKM, rates.CommuteHighKM)
	fmt.Printf("    Befordring zone 2:    %.2f kr./km (over %.0f km/dag)\n",
		rates.CommuteZone2Rate, rates.CommuteHighKM)
	fmt.Println()

	fmt.Println("  Rates can be overridden in the [rates] section of the config file,")
	fmt.Println("  or edited interactively with `dkbudget tui`.")
	return nil
}
