package cmd

import (
	"fmt"

	"dkbudget/internal/budget"
	"dkbudget/internal/cli"
	"dkbudget/internal/config"
	"dkbudget/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagCommuteDistance float64
	flagCommuteDays     int
)

var commuteCmd = &cobra.Command{
	Use:   "commute",
	Short: "Compute the annual commuter deduction for one commute",
	RunE:  runCommute,
}

func init() {
	commuteCmd.Flags().Float64VarP(&flagCommuteDistance, "distance", "d", 0,
		"One-way distance home to work in km")
	commuteCmd.Flags().IntVarP(&flagCommuteDays, "days", "n", 210,
		"Commuting days per year")
	_ = commuteCmd.MarkFlagRequired("distance")
	rootCmd.AddCommand(commuteCmd)
}

func runCommute(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	rates := config.EffectiveRates(cfg)

	in := model.CommuteInput{DistanceKM: flagCommuteDistance, DaysPerYear: flagCommuteDays}
	got, err := budget.Commute(in, rates)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  %s pr. vej, %d pendlerdage (%s tur/retur pr. dag)\n\n",
		cli.FormatKM(in.DistanceKM), in.DaysPerYear, cli.FormatKM(in.DistanceKM*2))

	rows := [][]string{
		{fmt.Sprintf("Zone 1 (%v kr./km)", rates.CommuteZone1Rate),
			cli.FormatKM(got.Zone1KMPerDay), cli.FormatDKK(got.Zone1Annual)},
		{fmt.Sprintf("Zone 2 (%v kr./km)", rates.CommuteZone2Rate),
			cli.FormatKM(got.Zone2KMPerDay), cli.FormatDKK(got.Zone2Annual)},
		{"---"},
		{"Kørselsfradrag pr. år", "", cli.FormatDKK(got.Total)},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Zone", "Km/dag", "Fradrag"},
		Rows:    rows,
	}))

	if got.Total == 0 {
		fmt.Printf("\n  Under %v km pr. dag giver ikke fradrag.\n", rates.CommuteLowKM)
	}
	fmt.Println()

	return nil
}
