package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"dkbudget/internal/budget"

	"github.com/spf13/cobra"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the twelve-month budget as CSV",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "",
		"Write to this file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	rates, hh, err := loadInputs()
	if err != nil {
		return err
	}

	res, err := budget.Compute(hh, rates)
	if err != nil {
		return err
	}
	rows := budget.MonthlySchedule(res)

	out := os.Stdout
	if flagExportOut != "" {
		f, err := os.Create(flagExportOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", flagExportOut, err)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	header := []string{
		"Måned",
		res.Spouses[0].Name + " netto",
		res.Spouses[1].Name + " netto",
		"Børnepenge",
		"Andre skattefri",
		"Husstand netto",
		"Udgifter",
		"Rådighedsbeløb",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.Month,
			formatCSV(r.SpouseNet[0]),
			formatCSV(r.SpouseNet[1]),
			formatCSV(r.ChildBenefit),
			formatCSV(r.OtherTaxFree),
			formatCSV(r.HouseholdNet),
			formatCSV(r.Expenses),
			formatCSV(r.Disposable),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	if flagExportOut != "" {
		fmt.Printf("Wrote %d rows to %s\n", len(rows), flagExportOut)
	}
	return nil
}

// formatCSV renders an amount with two decimals and a dot separator so the
// file imports cleanly into spreadsheets regardless of locale.
func formatCSV(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
