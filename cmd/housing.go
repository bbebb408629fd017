package cmd

import (
	"fmt"

	"dkbudget/internal/budget"
	"dkbudget/internal/cli"

	"github.com/spf13/cobra"
)

var housingCmd = &cobra.Command{
	Use:   "housing",
	Short: "Show housing costs for the current scenario",
	RunE:  runHousing,
}

func init() {
	rootCmd.AddCommand(housingCmd)
}

func runHousing(_ *cobra.Command, _ []string) error {
	_, hh, err := loadInputs()
	if err != nil {
		return err
	}

	cost, err := budget.HousingCosts(hh.Housing)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("BOLIG"))
	fmt.Println()

	rows := [][]string{
		{"Købspris", cli.FormatDKK(hh.Housing.PurchasePrice)},
		{"Udbetaling", cli.FormatPercent(hh.Housing.DownPaymentPct / 100)},
		{"Lånebeløb", cli.FormatDKK(cost.LoanAmount)},
		{"Rente", cli.FormatPercent(hh.Housing.AnnualRatePct / 100)},
		{"Løbetid", fmt.Sprintf("%d år", hh.Housing.TermYears)},
		{"---"},
		{"Ydelse pr. måned", cli.FormatDKK2(cost.MonthlyPayment)},
		{"Ejendomsskat pr. måned", cli.FormatDKK2(cost.PropertyTaxMonthly)},
		{"Vedligehold pr. måned", cli.FormatDKK2(cost.MaintenanceMonthly)},
		{"---"},
		{"Bolig i alt pr. måned", cli.FormatDKK2(cost.MonthlyTotal)},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Post", "Beløb"},
		Rows:    rows,
	}))

	fmt.Println()
	fmt.Printf("  Renter første år: %s (fradrag fordelt %s / %s)\n",
		cli.FormatDKK(cost.AnnualInterest),
		cli.FormatDKK(cost.InterestShares[0]),
		cli.FormatDKK(cost.InterestShares[1]))
	fmt.Println()

	return nil
}
