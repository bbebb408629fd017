package cmd

import (
	"fmt"

	"dkbudget/internal/budget"
	"dkbudget/internal/cli"

	"github.com/spf13/cobra"
)

var carCmd = &cobra.Command{
	Use:   "car",
	Short: "Show car costs for the current scenario",
	RunE:  runCar,
}

func init() {
	rootCmd.AddCommand(carCmd)
}

func runCar(_ *cobra.Command, _ []string) error {
	_, hh, err := loadInputs()
	if err != nil {
		return err
	}

	cost, err := budget.CarCosts(hh.Car)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("BIL"))
	fmt.Println()

	rows := [][]string{
		{"Købspris", cli.FormatDKK(hh.Car.Price)},
		{"Udbetaling", cli.FormatPercent(hh.Car.DownPaymentPct / 100)},
		{"Lånebeløb", cli.FormatDKK(cost.LoanAmount)},
		{"Rente", cli.FormatPercent(hh.Car.AnnualRatePct / 100)},
		{"Løbetid", fmt.Sprintf("%d år", hh.Car.TermYears)},
		{"---"},
		{"Ydelse pr. måned", cli.FormatDKK2(cost.MonthlyPayment)},
		{"Brændstof pr. måned", cli.FormatDKK2(cost.FuelMonthly)},
		{"Forsikring pr. måned", cli.FormatDKK2(cost.InsuranceMonthly)},
		{"Service/afgift pr. måned", cli.FormatDKK2(cost.ServiceMonthly)},
		{"---"},
		{"Bil i alt pr. måned", cli.FormatDKK2(cost.MonthlyTotal)},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Post", "Beløb"},
		Rows:    rows,
	}))

	fmt.Println()
	fmt.Printf("  %.0f km pr. år, %.1f km/l ved %s pr. liter\n",
		hh.Car.KMPerYear, hh.Car.KMPerUnit, cli.FormatDKK2(hh.Car.UnitPrice))
	fmt.Println()

	return nil
}
