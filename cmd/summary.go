package cmd

import (
	"fmt"

	"dkbudget/internal/budget"
	"dkbudget/internal/cli"
	"dkbudget/internal/model"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Full household overview: net income per person and disposable income",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	rates, household, err := loadInputs()
	if err != nil {
		return err
	}

	res, err := budget.Compute(household, rates)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("HUSSTANDSBUDGET"))
	fmt.Println()

	for _, s := range res.Spouses {
		printSpouse(s)
	}

	printAllowanceTransfers(res)

	householdRows := [][]string{
		{res.Spouses[0].Name, cli.FormatDKK(res.Spouses[0].MonthlyNet)},
		{res.Spouses[1].Name, cli.FormatDKK(res.Spouses[1].MonthlyNet)},
		{"Børnepenge", cli.FormatDKK(res.ChildBenefitMonthly)},
		{"Andre skattefri", cli.FormatDKK(res.OtherTaxFreeMonthly)},
		{"---"},
		{"Husstand netto", cli.FormatDKK(res.CombinedMonthlyNet)},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Husstand pr. måned",
		Headers: []string{"Post", "Beløb"},
		Rows:    householdRows,
	}))
	fmt.Println()

	printExpenses(res)

	fmt.Printf("  Rådighedsbeløb efter faste udgifter: %s\n\n",
		cli.RenderAmount(cli.FormatDKK(res.DisposableMonthly), res.DisposableMonthly))

	return nil
}

func printSpouse(s model.SpouseBreakdown) {
	rows := [][]string{
		{"Løn + honorar", cli.FormatDKK(s.EmploymentIncome)},
		{"B-indkomst", cli.FormatDKK(s.BIncome)},
		{"Skattepligtig offentlig", cli.FormatDKK(s.TaxablePublic)},
		{"Skattefri overførsler", cli.FormatDKK(s.TaxFreeTransfers)},
		{"---"},
		{"AM-bidrag", cli.FormatDKK(s.AMContribution)},
		{"Fradrag i alt", cli.FormatDKK(s.NonPersonalDeductions + s.EffectiveAllowance)},
		{"Total skat", cli.FormatDKK(s.TotalTax)},
		{"---"},
		{"Netto pr. år", cli.FormatDKK(s.AnnualNet)},
		{"Netto pr. måned", cli.FormatDKK(s.MonthlyNet)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("%s  (effektiv skat %s)", s.Name, cli.FormatPercent(s.EffectiveTaxRate)),
		Headers: []string{"Post", "Beløb"},
		Rows:    rows,
	}))
	fmt.Println()
}

func printAllowanceTransfers(res model.HouseholdResult) {
	for _, s := range res.Spouses {
		if s.SharedAllowance > 0 {
			fmt.Printf("  %s modtog %s af partnerens personfradrag\n",
				s.Name, cli.FormatDKK(s.SharedAllowance))
		}
	}
	fmt.Println()
}

func printExpenses(res model.HouseholdResult) {
	rows := make([][]string, 0, len(res.Expenses)+2)
	maxMonthly := 0.0
	for _, e := range res.Expenses {
		rows = append(rows, []string{e.Label, cli.FormatDKK(e.Monthly)})
		if e.Monthly > maxMonthly {
			maxMonthly = e.Monthly
		}
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"I alt", cli.FormatDKK(res.TotalExpensesMonthly)})

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Faste udgifter pr. måned",
		Headers: []string{"Kategori", "Beløb"},
		Rows:    rows,
	}))

	for _, e := range res.Expenses {
		fmt.Println(cli.RenderHorizontalBar(e.Label, e.Monthly, maxMonthly, 30))
	}
	fmt.Println()
}
