package config

import (
	"fmt"
	"os"

	"dkbudget/internal/model"

	"github.com/BurntSushi/toml"
)

// DefaultScenario returns the household the calculators run on when no
// scenario file is given. The figures match a typical two-earner couple
// with two kindergarten-age children.
func DefaultScenario() model.Household {
	return model.Household{
		Spouses: [2]model.SpouseInput{
			{
				Name:           "Person 1",
				MonthlySalary:  35_000,
				AnnualUnionFee: 6_000,
				Commute:        model.CommuteInput{DistanceKM: 20, DaysPerYear: 210},
			},
			{
				Name:           "Person 2",
				MonthlySalary:  28_000,
				AnnualUnionFee: 5_000,
				Commute:        model.CommuteInput{DistanceKM: 12, DaysPerYear: 210},
			},
		},
		Housing: model.HousingInput{
			PurchasePrice:     4_000_000,
			DownPaymentPct:    10,
			AnnualRatePct:     3.5,
			TermYears:         30,
			PropertyTaxYearly: 18_000,
			MaintenancePct:    1.0,
			InterestSplit:     0.5,
		},
		Car: model.CarInput{
			Price:          300_000,
			DownPaymentPct: 20,
			AnnualRatePct:  4.0,
			TermYears:      7,
			KMPerYear:      18_000,
			KMPerUnit:      17,
			UnitPrice:      14,
			InsuranceYear:  9_000,
			ServiceYear:    6_000,
		},
		Children: model.ChildCounts{Age3to6: 2},
		Expenses: DefaultExpenses(),
	}
}

// DefaultExpenses returns the fixed monthly expense categories the form
// pre-fills. The derived housing and car lines are appended by the
// calculator, not listed here.
func DefaultExpenses() []model.ExpenseItem {
	return []model.ExpenseItem{
		{Label: "Bolig og forsyning", Monthly: 8_500},
		{Label: "Dagligvarer", Monthly: 6_000},
		{Label: "Transport", Monthly: 2_500},
		{Label: "Børn (institution/fritid)", Monthly: 3_200},
		{Label: "Forsikringer og sundhed", Monthly: 1_500},
		{Label: "Abonnementer og fritid", Monthly: 1_200},
	}
}

// LoadScenario reads a household scenario TOML file. Fields left out of the
// file keep their default values, so a scenario only needs to state what
// differs from DefaultScenario.
func LoadScenario(path string) (model.Household, error) {
	h := DefaultScenario()

	data, err := os.ReadFile(path)
	if err != nil {
		return h, fmt.Errorf("reading scenario: %w", err)
	}

	if err := toml.Unmarshal(data, &h); err != nil {
		return h, fmt.Errorf("parsing scenario %s: %w", path, err)
	}

	if err := h.Validate(); err != nil {
		return h, fmt.Errorf("scenario %s: %w", path, err)
	}

	return h, nil
}

// ResolveScenario picks the scenario from the --scenario flag, the
// configured default path, or the built-in defaults, in that order.
func ResolveScenario(flagPath string, cfg Config) (model.Household, error) {
	switch {
	case flagPath != "":
		return LoadScenario(flagPath)
	case cfg.General.ScenarioPath != "":
		return LoadScenario(cfg.General.ScenarioPath)
	default:
		return DefaultScenario(), nil
	}
}
