package budget

import (
	"dkbudget/internal/config"
	"dkbudget/internal/model"
)

// Child benefit (børne- og ungeydelse), DKK per child per month. The three
// youngest brackets are paid quarterly and converted to monthly equivalents.
const (
	ChildBenefit0to2   = 4971.0 / 3
	ChildBenefit3to6   = 3933.0 / 3
	ChildBenefit7to14  = 3093.0 / 3
	ChildBenefit15to17 = 961.0
)

// ChildBenefit returns the tax-free monthly child benefit for the
// household's children.
func ChildBenefit(c model.ChildCounts) float64 {
	total := float64(c.Age0to2)*ChildBenefit0to2 +
		float64(c.Age3to6)*ChildBenefit3to6 +
		float64(c.Age7to14)*ChildBenefit7to14 +
		float64(c.Age15to17)*ChildBenefit15to17
	return RoundDKK(total)
}

// Compute runs the full calculation for one household: housing and car
// costs, per-spouse tax with allowance sharing, and the expense rollup.
// It validates its input and never mutates it; calling it twice with the
// same household yields the same result.
func Compute(h model.Household, rates config.TaxRates) (model.HouseholdResult, error) {
	if err := h.Validate(); err != nil {
		return model.HouseholdResult{}, err
	}

	housing, err := HousingCosts(h.Housing)
	if err != nil {
		return model.HouseholdResult{}, err
	}
	car, err := CarCosts(h.Car)
	if err != nil {
		return model.HouseholdResult{}, err
	}

	var bases [2]taxBase
	for i, s := range h.Spouses {
		b, err := buildTaxBase(s, housing.InterestShares[i], rates)
		if err != nil {
			return model.HouseholdResult{}, err
		}
		bases[i] = b
	}

	alloc := allocateAllowance(
		[2]float64{bases[0].taxableAfterOther, bases[1].taxableAfterOther},
		rates.PersonalAllowance,
	)

	res := model.HouseholdResult{
		Housing:             housing,
		Car:                 car,
		ChildBenefitMonthly: ChildBenefit(h.Children),
		OtherTaxFreeMonthly: RoundDKK(h.MonthlyTaxFreeExtra),
	}

	for i := range bases {
		given := alloc.extra[1-i] // what this spouse handed to the partner
		res.Spouses[i] = spouseBreakdown(bases[i], alloc.extra[i], alloc.unused[i]-given, rates)
	}

	res.CombinedMonthlyNet = RoundDKK(res.Spouses[0].MonthlyNet +
		res.Spouses[1].MonthlyNet +
		res.ChildBenefitMonthly +
		res.OtherTaxFreeMonthly)

	res.Expenses = expenseLines(h, housing, car)
	var total float64
	for _, e := range res.Expenses {
		total += e.Monthly
	}
	res.TotalExpensesMonthly = RoundDKK(total)
	res.DisposableMonthly = RoundDKK(res.CombinedMonthlyNet - res.TotalExpensesMonthly)

	return res, nil
}

// expenseLines combines the user's expense categories with the derived
// housing and car lines.
func expenseLines(h model.Household, housing model.HousingCost, car model.CarCost) []model.ExpenseItem {
	lines := make([]model.ExpenseItem, 0, len(h.Expenses)+2)
	for _, e := range h.Expenses {
		lines = append(lines, model.ExpenseItem{Label: e.Label, Monthly: RoundDKK(e.Monthly)})
	}
	if housing.MonthlyTotal > 0 {
		lines = append(lines, model.ExpenseItem{Label: "Boliglån (beregnet)", Monthly: housing.MonthlyTotal})
	}
	if car.MonthlyTotal > 0 {
		lines = append(lines, model.ExpenseItem{Label: "Bil (lån + drift)", Monthly: car.MonthlyTotal})
	}
	return lines
}

// ScheduleRow is one month of the household budget.
type ScheduleRow struct {
	Month        string
	SpouseNet    [2]float64
	ChildBenefit float64
	OtherTaxFree float64
	HouseholdNet float64
	Expenses     float64
	Disposable   float64
}

var monthNames = []string{
	"Januar", "Februar", "Marts", "April", "Maj", "Juni",
	"Juli", "August", "September", "Oktober", "November", "December",
}

// MonthlySchedule expands a result into a twelve-month budget table. The
// model has no seasonal variation, so every month carries the same figures;
// the table exists for export and year-at-a-glance display.
func MonthlySchedule(res model.HouseholdResult) []ScheduleRow {
	rows := make([]ScheduleRow, 0, len(monthNames))
	for _, name := range monthNames {
		rows = append(rows, ScheduleRow{
			Month:        name,
			SpouseNet:    [2]float64{res.Spouses[0].MonthlyNet, res.Spouses[1].MonthlyNet},
			ChildBenefit: res.ChildBenefitMonthly,
			OtherTaxFree: res.OtherTaxFreeMonthly,
			HouseholdNet: res.CombinedMonthlyNet,
			Expenses:     res.TotalExpensesMonthly,
			Disposable:   res.DisposableMonthly,
		})
	}
	return rows
}
