package budget

import (
	"reflect"
	"testing"

	"dkbudget/internal/config"
	"dkbudget/internal/model"
)

func testHousehold() model.Household {
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
			MaintenancePct:    1,
			InterestSplit:     0.5,
		},
		Car: model.CarInput{
			Price:          300_000,
			DownPaymentPct: 20,
			AnnualRatePct:  4,
			TermYears:      7,
			KMPerYear:      18_000,
			KMPerUnit:      17,
			UnitPrice:      14,
			InsuranceYear:  9_000,
			ServiceYear:    6_000,
		},
		Children: model.ChildCounts{Age3to6: 2},
		Expenses: []model.ExpenseItem{
			{Label: "Dagligvarer", Monthly: 6_000},
			{Label: "Transport", Monthly: 2_500},
		},
	}
}

func TestCompute_Idempotent(t *testing.T) {
	h := testHousehold()
	rates := config.DefaultRates()

	first, err := Compute(h, rates)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Compute(h, rates)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("two computations over identical inputs differ")
	}
}

func TestCompute_Rollup(t *testing.T) {
	h := testHousehold()
	res, err := Compute(h, config.DefaultRates())
	if err != nil {
		t.Fatal(err)
	}

	wantCombined := RoundDKK(res.Spouses[0].MonthlyNet + res.Spouses[1].MonthlyNet +
		res.ChildBenefitMonthly + res.OtherTaxFreeMonthly)
	if !approxEqual(res.CombinedMonthlyNet, wantCombined) {
		t.Fatalf("CombinedMonthlyNet = %v, want %v", res.CombinedMonthlyNet, wantCombined)
	}

	// Two user categories plus the derived housing and car lines.
	if len(res.Expenses) != 4 {
		t.Fatalf("expense lines = %d, want 4", len(res.Expenses))
	}
	var total float64
	for _, e := range res.Expenses {
		total += e.Monthly
	}
	if !approxEqual(res.TotalExpensesMonthly, RoundDKK(total)) {
		t.Fatalf("TotalExpensesMonthly = %v, want %v", res.TotalExpensesMonthly, total)
	}
	if !approxEqual(res.DisposableMonthly, RoundDKK(res.CombinedMonthlyNet-res.TotalExpensesMonthly)) {
		t.Fatalf("DisposableMonthly = %v", res.DisposableMonthly)
	}

	if !approxEqual(res.ChildBenefitMonthly, 2*3933.0/3) {
		t.Fatalf("ChildBenefitMonthly = %v, want %v", res.ChildBenefitMonthly, 2*3933.0/3)
	}
}

func TestCompute_AllowanceTransferToSoleEarner(t *testing.T) {
	h := testHousehold()
	h.Spouses[1].MonthlySalary = 0
	h.Spouses[1].AnnualUnionFee = 0
	h.Spouses[1].Commute = model.CommuteInput{}
	// Keep the mortgage share from shielding the comparison.
	h.Housing = model.HousingInput{InterestSplit: 0.5}
	h.Car = model.CarInput{}

	rates := config.DefaultRates()
	res, err := Compute(h, rates)
	if err != nil {
		t.Fatal(err)
	}

	if res.Spouses[0].SharedAllowance != rates.PersonalAllowance {
		t.Fatalf("SharedAllowance = %v, want full allowance %v",
			res.Spouses[0].SharedAllowance, rates.PersonalAllowance)
	}
	if !approxEqual(res.Spouses[0].EffectiveAllowance, 2*rates.PersonalAllowance) {
		t.Fatalf("EffectiveAllowance = %v, want %v",
			res.Spouses[0].EffectiveAllowance, 2*rates.PersonalAllowance)
	}
	if res.Spouses[1].MonthlyNet != 0 {
		t.Fatalf("idle spouse MonthlyNet = %v, want 0", res.Spouses[1].MonthlyNet)
	}
	// The transferred allowance is no longer unused on the giver's side.
	if res.Spouses[1].AllowanceUnused != 0 {
		t.Fatalf("giver AllowanceUnused = %v, want 0", res.Spouses[1].AllowanceUnused)
	}
}

func TestCompute_DisposableMayGoNegative(t *testing.T) {
	h := testHousehold()
	h.Expenses = append(h.Expenses, model.ExpenseItem{Label: "Alt for dyrt", Monthly: 500_000})

	res, err := Compute(h, config.DefaultRates())
	if err != nil {
		t.Fatal(err)
	}
	if res.DisposableMonthly >= 0 {
		t.Fatalf("DisposableMonthly = %v, want negative", res.DisposableMonthly)
	}
}

func TestCompute_RejectsInvalidHousehold(t *testing.T) {
	h := testHousehold()
	h.Spouses[0].MonthlySalary = -1

	if _, err := Compute(h, config.DefaultRates()); err == nil {
		t.Fatal("negative salary: want error, got nil")
	}
}

func TestMonthlySchedule(t *testing.T) {
	res, err := Compute(testHousehold(), config.DefaultRates())
	if err != nil {
		t.Fatal(err)
	}

	rows := MonthlySchedule(res)
	if len(rows) != 12 {
		t.Fatalf("rows = %d, want 12", len(rows))
	}
	if rows[0].Month != "Januar" || rows[11].Month != "December" {
		t.Fatalf("month names wrong: %s ... %s", rows[0].Month, rows[11].Month)
	}
	for _, r := range rows {
		if r.HouseholdNet != res.CombinedMonthlyNet {
			t.Fatalf("%s: HouseholdNet = %v, want %v", r.Month, r.HouseholdNet, res.CombinedMonthlyNet)
		}
		if r.Disposable != res.DisposableMonthly {
			t.Fatalf("%s: Disposable = %v, want %v", r.Month, r.Disposable, res.DisposableMonthly)
		}
	}
}
