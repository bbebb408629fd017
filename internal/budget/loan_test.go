package budget

import (
	"testing"

	"dkbudget/internal/model"
)

func TestAnnuityPayment(t *testing.T) {
	cases := []struct {
		name      string
		principal float64
		ratePct   float64
		months    int
		want      float64
	}{
		{"zero principal", 0, 4, 120, 0},
		{"zero term", 100_000, 4, 0, 0},
		{"zero rate amortizes straight", 120_000, 0, 120, 1_000},
	}
	for _, tc := range cases {
		got := annuityPayment(tc.principal, tc.ratePct, tc.months)
		if !approxEqual(RoundDKK(got), tc.want) {
			t.Fatalf("%s: annuityPayment = %v, want %v", tc.name, RoundDKK(got), tc.want)
		}
	}
}

func TestAnnuityPayment_AmortizesToZero(t *testing.T) {
	// The fixed payment must pay the loan off exactly over the term.
	const principal = 3_600_000.0
	const ratePct = 3.5
	const months = 360

	payment := annuityPayment(principal, ratePct, months)

	balance := principal
	monthlyRate := ratePct / 100 / 12
	for i := 0; i < months; i++ {
		balance = balance*(1+monthlyRate) - payment
	}
	if !approxEqual(balance, 0) {
		t.Fatalf("balance after %d payments = %v, want 0", months, balance)
	}
}

func TestHousingCosts_InterestSplitSumsExactly(t *testing.T) {
	in := model.HousingInput{
		PurchasePrice: 2_000_000,
		AnnualRatePct: 3,
		TermYears:     30,
		InterestSplit: 0.5,
	}

	got, err := HousingCosts(in)
	if err != nil {
		t.Fatal(err)
	}

	if got.AnnualInterest != 60_000 {
		t.Fatalf("AnnualInterest = %v, want 60000", got.AnnualInterest)
	}
	if got.InterestShares[0] != 30_000 || got.InterestShares[1] != 30_000 {
		t.Fatalf("shares = %v, want 30000 each", got.InterestShares)
	}

	// Uneven splits still sum exactly to the interest expense.
	for _, split := range []float64{0, 0.25, 1.0 / 3, 0.7, 1} {
		in.InterestSplit = split
		got, err := HousingCosts(in)
		if err != nil {
			t.Fatal(err)
		}
		sum := got.InterestShares[0] + got.InterestShares[1]
		if sum != got.AnnualInterest {
			t.Fatalf("split %v: shares sum to %v, want %v", split, sum, got.AnnualInterest)
		}
	}
}

func TestHousingCosts_MonthlyTotal(t *testing.T) {
	in := model.HousingInput{
		PurchasePrice:     4_000_000,
		DownPaymentPct:    10,
		AnnualRatePct:     3.5,
		TermYears:         30,
		PropertyTaxYearly: 18_000,
		MaintenancePct:    1,
		InterestSplit:     0.5,
	}

	got, err := HousingCosts(in)
	if err != nil {
		t.Fatal(err)
	}

	if got.LoanAmount != 3_600_000 {
		t.Fatalf("LoanAmount = %v, want 3600000", got.LoanAmount)
	}
	if got.PropertyTaxMonthly != 1_500 {
		t.Fatalf("PropertyTaxMonthly = %v, want 1500", got.PropertyTaxMonthly)
	}
	if !approxEqual(got.MaintenanceMonthly, 4_000_000*0.01/12) {
		t.Fatalf("MaintenanceMonthly = %v", got.MaintenanceMonthly)
	}
	wantTotal := got.MonthlyPayment + got.PropertyTaxMonthly + got.MaintenanceMonthly
	if !approxEqual(got.MonthlyTotal, wantTotal) {
		t.Fatalf("MonthlyTotal = %v, want %v", got.MonthlyTotal, wantTotal)
	}
}

func TestHousingCosts_RejectsBadSplit(t *testing.T) {
	in := model.HousingInput{PurchasePrice: 1_000_000, AnnualRatePct: 3, TermYears: 20, InterestSplit: 1.5}
	if _, err := HousingCosts(in); err == nil {
		t.Fatal("split 1.5: want error, got nil")
	}
	in.InterestSplit = -0.1
	if _, err := HousingCosts(in); err == nil {
		t.Fatal("split -0.1: want error, got nil")
	}
}

func TestCarCosts(t *testing.T) {
	in := model.CarInput{
		Price:          300_000,
		DownPaymentPct: 20,
		AnnualRatePct:  4,
		TermYears:      7,
		KMPerYear:      18_000,
		KMPerUnit:      17,
		UnitPrice:      14,
		InsuranceYear:  9_000,
		ServiceYear:    6_000,
	}

	got, err := CarCosts(in)
	if err != nil {
		t.Fatal(err)
	}

	if got.LoanAmount != 240_000 {
		t.Fatalf("LoanAmount = %v, want 240000", got.LoanAmount)
	}
	if !approxEqual(got.FuelMonthly, 18_000.0/12/17*14) {
		t.Fatalf("FuelMonthly = %v", got.FuelMonthly)
	}
	if got.InsuranceMonthly != 750 || got.ServiceMonthly != 500 {
		t.Fatalf("insurance/service = %v/%v, want 750/500", got.InsuranceMonthly, got.ServiceMonthly)
	}
	wantTotal := got.MonthlyPayment + got.FuelMonthly + got.InsuranceMonthly + got.ServiceMonthly
	if !approxEqual(got.MonthlyTotal, wantTotal) {
		t.Fatalf("MonthlyTotal = %v, want %v", got.MonthlyTotal, wantTotal)
	}
}

func TestCarCosts_ZeroEfficiencyMeansNoFuel(t *testing.T) {
	got, err := CarCosts(model.CarInput{Price: 100_000, TermYears: 5, KMPerYear: 10_000})
	if err != nil {
		t.Fatal(err)
	}
	if got.FuelMonthly != 0 {
		t.Fatalf("FuelMonthly = %v, want 0", got.FuelMonthly)
	}
}
