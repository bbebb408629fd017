package budget

import (
	"testing"

	"dkbudget/internal/config"
	"dkbudget/internal/model"
)

func TestBuildTaxBase(t *testing.T) {
	rates := config.DefaultRates()

	in := model.SpouseInput{
		Name:           "Test",
		MonthlySalary:  35_000,
		AnnualUnionFee: 6_000,
	}

	b, err := buildTaxBase(in, 15_000, rates)
	if err != nil {
		t.Fatal(err)
	}

	if b.employmentIncome != 420_000 {
		t.Fatalf("employmentIncome = %v, want 420000", b.employmentIncome)
	}
	if !approxEqual(b.amContribution, 33_600) {
		t.Fatalf("amContribution = %v, want 33600", b.amContribution)
	}
	if !approxEqual(b.incomeAfterAM, 386_400) {
		t.Fatalf("incomeAfterAM = %v, want 386400", b.incomeAfterAM)
	}
	// 10% of 420k exceeds nothing: below the 43.5k cap.
	if !approxEqual(b.employmentDeduction, 42_000) {
		t.Fatalf("employmentDeduction = %v, want 42000", b.employmentDeduction)
	}
	// employment deduction + mortgage share + union fee
	if !approxEqual(b.nonPersonal, 42_000+15_000+6_000) {
		t.Fatalf("nonPersonal = %v, want 63000", b.nonPersonal)
	}
	if !approxEqual(b.taxableAfterOther, 386_400-63_000) {
		t.Fatalf("taxableAfterOther = %v, want 323400", b.taxableAfterOther)
	}
}

func TestBuildTaxBase_EmploymentDeductionCap(t *testing.T) {
	rates := config.DefaultRates()

	b, err := buildTaxBase(model.SpouseInput{MonthlySalary: 60_000}, 0, rates)
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(b.employmentDeduction, rates.EmploymentDeductionCap) {
		t.Fatalf("employmentDeduction = %v, want cap %v", b.employmentDeduction, rates.EmploymentDeductionCap)
	}
}

func TestBuildTaxBase_MortgageOverrideWins(t *testing.T) {
	override := 25_000.0
	in := model.SpouseInput{MonthlySalary: 30_000, MortgageInterestOverride: &override}

	b, err := buildTaxBase(in, 40_000, config.DefaultRates())
	if err != nil {
		t.Fatal(err)
	}
	if b.mortgageInterest != override {
		t.Fatalf("mortgageInterest = %v, want override %v", b.mortgageInterest, override)
	}
}

func TestBuildTaxBase_CommuteAdjustmentNeverGoesNegative(t *testing.T) {
	in := model.SpouseInput{
		MonthlySalary:     30_000,
		Commute:           model.CommuteInput{DistanceKM: 30, DaysPerYear: 210},
		CommuteAdjustment: -1_000_000,
	}

	b, err := buildTaxBase(in, 0, config.DefaultRates())
	if err != nil {
		t.Fatal(err)
	}
	if b.commuteDeduction != 0 {
		t.Fatalf("commuteDeduction = %v, want 0", b.commuteDeduction)
	}
}

func TestSpouseBreakdown_BracketMath(t *testing.T) {
	rates := config.DefaultRates()

	b, err := buildTaxBase(model.SpouseInput{Name: "A", MonthlySalary: 35_000}, 0, rates)
	if err != nil {
		t.Fatal(err)
	}

	got := spouseBreakdown(b, 0, 0, rates)

	// taxable base: 386,400 post-AM income minus 42,000 employment
	// deduction and the 48,000 personal allowance.
	if !approxEqual(got.TaxableBase, 296_400) {
		t.Fatalf("TaxableBase = %v, want 296400", got.TaxableBase)
	}
	if !approxEqual(got.BottomTax, 296_400*0.1209) {
		t.Fatalf("BottomTax = %v, want %v", got.BottomTax, 296_400*0.1209)
	}
	if !approxEqual(got.MunicipalTax, 296_400*0.245) {
		t.Fatalf("MunicipalTax = %v, want %v", got.MunicipalTax, 296_400*0.245)
	}
	if !approxEqual(got.ChurchTax, 296_400*0.007) {
		t.Fatalf("ChurchTax = %v, want %v", got.ChurchTax, 296_400*0.007)
	}
	if got.TopTax != 0 {
		t.Fatalf("TopTax = %v, want 0 below threshold", got.TopTax)
	}

	wantTotal := RoundDKK(296_400 * (0.1209 + 0.245 + 0.007))
	if !approxEqual(got.TotalTax, wantTotal) {
		t.Fatalf("TotalTax = %v, want %v", got.TotalTax, wantTotal)
	}
	wantNet := RoundDKK(420_000 - 33_600 - wantTotal)
	if !approxEqual(got.AnnualNet, wantNet) {
		t.Fatalf("AnnualNet = %v, want %v", got.AnnualNet, wantNet)
	}
	if !approxEqual(got.MonthlyNet, RoundDKK(wantNet/12)) {
		t.Fatalf("MonthlyNet = %v, want %v", got.MonthlyNet, RoundDKK(wantNet/12))
	}
}

func TestSpouseBreakdown_TopTaxAboveThreshold(t *testing.T) {
	rates := config.DefaultRates()

	// 720k salary: 662,400 after AM, 44,000 above the threshold.
	b, err := buildTaxBase(model.SpouseInput{MonthlySalary: 60_000}, 0, rates)
	if err != nil {
		t.Fatal(err)
	}

	got := spouseBreakdown(b, 0, 0, rates)
	if !approxEqual(got.TopTax, 44_000*0.15) {
		t.Fatalf("TopTax = %v, want %v", got.TopTax, 44_000*0.15)
	}
}

func TestSpouseBreakdown_SharedAllowanceRaisesEffective(t *testing.T) {
	rates := config.DefaultRates()

	b, err := buildTaxBase(model.SpouseInput{MonthlySalary: 50_000}, 0, rates)
	if err != nil {
		t.Fatal(err)
	}

	without := spouseBreakdown(b, 0, 0, rates)
	with := spouseBreakdown(b, rates.PersonalAllowance, 0, rates)

	if !approxEqual(with.EffectiveAllowance, 2*rates.PersonalAllowance) {
		t.Fatalf("EffectiveAllowance = %v, want %v", with.EffectiveAllowance, 2*rates.PersonalAllowance)
	}
	if with.TotalTax >= without.TotalTax {
		t.Fatalf("shared allowance did not lower tax: %v >= %v", with.TotalTax, without.TotalTax)
	}
	// The extra allowance shields income from bottom, municipal and
	// church tax but not from top tax.
	wantSaving := RoundDKK(rates.PersonalAllowance * (rates.BottomRate + rates.MunicipalRate + rates.ChurchRate))
	if !approxEqual(RoundDKK(without.TotalTax-with.TotalTax), wantSaving) {
		t.Fatalf("tax saving = %v, want %v", without.TotalTax-with.TotalTax, wantSaving)
	}
}

func TestSpouseBreakdown_TaxFreeTransfersBypassTax(t *testing.T) {
	rates := config.DefaultRates()

	base := model.SpouseInput{MonthlySalary: 30_000}
	withTransfers := base
	withTransfers.MonthlyGiftsTaxFree = 2_000

	b1, err := buildTaxBase(base, 0, rates)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := buildTaxBase(withTransfers, 0, rates)
	if err != nil {
		t.Fatal(err)
	}

	r1 := spouseBreakdown(b1, 0, 0, rates)
	r2 := spouseBreakdown(b2, 0, 0, rates)

	if !approxEqual(r2.TotalTax, r1.TotalTax) {
		t.Fatalf("tax changed with tax-free income: %v vs %v", r2.TotalTax, r1.TotalTax)
	}
	if !approxEqual(r2.AnnualNet-r1.AnnualNet, 24_000) {
		t.Fatalf("net delta = %v, want 24000", r2.AnnualNet-r1.AnnualNet)
	}
}
