package budget

import (
	"fmt"

	"dkbudget/internal/config"
	"dkbudget/internal/model"
)

// taxBase holds the annualised income components and deductions for one
// spouse, before the allowance is shared.
type taxBase struct {
	in model.SpouseInput

	employmentIncome float64 // A-income: salary + honorarium
	bIncome          float64
	taxablePublic    float64
	taxFreeTransfers float64

	amContribution float64
	incomeAfterAM  float64

	employmentDeduction float64
	commuteDeduction    float64
	mortgageInterest    float64
	nonPersonal         float64

	baseIncome        float64 // post-AM A-income + B-income + taxable public
	taxableAfterOther float64 // base income minus non-personal deductions
}

// buildTaxBase annualises one spouse's inputs and applies every deduction
// except the personal allowance, which depends on the partner.
// mortgageShare is this spouse's computed share of the housing interest;
// the spouse's override wins when set.
func buildTaxBase(in model.SpouseInput, mortgageShare float64, rates config.TaxRates) (taxBase, error) {
	commute, err := Commute(in.Commute, rates)
	if err != nil {
		return taxBase{}, fmt.Errorf("%s: %w", in.Name, err)
	}
	commuteDeduction := commute.Total + in.CommuteAdjustment
	if commuteDeduction < 0 {
		commuteDeduction = 0
	}

	if in.MortgageInterestOverride != nil {
		mortgageShare = *in.MortgageInterestOverride
	}

	b := taxBase{
		in:               in,
		employmentIncome: 12 * (in.MonthlySalary + in.MonthlyHonorarium),
		bIncome:          12 * in.MonthlyBIncome,
		taxablePublic:    12 * in.MonthlyPublicTaxable,
		taxFreeTransfers: 12 * (in.MonthlyPublicTaxFree + in.MonthlyGiftsTaxFree),
		commuteDeduction: commuteDeduction,
		mortgageInterest: mortgageShare,
	}

	b.amContribution = b.employmentIncome * rates.AMRate
	b.incomeAfterAM = b.employmentIncome - b.amContribution

	b.employmentDeduction = min(b.employmentIncome*rates.EmploymentDeductionRate, rates.EmploymentDeductionCap)
	b.nonPersonal = b.employmentDeduction +
		b.mortgageInterest +
		in.AnnualHandymanDeduction +
		in.AnnualUnionFee +
		b.commuteDeduction +
		in.AnnualOtherDeductions

	b.baseIncome = b.incomeAfterAM + b.bIncome + b.taxablePublic
	b.taxableAfterOther = max(0, b.baseIncome-b.nonPersonal)

	return b, nil
}

// spouseBreakdown applies the allowance and the tax brackets to a prepared
// base. sharedAllowance is the amount received from the partner.
func spouseBreakdown(b taxBase, sharedAllowance, allowanceUnused float64, rates config.TaxRates) model.SpouseBreakdown {
	effectiveAllowance := rates.PersonalAllowance + sharedAllowance
	deductionTotal := effectiveAllowance + b.nonPersonal

	taxableBase := max(0, b.baseIncome-deductionTotal)

	bottomTax := taxableBase * rates.BottomRate
	municipalTax := taxableBase * rates.MunicipalRate
	churchTax := taxableBase * rates.ChurchRate

	// Top tax is assessed on income after AM, before the ordinary
	// deductions.
	topTax := max(0, b.incomeAfterAM+b.bIncome-rates.TopTaxThreshold) * rates.TopRate

	totalTax := bottomTax + municipalTax + churchTax + topTax

	taxableGross := b.employmentIncome + b.bIncome + b.taxablePublic
	annualNet := taxableGross - b.amContribution - totalTax + b.taxFreeTransfers

	effectiveRate := totalTax / max(1, taxableGross)

	return model.SpouseBreakdown{
		Name: b.in.Name,

		EmploymentIncome: RoundDKK(b.employmentIncome),
		BIncome:          RoundDKK(b.bIncome),
		TaxablePublic:    RoundDKK(b.taxablePublic),
		TaxFreeTransfers: RoundDKK(b.taxFreeTransfers),

		AMContribution:        RoundDKK(b.amContribution),
		EmploymentDeduction:   RoundDKK(b.employmentDeduction),
		CommuteDeduction:      RoundDKK(b.commuteDeduction),
		MortgageInterest:      RoundDKK(b.mortgageInterest),
		HandymanDeduction:     RoundDKK(b.in.AnnualHandymanDeduction),
		UnionFee:              RoundDKK(b.in.AnnualUnionFee),
		OtherDeductions:       RoundDKK(b.in.AnnualOtherDeductions),
		NonPersonalDeductions: RoundDKK(b.nonPersonal),

		PersonalAllowance:  rates.PersonalAllowance,
		SharedAllowance:    RoundDKK(sharedAllowance),
		EffectiveAllowance: RoundDKK(effectiveAllowance),
		AllowanceUnused:    RoundDKK(allowanceUnused),

		TaxableBase:  RoundDKK(taxableBase),
		BottomTax:    RoundDKK(bottomTax),
		MunicipalTax: RoundDKK(municipalTax),
		ChurchTax:    RoundDKK(churchTax),
		TopTax:       RoundDKK(topTax),
		TotalTax:     RoundDKK(totalTax),

		AnnualNet:        RoundDKK(annualNet),
		MonthlyNet:       RoundDKK(annualNet / 12),
		EffectiveTaxRate: RoundDKK(effectiveRate),
	}
}
