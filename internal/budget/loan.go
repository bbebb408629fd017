package budget

import (
	"math"

	"dkbudget/internal/model"
)

// annuityPayment returns the fixed monthly payment for a loan. A zero rate
// degrades to straight amortization; a zero principal or term costs nothing.
func annuityPayment(principal, annualRatePct float64, months int) float64 {
	if principal <= 0 || months <= 0 {
		return 0
	}
	monthlyRate := annualRatePct / 100 / 12
	if monthlyRate == 0 {
		return principal / float64(months)
	}
	factor := math.Pow(1+monthlyRate, float64(months))
	return principal * monthlyRate * factor / (factor - 1)
}

// HousingCosts derives the monthly housing costs and the annual interest
// expense from a purchase scenario. The interest estimate is split between
// the spouses by the configured fraction; the two shares always sum to the
// estimate, any rounding remainder landing on spouse 2.
func HousingCosts(in model.HousingInput) (model.HousingCost, error) {
	if err := in.Validate(); err != nil {
		return model.HousingCost{}, err
	}

	loan := in.LoanAmount()
	payment := annuityPayment(loan, in.AnnualRatePct, in.TermYears*12)

	out := model.HousingCost{
		LoanAmount:         RoundDKK(loan),
		MonthlyPayment:     RoundDKK(payment),
		PropertyTaxMonthly: RoundDKK(in.PropertyTaxYearly / 12),
		MaintenanceMonthly: RoundDKK(in.PurchasePrice * in.MaintenancePct / 100 / 12),
		AnnualInterest:     RoundDKK(loan * in.AnnualRatePct / 100),
	}
	out.MonthlyTotal = RoundDKK(out.MonthlyPayment + out.PropertyTaxMonthly + out.MaintenanceMonthly)

	out.InterestShares[0] = RoundDKK(out.AnnualInterest * in.InterestSplit)
	out.InterestShares[1] = RoundDKK(out.AnnualInterest - out.InterestShares[0])

	return out, nil
}

// CarCosts derives the monthly car costs from a purchase scenario.
func CarCosts(in model.CarInput) (model.CarCost, error) {
	if err := in.Validate(); err != nil {
		return model.CarCost{}, err
	}

	loan := in.LoanAmount()
	payment := annuityPayment(loan, in.AnnualRatePct, in.TermYears*12)

	var fuel float64
	if in.KMPerUnit > 0 {
		fuel = in.KMPerYear / 12 / in.KMPerUnit * in.UnitPrice
	}

	out := model.CarCost{
		LoanAmount:       RoundDKK(loan),
		MonthlyPayment:   RoundDKK(payment),
		FuelMonthly:      RoundDKK(fuel),
		InsuranceMonthly: RoundDKK(in.InsuranceYear / 12),
		ServiceMonthly:   RoundDKK(in.ServiceYear / 12),
	}
	out.MonthlyTotal = RoundDKK(out.MonthlyPayment + out.FuelMonthly + out.InsuranceMonthly + out.ServiceMonthly)

	return out, nil
}
