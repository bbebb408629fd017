package model

// SpouseBreakdown holds the computed annual figures for one person.
// Amounts are rounded to the øre.
type SpouseBreakdown struct {
	Name string

	EmploymentIncome float64
	BIncome          float64
	TaxablePublic    float64
	TaxFreeTransfers float64

	AMContribution      float64
	EmploymentDeduction float64
	CommuteDeduction    float64
	MortgageInterest    float64
	HandymanDeduction   float64
	UnionFee            float64
	OtherDeductions     float64
	// NonPersonalDeductions is the sum of the deduction lines above
	// except AM, which is withheld before the taxable base is formed.
	NonPersonalDeductions float64

	PersonalAllowance  float64
	SharedAllowance    float64 // received from the partner
	EffectiveAllowance float64
	AllowanceUnused    float64 // left over after own use and transfer

	TaxableBase  float64
	BottomTax    float64
	MunicipalTax float64
	ChurchTax    float64
	TopTax       float64
	TotalTax     float64

	AnnualNet        float64
	MonthlyNet       float64
	EffectiveTaxRate float64
}

// HousingCost holds the derived monthly housing costs and the interest
// expense allocation.
type HousingCost struct {
	LoanAmount         float64
	MonthlyPayment     float64
	PropertyTaxMonthly float64
	MaintenanceMonthly float64
	MonthlyTotal       float64

	AnnualInterest float64
	// InterestShares always sums to AnnualInterest.
	InterestShares [2]float64
}

// CarCost holds the derived monthly car costs.
type CarCost struct {
	LoanAmount       float64
	MonthlyPayment   float64
	FuelMonthly      float64
	InsuranceMonthly float64
	ServiceMonthly   float64
	MonthlyTotal     float64
}

// CommuteBreakdown splits a commuter deduction across the two rate zones.
type CommuteBreakdown struct {
	// Deductible km per working day in each zone.
	Zone1KMPerDay float64
	Zone2KMPerDay float64
	Zone1Annual   float64
	Zone2Annual   float64
	Total         float64
}

// HouseholdResult is the full output record for one computation.
type HouseholdResult struct {
	Spouses [2]SpouseBreakdown
	Housing HousingCost
	Car     CarCost

	ChildBenefitMonthly float64
	OtherTaxFreeMonthly float64
	CombinedMonthlyNet  float64

	Expenses             []ExpenseItem
	TotalExpensesMonthly float64
	// DisposableMonthly may be negative; it is reported, not clamped.
	DisposableMonthly float64
}
