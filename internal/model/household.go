// Package model defines the household input and result records the
// calculators operate on.
package model

import (
	"errors"
	"fmt"
)

// SpouseInput holds the normalized income and deduction inputs for one person.
// Monthly amounts are DKK per month, annual amounts DKK per year.
type SpouseInput struct {
	Name                 string  `toml:"name"`
	MonthlySalary        float64 `toml:"monthly_salary"`
	MonthlyHonorarium    float64 `toml:"monthly_honorarium"`
	MonthlyBIncome       float64 `toml:"monthly_b_income"`
	MonthlyPublicTaxable float64 `toml:"monthly_public_taxable"`
	MonthlyPublicTaxFree float64 `toml:"monthly_public_tax_free"`
	MonthlyGiftsTaxFree  float64 `toml:"monthly_gifts_tax_free"`

	AnnualHandymanDeduction float64 `toml:"annual_handyman_deduction"`
	AnnualUnionFee          float64 `toml:"annual_union_fee"`
	AnnualOtherDeductions   float64 `toml:"annual_other_deductions"`

	Commute CommuteInput `toml:"commute"`
	// CommuteAdjustment is added to the computed commuter deduction,
	// e.g. for commuting from a second address. May be negative; the
	// combined deduction never drops below zero.
	CommuteAdjustment float64 `toml:"commute_adjustment"`

	// MortgageInterestOverride replaces this person's computed share of
	// the housing interest expense when set.
	MortgageInterestOverride *float64 `toml:"mortgage_interest_override,omitempty"`
}

// CommuteInput describes one person's commute.
type CommuteInput struct {
	// DistanceKM is the one-way distance home to work.
	DistanceKM  float64 `toml:"distance_km"`
	DaysPerYear int     `toml:"days_per_year"`
}

// HousingInput describes the house purchase scenario.
// Percent fields are percentages (3.5 = 3.5% per year).
type HousingInput struct {
	PurchasePrice      float64 `toml:"purchase_price"`
	DownPaymentPct     float64 `toml:"down_payment_pct"`
	AnnualRatePct      float64 `toml:"annual_rate_pct"`
	TermYears          int     `toml:"term_years"`
	PropertyTaxYearly  float64 `toml:"property_tax_yearly"`
	MaintenancePct     float64 `toml:"maintenance_pct"`
	// InterestSplit is the fraction of the interest expense assigned to
	// spouse 1; the remainder goes to spouse 2.
	InterestSplit float64 `toml:"interest_split"`
}

// LoanAmount returns the financed principal after the down payment.
func (h HousingInput) LoanAmount() float64 {
	loan := h.PurchasePrice * (1 - h.DownPaymentPct/100)
	if loan < 0 {
		return 0
	}
	return loan
}

// CarInput describes the car purchase and running-cost scenario.
type CarInput struct {
	Price          float64 `toml:"price"`
	DownPaymentPct float64 `toml:"down_payment_pct"`
	AnnualRatePct  float64 `toml:"annual_rate_pct"`
	TermYears      int     `toml:"term_years"`
	KMPerYear      float64 `toml:"km_per_year"`
	// KMPerUnit is km per liter of fuel or per kWh.
	KMPerUnit     float64 `toml:"km_per_unit"`
	UnitPrice     float64 `toml:"unit_price"`
	InsuranceYear float64 `toml:"insurance_yearly"`
	ServiceYear   float64 `toml:"service_yearly"`
}

// LoanAmount returns the financed principal after the down payment.
func (c CarInput) LoanAmount() float64 {
	loan := c.Price * (1 - c.DownPaymentPct/100)
	if loan < 0 {
		return 0
	}
	return loan
}

// ChildCounts holds the number of children per child-benefit age bracket.
type ChildCounts struct {
	Age0to2   int `toml:"age_0_2"`
	Age3to6   int `toml:"age_3_6"`
	Age7to14  int `toml:"age_7_14"`
	Age15to17 int `toml:"age_15_17"`
}

// ExpenseItem is one fixed monthly expense line.
type ExpenseItem struct {
	Label   string  `toml:"label"`
	Monthly float64 `toml:"monthly"`
}

// Household is the full input record for one computation.
type Household struct {
	Spouses  [2]SpouseInput `toml:"spouse"`
	Housing  HousingInput   `toml:"housing"`
	Car      CarInput       `toml:"car"`
	Children ChildCounts    `toml:"children"`
	// MonthlyTaxFreeExtra is tax-free household income outside the
	// per-person inputs, e.g. municipal subsidies.
	MonthlyTaxFreeExtra float64       `toml:"monthly_tax_free_extra"`
	Expenses            []ExpenseItem `toml:"expenses"`
}

var errNegative = errors.New("must not be negative")

func nonNegative(field string, v float64) error {
	if v < 0 {
		return fmt.Errorf("%s: %w (got %v)", field, errNegative, v)
	}
	return nil
}

// Validate rejects inputs the calculators cannot produce meaningful
// figures for. Amounts must be non-negative; the interest split must be a
// fraction. Invalid input fails here rather than surfacing as corrupted
// numbers downstream.
func (s SpouseInput) Validate() error {
	checks := []struct {
		field string
		value float64
	}{
		{"monthly_salary", s.MonthlySalary},
		{"monthly_honorarium", s.MonthlyHonorarium},
		{"monthly_b_income", s.MonthlyBIncome},
		{"monthly_public_taxable", s.MonthlyPublicTaxable},
		{"monthly_public_tax_free", s.MonthlyPublicTaxFree},
		{"monthly_gifts_tax_free", s.MonthlyGiftsTaxFree},
		{"annual_handyman_deduction", s.AnnualHandymanDeduction},
		{"annual_union_fee", s.AnnualUnionFee},
		{"annual_other_deductions", s.AnnualOtherDeductions},
		{"commute.distance_km", s.Commute.DistanceKM},
	}
	for _, c := range checks {
		if err := nonNegative(c.field, c.value); err != nil {
			return err
		}
	}
	if s.Commute.DaysPerYear < 0 {
		return fmt.Errorf("commute.days_per_year: %w (got %d)", errNegative, s.Commute.DaysPerYear)
	}
	if s.MortgageInterestOverride != nil {
		if err := nonNegative("mortgage_interest_override", *s.MortgageInterestOverride); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the housing scenario.
func (h HousingInput) Validate() error {
	checks := []struct {
		field string
		value float64
	}{
		{"purchase_price", h.PurchasePrice},
		{"annual_rate_pct", h.AnnualRatePct},
		{"property_tax_yearly", h.PropertyTaxYearly},
		{"maintenance_pct", h.MaintenancePct},
	}
	for _, c := range checks {
		if err := nonNegative(c.field, c.value); err != nil {
			return err
		}
	}
	if h.DownPaymentPct < 0 || h.DownPaymentPct > 100 {
		return fmt.Errorf("down_payment_pct: must be between 0 and 100 (got %v)", h.DownPaymentPct)
	}
	if h.TermYears < 0 {
		return fmt.Errorf("term_years: %w (got %d)", errNegative, h.TermYears)
	}
	if h.InterestSplit < 0 || h.InterestSplit > 1 {
		return fmt.Errorf("interest_split: must be a fraction between 0 and 1 (got %v)", h.InterestSplit)
	}
	return nil
}

// Validate checks the car scenario.
func (c CarInput) Validate() error {
	checks := []struct {
		field string
		value float64
	}{
		{"price", c.Price},
		{"annual_rate_pct", c.AnnualRatePct},
		{"km_per_year", c.KMPerYear},
		{"km_per_unit", c.KMPerUnit},
		{"unit_price", c.UnitPrice},
		{"insurance_yearly", c.InsuranceYear},
		{"service_yearly", c.ServiceYear},
	}
	for _, ch := range checks {
		if err := nonNegative(ch.field, ch.value); err != nil {
			return err
		}
	}
	if c.DownPaymentPct < 0 || c.DownPaymentPct > 100 {
		return fmt.Errorf("down_payment_pct: must be between 0 and 100 (got %v)", c.DownPaymentPct)
	}
	if c.TermYears < 0 {
		return fmt.Errorf("term_years: %w (got %d)", errNegative, c.TermYears)
	}
	return nil
}

// Validate checks the whole household record.
func (h Household) Validate() error {
	for i, s := range h.Spouses {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("spouse %d: %w", i+1, err)
		}
	}
	if err := h.Housing.Validate(); err != nil {
		return fmt.Errorf("housing: %w", err)
	}
	if err := h.Car.Validate(); err != nil {
		return fmt.Errorf("car: %w", err)
	}
	if h.Children.Age0to2 < 0 || h.Children.Age3to6 < 0 || h.Children.Age7to14 < 0 || h.Children.Age15to17 < 0 {
		return errors.New("children: counts must not be negative")
	}
	if err := nonNegative("monthly_tax_free_extra", h.MonthlyTaxFreeExtra); err != nil {
		return err
	}
	for _, e := range h.Expenses {
		if err := nonNegative(fmt.Sprintf("expense %q", e.Label), e.Monthly); err != nil {
			return err
		}
	}
	return nil
}
