package config

// TaxRates holds the tax-year parameters the calculators run on. Rate
// fields are fractions (0.245 = 24.5%), thresholds and allowances are
// annual DKK, commute distances are km per day.
type TaxRates struct {
	MunicipalRate float64
	ChurchRate    float64
	BottomRate    float64
	TopRate       float64
	AMRate        float64

	TopTaxThreshold   float64
	PersonalAllowance float64

	EmploymentDeductionRate float64
	EmploymentDeductionCap  float64

	// Commuter deduction: no deduction below LowKM round-trip per day,
	// Zone1Rate per km up to HighKM, Zone2Rate per km beyond.
	CommuteZone1Rate float64
	CommuteZone2Rate float64
	CommuteLowKM     float64
	CommuteHighKM    float64
}

// DefaultRates returns the built-in 2025 parameters for an average
// municipality with church membership.
func DefaultRates() TaxRates {
	return TaxRates{
		MunicipalRate: 0.245,
		ChurchRate:    0.007,
		BottomRate:    0.1209,
		TopRate:       0.15,
		AMRate:        0.08,

		TopTaxThreshold:   618_400,
		PersonalAllowance: 48_000,

		EmploymentDeductionRate: 0.10,
		EmploymentDeductionCap:  43_500,

		CommuteZone1Rate: 2.23,
		CommuteZone2Rate: 1.12,
		CommuteLowKM:     24,
		CommuteHighKM:    120,
	}
}

// RateOverrides holds user overrides for individual tax parameters.
// Pointer fields distinguish "not set" from an explicit zero, so a user can
// set church_rate = 0.0 to model no church membership.
type RateOverrides struct {
	MunicipalRate *float64 `toml:"municipal_rate,omitempty"`
	ChurchRate    *float64 `toml:"church_rate,omitempty"`
	BottomRate    *float64 `toml:"bottom_rate,omitempty"`
	TopRate       *float64 `toml:"top_rate,omitempty"`
	AMRate        *float64 `toml:"am_rate,omitempty"`

	TopTaxThreshold   *float64 `toml:"top_tax_threshold,omitempty"`
	PersonalAllowance *float64 `toml:"personal_allowance,omitempty"`

	EmploymentDeductionRate *float64 `toml:"employment_deduction_rate,omitempty"`
	EmploymentDeductionCap  *float64 `toml:"employment_deduction_cap,omitempty"`

	CommuteZone1Rate *float64 `toml:"commute_zone1_rate,omitempty"`
	CommuteZone2Rate *float64 `toml:"commute_zone2_rate,omitempty"`
	CommuteLowKM     *float64 `toml:"commute_low_km,omitempty"`
	CommuteHighKM    *float64 `toml:"commute_high_km,omitempty"`
}

// Apply returns base with every set override applied.
func (o RateOverrides) Apply(base TaxRates) TaxRates {
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}

	set(&base.MunicipalRate, o.MunicipalRate)
	set(&base.ChurchRate, o.ChurchRate)
	set(&base.BottomRate, o.BottomRate)
	set(&base.TopRate, o.TopRate)
	set(&base.AMRate, o.AMRate)
	set(&base.TopTaxThreshold, o.TopTaxThreshold)
	set(&base.PersonalAllowance, o.PersonalAllowance)
	set(&base.EmploymentDeductionRate, o.EmploymentDeductionRate)
	set(&base.EmploymentDeductionCap, o.EmploymentDeductionCap)
	set(&base.CommuteZone1Rate, o.CommuteZone1Rate)
	set(&base.CommuteZone2Rate, o.CommuteZone2Rate)
	set(&base.CommuteLowKM, o.CommuteLowKM)
	set(&base.CommuteHighKM, o.CommuteHighKM)

	return base
}

// EffectiveRates resolves the rates a command should compute with: the
// built-in defaults with the config file's overrides applied.
func EffectiveRates(cfg Config) TaxRates {
	return cfg.Rates.Apply(DefaultRates())
}
