// Package budget implements the household tax and budget calculators:
// commuter deduction, loan and housing costs, spousal allowance sharing,
// bracket tax, and the household rollup. Every function is pure; the same
// inputs always produce the same result.
package budget

import "math"

// RoundDKK rounds to the øre, half away from zero. Rounding happens at the
// result boundary only; intermediate sums keep full precision.
func RoundDKK(v float64) float64 {
	return math.Round(v*100) / 100
}
