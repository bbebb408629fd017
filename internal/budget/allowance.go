package budget

// allowanceAllocation is the outcome of sharing the personal allowance
// between the two spouses.
type allowanceAllocation struct {
	// extra is the allowance each spouse receives from the partner.
	extra [2]float64
	// unused is what each spouse has left after own use, before transfer.
	unused [2]float64
	// need is each spouse's taxable income beyond the own allowance.
	need [2]float64
}

// allocateAllowance shares the personal allowance between spouses. A spouse
// who cannot use the full allowance transfers the unused part to the
// partner, capped by what the partner can absorb. The household never uses
// more than two full allowances.
func allocateAllowance(taxableAfterOther [2]float64, allowance float64) allowanceAllocation {
	var a allowanceAllocation
	for i, taxable := range taxableAfterOther {
		used := allowance
		if taxable < used {
			used = taxable
		}
		if used < 0 {
			used = 0
		}
		a.unused[i] = allowance - used
		need := taxable - allowance
		if need < 0 {
			need = 0
		}
		a.need[i] = need
	}

	a.extra[0] = min(a.need[0], a.unused[1])
	a.extra[1] = min(a.need[1], a.unused[0])
	return a
}
