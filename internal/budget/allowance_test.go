package budget

import "testing"

func TestAllocateAllowance_FullTransfer(t *testing.T) {
	// Spouse 1 has no taxable income; the whole allowance moves to
	// spouse 2, who ends up covered by both.
	a := allocateAllowance([2]float64{0, 600_000}, 50_000)

	if a.extra[1] != 50_000 {
		t.Fatalf("extra[1] = %v, want 50000", a.extra[1])
	}
	if a.extra[0] != 0 {
		t.Fatalf("extra[0] = %v, want 0", a.extra[0])
	}
	if a.unused[0] != 50_000 {
		t.Fatalf("unused[0] = %v, want 50000", a.unused[0])
	}
}

func TestAllocateAllowance_PartialTransfer(t *testing.T) {
	// Spouse 1 uses 30k of the 48k allowance; 18k is transferable but
	// spouse 2 only needs 10k beyond their own allowance.
	a := allocateAllowance([2]float64{30_000, 58_000}, 48_000)

	if a.unused[0] != 18_000 {
		t.Fatalf("unused[0] = %v, want 18000", a.unused[0])
	}
	if a.need[1] != 10_000 {
		t.Fatalf("need[1] = %v, want 10000", a.need[1])
	}
	if a.extra[1] != 10_000 {
		t.Fatalf("extra[1] = %v, want 10000", a.extra[1])
	}
}

func TestAllocateAllowance_NoTransferWhenBothNeedOwn(t *testing.T) {
	a := allocateAllowance([2]float64{300_000, 250_000}, 48_000)

	if a.extra[0] != 0 || a.extra[1] != 0 {
		t.Fatalf("extras = %v/%v, want 0/0", a.extra[0], a.extra[1])
	}
	if a.unused[0] != 0 || a.unused[1] != 0 {
		t.Fatalf("unused = %v/%v, want 0/0", a.unused[0], a.unused[1])
	}
}

func TestAllocateAllowance_HouseholdCapInvariant(t *testing.T) {
	// Allowance actually used across the household never exceeds two
	// full allowances, regardless of the income mix.
	const allowance = 48_000.0
	cases := [][2]float64{
		{0, 0},
		{0, 1_000_000},
		{20_000, 20_000},
		{48_000, 48_000},
		{10_000, 500_000},
		{500_000, 10_000},
	}
	for _, taxable := range cases {
		a := allocateAllowance(taxable, allowance)
		var used float64
		for i, ti := range taxable {
			own := min(allowance, ti)
			used += own + a.extra[i]
		}
		if used > 2*allowance+0.001 {
			t.Fatalf("taxable %v: household allowance used %v exceeds %v", taxable, used, 2*allowance)
		}
	}
}
