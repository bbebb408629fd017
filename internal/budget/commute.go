package budget

import (
	"fmt"

	"dkbudget/internal/config"
	"dkbudget/internal/model"
)

// Commute computes the annual commuter deduction (befordringsfradrag) for
// one commute. The thresholds apply to the daily round trip: the first
// rates.CommuteLowKM km are not deductible, km up to rates.CommuteHighKM
// earn the zone-1 rate, and km beyond that the zone-2 rate.
//
// Negative inputs are rejected rather than clamped.
func Commute(in model.CommuteInput, rates config.TaxRates) (model.CommuteBreakdown, error) {
	if in.DistanceKM < 0 {
		return model.CommuteBreakdown{}, fmt.Errorf("commute distance must not be negative (got %v)", in.DistanceKM)
	}
	if in.DaysPerYear < 0 {
		return model.CommuteBreakdown{}, fmt.Errorf("commute days must not be negative (got %d)", in.DaysPerYear)
	}

	if in.DistanceKM == 0 || in.DaysPerYear == 0 {
		return model.CommuteBreakdown{}, nil
	}

	roundTrip := in.DistanceKM * 2
	deductible := roundTrip - rates.CommuteLowKM
	if deductible <= 0 {
		return model.CommuteBreakdown{}, nil
	}

	zone1Cap := rates.CommuteHighKM - rates.CommuteLowKM
	zone1 := deductible
	if zone1 > zone1Cap {
		zone1 = zone1Cap
	}
	zone2 := deductible - zone1

	days := float64(in.DaysPerYear)
	out := model.CommuteBreakdown{
		Zone1KMPerDay: zone1,
		Zone2KMPerDay: zone2,
		Zone1Annual:   RoundDKK(zone1 * rates.CommuteZone1Rate * days),
		Zone2Annual:   RoundDKK(zone2 * rates.CommuteZone2Rate * days),
	}
	out.Total = RoundDKK((zone1*rates.CommuteZone1Rate + zone2*rates.CommuteZone2Rate) * days)
	return out, nil
}
