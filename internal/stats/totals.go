package stats

import "math"

// FlightTotals are the simple summed counters reported alongside the
// reliability rates.
type FlightTotals struct {
	Hours      float64 `json:"hours"`
	TOIs       int     `json:"tois"`
	Contraband int     `json:"contraband"`
	Detainees  int     `json:"detainees"`
}

// FlightTotalsInput carries the numeric fields of one flight record.
type FlightTotalsInput struct {
	Hours      float64
	TOIs       int
	Contraband int
	Detainees  int
}

// SumFlightTotals folds the numeric fields of a flight set. Non-finite hours
// values (from malformed input) are treated as zero so a single bad record
// cannot poison the sum.
func SumFlightTotals(flights []FlightTotalsInput) FlightTotals {
	var t FlightTotals
	for _, f := range flights {
		if !math.IsNaN(f.Hours) && !math.IsInf(f.Hours, 0) {
			t.Hours += f.Hours
		}
		t.TOIs += f.TOIs
		t.Contraband += f.Contraband
		t.Detainees += f.Detainees
	}
	return t
}
