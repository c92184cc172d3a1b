package stats

import (
	"math"
	"testing"
)

const operator = "Shield AI"

func calc() *ReliabilityCalculator {
	return NewReliabilityCalculator(operator)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeFlightMetrics_AllComplete(t *testing.T) {
	flights := []FlightInput{
		{Status: "Complete"},
		{Status: "Complete"},
		{Status: "Complete"},
	}

	m := calc().ComputeFlightMetrics(flights, nil)

	if !almostEqual(m.MissionReliability, 100) {
		t.Errorf("Expected MRR 100, got %v", m.MissionReliability)
	}
	if !almostEqual(m.TaskingRating, 100) {
		t.Errorf("Expected tasking 100, got %v", m.TaskingRating)
	}
	if m.FlightsTo95MRR != 0 {
		t.Errorf("Expected 0 flights to 95%%, got %d", m.FlightsTo95MRR)
	}
	if m.ByStatus["Complete"] != 3 {
		t.Errorf("Expected 3 Complete in breakdown, got %d", m.ByStatus["Complete"])
	}
}

func TestComputeFlightMetrics_EmptySet(t *testing.T) {
	m := calc().ComputeFlightMetrics(nil, nil)

	if !almostEqual(m.MissionReliability, 100) {
		t.Errorf("Expected MRR 100 for empty set, got %v", m.MissionReliability)
	}
	if !almostEqual(m.TaskingRating, 100) {
		t.Errorf("Expected tasking 100 for empty set, got %v", m.TaskingRating)
	}
	if len(m.ByStatus) != 0 {
		t.Errorf("Expected empty breakdown, got %v", m.ByStatus)
	}
}

func TestComputeFlightMetrics_ExternalCancellationsExcluded(t *testing.T) {
	flights := []FlightInput{
		{Status: "CNX", ResponsibleParty: "Weather"},
		{Status: "CNX", ResponsibleParty: "Customer"},
		{Status: "Cancelled", ResponsibleParty: "Other Agency"},
	}

	m := calc().ComputeFlightMetrics(flights, nil)

	if m.Denominator != 0 {
		t.Errorf("Expected denominator 0, got %d", m.Denominator)
	}
	if !almostEqual(m.MissionReliability, 100) {
		t.Errorf("Expected MRR 100 when every flight is excluded, got %v", m.MissionReliability)
	}
	if m.ByStatus["CNX"] != 3 {
		t.Errorf("Expected 3 CNX in breakdown, got %d", m.ByStatus["CNX"])
	}
}

func TestComputeFlightMetrics_OperatorCancellationsCharged(t *testing.T) {
	flights := []FlightInput{
		{Status: "CNX", ResponsibleParty: operator},
		{Status: "CNX", ResponsibleParty: operator},
	}

	m := calc().ComputeFlightMetrics(flights, nil)

	if m.Denominator != 2 {
		t.Errorf("Expected denominator 2, got %d", m.Denominator)
	}
	if !almostEqual(m.MissionReliability, 0) {
		t.Errorf("Expected MRR 0, got %v", m.MissionReliability)
	}
	if m.ByStatus["CNX — "+operator] != 2 {
		t.Errorf("Expected operator CNX bucket of 2, got %v", m.ByStatus)
	}
	if m.ByStatus["CNX"] != 0 {
		t.Errorf("Operator cancellations must not land in the plain CNX bucket: %v", m.ByStatus)
	}
}

func TestComputeFlightMetrics_MixedScenario(t *testing.T) {
	flights := []FlightInput{
		{Status: "Complete"},
		{Status: "Delay"},
		{Status: "CNX", ResponsibleParty: operator},
		{Status: "Alert"},
	}

	m := calc().ComputeFlightMetrics(flights, nil)

	if m.Denominator != 4 {
		t.Errorf("Expected denominator 4, got %d", m.Denominator)
	}
	if m.MRRNumerator != 2 {
		t.Errorf("Expected MRR numerator 2, got %d", m.MRRNumerator)
	}
	if !almostEqual(m.MissionReliability, 50) {
		t.Errorf("Expected MRR 50, got %v", m.MissionReliability)
	}
	if m.TaskingNumerator != 3 {
		t.Errorf("Expected tasking numerator 3, got %d", m.TaskingNumerator)
	}
	if !almostEqual(m.TaskingRating, 75) {
		t.Errorf("Expected tasking 75, got %v", m.TaskingRating)
	}
	if m.ByStatus["Alert-No-Launch"] != 1 {
		t.Errorf("Legacy Alert must bucket as Alert-No-Launch: %v", m.ByStatus)
	}
}

func TestComputeFlightMetrics_ReasonLookupFallback(t *testing.T) {
	lookup := func(reason string) string {
		if reason == "GCS failure" {
			return operator
		}
		return ""
	}

	flights := []FlightInput{
		{Status: "CNX", ReasonForDelay: "GCS failure"},
		{Status: "CNX", ReasonForDelay: "Thunderstorms"},
	}

	m := calc().ComputeFlightMetrics(flights, lookup)

	// Only the operator-attributed cancellation is chargeable.
	if m.Denominator != 1 {
		t.Errorf("Expected denominator 1, got %d", m.Denominator)
	}
	if !almostEqual(m.MissionReliability, 0) {
		t.Errorf("Expected MRR 0, got %v", m.MissionReliability)
	}
}

func TestComputeFlightMetrics_UnknownStatusInDenominatorOnly(t *testing.T) {
	flights := []FlightInput{
		{Status: "Complete"},
		{Status: ""},
		{Status: "garbage"},
	}

	m := calc().ComputeFlightMetrics(flights, nil)

	if m.Denominator != 3 {
		t.Errorf("Expected denominator 3, got %d", m.Denominator)
	}
	if m.MRRNumerator != 1 {
		t.Errorf("Expected MRR numerator 1, got %d", m.MRRNumerator)
	}
	if len(m.ByStatus) != 1 || m.ByStatus["Complete"] != 1 {
		t.Errorf("Unknown statuses must not be bucketed: %v", m.ByStatus)
	}
}

func TestFlightsTo95MRR_Projection(t *testing.T) {
	tests := []struct {
		name        string
		numerator   int
		denominator int
		want        int
	}{
		{"already above target", 19, 20, 0},
		{"exactly at target", 95, 100, 0},
		{"half reliable", 1, 2, 18},
		{"zero of one", 0, 1, 19},
		{"empty", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := flightsToTarget(tt.numerator, tt.denominator, 0.95)
			if got != tt.want {
				t.Errorf("flightsToTarget(%d, %d) = %d, want %d",
					tt.numerator, tt.denominator, got, tt.want)
			}
		})
	}
}

func TestFlightsTo95MRR_MonotoneUnderSuccess(t *testing.T) {
	flights := []FlightInput{
		{Status: "CNX", ResponsibleParty: operator},
		{Status: "Complete"},
		{Status: "Delay"},
	}

	prev := calc().ComputeFlightMetrics(flights, nil).FlightsTo95MRR
	for i := 0; i < 50; i++ {
		flights = append(flights, FlightInput{Status: "Complete"})
		cur := calc().ComputeFlightMetrics(flights, nil).FlightsTo95MRR
		if cur > prev {
			t.Fatalf("Projection increased from %d to %d after adding a Complete flight", prev, cur)
		}
		prev = cur
	}
}

func TestSumFlightTotals_NonFiniteHoursIgnored(t *testing.T) {
	totals := SumFlightTotals([]FlightTotalsInput{
		{Hours: 2.5, TOIs: 1},
		{Hours: math.NaN(), Contraband: 3},
		{Hours: math.Inf(1), Detainees: 2},
		{Hours: 1.5},
	})

	if !almostEqual(totals.Hours, 4.0) {
		t.Errorf("Expected 4.0 hours, got %v", totals.Hours)
	}
	if totals.TOIs != 1 || totals.Contraband != 3 || totals.Detainees != 2 {
		t.Errorf("Unexpected totals: %+v", totals)
	}
}
