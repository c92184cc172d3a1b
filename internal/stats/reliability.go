package stats

import "math"

// FlightInput is the slice of a flight record the reliability math needs.
// Callers are expected to have already filtered to the desired deployment
// scope and date range.
type FlightInput struct {
	Status           string
	ResponsibleParty string
	ReasonForDelay   string
}

// ReasonLookup resolves a delay/cancellation reason to a responsible party
// name. Returns "" when the reason is not in the lookup table.
type ReasonLookup func(reason string) string

// FlightMetrics is the computed reliability summary for a flight set.
type FlightMetrics struct {
	MissionReliability float64        `json:"mission_reliability"`
	TaskingRating      float64        `json:"tasking_rating"`
	FlightsTo95MRR     int            `json:"flights_to_95_mrr"`
	ByStatus           map[string]int `json:"by_status"`

	// Raw counters, exposed for reporting views that show the fraction
	// behind the percentage.
	Denominator      int `json:"denominator"`
	MRRNumerator     int `json:"mrr_numerator"`
	TaskingNumerator int `json:"tasking_numerator"`
}

// ReliabilityCalculator computes mission reliability and tasking rates.
//
// OperatorParty is the responsible-party value that marks a cancellation as
// self-inflicted. Cancellations attributed to anyone else (weather, customer,
// another agency) are excluded from the denominator entirely, as if never
// scheduled; cancellations attributed to the operator still count against the
// rate. The party name is configuration, not a constant, because the exclusion
// rule is generic even though the attribution scheme is site-specific.
type ReliabilityCalculator struct {
	OperatorParty string
}

// NewReliabilityCalculator returns a calculator attributing fault to the
// given operator party name.
func NewReliabilityCalculator(operatorParty string) *ReliabilityCalculator {
	return &ReliabilityCalculator{OperatorParty: operatorParty}
}

type flightClass struct {
	status        FlightStatus
	operatorFault bool
}

func (c *ReliabilityCalculator) classify(f FlightInput, lookup ReasonLookup) flightClass {
	party := f.ResponsibleParty
	if party == "" && f.ReasonForDelay != "" && lookup != nil {
		party = lookup(f.ReasonForDelay)
	}

	return flightClass{
		status:        ParseFlightStatus(f.Status),
		operatorFault: party != "" && party == c.OperatorParty,
	}
}

// ComputeFlightMetrics folds a flight set into a FlightMetrics summary.
//
// Denominator rule: a flight is chargeable unless it is a cancellation NOT
// attributed to the operator. MRR numerator: Complete or Delay. Tasking
// numerator: Complete, Delay, or Alert-No-Launch. Unknown statuses land in no
// breakdown bucket and no numerator, but stay in the denominator.
//
// An empty (or fully excluded) flight set reports 100 for both rates.
func (c *ReliabilityCalculator) ComputeFlightMetrics(flights []FlightInput, lookup ReasonLookup) FlightMetrics {
	m := FlightMetrics{ByStatus: make(map[string]int)}

	for _, f := range flights {
		fc := c.classify(f, lookup)

		isCNX := fc.status == FlightStatusCNX
		if isCNX && !fc.operatorFault {
			// Externally caused cancellation: treated as never scheduled.
			m.ByStatus[fc.status.Label()]++
			continue
		}

		m.Denominator++

		switch fc.status {
		case FlightStatusComplete, FlightStatusDelay:
			m.MRRNumerator++
			m.TaskingNumerator++
		case FlightStatusAlertNoLaunch:
			m.TaskingNumerator++
		}

		if label := bucketLabel(fc, c.OperatorParty); label != "" {
			m.ByStatus[label]++
		}
	}

	m.MissionReliability = rate(m.MRRNumerator, m.Denominator)
	m.TaskingRating = rate(m.TaskingNumerator, m.Denominator)
	m.FlightsTo95MRR = flightsToTarget(m.MRRNumerator, m.Denominator, 0.95)

	return m
}

// bucketLabel picks the breakdown bucket for a chargeable flight. Operator-
// fault cancellations get a distinct label so the breakdown separates
// self-inflicted cancellations from external ones. Unknown statuses are not
// bucketed.
func bucketLabel(fc flightClass, operatorParty string) string {
	if fc.status == FlightStatusCNX && fc.operatorFault {
		return "CNX — " + operatorParty
	}
	return fc.status.Label()
}

// rate returns numerator/denominator as a 0–100 percentage. An empty
// denominator means nothing was chargeable, which reports as perfect.
func rate(numerator, denominator int) float64 {
	if denominator == 0 {
		return 100
	}
	return float64(numerator) / float64(denominator) * 100
}

// flightsToTarget returns the smallest non-negative x such that
// (numerator+x)/(denominator+x) >= target, assuming every hypothetical
// additional flight is chargeable and fully successful. Best-case projection,
// not a guarantee.
func flightsToTarget(numerator, denominator int, target float64) int {
	if denominator == 0 {
		return 0
	}
	if float64(numerator)/float64(denominator) >= target {
		return 0
	}
	x := math.Ceil((target*float64(denominator) - float64(numerator)) / (1 - target))
	if x < 0 {
		return 0
	}
	return int(x)
}
