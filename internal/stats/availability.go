package stats

import (
	"sort"
	"strings"
	"time"
)

// EquipmentInput is one daily status snapshot from the equipment log. Logs
// are sparse: a record exists only for days the status was actually updated.
type EquipmentInput struct {
	Category     string
	Equipment    string
	SerialNumber string
	Status       string
	Date         time.Time
}

// IdentityKey uniquely identifies a physical item. Serial numbers are not
// assumed unique across categories, so the full tuple is the key.
type IdentityKey struct {
	Category     string
	Equipment    string
	SerialNumber string
}

// Key returns the normalized identity of the record.
func (e EquipmentInput) Key() IdentityKey {
	return IdentityKey{
		Category:     strings.ToLower(strings.TrimSpace(e.Category)),
		Equipment:    strings.TrimSpace(e.Equipment),
		SerialNumber: strings.TrimSpace(e.SerialNumber),
	}
}

// FleetState is the per-item capability latch: the most recent known status
// per identity key. Items with no records yet simply have no entry.
type FleetState map[IdentityKey]EquipmentStatus

// AvailabilityResult is the outcome of the day-by-day reconstruction.
type AvailabilityResult struct {
	Rating        float64 `json:"availability_rating"`
	TotalDays     int     `json:"total_days"`
	AvailableDays int     `json:"available_days"`

	// Undefined is set when there is no window start and no records at all,
	// so no availability can be computed. Rating is 0 in that case but the
	// flag distinguishes "no data" from "never available".
	Undefined bool `json:"undefined,omitempty"`

	// Truncated is set when the walk hit the configured window cap before
	// reaching the end date. A truncated result means the start date is
	// suspect and should be surfaced, not trusted.
	Truncated bool `json:"truncated,omitempty"`
}

// DefaultMaxWindowDays bounds the reconstruction walk. Ten years of daily
// iterations is far beyond any real deployment; hitting the cap indicates a
// corrupt or far-future start date.
const DefaultMaxWindowDays = 3650

// Reconstructor rebuilds continuous day-by-day fleet state from sparse
// status snapshots and scores each day against the availability predicate.
type Reconstructor struct {
	// MaxWindowDays caps the walk length. Zero means DefaultMaxWindowDays.
	MaxWindowDays int

	// Now supplies the right edge of the window. Defaults to time.Now;
	// injectable for deterministic tests.
	Now func() time.Time
}

// NewReconstructor returns a Reconstructor with the given walk cap.
func NewReconstructor(maxWindowDays int) *Reconstructor {
	return &Reconstructor{MaxWindowDays: maxWindowDays}
}

// SeedInitialState builds the pre-walk fleet state by backfilling each item's
// chronologically first status to the window start. Equipment whose first log
// entry lands days after the window opened is assumed to have been in that
// state all along, rather than reading as absent until its first entry.
func SeedInitialState(records []EquipmentInput) FleetState {
	sorted := sortByDate(records)

	state := make(FleetState)
	for _, rec := range sorted {
		key := rec.Key()
		if _, seen := state[key]; !seen {
			state[key] = ParseEquipmentStatus(rec.Status)
		}
	}
	return state
}

// WalkDays advances the fleet-state latch one calendar day at a time from
// start through end inclusive, applying same-day records in input order
// (last one wins) and scoring the day against the availability predicate.
//
// maxDays bounds the walk; when exceeded the walk stops and the result is
// marked truncated.
func WalkDays(seed FleetState, records []EquipmentInput, start, end time.Time, maxDays int) AvailabilityResult {
	state := make(FleetState, len(seed))
	for k, v := range seed {
		state[k] = v
	}

	// Group records by calendar day, preserving input order within a day.
	byDay := make(map[time.Time][]EquipmentInput)
	for _, rec := range sortByDate(records) {
		day := truncateToDay(rec.Date)
		byDay[day] = append(byDay[day], rec)
	}

	var res AvailabilityResult
	for day := truncateToDay(start); !day.After(truncateToDay(end)); day = day.AddDate(0, 0, 1) {
		if res.TotalDays >= maxDays {
			res.Truncated = true
			break
		}

		for _, rec := range byDay[day] {
			state[rec.Key()] = ParseEquipmentStatus(rec.Status)
		}

		res.TotalDays++
		if fleetAvailable(state) {
			res.AvailableDays++
		}
	}

	if res.TotalDays > 0 {
		res.Rating = float64(res.AvailableDays) / float64(res.TotalDays) * 100
	}
	return res
}

// ComputeAvailability reconstructs fleet availability from the window start
// (or the earliest record when windowStart is nil) through today.
func (r *Reconstructor) ComputeAvailability(records []EquipmentInput, windowStart *time.Time) AvailabilityResult {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	start := windowStart
	if start == nil {
		start = earliestDate(records)
	}
	if start == nil {
		// No deployment start and no history: availability is undefined.
		return AvailabilityResult{Undefined: true}
	}

	maxDays := r.MaxWindowDays
	if maxDays <= 0 {
		maxDays = DefaultMaxWindowDays
	}

	seed := SeedInitialState(records)
	return WalkDays(seed, records, *start, now(), maxDays)
}

// fleetAvailable evaluates the availability predicate: at least one capable
// aircraft AND at least one capable payload in the current state.
func fleetAvailable(state FleetState) bool {
	var aircraft, payload bool
	for key, status := range state {
		if !status.Capable() {
			continue
		}
		if key.Category == "aircraft" {
			aircraft = true
		}
		if strings.Contains(key.Category, "payload") {
			payload = true
		}
		if aircraft && payload {
			return true
		}
	}
	return false
}

// sortByDate returns a date-ascending copy. The sort is stable so same-day
// records keep their input order, which is what makes last-record-wins a
// well-defined rule.
func sortByDate(records []EquipmentInput) []EquipmentInput {
	sorted := make([]EquipmentInput, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func earliestDate(records []EquipmentInput) *time.Time {
	var earliest *time.Time
	for i := range records {
		d := records[i].Date
		if earliest == nil || d.Before(*earliest) {
			earliest = &d
		}
	}
	return earliest
}
