package stats

import (
	"testing"
	"time"
)

func day(n int) time.Time {
	return time.Date(2025, time.March, n, 0, 0, 0, 0, time.UTC)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSeedInitialState_FirstRecordPerKey(t *testing.T) {
	records := []EquipmentInput{
		{Category: "Aircraft", Equipment: "V-BAT", SerialNumber: "A1", Status: "NMC", Date: day(5)},
		{Category: "Aircraft", Equipment: "V-BAT", SerialNumber: "A1", Status: "FMC", Date: day(2)},
		{Category: "Payloads", Equipment: "EO/IR", SerialNumber: "P1", Status: "PMC", Date: day(4)},
	}

	state := SeedInitialState(records)

	if len(state) != 2 {
		t.Fatalf("Expected 2 keys, got %d", len(state))
	}

	aircraft := IdentityKey{Category: "aircraft", Equipment: "V-BAT", SerialNumber: "A1"}
	if state[aircraft] != EquipmentStatusFMC {
		t.Errorf("Expected chronologically first status FMC, got %v", state[aircraft])
	}
}

func TestComputeAvailability_PayloadRecoversMidWindow(t *testing.T) {
	records := []EquipmentInput{
		{Category: "Aircraft", Equipment: "V-BAT", SerialNumber: "A1", Status: "FMC", Date: day(1)},
		{Category: "Payloads", Equipment: "EO/IR", SerialNumber: "P1", Status: "NMC", Date: day(1)},
		{Category: "Payloads", Equipment: "EO/IR", SerialNumber: "P1", Status: "FMC", Date: day(3)},
	}

	start := day(1)
	r := &Reconstructor{Now: fixedClock(day(3))}

	res := r.ComputeAvailability(records, &start)

	if res.TotalDays != 3 {
		t.Errorf("Expected 3 total days, got %d", res.TotalDays)
	}
	if res.AvailableDays != 1 {
		t.Errorf("Expected 1 available day (Day 3 only), got %d", res.AvailableDays)
	}
	if res.Undefined || res.Truncated {
		t.Errorf("Unexpected flags: %+v", res)
	}
}

func TestComputeAvailability_BackfillToWindowStart(t *testing.T) {
	// First-ever records land on Day 5 but the window opens on Day 1.
	// Days 1-4 adopt the Day 5 statuses per the backfill rule.
	records := []EquipmentInput{
		{Category: "Aircraft", Equipment: "V-BAT", SerialNumber: "A1", Status: "FMC", Date: day(5)},
		{Category: "Payload Systems", Equipment: "EO/IR", SerialNumber: "P1", Status: "PMC", Date: day(5)},
	}

	start := day(1)
	r := &Reconstructor{Now: fixedClock(day(5))}

	res := r.ComputeAvailability(records, &start)

	if res.TotalDays != 5 {
		t.Errorf("Expected 5 total days, got %d", res.TotalDays)
	}
	if res.AvailableDays != 5 {
		t.Errorf("Expected all 5 days available via backfill, got %d", res.AvailableDays)
	}
}

func TestComputeAvailability_NoStartNoRecords(t *testing.T) {
	r := &Reconstructor{Now: fixedClock(day(10))}

	res := r.ComputeAvailability(nil, nil)

	if !res.Undefined {
		t.Error("Expected Undefined flag with no window start and no records")
	}
	if res.Rating != 0 || res.TotalDays != 0 {
		t.Errorf("Expected zeroed result, got %+v", res)
	}
}

func TestComputeAvailability_EarliestRecordAsFallbackStart(t *testing.T) {
	records := []EquipmentInput{
		{Category: "Aircraft", Equipment: "V-BAT", SerialNumber: "A1", Status: "FMC", Date: day(4)},
		{Category: "Payloads", Equipment: "EO/IR", SerialNumber: "P1", Status: "FMC", Date: day(2)},
	}

	r := &Reconstructor{Now: fixedClock(day(6))}

	res := r.ComputeAvailability(records, nil)

	// Window runs from the earliest record (Day 2) through Day 6.
	if res.TotalDays != 5 {
		t.Errorf("Expected 5 total days, got %d", res.TotalDays)
	}
}

func TestWalkDays_LastRecordWinsWithinDay(t *testing.T) {
	records := []EquipmentInput{
		{Category: "Aircraft", Equipment: "V-BAT", SerialNumber: "A1", Status: "FMC", Date: day(1)},
		{Category: "Aircraft", Equipment: "V-BAT", SerialNumber: "A1", Status: "NMC", Date: day(1)},
		{Category: "Payloads", Equipment: "EO/IR", SerialNumber: "P1", Status: "FMC", Date: day(1)},
	}

	res := WalkDays(SeedInitialState(records), records, day(1), day(1), DefaultMaxWindowDays)

	// The aircraft's second Day-1 record (NMC) supersedes the first.
	if res.AvailableDays != 0 {
		t.Errorf("Expected 0 available days, got %d", res.AvailableDays)
	}
}

func TestWalkDays_CaseAndCategoryNormalization(t *testing.T) {
	records := []EquipmentInput{
		{Category: "  AIRCRAFT ", Equipment: "V-BAT", SerialNumber: "A1", Status: " fmc ", Date: day(1)},
		{Category: "payload system", Equipment: "EO/IR", SerialNumber: "P1", Status: "pmc", Date: day(1)},
	}

	res := WalkDays(SeedInitialState(records), records, day(1), day(2), DefaultMaxWindowDays)

	if res.AvailableDays != 2 {
		t.Errorf("Expected normalization to make both days available, got %d", res.AvailableDays)
	}
}

func TestWalkDays_AircraftAloneNotAvailable(t *testing.T) {
	records := []EquipmentInput{
		{Category: "Aircraft", Equipment: "V-BAT", SerialNumber: "A1", Status: "FMC", Date: day(1)},
	}

	res := WalkDays(SeedInitialState(records), records, day(1), day(3), DefaultMaxWindowDays)

	if res.AvailableDays != 0 {
		t.Errorf("Capable aircraft without a capable payload must not count: %d", res.AvailableDays)
	}
	if res.TotalDays != 3 {
		t.Errorf("Expected 3 total days, got %d", res.TotalDays)
	}
}

func TestWalkDays_WindowCapTruncates(t *testing.T) {
	records := []EquipmentInput{
		{Category: "Aircraft", Equipment: "V-BAT", SerialNumber: "A1", Status: "FMC", Date: day(1)},
		{Category: "Payloads", Equipment: "EO/IR", SerialNumber: "P1", Status: "FMC", Date: day(1)},
	}

	res := WalkDays(SeedInitialState(records), records, day(1), day(1).AddDate(0, 0, 99), 10)

	if !res.Truncated {
		t.Error("Expected Truncated flag when the walk exceeds the cap")
	}
	if res.TotalDays != 10 {
		t.Errorf("Expected walk to stop at the cap (10 days), got %d", res.TotalDays)
	}
}

func TestComputeAvailability_Idempotent(t *testing.T) {
	records := []EquipmentInput{
		{Category: "Aircraft", Equipment: "V-BAT", SerialNumber: "A1", Status: "FMC", Date: day(1)},
		{Category: "Payloads", Equipment: "EO/IR", SerialNumber: "P1", Status: "NMC", Date: day(1)},
		{Category: "Payloads", Equipment: "EO/IR", SerialNumber: "P1", Status: "FMC", Date: day(3)},
		{Category: "Aircraft", Equipment: "V-BAT", SerialNumber: "A2", Status: "CAT5", Date: day(2)},
	}

	start := day(1)
	r := &Reconstructor{Now: fixedClock(day(7))}

	first := r.ComputeAvailability(records, &start)
	second := r.ComputeAvailability(records, &start)

	if first != second {
		t.Errorf("Expected identical results, got %+v then %+v", first, second)
	}
}

func TestParseEquipmentStatus_Capability(t *testing.T) {
	tests := []struct {
		raw     string
		status  EquipmentStatus
		capable bool
	}{
		{"FMC", EquipmentStatusFMC, true},
		{"pmc", EquipmentStatusPMC, true},
		{" NMC ", EquipmentStatusNMC, false},
		{"CAT5", EquipmentStatusCAT5, false},
		{"", EquipmentStatusUnknown, false},
		{"bogus", EquipmentStatusUnknown, false},
	}

	for _, tt := range tests {
		got := ParseEquipmentStatus(tt.raw)
		if got != tt.status {
			t.Errorf("ParseEquipmentStatus(%q) = %v, want %v", tt.raw, got, tt.status)
		}
		if got.Capable() != tt.capable {
			t.Errorf("ParseEquipmentStatus(%q).Capable() = %v, want %v", tt.raw, got.Capable(), tt.capable)
		}
	}
}
