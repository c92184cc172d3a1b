package stats

import "strings"

// FlightStatus is the canonical outcome classification for a flight record.
// Raw form input is normalized through ParseFlightStatus at the boundary and
// never compared as free text downstream.
type FlightStatus int

const (
	FlightStatusUnknown FlightStatus = iota
	FlightStatusComplete
	FlightStatusCNX
	FlightStatusDelay
	FlightStatusAlertNoLaunch
)

// ParseFlightStatus maps a raw status string to its canonical variant.
// Legacy labels still present in historical records ("Alert", "Cancelled")
// map to their modern equivalents. Blank or unrecognized input yields
// FlightStatusUnknown.
func ParseFlightStatus(raw string) FlightStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "complete":
		return FlightStatusComplete
	case "cnx", "cancelled":
		return FlightStatusCNX
	case "delay":
		return FlightStatusDelay
	case "alert-no-launch", "alert":
		return FlightStatusAlertNoLaunch
	default:
		return FlightStatusUnknown
	}
}

// Label returns the display label used for status breakdowns.
func (s FlightStatus) Label() string {
	switch s {
	case FlightStatusComplete:
		return "Complete"
	case FlightStatusCNX:
		return "CNX"
	case FlightStatusDelay:
		return "Delay"
	case FlightStatusAlertNoLaunch:
		return "Alert-No-Launch"
	default:
		return ""
	}
}

// EquipmentStatus is a mission-capability code from daily equipment logs.
type EquipmentStatus int

const (
	EquipmentStatusUnknown EquipmentStatus = iota
	EquipmentStatusFMC                     // Fully Mission Capable
	EquipmentStatusPMC                     // Partially Mission Capable
	EquipmentStatusNMC                     // Not Mission Capable
	EquipmentStatusCAT5                    // Out of service
)

// ParseEquipmentStatus normalizes a raw capability code. Comparison is
// case-insensitive and trimmed.
func ParseEquipmentStatus(raw string) EquipmentStatus {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "FMC":
		return EquipmentStatusFMC
	case "PMC":
		return EquipmentStatusPMC
	case "NMC":
		return EquipmentStatusNMC
	case "CAT5":
		return EquipmentStatusCAT5
	default:
		return EquipmentStatusUnknown
	}
}

// Capable reports whether equipment in this status counts toward fleet
// availability. Only FMC and PMC qualify.
func (s EquipmentStatus) Capable() bool {
	return s == EquipmentStatusFMC || s == EquipmentStatusPMC
}

func (s EquipmentStatus) String() string {
	switch s {
	case EquipmentStatusFMC:
		return "FMC"
	case EquipmentStatusPMC:
		return "PMC"
	case EquipmentStatusNMC:
		return "NMC"
	case EquipmentStatusCAT5:
		return "CAT5"
	default:
		return "UNKNOWN"
	}
}
