package constants

// ReasonParties maps delay/cancellation reasons captured on the flight form
// to the party responsible for them. Used only when a record carries no
// explicit responsible_party. Unlisted reasons resolve to "".
var ReasonParties = map[string]string{
	"Weather":                 "Weather",
	"Winds Out of Limits":     "Weather",
	"Visibility":              "Weather",
	"Customer Request":        "Customer",
	"Range Closure":           "Other Agency",
	"Airspace Deconfliction":  "Other Agency",
	"GCS Failure":             "Shield AI",
	"Aircraft Maintenance":    "Shield AI",
	"Payload Failure":         "Shield AI",
	"Launcher Failure":        "Shield AI",
	"Crew Availability":       "Shield AI",
	"Software Fault":          "Shield AI",
	"Logistics Delay":         "Other Agency",
	"Frequency Interference":  "Other Agency",
	"Host Nation Restriction": "Other Agency",
}

// ReasonToParty resolves a reason to its responsible party, or "" when the
// reason is not in the table.
func ReasonToParty(reason string) string {
	return ReasonParties[reason]
}
