package constants

// Error codes surfaced by the stats and record services
const (
	ErrCodeDeploymentNotFound   = "DEPLOYMENT_NOT_FOUND"
	ErrCodeDeploymentNoStart    = "DEPLOYMENT_NO_START_DATE"
	ErrCodeRecordsUnavailable   = "RECORDS_UNAVAILABLE"
	ErrCodeAvailabilityTruncate = "AVAILABILITY_WINDOW_TRUNCATED"
	ErrCodeInvalidPayload       = "INVALID_PAYLOAD"
)

var errorMessages = map[string]string{
	ErrCodeDeploymentNotFound:   "Deployment not found",
	ErrCodeDeploymentNoStart:    "Deployment has no start date and no record history",
	ErrCodeRecordsUnavailable:   "Failed to load records from storage",
	ErrCodeAvailabilityTruncate: "Availability window exceeded the configured cap",
	ErrCodeInvalidPayload:       "Invalid request payload",
}

// GetErrorMessage returns the human-readable message for an error code
func GetErrorMessage(code string) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "Unknown error"
}
