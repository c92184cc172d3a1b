package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixDeploymentStats CachePrefix = "DEPLOY_STATS_"

	// DeploymentStatusActive marks deployments included in the rolling
	// stats refresh.
	DeploymentStatusActive   = "Active"
	DeploymentStatusComplete = "Complete"

	// DefaultOperatorParty is the responsible-party value that marks a
	// cancellation as self-inflicted. Overridable via OPERATOR_PARTY.
	DefaultOperatorParty = "Shield AI"
)
