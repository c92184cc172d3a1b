package constants

const (
	GetStatusByApiKey = `
	SELECT id, status FROM api_keys WHERE id = $1
	`

	GetFlightTotalsByDeployment = `
	SELECT COALESCE(SUM(hours), 0)      AS hours,
	       COALESCE(SUM(tois), 0)       AS tois,
	       COALESCE(SUM(contraband), 0) AS contraband,
	       COALESCE(SUM(detainees), 0)  AS detainees
	FROM flight_records
	WHERE deployment_id = $1
	`
)
