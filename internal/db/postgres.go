package db

import (
	"fmt"
	"os"
	"time"

	"deployment-ops/quartermaster/internal/logging"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

var DB *sqlx.DB

// InitPostgres opens the sqlx connection used for the raw aggregation queries
// and API key lookups, retrying while the database comes up.
func InitPostgres() error {
	host := os.Getenv("PG_HOST")
	port := os.Getenv("PG_PORT")
	user := os.Getenv("PG_USER")
	dbname := os.Getenv("PG_DB")
	password := os.Getenv("PG_PASSWORD")
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname)

	var err error

	for i := 0; i < 10; i++ {
		DB, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			return nil
		}
		logging.Warn("Postgres not ready, retrying",
			"attempt", i+1,
			"error", err.Error(),
		)
		time.Sleep(500 * time.Millisecond)
	}
	return fmt.Errorf("postgres unreachable after 10 attempts: %w", err)
}
