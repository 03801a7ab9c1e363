package postgres

import (
	"fmt"

	"checkout/internal/adapters/out/postgres/attemptrepo"

	_ "github.com/lib/pq" // registers the "postgres" database/sql driver
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DSN builds a keyword/value connection string.
func DSN(host, port, user, password, dbName, sslMode string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode)
}

// Open connects through lib/pq rather than gorm's default pgx driver.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(gorm_postgres.New(gorm_postgres.Config{
		DriverName: "postgres",
		DSN:        dsn,
	}), &gorm.Config{})
}

// Migrate creates or updates the tables owned by this adapter.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&attemptrepo.AttemptDTO{})
}
