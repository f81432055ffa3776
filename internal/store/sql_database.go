package store

import (
	"database/sql"

	"github.com/MKhiriev/go-bus-pass/internal/logger"
	"github.com/MKhiriev/go-bus-pass/migrations"
)

// DB is the asset cache connection.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the cache schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
