package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-bus-pass/internal/config"
	"github.com/MKhiriev/go-bus-pass/internal/logger"
)

// NewConnectSQLite opens the asset cache database described by cfg. File
// databases are created when missing; in-memory DSNs are pinned to a single
// connection so every query sees the same database.
func NewConnectSQLite(ctx context.Context, cfg config.ClientCache, log *logger.Logger) (*DB, error) {
	inMemory := isInMemoryDSN(cfg.DSN)

	if !inMemory {
		// db will be in file
		if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
			return nil, fmt.Errorf("error creating database file: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	if inMemory {
		conn.SetMaxOpenConns(1)
	}

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("dsn", cfg.DSN).Msg("connected to database successfully")

	db := &DB{
		DB:     conn,
		logger: log,
	}

	return db, nil
}

func isInMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}

func createLocalDBFileIfNotExists(dbFile string) error {
	path := strings.TrimPrefix(dbFile, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
