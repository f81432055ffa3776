package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bus-pass/internal/config"
	"github.com/MKhiriev/go-bus-pass/internal/logger"
)

// AssetCache is the registered offline asset cache.
type AssetCache struct {
	Assets AssetRepository
	db     *DB
}

// RegisterAssetCache opens the cache database named by cfg, applies pending
// migrations and returns the ready cache. The outcome is logged either way.
func RegisterAssetCache(ctx context.Context, cfg config.ClientCache, log *logger.Logger) (*AssetCache, error) {
	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		log.Err(err).Str("func", "RegisterAssetCache").Msg("asset cache registration failed")
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		log.Err(err).Str("func", "RegisterAssetCache").Msg("asset cache registration failed")
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	log.Info().Str("func", "RegisterAssetCache").Str("dsn", cfg.DSN).Msg("asset cache registration successful")

	return &AssetCache{
		Assets: NewAssetRepository(db, log),
		db:     db,
	}, nil
}

// Close releases the cache database.
func (c *AssetCache) Close() error {
	return c.db.Close()
}
