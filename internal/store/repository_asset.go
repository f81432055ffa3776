package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bus-pass/internal/logger"
	"github.com/MKhiriev/go-bus-pass/models"
)

type assetRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAssetRepository returns an [AssetRepository] backed by db.
func NewAssetRepository(db *DB, log *logger.Logger) AssetRepository {
	return &assetRepository{
		db:     db,
		logger: log,
	}
}

func (a *assetRepository) SaveAsset(ctx context.Context, asset models.CachedAsset) error {
	if asset.URL == "" {
		return ErrInvalidAsset
	}
	if asset.Content == nil {
		asset.Content = []byte{}
	}

	query, args, err := buildSaveAssetQuery(asset)
	if err != nil {
		a.logger.Err(err).Str("func", "assetRepository.SaveAsset").Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = a.db.ExecContext(ctx, query, args...); err != nil {
		a.logger.Err(err).
			Str("func", "assetRepository.SaveAsset").
			Str("url", asset.URL).
			Msg("failed to execute upsert for asset")
		return fmt.Errorf("%w: save asset (url=%s): %w", ErrExecutingQuery, asset.URL, err)
	}

	a.logger.Debug().
		Str("func", "assetRepository.SaveAsset").
		Str("url", asset.URL).
		Int("bytes", len(asset.Content)).
		Msg("asset cached")
	return nil
}

func (a *assetRepository) GetAsset(ctx context.Context, url string) (models.CachedAsset, error) {
	query, args, err := buildGetAssetQuery(url)
	if err != nil {
		a.logger.Err(err).Str("func", "assetRepository.GetAsset").Msg("failed to build select query")
		return models.CachedAsset{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var asset models.CachedAsset
	err = a.db.QueryRowContext(ctx, query, args...).Scan(
		&asset.URL,
		&asset.Filename,
		&asset.ContentType,
		&asset.Content,
		&asset.FetchedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CachedAsset{}, ErrAssetNotFound
	}
	if err != nil {
		a.logger.Err(err).
			Str("func", "assetRepository.GetAsset").
			Str("url", url).
			Msg("failed to scan asset row")
		return models.CachedAsset{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return asset, nil
}
