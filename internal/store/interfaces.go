package store

import (
	"context"

	"github.com/MKhiriev/go-bus-pass/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AssetRepository keeps downloaded assets available offline.
type AssetRepository interface {
	// SaveAsset inserts the asset or replaces the cached copy for the same URL.
	SaveAsset(ctx context.Context, asset models.CachedAsset) error
	// GetAsset returns the cached copy of url or ErrAssetNotFound.
	GetAsset(ctx context.Context, url string) (models.CachedAsset, error)
}
