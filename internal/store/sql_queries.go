package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-bus-pass/models"
)

const assetsTable = "assets"

var assetColumns = []string{"url", "filename", "content_type", "content", "fetched_at"}

// sqlite placeholders
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildSaveAssetQuery builds an upsert keyed by url.
func buildSaveAssetQuery(asset models.CachedAsset) (string, []any, error) {
	return psql.
		Insert(assetsTable).
		Columns(assetColumns...).
		Values(asset.URL, asset.Filename, asset.ContentType, asset.Content, asset.FetchedAt).
		Suffix(`ON CONFLICT(url) DO UPDATE SET
			filename = excluded.filename,
			content_type = excluded.content_type,
			content = excluded.content,
			fetched_at = excluded.fetched_at`).
		ToSql()
}

func buildGetAssetQuery(url string) (string, []any, error) {
	return psql.
		Select(assetColumns...).
		From(assetsTable).
		Where(sq.Eq{"url": url}).
		ToSql()
}
