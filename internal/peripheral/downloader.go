package peripheral

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-bus-pass/internal/logger"
	"github.com/MKhiriev/go-bus-pass/internal/store"
	"github.com/MKhiriev/go-bus-pass/models"
)

const defaultDownloadTimeout = 15 * time.Second

// DownloaderConfig configures a Downloader.
type DownloaderConfig struct {
	// Dir receives downloaded files.
	Dir string
	// BaseURL resolves relative download URLs. Optional.
	BaseURL string
	Timeout time.Duration
}

// Downloader saves QR images to the downloads directory. Successful fetches
// are kept in the asset cache so a later download works without network.
type Downloader struct {
	client *resty.Client
	dir    string
	cache  store.AssetRepository
	now    func() time.Time
	log    *logger.Logger
}

// NewDownloader returns a Downloader. cache may be nil when the asset cache
// could not be registered.
func NewDownloader(cfg DownloaderConfig, cache store.AssetRepository, log *logger.Logger) *Downloader {
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultDownloadTimeout
	}

	client := resty.New().SetTimeout(cfg.Timeout)
	if cfg.BaseURL != "" {
		client.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/"))
	}

	return &Downloader{
		client: client,
		dir:    cfg.Dir,
		cache:  cache,
		now:    time.Now,
		log:    log.ForComponent("downloader"),
	}
}

// DownloadQR fetches url and stores it as filename inside the downloads
// directory, returning the written path. Only the base name of filename is
// used. When the fetch fails the cached copy is written instead.
func (d *Downloader) DownloadQR(ctx context.Context, filename, url string) (string, error) {
	name, err := sanitizeFilename(filename)
	if err != nil {
		return "", err
	}
	path := filepath.Join(d.dir, name)

	asset, fetchErr := d.fetch(ctx, url, name)
	if fetchErr != nil {
		cached, cacheErr := d.fromCache(ctx, url)
		if cacheErr != nil {
			d.log.Err(fetchErr).Str("func", "Downloader.DownloadQR").Str("url", url).Msg("download failed")
			return "", fmt.Errorf("%w: %w", ErrDownloadFailed, errors.Join(fetchErr, cacheErr))
		}
		d.log.Warn().Str("func", "Downloader.DownloadQR").Str("url", url).Msg("network fetch failed, using cached copy")
		asset = cached
	}

	if err = os.WriteFile(path, asset.Content, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	if fetchErr == nil && d.cache != nil {
		if err = d.cache.SaveAsset(ctx, asset); err != nil {
			d.log.Err(err).Str("func", "Downloader.DownloadQR").Str("url", url).Msg("failed to cache asset")
		}
	}

	d.log.Info().Str("func", "Downloader.DownloadQR").Str("path", path).Msg("qr downloaded")
	return path, nil
}

func (d *Downloader) fetch(ctx context.Context, url, name string) (models.CachedAsset, error) {
	resp, err := d.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return models.CachedAsset{}, fmt.Errorf("download request: %w", err)
	}
	if resp.IsError() {
		return models.CachedAsset{}, fmt.Errorf("http %d", resp.StatusCode())
	}

	return models.CachedAsset{
		URL:         url,
		Filename:    name,
		ContentType: resp.Header().Get("Content-Type"),
		Content:     resp.Body(),
		FetchedAt:   d.now().UTC(),
	}, nil
}

func (d *Downloader) fromCache(ctx context.Context, url string) (models.CachedAsset, error) {
	if d.cache == nil {
		return models.CachedAsset{}, store.ErrAssetNotFound
	}
	return d.cache.GetAsset(ctx, url)
}

func sanitizeFilename(filename string) (string, error) {
	name := filepath.Base(strings.ReplaceAll(strings.TrimSpace(filename), `\`, "/"))
	switch name {
	case "", ".", "..", "/":
		return "", fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}
	return name, nil
}
