package peripheral_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-bus-pass/internal/logger"
	"github.com/MKhiriev/go-bus-pass/internal/mock"
	"github.com/MKhiriev/go-bus-pass/internal/peripheral"
	"github.com/MKhiriev/go-bus-pass/internal/store"
	"github.com/MKhiriev/go-bus-pass/models"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}

func qrServer(t *testing.T) (*httptest.Server, *atomic.Bool) {
	t.Helper()
	down := &atomic.Bool{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if down.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(pngBytes)
	}))
	t.Cleanup(srv.Close)
	return srv, down
}

func TestDownloader_SavesFileAndCaches(t *testing.T) {
	srv, _ := qrServer(t)
	dir := t.TempDir()
	url := srv.URL + "/static/qr/42.png"

	ctrl := gomock.NewController(t)
	cache := mock.NewMockAssetRepository(ctrl)
	cache.EXPECT().SaveAsset(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.CachedAsset) error {
			assert.Equal(t, url, a.URL)
			assert.Equal(t, "pass-42.png", a.Filename)
			assert.Equal(t, "image/png", a.ContentType)
			assert.Equal(t, pngBytes, a.Content)
			return nil
		})

	d := peripheral.NewDownloader(peripheral.DownloaderConfig{Dir: dir}, cache, logger.Nop())
	path, err := d.DownloadQR(context.Background(), "pass-42.png", url)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pass-42.png"), path)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, got)
}

func TestDownloader_RelativeURLWithBase(t *testing.T) {
	srv, _ := qrServer(t)
	dir := t.TempDir()

	d := peripheral.NewDownloader(peripheral.DownloaderConfig{Dir: dir, BaseURL: srv.URL + "/"}, nil, logger.Nop())
	path, err := d.DownloadQR(context.Background(), "qr.png", "/static/qr/1.png")

	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestDownloader_FilenameIsSanitized(t *testing.T) {
	srv, _ := qrServer(t)
	dir := t.TempDir()

	d := peripheral.NewDownloader(peripheral.DownloaderConfig{Dir: dir}, nil, logger.Nop())
	path, err := d.DownloadQR(context.Background(), "../../etc/pass.png", srv.URL)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pass.png"), path)
}

func TestDownloader_InvalidFilename(t *testing.T) {
	d := peripheral.NewDownloader(peripheral.DownloaderConfig{Dir: t.TempDir()}, nil, logger.Nop())

	for _, name := range []string{"", "  ", "..", "/"} {
		_, err := d.DownloadQR(context.Background(), name, "http://127.0.0.1:1/")
		assert.ErrorIs(t, err, peripheral.ErrInvalidFilename, name)
	}
}

func TestDownloader_FallsBackToCache(t *testing.T) {
	srv, down := qrServer(t)
	down.Store(true)
	dir := t.TempDir()
	url := srv.URL + "/qr.png"

	ctrl := gomock.NewController(t)
	cache := mock.NewMockAssetRepository(ctrl)
	cache.EXPECT().GetAsset(gomock.Any(), url).Return(models.CachedAsset{URL: url, Content: []byte("cached")}, nil)

	d := peripheral.NewDownloader(peripheral.DownloaderConfig{Dir: dir}, cache, logger.Nop())
	path, err := d.DownloadQR(context.Background(), "qr.png", url)

	require.NoError(t, err)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("cached"), got)
}

func TestDownloader_NoNetworkNoCache(t *testing.T) {
	srv, down := qrServer(t)
	down.Store(true)

	ctrl := gomock.NewController(t)
	cache := mock.NewMockAssetRepository(ctrl)
	cache.EXPECT().GetAsset(gomock.Any(), gomock.Any()).Return(models.CachedAsset{}, store.ErrAssetNotFound)

	d := peripheral.NewDownloader(peripheral.DownloaderConfig{Dir: t.TempDir()}, cache, logger.Nop())
	_, err := d.DownloadQR(context.Background(), "qr.png", srv.URL)

	assert.ErrorIs(t, err, peripheral.ErrDownloadFailed)
	assert.ErrorIs(t, err, store.ErrAssetNotFound)
}
