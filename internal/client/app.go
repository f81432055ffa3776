package client

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/text/language"

	"github.com/MKhiriev/go-bus-pass/internal/config"
	"github.com/MKhiriev/go-bus-pass/internal/connectivity"
	"github.com/MKhiriev/go-bus-pass/internal/logger"
	"github.com/MKhiriev/go-bus-pass/internal/notify"
	"github.com/MKhiriev/go-bus-pass/internal/page"
	"github.com/MKhiriev/go-bus-pass/internal/peripheral"
	"github.com/MKhiriev/go-bus-pass/internal/sorting"
	"github.com/MKhiriev/go-bus-pass/internal/store"
	"github.com/MKhiriev/go-bus-pass/internal/tui"
	"github.com/MKhiriev/go-bus-pass/internal/workers"
	"github.com/MKhiriev/go-bus-pass/models"
)

// App owns the long-lived services shared by all page loads.
type App struct {
	pageConfig page.Config
	services   page.Services

	cache   *store.AssetCache
	workers *workers.Workers
	ui      *tui.TUI

	log *logger.Logger
}

// NewApp wires the client from cfg. A cache that cannot be registered only
// disables offline downloads.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.BuildInfo, log *logger.Logger) (*App, error) {
	pageCfg, err := newPageConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("page config: %w", err)
	}

	a := &App{
		pageConfig: pageCfg,
		log:        log.ForComponent("client"),
	}

	var assets store.AssetRepository
	a.cache, err = store.RegisterAssetCache(ctx, cfg.Cache, log)
	if err != nil {
		a.log.Warn().Err(err).Str("func", "NewApp").Msg("continuing without asset cache")
	} else {
		assets = a.cache.Assets
	}

	notices := peripheral.NewNoticeBoard(nil)
	a.services = page.Services{
		Notices: notices,
		Copier:  peripheral.NewCopier(notices, log, peripheral.WithNoticeDuration(cfg.Notifications.ClipboardNotice)),
		Downloader: peripheral.NewDownloader(peripheral.DownloaderConfig{
			Dir:     cfg.Downloads.Dir,
			BaseURL: cfg.Downloads.BaseURL,
		}, assets, log),
	}

	var prober *connectivity.Prober
	if cfg.Connectivity.ProbeURL != "" {
		prober, err = connectivity.NewProber(connectivity.ProberConfig{
			URL:      cfg.Connectivity.ProbeURL,
			Interval: cfg.Connectivity.ProbeInterval,
			Timeout:  cfg.Connectivity.ProbeTimeout,
		}, log)
		if err != nil {
			a.closeCache()
			return nil, fmt.Errorf("create prober: %w", err)
		}
		a.services.Source = prober
	}
	if prober != nil {
		a.workers = workers.NewWorkers(prober)
	} else {
		a.workers = workers.NewWorkers()
	}

	a.ui, err = tui.New(tui.DefaultCatalog(), a.loadPage, buildInfo, log)
	if err != nil {
		a.closeCache()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return a, nil
}

// Run starts background workers and blocks in the UI until the user quits
// or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.workers.Start(ctx)
	defer a.shutdown()

	a.log.Info().Str("func", "App.Run").Int("workers", a.workers.Len()).Msg("client started")

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *App) loadPage(ctx context.Context, p *models.Page) (*page.Controller, error) {
	return page.Load(ctx, p, a.pageConfig, a.services, a.log)
}

func (a *App) shutdown() {
	a.workers.Stop()
	if a.services.Copier != nil {
		a.services.Copier.Wait()
	}
	a.closeCache()
	a.log.Info().Str("func", "App.shutdown").Msg("client stopped")
}

func (a *App) closeCache() {
	if a.cache == nil {
		return
	}
	if err := a.cache.Close(); err != nil {
		a.log.Err(err).Str("func", "App.closeCache").Msg("closing asset cache")
	}
	a.cache = nil
}

// newPageConfig maps the validated client settings to page settings.
func newPageConfig(cfg *config.ClientConfig) (page.Config, error) {
	locale, err := language.Parse(cfg.UI.Locale)
	if err != nil {
		return page.Config{}, fmt.Errorf("locale %q: %w", cfg.UI.Locale, err)
	}

	polarity := sorting.PolarityDocumented
	if cfg.UI.SortPolarity == config.SortPolarityMarker {
		polarity = sorting.PolarityMarker
	}

	timings := notify.Timings{
		AutoDismiss: cfg.Notifications.AutoDismiss,
		Flash:       cfg.Notifications.Flash,
		Fade:        cfg.Notifications.Fade,
	}
	if err = timings.Validate(); err != nil {
		return page.Config{}, err
	}

	return page.Config{
		Locale:   locale,
		Polarity: polarity,
		Timings:  timings,
	}, nil
}
