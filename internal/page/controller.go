// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package page composes the interaction components for one loaded page and
// dispatches commands to them.
//
// A Controller is created per page load by Load and discarded with Close when
// the page is left. Nothing carries over between loads: sort markers,
// notifications and validation marks live on the page model and in
// components owned by its controller.
package page

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/MKhiriev/go-bus-pass/internal/connectivity"
	"github.com/MKhiriev/go-bus-pass/internal/logger"
	"github.com/MKhiriev/go-bus-pass/internal/notify"
	"github.com/MKhiriev/go-bus-pass/internal/peripheral"
	"github.com/MKhiriev/go-bus-pass/internal/sorting"
	"github.com/MKhiriev/go-bus-pass/internal/validators"
	"github.com/MKhiriev/go-bus-pass/models"
)

// Config holds the per-load settings of a Controller.
type Config struct {
	Locale   language.Tag
	Polarity sorting.Polarity
	Timings  notify.Timings
	// Scheduler drives notification timers. Nil means time.AfterFunc.
	Scheduler notify.Scheduler
	// Now is the clock of the load timer. Nil means time.Now.
	Now func() time.Time
}

// DefaultConfig returns English collation, the default polarity and the
// standard notification timings.
func DefaultConfig() Config {
	return Config{
		Locale:   language.English,
		Polarity: sorting.PolarityDocumented,
		Timings:  notify.DefaultTimings(),
	}
}

// Services are the long-lived collaborators shared by all page loads. Every
// field is optional; a missing collaborator disables its feature.
type Services struct {
	// Alerter receives blocking alerts. Nil gives each page its own AlertBox.
	Alerter    validators.Alerter
	Source     connectivity.Source
	Copier     *peripheral.Copier
	Notices    *peripheral.NoticeBoard
	Downloader *peripheral.Downloader
}

// Controller is the interaction layer of one loaded page.
type Controller struct {
	page *models.Page

	center    *notify.Center
	engine    *sorting.Engine
	pipelines map[string]*validators.Pipeline
	monitor   *connectivity.Monitor
	menu      *peripheral.MenuToggle
	anchors   *peripheral.AnchorScroller
	alerts    *AlertBox
	services  Services

	listenersMu  sync.Mutex
	unsubscribes []func()

	loadTime time.Duration
	log      *logger.Logger
}

// Load initializes the interaction layer for p: flash messages present on
// the page are adopted, tables get their sortable headers, each form gets a
// validation pipeline and the connectivity monitor subscribes to the
// configured source. The load time is logged once.
func Load(ctx context.Context, p *models.Page, cfg Config, services Services, log *logger.Logger) (*Controller, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil page", ErrUnknownTarget)
	}

	pageLog := log.ForComponent("page")
	timer := NewLoadTimer(pageLog, cfg.Now)

	centerOpts := []notify.Option{notify.WithTimings(cfg.Timings)}
	if cfg.Scheduler != nil {
		centerOpts = append(centerOpts, notify.WithScheduler(cfg.Scheduler))
	}

	c := &Controller{
		page:      p,
		center:    notify.NewCenter(log, centerOpts...),
		engine:    sorting.NewEngine(cfg.Locale, log, sorting.WithPolarity(cfg.Polarity)),
		pipelines: make(map[string]*validators.Pipeline, len(p.Forms)),
		menu:      peripheral.NewMenuToggle(p.HasMenu),
		anchors:   peripheral.NewAnchorScroller(p.Anchors),
		services:  services,
		log:       pageLog,
	}

	alerter := services.Alerter
	if alerter == nil {
		c.alerts = &AlertBox{}
		alerter = c.alerts
	}

	c.center.AdoptExisting(p.Flash...)

	for _, t := range p.Tables {
		if _, err := c.engine.AttachMarked(t); err != nil {
			return nil, fmt.Errorf("attach table %q: %w", t.ID, err)
		}
	}

	for _, f := range p.Forms {
		c.pipelines[f.ID] = validators.NewPipeline(f, alerter, log)
	}

	c.monitor = connectivity.NewMonitor(c.center, log)
	if services.Source != nil {
		c.monitor.Subscribe(services.Source)
	}

	c.loadTime = timer.Finish(p.Name)
	logger.FromContext(ctx).Debug().Str("func", "page.Load").Str("page", p.Name).Msg("page loaded")

	return c, nil
}

// Page returns the page model the controller works on.
func (c *Controller) Page() *models.Page {
	return c.page
}

// LoadTime returns the measured load duration.
func (c *Controller) LoadTime() time.Duration {
	return c.loadTime
}

// Center returns the page's notification center.
func (c *Controller) Center() *notify.Center {
	return c.center
}

// OnChange registers fn to be called whenever notifications or notices change
// outside of Dispatch, e.g. when a timer fires. Close removes it.
func (c *Controller) OnChange(fn func()) {
	unsubscribes := []func(){c.center.OnChange(fn)}
	if c.services.Notices != nil {
		unsubscribes = append(unsubscribes, c.services.Notices.OnChange(fn))
	}

	c.listenersMu.Lock()
	c.unsubscribes = append(c.unsubscribes, unsubscribes...)
	c.listenersMu.Unlock()
}

// Dispatch applies cmd to the page.
func (c *Controller) Dispatch(ctx context.Context, cmd Command) (Outcome, error) {
	out := Outcome{Kind: cmd.Kind}

	switch cmd.Kind {
	case CmdSubmit:
		p, err := c.pipeline(cmd.Target)
		if err != nil {
			return out, err
		}
		res := p.Submit(ctx)
		out.Validation = &res
		out.Handled = res.IsValid

	case CmdClickHeader:
		t, ok := c.page.TableByID(cmd.Target)
		if !ok {
			return out, fmt.Errorf("%w: table %q", ErrUnknownTarget, cmd.Target)
		}
		err := c.engine.Activate(t, cmd.Column)
		switch {
		case errors.Is(err, sorting.ErrNotSortable):
			// clicks on plain headers do nothing
		case err != nil:
			return out, fmt.Errorf("%w: %w", ErrUnknownTarget, err)
		default:
			out.Handled = true
		}

	case CmdInputChange:
		p, err := c.pipeline(cmd.Target)
		if err != nil {
			return out, err
		}
		value, ok := p.Input(cmd.Field, cmd.Value)
		if !ok {
			return out, fmt.Errorf("%w: field %q of form %q", ErrUnknownTarget, cmd.Field, cmd.Target)
		}
		out.Value = value
		out.Handled = true

	case CmdConnectivityChange:
		c.monitor.HandleTransition(cmd.State)
		out.Handled = true

	case CmdDismiss:
		out.Handled = c.center.Dismiss(cmd.NotificationID)

	case CmdCopyText:
		if c.services.Copier != nil {
			out.Handled = c.services.Copier.CopyToClipboard(cmd.Value)
		}

	case CmdDownloadQR:
		if c.services.Downloader == nil {
			return out, ErrDownloadUnavailable
		}
		path, err := c.services.Downloader.DownloadQR(ctx, cmd.Filename, cmd.Value)
		if err != nil {
			c.log.Err(err).Str("func", "Controller.Dispatch").Str("url", cmd.Value).Msg("qr download failed")
			return out, err
		}
		out.Value = path
		out.Handled = true

	case CmdToggleMenu:
		out.MenuOpen = c.menu.Toggle()
		out.Handled = c.page.HasMenu

	case CmdFollowAnchor:
		out.Handled = c.anchors.FollowAnchor(cmd.Target)
		out.Value = c.anchors.Current()

	default:
		return out, fmt.Errorf("%w: %d", ErrUnknownCommand, cmd.Kind)
	}

	c.log.Debug().Str("func", "Controller.Dispatch").
		Stringer("command", cmd.Kind).
		Bool("handled", out.Handled).
		Msg("command dispatched")

	return out, nil
}

// AcknowledgeAlert closes the page's blocking alert.
func (c *Controller) AcknowledgeAlert() {
	if c.alerts != nil {
		c.alerts.Acknowledge()
	}
}

// View returns a fresh snapshot of everything the front-end renders besides
// the page model itself.
func (c *Controller) View() View {
	v := View{
		Notifications: c.center.Entries(),
		Strength:      make(map[string]string, len(c.pipelines)),
		MenuOpen:      c.menu.Open(),
		Anchor:        c.anchors.Current(),
	}
	if c.services.Notices != nil {
		v.Notices = c.services.Notices.Notices()
	}
	if c.alerts != nil {
		v.Alert, _ = c.alerts.Current()
	}
	for id, p := range c.pipelines {
		if label := p.StrengthLabel(); label != "" {
			v.Strength[id] = label
		}
	}
	return v
}

// Close detaches the page: change listeners are removed, the connectivity
// subscription ends and remaining notifications are dropped with their timers.
func (c *Controller) Close() {
	c.listenersMu.Lock()
	unsubscribes := c.unsubscribes
	c.unsubscribes = nil
	c.listenersMu.Unlock()

	for _, unsubscribe := range unsubscribes {
		unsubscribe()
	}

	c.monitor.Close()
	c.center.DismissAll()
}

func (c *Controller) pipeline(formID string) (*validators.Pipeline, error) {
	p, ok := c.pipelines[formID]
	if !ok {
		return nil, fmt.Errorf("%w: form %q", ErrUnknownTarget, formID)
	}
	return p, nil
}
