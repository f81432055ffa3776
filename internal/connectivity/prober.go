// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connectivity

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-bus-pass/internal/logger"
	"github.com/MKhiriev/go-bus-pass/models"
	"github.com/go-resty/resty/v2"
)

const (
	defaultProbeInterval = 10 * time.Second
	defaultProbeTimeout  = 3 * time.Second
)

// ProberConfig configures a Prober.
type ProberConfig struct {
	URL      string
	Interval time.Duration
	Timeout  time.Duration
}

// Prober is a Source that detects connectivity by issuing periodic HEAD
// requests. Any HTTP response counts as online, a transport error as
// offline. The first probe only sets the baseline; afterwards subscribers
// are called on every change.
type Prober struct {
	client   *resty.Client
	url      string
	interval time.Duration
	log      *logger.Logger

	mu      sync.Mutex
	subs    map[int]func(models.ConnectivityState)
	nextSub int
	known   bool
	state   models.ConnectivityState
	netType models.EffectiveNetworkType

	jobMu  sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewProber creates an idle prober. Call Start to begin probing.
func NewProber(cfg ProberConfig, log *logger.Logger) (*Prober, error) {
	if cfg.URL == "" {
		return nil, ErrProbeURLMissing
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultProbeInterval
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultProbeTimeout
	}

	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(0)

	return &Prober{
		client:   client,
		url:      cfg.URL,
		interval: cfg.Interval,
		log:      log.ForComponent("prober"),
		subs:     make(map[int]func(models.ConnectivityState)),
	}, nil
}

// Subscribe implements Source.
func (p *Prober) Subscribe(fn func(models.ConnectivityState)) func() {
	p.mu.Lock()
	id := p.nextSub
	p.nextSub++
	p.subs[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.subs, id)
		p.mu.Unlock()
	}
}

// Start probes once immediately and then every interval until ctx is
// cancelled or Stop is called. A running job is stopped first.
func (p *Prober) Start(ctx context.Context) {
	p.Stop()

	p.jobMu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.jobMu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		p.Probe(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				p.Probe(jobCtx)
			}
		}
	}()
}

// Stop cancels the probing goroutine and waits for it to exit. Safe to call
// when the prober is not running.
func (p *Prober) Stop() {
	p.jobMu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.jobMu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

// Probe performs a single reachability check and returns the observed state.
func (p *Prober) Probe(ctx context.Context) models.ConnectivityState {
	started := time.Now()
	_, err := p.client.R().SetContext(ctx).Head(p.url)
	rtt := time.Since(started)

	if ctx.Err() != nil {
		// cancelled probes say nothing about the network
		p.mu.Lock()
		defer p.mu.Unlock()
		return p.state
	}

	if err != nil {
		p.log.Debug().Err(err).Str("func", "Prober.Probe").Msg("probe failed")
		p.observe(models.Offline)
		return models.Offline
	}

	p.noteNetworkType(ClassifyRTT(rtt), rtt)
	p.observe(models.Online)

	return models.Online
}

// State returns the last observed state; ok is false before the first probe.
func (p *Prober) State() (state models.ConnectivityState, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state, p.known
}

// EffectiveType returns the type measured by the last successful probe.
func (p *Prober) EffectiveType() models.EffectiveNetworkType {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.netType
}

// noteNetworkType records the measured type. A slow network is logged when the
// type changes to it, not on every probe.
func (p *Prober) noteNetworkType(netType models.EffectiveNetworkType, rtt time.Duration) {
	p.mu.Lock()
	changed := p.netType != netType
	p.netType = netType
	p.mu.Unlock()

	if changed && netType.Slow() {
		p.log.Info().Str("func", "Prober.noteNetworkType").
			Str("effective_type", string(netType)).
			Dur("rtt", rtt).
			Msg("slow network detected")
	}
}

func (p *Prober) observe(state models.ConnectivityState) {
	p.mu.Lock()
	if !p.known {
		p.known = true
		p.state = state
		p.mu.Unlock()
		return
	}
	if p.state == state {
		p.mu.Unlock()
		return
	}
	p.state = state

	subs := make([]func(models.ConnectivityState), 0, len(p.subs))
	for _, fn := range p.subs {
		subs = append(subs, fn)
	}
	p.mu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}
