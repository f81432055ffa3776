// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package peripheral holds the one-shot page helpers: clipboard copy with
// its transient notice, QR downloads backed by the asset cache, the
// navigation menu toggle and in-page anchor scrolling.
package peripheral

import (
	"sync"
	"time"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-bus-pass/internal/logger"
)

// Clipboard notice defaults.
const (
	CopiedNotice          = "Copied to clipboard!"
	DefaultNoticeDuration = 2 * time.Second
)

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Copier copies text to the clipboard and confirms success on a NoticeBoard.
type Copier struct {
	clip      ClipboardWriter
	supported bool
	board     *NoticeBoard
	notice    time.Duration
	log       *logger.Logger
	wg        sync.WaitGroup
}

// CopierOption customizes a Copier.
type CopierOption func(*Copier)

// WithClipboard replaces the system clipboard.
func WithClipboard(w ClipboardWriter) CopierOption {
	return func(c *Copier) {
		c.clip = w
		c.supported = w != nil
	}
}

// WithNoticeDuration sets how long the confirmation stays visible.
func WithNoticeDuration(d time.Duration) CopierOption {
	return func(c *Copier) {
		if d > 0 {
			c.notice = d
		}
	}
}

// NewCopier returns a Copier for the system clipboard. When the platform has
// no clipboard utility the copier is disabled.
func NewCopier(board *NoticeBoard, log *logger.Logger, opts ...CopierOption) *Copier {
	c := &Copier{
		clip:      systemClipboard{},
		supported: !clipboard.Unsupported,
		board:     board,
		notice:    DefaultNoticeDuration,
		log:       log.ForComponent("clipboard"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Supported reports whether copying is available.
func (c *Copier) Supported() bool {
	return c.supported
}

// CopyToClipboard writes text in the background. It returns false without
// doing anything when the clipboard is unavailable. Write failures are only
// logged.
func (c *Copier) CopyToClipboard(text string) bool {
	if !c.supported {
		c.log.Debug().Str("func", "Copier.CopyToClipboard").Msg("clipboard unsupported, copy skipped")
		return false
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		if err := c.clip.WriteAll(text); err != nil {
			c.log.Err(err).Str("func", "Copier.CopyToClipboard").Msg("failed to write clipboard")
			return
		}
		c.board.Show(CopiedNotice, c.notice)
	}()

	return true
}

// Wait blocks until all pending writes have finished.
func (c *Copier) Wait() {
	c.wg.Wait()
}
