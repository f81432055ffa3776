// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front-end: it renders page models and turns
// key presses into page commands.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-bus-pass/internal/logger"
	"github.com/MKhiriev/go-bus-pass/models"
)

var (
	// ErrUserQuit is returned by Run when the user pressed ctrl+c.
	ErrUserQuit = errors.New("user quit")
	// ErrNoLoader is returned by New without a page loader.
	ErrNoLoader = errors.New("tui: page loader is required")
)

// TUI runs the terminal front-end.
type TUI struct {
	catalog   *Catalog
	loader    Loader
	buildInfo models.BuildInfo
	log       *logger.Logger
}

// New creates the front-end. A nil catalog means DefaultCatalog.
func New(catalog *Catalog, loader Loader, buildInfo models.BuildInfo, log *logger.Logger) (*TUI, error) {
	if loader == nil {
		return nil, ErrNoLoader
	}
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &TUI{
		catalog:   catalog,
		loader:    loader,
		buildInfo: buildInfo,
		log:       log,
	}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.catalog, t.loader, t.buildInfo, t.log)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	root.closePage()
	if err != nil {
		return err
	}

	result, ok := finalModel.(*RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
