package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-bus-pass/internal/logger"
	"github.com/MKhiriev/go-bus-pass/internal/page"
	"github.com/MKhiriev/go-bus-pass/models"
)

const (
	menuPage     = "menu"
	tickInterval = 100 * time.Millisecond
)

// Loader creates the interaction layer for a freshly built page.
type Loader func(ctx context.Context, p *models.Page) (*page.Controller, error)

// RootModel is a TUI router:
// 1) keeps the active page and its controller
// 2) handles global Ctrl+C quit and the build info window
// 3) handles NavigateTo messages: every navigation is a new page load
// 4) drives the re-render tick
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx     context.Context
	catalog *Catalog
	loader  Loader

	menu       *MenuModel
	current    tea.Model
	controller *page.Controller

	quitByUser    bool
	buildInfo     models.BuildInfo
	showBuildInfo bool

	log *logger.Logger
}

// NewRootModel opens the menu page.
func NewRootModel(ctx context.Context, catalog *Catalog, loader Loader, buildInfo models.BuildInfo, log *logger.Logger) *RootModel {
	menu := NewMenuModel(catalog)
	return &RootModel{
		ctx:       ctx,
		catalog:   catalog,
		loader:    loader,
		menu:      menu,
		current:   menu,
		buildInfo: buildInfo,
		log:       log.ForComponent("tui"),
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (r *RootModel) Init() tea.Cmd {
	return tea.Batch(tick(), r.current.Init())
}

func (r *RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			r.closePage()
			return r, tea.Quit
		case key.Matches(keyMsg, keys.version) && r.isMenuPage():
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case tickMsg:
		return r, tick()
	case NavigateTo:
		return r, r.navigate(msg.Page)
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

// navigate unloads the current page and loads name.
func (r *RootModel) navigate(name string) tea.Cmd {
	r.showBuildInfo = false
	r.closePage()

	if name == menuPage {
		r.current = r.menu
		return r.current.Init()
	}

	p, ok := r.catalog.Build(name)
	if !ok {
		r.menu.setStatus(fmt.Sprintf("page %q does not exist", name))
		r.current = r.menu
		return nil
	}

	controller, err := r.loader(r.ctx, p)
	if err != nil {
		r.log.Err(err).Str("func", "RootModel.navigate").Str("page", name).Msg("page load failed")
		r.menu.setStatus(fmt.Sprintf("could not open %s", p.Title))
		r.current = r.menu
		return nil
	}

	r.controller = controller
	r.current = NewPageModel(r.ctx, controller, r.catalog)
	return r.current.Init()
}

func (r *RootModel) closePage() {
	if r.controller != nil {
		r.controller.Close()
		r.controller = nil
	}
}

func (r *RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	return r.current.View()
}

func (r *RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
