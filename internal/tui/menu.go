package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuModel is the start screen listing the pages of the catalog.
type MenuModel struct {
	catalog *Catalog
	items   []string
	idx     int
	status  string
}

// NewMenuModel lists the pages of catalog.
func NewMenuModel(catalog *Catalog) *MenuModel {
	return &MenuModel{
		catalog: catalog,
		items:   catalog.Names(),
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		if len(m.items) == 0 {
			return m, nil
		}
		m.status = ""
		name := m.items[m.idx]
		return m, func() tea.Msg { return NavigateTo{Page: name} }
	}

	return m, nil
}

// setStatus shows an error line above the list, e.g. a page that failed to load.
func (m *MenuModel) setStatus(status string) {
	m.status = status
}

func (m *MenuModel) View() string {
	var b strings.Builder
	idColWidth := lipgloss.Width("#")
	itemsCountWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items)))
	if itemsCountWidth > idColWidth {
		idColWidth = itemsCountWidth
	}
	idColWidth += 2 // reserve space for selection marker and space ("<marker> <id>")

	titles := make([]string, len(m.items))
	pageColWidth := lipgloss.Width("Page")
	for i, item := range m.items {
		titles[i] = m.catalog.Title(item)
		if w := lipgloss.Width(titles[i]); w > pageColWidth {
			pageColWidth = w
		}
	}

	if m.status != "" {
		b.WriteString(errorStyle.Render("Error: " + m.status))
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("%-*s │ %s\n", idColWidth, "#", padRight("Page", pageColWidth)))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", pageColWidth))
	b.WriteString("\n")

	for i, title := range titles {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %s\n", idColWidth, idCell, padRight(title, pageColWidth)))
	}

	return renderPage("MAIN MENU", strings.TrimRight(b.String(), "\n"), "enter: open │ ↑/↓: navigate │ v: version")
}
