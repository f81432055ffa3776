package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-bus-pass/internal/app"
	"github.com/MKhiriev/go-bus-pass/internal/page"
	"github.com/MKhiriev/go-bus-pass/internal/validators"
	"github.com/MKhiriev/go-bus-pass/models"
)

type focusKind int

const (
	focusField focusKind = iota
	focusTable
	focusAction
)

// focusItem is one stop of the tab ring.
type focusItem struct {
	kind   focusKind
	form   string
	field  string
	table  string
	action int
}

// menuLink is one entry of the navigation menu: an in-page anchor or a page.
type menuLink struct {
	label  string
	anchor string
	page   string
}

// PageModel renders one loaded page and turns keys into page commands.
type PageModel struct {
	ctx        context.Context
	controller *page.Controller
	page       *models.Page

	items  []focusItem
	focus  int
	inputs map[string]*textinput.Model
	// headerCursor is the selected header column per table id.
	headerCursor map[string]int

	links   []menuLink
	linkIdx int

	status  string
	busy    bool
	spinner spinner.Model
}

// NewPageModel builds the focus ring of controller's page. catalog supplies
// the page links of the navigation menu.
func NewPageModel(ctx context.Context, controller *page.Controller, catalog *Catalog) *PageModel {
	p := controller.Page()
	m := &PageModel{
		ctx:          ctx,
		controller:   controller,
		page:         p,
		inputs:       make(map[string]*textinput.Model),
		headerCursor: make(map[string]int),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
	}

	for _, form := range p.Forms {
		for _, field := range form.Fields {
			in := textinput.New()
			in.Width = 32
			in.Prompt = ""
			in.SetValue(field.Value)
			if field.Secret {
				in.EchoMode = textinput.EchoPassword
				in.EchoCharacter = '*'
			}
			m.inputs[inputKey(form.ID, field.ID)] = &in
			m.items = append(m.items, focusItem{kind: focusField, form: form.ID, field: field.ID})
		}
	}
	for _, t := range p.Tables {
		m.items = append(m.items, focusItem{kind: focusTable, table: t.ID})
	}
	for i := range p.Actions {
		m.items = append(m.items, focusItem{kind: focusAction, action: i})
	}

	if p.HasMenu {
		for _, anchor := range p.Anchors {
			m.links = append(m.links, menuLink{label: "#" + anchor, anchor: anchor})
		}
		if catalog != nil {
			for _, name := range catalog.Names() {
				if name == p.Name {
					continue
				}
				m.links = append(m.links, menuLink{label: catalog.Title(name), page: name})
			}
		}
	}

	m.applyFocus()
	return m
}

func inputKey(formID, fieldID string) string {
	return formID + "/" + fieldID
}

func (m *PageModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *PageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case commandDoneMsg:
		if msg.owner != m.controller {
			return m, nil
		}
		m.busy = false
		if msg.err != nil {
			m.status = humanizeCommandError(msg.err)
			return m, nil
		}
		if msg.out.Kind == page.CmdDownloadQR {
			m.status = app.MsgSavedTo + msg.out.Value
		}
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if in := m.focusedInput(); in != nil {
		updated, cmd := in.Update(msg)
		*in = updated
		return m, cmd
	}
	return m, nil
}

func (m *PageModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := m.controller.View()

	if view.Alert != "" {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.controller.AcknowledgeAlert()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.menu):
		m.dispatch(page.ToggleMenu())
		m.linkIdx = 0
		return m, nil
	case key.Matches(msg, keys.dismiss):
		if n := len(view.Notifications); n > 0 {
			m.dispatch(page.Dismiss(view.Notifications[n-1].ID))
		}
		return m, nil
	}

	if view.MenuOpen {
		return m.handleMenuKey(msg)
	}

	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate(menuPage)
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.down):
		m.moveFocus(1)
		return m, nil
	case key.Matches(msg, keys.backtab), key.Matches(msg, keys.up):
		m.moveFocus(-1)
		return m, nil
	}

	item, ok := m.focusedItem()
	if !ok {
		return m, nil
	}

	switch item.kind {
	case focusField:
		return m.handleFieldKey(item, msg)
	case focusTable:
		return m.handleTableKey(item, msg)
	case focusAction:
		if key.Matches(msg, keys.enter) {
			return m, m.runAction(m.page.Actions[item.action])
		}
	}
	return m, nil
}

func (m *PageModel) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.dispatch(page.ToggleMenu())
	case key.Matches(msg, keys.up):
		if m.linkIdx > 0 {
			m.linkIdx--
		}
	case key.Matches(msg, keys.down):
		if m.linkIdx < len(m.links)-1 {
			m.linkIdx++
		}
	case key.Matches(msg, keys.enter):
		if len(m.links) == 0 {
			return m, nil
		}
		link := m.links[m.linkIdx]
		m.dispatch(page.ToggleMenu())
		if link.page != "" {
			return m, navigate(link.page)
		}
		m.dispatch(page.FollowAnchor(link.anchor))
	}
	return m, nil
}

func (m *PageModel) handleFieldKey(item focusItem, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.enter) {
		out, ok := m.dispatch(page.Submit(item.form))
		if !ok || !out.Handled {
			return m, nil
		}
		form, _ := m.page.FormByID(item.form)
		if form.Action == "" {
			m.status = app.MsgSubmitted
			return m, nil
		}
		return m, navigate(form.Action)
	}

	in := m.inputs[inputKey(item.form, item.field)]
	before := in.Value()
	updated, cmd := in.Update(msg)
	*in = updated

	if in.Value() != before {
		if out, ok := m.dispatch(page.InputChange(item.form, item.field, in.Value())); ok && out.Value != in.Value() {
			in.SetValue(out.Value)
		}
	}
	return m, cmd
}

func (m *PageModel) handleTableKey(item focusItem, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t, ok := m.page.TableByID(item.table)
	if !ok || len(t.Headers) == 0 {
		return m, nil
	}

	col := m.headerCursor[t.ID]
	switch {
	case key.Matches(msg, keys.left):
		if col > 0 {
			m.headerCursor[t.ID] = col - 1
		}
	case key.Matches(msg, keys.right):
		if col < len(t.Headers)-1 {
			m.headerCursor[t.ID] = col + 1
		}
	case key.Matches(msg, keys.enter):
		m.dispatch(page.ClickHeader(t.ID, col))
	}
	return m, nil
}

func (m *PageModel) runAction(a models.Action) tea.Cmd {
	switch a.Kind {
	case models.ActionCopy:
		if out, ok := m.dispatch(page.CopyText(a.Value)); ok && !out.Handled {
			m.status = app.MsgClipboardUnavailable
		}
	case models.ActionAnchor:
		m.dispatch(page.FollowAnchor(a.Value))
	case models.ActionDownload:
		if m.busy {
			return nil
		}
		m.busy = true
		m.status = app.MsgDownloading + a.Filename + "..."
		return tea.Batch(m.dispatchAsync(page.DownloadQR(a.Filename, a.Value)), m.spinner.Tick)
	}
	return nil
}

// dispatch runs cmd synchronously and reports failures on the status line.
func (m *PageModel) dispatch(cmd page.Command) (page.Outcome, bool) {
	out, err := m.controller.Dispatch(m.ctx, cmd)
	if err != nil {
		m.status = humanizeCommandError(err)
		return out, false
	}
	m.status = ""
	return out, true
}

// dispatchAsync runs a command that may block (network, disk) off the
// update loop.
func (m *PageModel) dispatchAsync(cmd page.Command) tea.Cmd {
	ctx, controller := m.ctx, m.controller
	return func() tea.Msg {
		out, err := controller.Dispatch(ctx, cmd)
		return commandDoneMsg{owner: controller, out: out, err: err}
	}
}

func navigate(name string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: name} }
}

func (m *PageModel) focusedItem() (focusItem, bool) {
	if m.focus < 0 || m.focus >= len(m.items) {
		return focusItem{}, false
	}
	return m.items[m.focus], true
}

func (m *PageModel) focusedInput() *textinput.Model {
	item, ok := m.focusedItem()
	if !ok || item.kind != focusField {
		return nil
	}
	return m.inputs[inputKey(item.form, item.field)]
}

func (m *PageModel) moveFocus(delta int) {
	if len(m.items) == 0 {
		return
	}
	m.focus = (m.focus + delta + len(m.items)) % len(m.items)
	m.applyFocus()
}

func (m *PageModel) applyFocus() {
	focused := m.focusedInput()
	for _, in := range m.inputs {
		if in == focused {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (m *PageModel) View() string {
	view := m.controller.View()
	if view.Alert != "" {
		return renderAlertOverlay(view.Alert)
	}

	var b strings.Builder

	for _, n := range view.Notifications {
		style := notificationStyles[string(n.Kind)]
		if n.Fading {
			style = fadingStyle
		}
		b.WriteString(style.Render(n.Kind.Icon() + " " + n.Message))
		b.WriteString("\n")
	}
	for _, notice := range view.Notices {
		b.WriteString(noticeStyle.Render(notice))
		b.WriteString("\n")
	}
	if len(view.Notifications)+len(view.Notices) > 0 {
		b.WriteString("\n")
	}

	if view.MenuOpen {
		b.WriteString(m.renderMenu())
		b.WriteString("\n")
	}
	if view.Anchor != "" {
		b.WriteString(titleStyle.Render("§ " + view.Anchor))
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		focused := i == m.focus && !view.MenuOpen
		switch item.kind {
		case focusField:
			b.WriteString(m.renderField(item, focused))
		case focusTable:
			b.WriteString(m.renderTable(item.table, focused))
		case focusAction:
			label := "[ " + m.page.Actions[item.action].Label + " ]"
			if focused {
				label = focusStyle.Render(label)
			}
			b.WriteString(label)
			b.WriteString("\n")
		}
	}

	for _, form := range m.page.Forms {
		label, ok := view.Strength[form.ID]
		if !ok {
			continue
		}
		style := helpStyle
		if field, ok := form.FieldByName(models.FieldPassword); ok {
			style = strengthStyles[string(validators.RatePassword(field.Value).Tier)]
		}
		b.WriteString("\n")
		b.WriteString(style.Render(label))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.busy {
			b.WriteString(m.spinner.View() + " ")
		}
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	hotKeys := "tab/↑/↓: focus │ enter: submit │ ←/→: column │ ctrl+x: dismiss │ esc: menu"
	if m.page.HasMenu {
		hotKeys += " │ ctrl+g: navigation"
	}
	return renderPage(strings.ToUpper(m.page.Title), strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *PageModel) renderField(item focusItem, focused bool) string {
	form, _ := m.page.FormByID(item.form)
	field, _ := form.FieldByID(item.field)
	in := m.inputs[inputKey(item.form, item.field)]

	label := field.Label
	if field.Required {
		label += " *"
	}
	label = padRight(fitText(label, 20), 20)
	if focused {
		label = focusStyle.Render(label)
	}

	mark := ""
	switch field.Border {
	case models.BorderValid:
		mark = " " + validStyle.Render("✓")
	case models.BorderInvalid:
		mark = " " + invalidStyle.Render("✗")
	}

	return fmt.Sprintf("%s [%s]%s\n", label, in.View(), mark)
}

func (m *PageModel) renderTable(tableID string, focused bool) string {
	t, ok := m.page.TableByID(tableID)
	if !ok {
		return ""
	}

	widths := make([]int, len(t.Headers))
	headers := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		headers[i] = h.Label
		switch h.Direction {
		case models.SortAscending:
			headers[i] += " ▲"
		case models.SortDescending:
			headers[i] += " ▼"
		}
		widths[i] = len([]rune(headers[i]))
	}
	for _, row := range t.Rows {
		for i := range widths {
			if w := len([]rune(row.Cell(i))); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	cells := make([]string, len(headers))
	for i, h := range headers {
		cell := padRight(h, widths[i])
		if focused && i == m.headerCursor[t.ID] {
			cell = focusStyle.Render(cell)
		} else {
			cell = titleStyle.Render(cell)
		}
		cells[i] = cell
	}
	b.WriteString(strings.Join(cells, " │ "))
	b.WriteString("\n")

	seps := make([]string, len(widths))
	for i, w := range widths {
		seps[i] = strings.Repeat("─", w)
	}
	b.WriteString(strings.Join(seps, "─┼─"))
	b.WriteString("\n")

	if len(t.Rows) == 0 {
		b.WriteString("-\n")
	}
	for _, row := range t.Rows {
		for i := range cells {
			cells[i] = padRight(row.Cell(i), widths[i])
		}
		b.WriteString(strings.Join(cells, " │ "))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *PageModel) renderMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Navigation"))
	b.WriteString("\n")
	for i, link := range m.links {
		cursor := "  "
		if i == m.linkIdx {
			cursor = "> "
		}
		b.WriteString(cursor + link.label + "\n")
	}
	return b.String()
}
