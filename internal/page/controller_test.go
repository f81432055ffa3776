// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package page_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-bus-pass/internal/connectivity"
	"github.com/MKhiriev/go-bus-pass/internal/logger"
	"github.com/MKhiriev/go-bus-pass/internal/mock"
	"github.com/MKhiriev/go-bus-pass/internal/notify"
	"github.com/MKhiriev/go-bus-pass/internal/page"
	"github.com/MKhiriev/go-bus-pass/internal/peripheral"
	"github.com/MKhiriev/go-bus-pass/internal/validators"
	"github.com/MKhiriev/go-bus-pass/models"
)

// ── fixtures ─────────────────────────────────────────────────────────────────

func registerPage() *models.Page {
	return &models.Page{
		Name:  "register",
		Title: "Student Registration",
		Forms: []*models.Form{{
			ID:     "register",
			Action: "/register",
			Fields: []*models.Field{
				{ID: "name", Name: "name", Label: "Full name", Required: true},
				{ID: "reg_no", Name: models.FieldRegNo, Label: "Registration number", Required: true},
				{ID: "password", Name: models.FieldPassword, Label: "Password", Required: true, Secret: true},
				{ID: "phone", Name: "phone", Label: "Phone"},
			},
		}},
		Anchors: []string{"features"},
		HasMenu: true,
	}
}

func dashboardPage() *models.Page {
	return &models.Page{
		Name: "admin_dashboard",
		Tables: []*models.Table{{
			ID: "students",
			Headers: []models.Header{
				{Label: "Name", Sortable: true},
				{Label: "Route"},
			},
			Rows: []models.Row{
				{Key: "1", Cells: []string{"Bob", "3"}},
				{Key: "2", Cells: []string{"Alice", "1"}},
				{Key: "3", Cells: []string{"Ann", "2"}},
			},
		}},
		Flash: []models.Flash{{Message: "Admin registration successful! You can now login.", Kind: models.NotificationSuccess}},
	}
}

func testConfig(s notify.Scheduler) page.Config {
	cfg := page.DefaultConfig()
	cfg.Scheduler = s
	return cfg
}

func load(t *testing.T, p *models.Page, services page.Services) (*page.Controller, *mock.ManualScheduler) {
	t.Helper()
	s := &mock.ManualScheduler{}
	c, err := page.Load(context.Background(), p, testConfig(s), services, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c, s
}

func cells(t *models.Table) [][]string {
	out := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.Cells
	}
	return out
}

// ── load ─────────────────────────────────────────────────────────────────────

func TestLoad_NilPage(t *testing.T) {
	_, err := page.Load(context.Background(), nil, page.DefaultConfig(), page.Services{}, logger.Nop())
	assert.ErrorIs(t, err, page.ErrUnknownTarget)
}

func TestLoad_AdoptsFlashMessages(t *testing.T) {
	c, s := load(t, dashboardPage(), page.Services{})

	entries := c.View().Notifications
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Adopted)
	assert.False(t, entries[0].Fading)
	assert.Equal(t, models.NotificationSuccess, entries[0].Kind)

	s.Advance(notify.FlashAutoDismiss)
	require.Len(t, c.View().Notifications, 1)
	assert.True(t, c.View().Notifications[0].Fading)

	s.Advance(notify.FadeDuration)
	assert.Empty(t, c.View().Notifications)
}

func TestLoad_AdoptedErrorFlashKeepsKind(t *testing.T) {
	p := &models.Page{
		Name:  "admin_login",
		Flash: []models.Flash{{Message: "Invalid username or password", Kind: models.NotificationError}},
	}
	c, _ := load(t, p, page.Services{})

	entries := c.View().Notifications
	require.Len(t, entries, 1)
	assert.Equal(t, models.NotificationError, entries[0].Kind)
	assert.Equal(t, "⚠", entries[0].Kind.Icon())
}

func TestLoad_NoFlashNoContainer(t *testing.T) {
	c, _ := load(t, registerPage(), page.Services{})
	assert.False(t, c.Center().HasContainer())
}

func TestLoad_MeasuresLoadTime(t *testing.T) {
	start := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	calls := 0
	cfg := testConfig(&mock.ManualScheduler{})
	cfg.Now = func() time.Time {
		calls++
		return start.Add(time.Duration(calls-1) * 120 * time.Millisecond)
	}

	c, err := page.Load(context.Background(), registerPage(), cfg, page.Services{}, logger.Nop())
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, 120*time.Millisecond, c.LoadTime())
}

// ── submit ───────────────────────────────────────────────────────────────────

func TestDispatch_SubmitBlockedRaisesOneAlert(t *testing.T) {
	c, _ := load(t, registerPage(), page.Services{})

	out, err := c.Dispatch(context.Background(), page.Submit("register"))

	require.NoError(t, err)
	assert.False(t, out.Handled)
	require.NotNil(t, out.Validation)
	assert.Equal(t, []string{"name", "reg_no", "password"}, out.Validation.InvalidFieldIDs)
	assert.Equal(t, validators.RequiredFieldsAlert, c.View().Alert)

	form, _ := c.Page().FormByID("register")
	assert.Equal(t, models.BorderInvalid, form.Fields[0].Border)
	assert.Equal(t, models.BorderUnmarked, form.Fields[3].Border, "optional fields are not marked")

	c.AcknowledgeAlert()
	assert.Empty(t, c.View().Alert)
}

func TestDispatch_SubmitProceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	alerter := mock.NewMockAlerter(ctrl)
	alerter.EXPECT().Alert(gomock.Any()).Times(0)

	c, _ := load(t, registerPage(), page.Services{Alerter: alerter})
	ctx := context.Background()

	for field, value := range map[string]string{"name": "Ann", "reg_no": "21cs042", "password": "Secret1!"} {
		_, err := c.Dispatch(ctx, page.InputChange("register", field, value))
		require.NoError(t, err)
	}

	out, err := c.Dispatch(ctx, page.Submit("register"))

	require.NoError(t, err)
	assert.True(t, out.Handled)
	assert.True(t, out.Validation.IsValid)
}

func TestDispatch_SubmitUnknownForm(t *testing.T) {
	c, _ := load(t, registerPage(), page.Services{})

	_, err := c.Dispatch(context.Background(), page.Submit("login"))
	assert.ErrorIs(t, err, page.ErrUnknownTarget)
}

// ── input ────────────────────────────────────────────────────────────────────

func TestDispatch_InputUpperCasesRegNoAndRatesPassword(t *testing.T) {
	c, _ := load(t, registerPage(), page.Services{})
	ctx := context.Background()

	out, err := c.Dispatch(ctx, page.InputChange("register", "reg_no", "21cs042"))
	require.NoError(t, err)
	assert.Equal(t, "21CS042", out.Value)

	_, err = c.Dispatch(ctx, page.InputChange("register", "password", "abc123"))
	require.NoError(t, err)
	assert.Equal(t, "Password strength: Fair", c.View().Strength["register"])

	_, err = c.Dispatch(ctx, page.InputChange("register", "password", ""))
	require.NoError(t, err)
	_, shown := c.View().Strength["register"]
	assert.False(t, shown)
}

func TestDispatch_InputUnknownField(t *testing.T) {
	c, _ := load(t, registerPage(), page.Services{})

	_, err := c.Dispatch(context.Background(), page.InputChange("register", "email", "x"))
	assert.ErrorIs(t, err, page.ErrUnknownTarget)
}

// ── sorting ──────────────────────────────────────────────────────────────────

func TestDispatch_ClickHeaderToggles(t *testing.T) {
	c, _ := load(t, dashboardPage(), page.Services{})
	ctx := context.Background()
	table, _ := c.Page().TableByID("students")

	out, err := c.Dispatch(ctx, page.ClickHeader("students", 0))
	require.NoError(t, err)
	assert.True(t, out.Handled)
	assert.Equal(t, [][]string{{"Bob", "3"}, {"Ann", "2"}, {"Alice", "1"}}, cells(table))
	assert.Equal(t, models.SortDescending, table.Headers[0].Direction)

	_, err = c.Dispatch(ctx, page.ClickHeader("students", 0))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Alice", "1"}, {"Ann", "2"}, {"Bob", "3"}}, cells(table))
	assert.Equal(t, models.SortAscending, table.Headers[0].Direction)
}

func TestDispatch_ClickPlainHeaderIsNoop(t *testing.T) {
	c, _ := load(t, dashboardPage(), page.Services{})
	table, _ := c.Page().TableByID("students")
	before := cells(table)

	out, err := c.Dispatch(context.Background(), page.ClickHeader("students", 1))

	require.NoError(t, err)
	assert.False(t, out.Handled)
	assert.Equal(t, before, cells(table))
}

func TestDispatch_ClickHeaderUnknownTable(t *testing.T) {
	c, _ := load(t, dashboardPage(), page.Services{})

	_, err := c.Dispatch(context.Background(), page.ClickHeader("passes", 0))
	assert.ErrorIs(t, err, page.ErrUnknownTarget)
}

// ── connectivity ─────────────────────────────────────────────────────────────

func TestDispatch_ConnectivityOfflineThenOnline(t *testing.T) {
	c, _ := load(t, registerPage(), page.Services{})
	ctx := context.Background()

	_, err := c.Dispatch(ctx, page.ConnectivityChange(models.Offline))
	require.NoError(t, err)
	_, err = c.Dispatch(ctx, page.ConnectivityChange(models.Online))
	require.NoError(t, err)

	entries := c.View().Notifications
	require.Len(t, entries, 2)
	assert.Equal(t, connectivity.MessageOffline, entries[0].Message)
	assert.Equal(t, models.NotificationError, entries[0].Kind)
	assert.Equal(t, connectivity.MessageOnline, entries[1].Message)
	assert.Equal(t, models.NotificationSuccess, entries[1].Kind)
}

func TestLoad_SubscribesSourceAndCloseUnsubscribes(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mock.NewMockSource(ctrl)

	var deliver func(models.ConnectivityState)
	unsubscribed := false
	src.EXPECT().Subscribe(gomock.Any()).DoAndReturn(func(fn func(models.ConnectivityState)) func() {
		deliver = fn
		return func() { unsubscribed = true }
	}).Times(1)

	c, err := page.Load(context.Background(), registerPage(), testConfig(&mock.ManualScheduler{}),
		page.Services{Source: src}, logger.Nop())
	require.NoError(t, err)

	deliver(models.Offline)
	assert.Len(t, c.View().Notifications, 1)

	c.Close()
	assert.True(t, unsubscribed)
	assert.Empty(t, c.View().Notifications)
}

// ── dismiss ──────────────────────────────────────────────────────────────────

func TestDispatch_DismissIsIdempotent(t *testing.T) {
	c, s := load(t, registerPage(), page.Services{})
	ctx := context.Background()
	n := c.Center().Show("Saved", models.NotificationInfo)

	changes := 0
	c.OnChange(func() { changes++ })

	out, err := c.Dispatch(ctx, page.Dismiss(n.ID))
	require.NoError(t, err)
	assert.True(t, out.Handled)

	out, err = c.Dispatch(ctx, page.Dismiss(n.ID))
	require.NoError(t, err)
	assert.False(t, out.Handled)

	// the cancelled timer finds nothing to do
	s.Advance(time.Hour)
	assert.Equal(t, 1, changes)
}

func TestClose_RemovesChangeListenersFromSharedBoard(t *testing.T) {
	s := &mock.ManualScheduler{}
	board := peripheral.NewNoticeBoard(s)
	services := page.Services{Notices: board}

	first, err := page.Load(context.Background(), registerPage(), testConfig(s), services, logger.Nop())
	require.NoError(t, err)
	closedCalls := 0
	first.OnChange(func() { closedCalls++ })
	first.Close()

	second, _ := load(t, registerPage(), services)
	liveCalls := 0
	second.OnChange(func() { liveCalls++ })

	board.Show(peripheral.CopiedNotice, time.Second)
	first.Center().Show("late", models.NotificationInfo)

	assert.Zero(t, closedCalls, "a closed page must not be notified")
	assert.Equal(t, 1, liveCalls)
}

// ── peripherals ──────────────────────────────────────────────────────────────

func TestDispatch_CopyText(t *testing.T) {
	ctrl := gomock.NewController(t)
	clip := mock.NewMockClipboardWriter(ctrl)
	clip.EXPECT().WriteAll("BP-7").Return(nil)

	board := peripheral.NewNoticeBoard(&mock.ManualScheduler{})
	copier := peripheral.NewCopier(board, logger.Nop(), peripheral.WithClipboard(clip))

	c, _ := load(t, registerPage(), page.Services{Copier: copier, Notices: board})

	out, err := c.Dispatch(context.Background(), page.CopyText("BP-7"))
	require.NoError(t, err)
	assert.True(t, out.Handled)

	copier.Wait()
	assert.Equal(t, []string{peripheral.CopiedNotice}, c.View().Notices)
	assert.Empty(t, c.View().Notifications, "the copy notice is not a notification")
}

func TestDispatch_CopyWithoutClipboard(t *testing.T) {
	c, _ := load(t, registerPage(), page.Services{})

	out, err := c.Dispatch(context.Background(), page.CopyText("x"))
	require.NoError(t, err)
	assert.False(t, out.Handled)
}

func TestDispatch_DownloadUnavailable(t *testing.T) {
	c, _ := load(t, registerPage(), page.Services{})

	_, err := c.Dispatch(context.Background(), page.DownloadQR("qr.png", "http://127.0.0.1:1/qr.png"))
	assert.ErrorIs(t, err, page.ErrDownloadUnavailable)
}

func TestDispatch_ToggleMenuAndAnchors(t *testing.T) {
	c, _ := load(t, registerPage(), page.Services{})
	ctx := context.Background()

	out, err := c.Dispatch(ctx, page.ToggleMenu())
	require.NoError(t, err)
	assert.True(t, out.MenuOpen)
	assert.True(t, c.View().MenuOpen)

	out, err = c.Dispatch(ctx, page.FollowAnchor("#features"))
	require.NoError(t, err)
	assert.True(t, out.Handled)
	assert.Equal(t, "features", c.View().Anchor)

	out, err = c.Dispatch(ctx, page.FollowAnchor("#missing"))
	require.NoError(t, err)
	assert.False(t, out.Handled)
	assert.Equal(t, "features", out.Value)
}

func TestDispatch_UnknownCommand(t *testing.T) {
	c, _ := load(t, registerPage(), page.Services{})

	_, err := c.Dispatch(context.Background(), page.Command{Kind: page.CommandKind(99)})
	assert.ErrorIs(t, err, page.ErrUnknownCommand)
	assert.Equal(t, "unknown", page.CommandKind(99).String())
}
