package peripheral_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-bus-pass/internal/logger"
	"github.com/MKhiriev/go-bus-pass/internal/mock"
	"github.com/MKhiriev/go-bus-pass/internal/peripheral"
)

func TestCopier_SuccessShowsNoticeForTwoSeconds(t *testing.T) {
	ctrl := gomock.NewController(t)
	clip := mock.NewMockClipboardWriter(ctrl)
	clip.EXPECT().WriteAll("BP-2024-001").Return(nil)

	s := &mock.ManualScheduler{}
	board := peripheral.NewNoticeBoard(s)
	c := peripheral.NewCopier(board, logger.Nop(), peripheral.WithClipboard(clip))

	assert.True(t, c.CopyToClipboard("BP-2024-001"))
	c.Wait()

	assert.Equal(t, []string{peripheral.CopiedNotice}, board.Notices())

	s.Advance(peripheral.DefaultNoticeDuration - time.Millisecond)
	assert.Len(t, board.Notices(), 1)

	s.Advance(time.Millisecond)
	assert.Empty(t, board.Notices())
}

func TestCopier_FailureShowsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	clip := mock.NewMockClipboardWriter(ctrl)
	clip.EXPECT().WriteAll(gomock.Any()).Return(errors.New("no display"))

	board := peripheral.NewNoticeBoard(&mock.ManualScheduler{})
	c := peripheral.NewCopier(board, logger.Nop(), peripheral.WithClipboard(clip))

	assert.True(t, c.CopyToClipboard("x"))
	c.Wait()

	assert.Empty(t, board.Notices())
}

func TestCopier_UnsupportedIsSilent(t *testing.T) {
	board := peripheral.NewNoticeBoard(&mock.ManualScheduler{})
	c := peripheral.NewCopier(board, logger.Nop(), peripheral.WithClipboard(nil))

	assert.False(t, c.Supported())
	assert.False(t, c.CopyToClipboard("x"))
	c.Wait()
	assert.Empty(t, board.Notices())
}

func TestCopier_CustomNoticeDuration(t *testing.T) {
	ctrl := gomock.NewController(t)
	clip := mock.NewMockClipboardWriter(ctrl)
	clip.EXPECT().WriteAll("a").Return(nil)

	s := &mock.ManualScheduler{}
	board := peripheral.NewNoticeBoard(s)
	c := peripheral.NewCopier(board, logger.Nop(),
		peripheral.WithClipboard(clip),
		peripheral.WithNoticeDuration(500*time.Millisecond))

	c.CopyToClipboard("a")
	c.Wait()

	s.Advance(500 * time.Millisecond)
	assert.Empty(t, board.Notices())
}

func TestNoticeBoard_IndependentNotices(t *testing.T) {
	s := &mock.ManualScheduler{}
	board := peripheral.NewNoticeBoard(s)
	changes := 0
	board.OnChange(func() { changes++ })

	board.Show("first", 2*time.Second)
	s.Advance(time.Second)
	board.Show("second", 2*time.Second)

	assert.Equal(t, []string{"first", "second"}, board.Notices())

	s.Advance(time.Second)
	assert.Equal(t, []string{"second"}, board.Notices())

	s.Advance(time.Second)
	assert.Empty(t, board.Notices())
	assert.Equal(t, 4, changes)
}

func TestNoticeBoard_OnChangeUnsubscribe(t *testing.T) {
	s := &mock.ManualScheduler{}
	board := peripheral.NewNoticeBoard(s)

	changes := 0
	unsubscribe := board.OnChange(func() { changes++ })

	board.Show("first", time.Second)
	unsubscribe()
	board.Show("second", time.Second)
	s.Advance(time.Second)

	assert.Equal(t, 1, changes)
	assert.Empty(t, board.Notices())
}
