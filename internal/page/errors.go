package page

import "errors"

var (
	// ErrUnknownTarget is returned when a command names a form, field or
	// table the page does not have.
	ErrUnknownTarget = errors.New("unknown command target")
	// ErrUnknownCommand is returned for a command kind the controller does
	// not handle.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrDownloadUnavailable is returned when the page has no downloader.
	ErrDownloadUnavailable = errors.New("downloads are unavailable")
)
