package peripheral

import "errors"

var (
	// ErrInvalidFilename is returned when a download name has no usable base name.
	ErrInvalidFilename = errors.New("invalid download filename")
	// ErrDownloadFailed is returned when neither the network nor the asset
	// cache can provide the requested file.
	ErrDownloadFailed = errors.New("download failed")
)
