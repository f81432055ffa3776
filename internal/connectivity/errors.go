package connectivity

import "errors"

// ErrProbeURLMissing is returned by NewProber when no probe URL is configured.
var ErrProbeURLMissing = errors.New("connectivity probe url is not configured")
