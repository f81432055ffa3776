package notify

import "errors"

// ErrInvalidTimings is returned by Timings.Validate when a duration is negative.
var ErrInvalidTimings = errors.New("notification timings must not be negative")
