package config

import "errors"

// Validation errors returned by [ClientConfig.validate].
var (
	// ErrInvalidUIConfigs indicates an unparsable locale or unknown sort polarity.
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
	// ErrInvalidNotificationConfigs indicates a negative notification duration.
	ErrInvalidNotificationConfigs = errors.New("invalid notification configuration")
	// ErrInvalidConnectivityConfigs indicates a malformed probe URL or negative probe timings.
	ErrInvalidConnectivityConfigs = errors.New("invalid connectivity configuration")
	// ErrInvalidStorageConfigs indicates a missing cache DSN or downloads directory.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
