package store

import "errors"

// Sentinel errors returned by the asset cache. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrAssetNotFound is returned when no cached copy exists for a URL.
	ErrAssetNotFound = errors.New("asset was not found in cache")

	// ErrInvalidAsset is returned when an asset without a URL is saved.
	ErrInvalidAsset = errors.New("asset has no url")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning an asset row fails.
	ErrScanningRow = errors.New("failed to scan asset row")
)
