package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("resource not found")
	ErrInternalError = errors.New("internal server error")
)

// Dataset errors
var (
	ErrEmptyDomains     = errors.New("at least one domain must be selected")
	ErrEmptyRegions     = errors.New("at least one region must be selected")
	ErrInvalidCount     = errors.New("participant count must be at least 1")
	ErrUnknownDomain    = errors.New("unknown hackathon domain")
	ErrUnknownRegion    = errors.New("unknown region")
	ErrDatasetNotFound  = errors.New("dataset not found")
	ErrEmptyFilterMatch = errors.New("no rows match the selected filters")
)

// Import/export errors
var (
	ErrBadHeader    = errors.New("unexpected CSV header")
	ErrBadRow       = errors.New("malformed CSV row")
	ErrEmptyUpload  = errors.New("uploaded table has no rows")
	ErrSnapshotPath = errors.New("snapshot path is not writable")
)

// Imaging errors
var (
	ErrUnknownFilter   = errors.New("unknown image filter")
	ErrUnknownPosition = errors.New("unknown overlay position")
	ErrDecodeImage     = errors.New("cannot decode image")
)
