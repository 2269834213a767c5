package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Catalog & storage sentinel values. Every remote failure inside the catalog
// workflow is converted into exactly one of these at the operation boundary.
var (
	ErrNotFound          = errors.New("not found")
	ErrFetchFailed       = errors.New("failed to load projects")
	ErrPersistenceFailed = errors.New("failed to persist record")
	ErrImageUploadFailed = errors.New("image upload failed")
	ErrBlobNotFound      = errors.New("stored object not found")
)

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

// NewFetchFailedError wraps a failed catalog refresh. The stale snapshot stays
// authoritative; the caller may retry manually.
func NewFetchFailedError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrFetchFailed,
		Cause:      cause,
	}
}

// NewPersistenceFailedError wraps a failed insert, update or delete against the
// record store.
func NewPersistenceFailedError(operation, entity string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrPersistenceFailed,
		Details:    fmt.Sprintf("Failed to %s %s", operation, entity),
		Cause:      cause,
	}
}

// NewImageUploadFailedError wraps a failed blob upload. The save aborts before
// any record mutation.
func NewImageUploadFailedError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrImageUploadFailed,
		Cause:      cause,
	}
}

func IsFetchFailed(err error) bool {
	return errors.Is(err, ErrFetchFailed)
}

func IsPersistenceFailed(err error) bool {
	return errors.Is(err, ErrPersistenceFailed)
}

func IsImageUploadFailed(err error) bool {
	return errors.Is(err, ErrImageUploadFailed)
}

func IsBlobNotFound(err error) bool {
	return errors.Is(err, ErrBlobNotFound)
}
