package backend

import (
	"errors"
)

var (
	// ErrNotFound means the backend answered but holds no record for the request.
	ErrNotFound = errors.New("record not found")
	// ErrUnavailable wraps transport failures and unexpected backend responses.
	ErrUnavailable = errors.New("backend unavailable")
)

// Failure kinds reported in run summaries.
const (
	KindNotFound    = "not_found"
	KindUnavailable = "unavailable"
	KindOther       = "other"
)

// Kind classifies an error returned by any backend client.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrUnavailable):
		return KindUnavailable
	default:
		return KindOther
	}
}
