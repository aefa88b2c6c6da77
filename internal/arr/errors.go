package arr

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the backend reports a record does not exist.
// Callers must distinguish it from UnavailableError: "looked, did not find"
// is a normal negative result, not a failure to look.
var ErrNotFound = errors.New("record not found")

// UnavailableError reports a failed backend call: a transport error, a
// non-2xx response, or an undecodable payload. It is never retried here.
type UnavailableError struct {
	Backend string // catalog name, e.g. "movie"
	Status  int    // HTTP status, 0 for transport failures
	Message string // backend-provided message when available
	Err     error  // underlying cause, may be nil
}

func (e *UnavailableError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("%s backend unavailable: %s", e.Backend, e.Message)
	case e.Status != 0:
		return fmt.Sprintf("%s backend unavailable: HTTP %d", e.Backend, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s backend unavailable: %v", e.Backend, e.Err)
	default:
		return fmt.Sprintf("%s backend unavailable", e.Backend)
	}
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// IsUnavailable reports whether err is (or wraps) an UnavailableError.
func IsUnavailable(err error) bool {
	var ue *UnavailableError
	return errors.As(err, &ue)
}
