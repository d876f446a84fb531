package orm

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by single-row lookups that match zero rows.
var ErrNotFound = errors.New("record not found")

// MalformedFinderError reports a dynamic finder name that does not parse
// into a usable column list, or whose argument count does not match it.
type MalformedFinderError struct {
	Name   string
	Reason string
}

func (e *MalformedFinderError) Error() string {
	return fmt.Sprintf("orm: malformed finder %q: %s", e.Name, e.Reason)
}
