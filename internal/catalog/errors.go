package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable matches every *SourceError.
	ErrSourceUnavailable = errors.New("catalog: source unavailable")

	// ErrNotFound is returned by Find when no course has the identifier.
	ErrNotFound = errors.New("catalog: course not found")

	// ErrEmpty is returned by List when the catalog holds no courses. It is
	// a "no data" condition, not a failure.
	ErrEmpty = errors.New("catalog: no courses loaded")
)

// SourceError carries the source name and the underlying open or read error.
type SourceError struct {
	Source string
	Op     string // "open" or "read"
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("catalog: %s %q: %v", e.Op, e.Source, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// DanglingPrerequisite is a load warning: Course lists Prerequisite but no
// course with that identifier was loaded.
type DanglingPrerequisite struct {
	Course       string
	Prerequisite string
}

func (d DanglingPrerequisite) Error() string {
	return fmt.Sprintf("catalog: prerequisite %s for course %s not found in data", d.Prerequisite, d.Course)
}
