// Package record parses catalog source lines into courses.
//
// A record is one line of comma separated fields:
//
//	ID, Title[, PREREQ]...
//
// Fields are trimmed of surrounding whitespace. There is no quoting, so a
// comma always ends a field.
package record

import (
	"errors"
	"fmt"
	"strings"

	"course-planner/internal/domain"
)

// Delimiter separates fields inside a record.
const Delimiter = ","

const cutset = " \t\r\n"

var (
	// ErrBlank is returned for empty or whitespace-only lines. Callers skip
	// these silently.
	ErrBlank = errors.New("record: blank line")

	// ErrMalformedRecord matches every *MalformedError.
	ErrMalformedRecord = errors.New("record: malformed record")
)

// MalformedError reports a line that does not carry at least an ID and a title.
type MalformedError struct {
	Line   string
	Fields int
	Num    int // 1-based line number, set by callers reading a file
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("record: invalid format (%d field(s), need 2): %q", e.Fields, e.Line)
}

func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformedRecord
}

// Normalize trims an identifier and folds it to upper case.
func Normalize(s string) string {
	return strings.ToUpper(strings.Trim(s, cutset))
}

// Parse turns one source line into a Course.
func Parse(line string) (domain.Course, error) {
	if strings.Trim(line, cutset) == "" {
		return domain.Course{}, ErrBlank
	}

	fields := split(line)
	if len(fields) < 2 {
		return domain.Course{}, &MalformedError{Line: line, Fields: len(fields)}
	}

	c := domain.Course{
		ID:    strings.ToUpper(fields[0]),
		Title: fields[1],
	}
	for _, f := range fields[2:] {
		if f == "" {
			continue
		}
		c.Prerequisites = append(c.Prerequisites, strings.ToUpper(f))
	}
	return c, nil
}

// split cuts the line on the delimiter and trims every field. A trailing
// delimiter does not open a new field, so "cs101," has one field.
func split(line string) []string {
	raw := strings.Split(line, Delimiter)
	if n := len(raw); n > 1 && raw[n-1] == "" {
		raw = raw[:n-1]
	}

	out := make([]string, len(raw))
	for i, f := range raw {
		out[i] = strings.Trim(f, cutset)
	}
	return out
}
