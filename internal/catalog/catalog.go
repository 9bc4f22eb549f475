// Package catalog keeps the in-memory course index: it loads a source file
// through the record parser, validates prerequisite references and answers
// list and lookup queries.
package catalog

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"slices"
	"sort"

	"course-planner/internal/domain"
	"course-planner/internal/record"
)

const maxLineSize = 1 << 20

// Report summarizes one successful Load.
type Report struct {
	Source    string
	Courses   int
	Malformed []*record.MalformedError
	Dangling  []DanglingPrerequisite

	// Changes is relative to the content the catalog held before the load.
	Changes Changes
}

// Warnings returns every non-fatal problem found during the load.
func (r Report) Warnings() []error {
	out := make([]error, 0, len(r.Malformed)+len(r.Dangling))
	for _, m := range r.Malformed {
		out = append(out, m)
	}
	for _, d := range r.Dangling {
		out = append(out, d)
	}
	return out
}

// Catalog maps course identifiers to courses. It is not safe for
// concurrent use.
type Catalog struct {
	Logger *slog.Logger

	// BaseDir, when set, prefixes relative source names.
	BaseDir string

	courses map[string]domain.Course
}

// New returns an empty catalog logging to logger, or slog.Default when nil.
func New(logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{
		Logger:  logger,
		courses: map[string]domain.Course{},
	}
}

// Load replaces the catalog with the courses read from source.
//
// If the source cannot be opened or read the current content is kept and
// the returned error matches ErrSourceUnavailable. Malformed lines and
// dangling prerequisites are logged and listed in the Report; they never
// fail the load. Nothing is logged for a load that fails.
func (c *Catalog) Load(source string) (Report, error) {
	path := resolve(c.BaseDir, source)
	rep := Report{Source: path}

	rc, err := openSource(path)
	if err != nil {
		return rep, &SourceError{Source: source, Op: "open", Err: err}
	}
	defer rc.Close()

	courses, malformed, err := c.read(rc)
	if err != nil {
		return rep, &SourceError{Source: source, Op: "read", Err: err}
	}

	rep.Changes = diff(c.courses, courses)
	c.courses = courses
	rep.Courses = len(courses)
	rep.Malformed = malformed
	for _, m := range malformed {
		c.Logger.Warn("invalid format in line", "line", m.Num, "text", m.Line)
	}
	rep.Dangling = c.validate()

	c.Logger.Info("load complete",
		"source", path,
		"courses", rep.Courses,
		"malformed", len(rep.Malformed),
		"dangling", len(rep.Dangling),
		"added", len(rep.Changes.Added),
		"updated", len(rep.Changes.Updated),
		"removed", len(rep.Changes.Removed),
	)
	return rep, nil
}

func (c *Catalog) read(r io.Reader) (map[string]domain.Course, []*record.MalformedError, error) {
	courses := map[string]domain.Course{}
	var malformed []*record.MalformedError

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		course, err := record.Parse(sc.Text())
		if err != nil {
			var merr *record.MalformedError
			if errors.As(err, &merr) {
				merr.Num = lineNo
				malformed = append(malformed, merr)
			}
			continue
		}
		// last write wins
		courses[course.ID] = course
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	return courses, malformed, nil
}

// validate reports prerequisites that do not resolve to a loaded course.
func (c *Catalog) validate() []DanglingPrerequisite {
	var out []DanglingPrerequisite
	for _, id := range c.ids() {
		for _, p := range c.courses[id].Prerequisites {
			if _, ok := c.courses[p]; ok {
				continue
			}
			d := DanglingPrerequisite{Course: id, Prerequisite: p}
			c.Logger.Warn("prerequisite not found in data", "course", id, "prerequisite", p)
			out = append(out, d)
		}
	}
	return out
}

// ids returns the catalog keys in ascending order.
func (c *Catalog) ids() []string {
	keys := make([]string, 0, len(c.courses))
	for k := range c.courses {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len reports how many courses are loaded.
func (c *Catalog) Len() int { return len(c.courses) }

// List returns every course ordered by identifier. An empty catalog yields
// ErrEmpty.
func (c *Catalog) List() ([]domain.Course, error) {
	if len(c.courses) == 0 {
		return nil, ErrEmpty
	}
	out := make([]domain.Course, 0, len(c.courses))
	for _, id := range c.ids() {
		out = append(out, clone(c.courses[id]))
	}
	return out, nil
}

// Find looks a course up by identifier, ignoring case and surrounding
// whitespace.
func (c *Catalog) Find(id string) (domain.Course, error) {
	key := record.Normalize(id)
	course, ok := c.courses[key]
	if !ok {
		return domain.Course{}, &notFoundError{id: key}
	}
	return clone(course), nil
}

type notFoundError struct{ id string }

func (e *notFoundError) Error() string { return "catalog: course " + e.id + " not found" }

func (e *notFoundError) Unwrap() error { return ErrNotFound }

func clone(c domain.Course) domain.Course {
	c.Prerequisites = slices.Clone(c.Prerequisites)
	return c
}
