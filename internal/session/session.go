// Package session runs the interactive menu on top of a catalog.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"course-planner/internal/catalog"
	"course-planner/internal/record"
)

const (
	choiceLoad    = 1
	choiceList    = 2
	choiceShow    = 3
	choiceExit    = 9
	choiceInvalid = -1
)

const menu = `
1. Load Data Structure.
2. Print Course List.
3. Print Course.
9. Exit.

What would you like to do? `

// Session is one interactive run of the menu against a catalog.
type Session struct {
	Logger *slog.Logger

	// Suggestions adds a "Did you mean" line after a failed lookup.
	Suggestions  bool
	SuggestLimit int

	cat    *catalog.Catalog
	in     *bufio.Reader
	out    io.Writer
	loaded bool
}

// New returns a session reading choices from in and rendering to out.
func New(cat *catalog.Catalog, in io.Reader, out io.Writer) *Session {
	return &Session{
		Logger:       slog.Default(),
		SuggestLimit: 3,
		cat:          cat,
		in:           bufio.NewReader(in),
		out:          out,
	}
}

// Run loops over the menu until the user exits or input ends. The returned
// error is only ever an I/O failure on the input stream.
func (s *Session) Run() error {
	s.printf("Welcome to the course planner.\n")

	for {
		s.printf("%s", menu)

		line, err := s.readLine()
		if errors.Is(err, io.EOF) {
			s.printf("\n")
			return s.exit()
		}
		if err != nil {
			return fmt.Errorf("session: read choice: %w", err)
		}

		choice := parseChoice(line)
		s.Logger.Debug("menu choice", "raw", line, "choice", choice)

		switch choice {
		case choiceLoad:
			err = s.load()
		case choiceList:
			s.list()
		case choiceShow:
			err = s.show()
		case choiceExit:
			return s.exit()
		default:
			s.printf("%s is not a valid option.\n", line)
		}

		if errors.Is(err, io.EOF) {
			s.printf("\n")
			return s.exit()
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) exit() error {
	s.printf("Thank you for using the course planner!\n")
	return nil
}

func (s *Session) load() error {
	s.printf("Enter filename: ")
	name, err := s.readLine()
	if err != nil {
		return err
	}

	rep, err := s.cat.Load(name)
	if err != nil {
		if errors.Is(err, catalog.ErrSourceUnavailable) {
			s.Logger.Debug("load failed", "source", name, "err", err)
			s.printf("Error: Unable to open file \"%s\".\n", name)
			return nil
		}
		return err
	}

	s.loaded = true
	s.Logger.Debug("catalog loaded",
		"source", rep.Source,
		"courses", rep.Courses,
		"warnings", len(rep.Warnings()),
		"added", len(rep.Changes.Added),
		"removed", len(rep.Changes.Removed),
	)
	s.printf("Data loaded successfully.\n")
	return nil
}

func (s *Session) list() {
	if !s.loaded {
		s.printf("Please load data first.\n")
		return
	}

	courses, err := s.cat.List()
	if errors.Is(err, catalog.ErrEmpty) {
		s.printf("No course data loaded.\n")
		return
	}

	s.printf("\nHere is a course list:\n\n")
	for _, c := range courses {
		s.printf("%s\n", c.Summary())
	}
	s.printf("\n")
}

func (s *Session) show() error {
	if !s.loaded {
		s.printf("Please load data first.\n")
		return nil
	}

	s.printf("What course do you want to know about? ")
	query, err := s.readLine()
	if err != nil {
		return err
	}

	c, err := s.cat.Find(query)
	if errors.Is(err, catalog.ErrNotFound) {
		s.printf("%s not found.\n", record.Normalize(query))
		if s.Suggestions {
			if ids := s.cat.Suggest(query, s.SuggestLimit); len(ids) > 0 {
				s.printf("Did you mean: %s?\n", strings.Join(ids, ", "))
			}
		}
		s.printf("\n")
		return nil
	}
	if err != nil {
		return err
	}

	s.printf("\n%s\n", c.Summary())
	s.printf("Prerequisites: %s\n\n", c.PrerequisiteLine())
	return nil
}

// readLine returns one input line without its line ending. A final line
// without a newline is returned as-is; io.EOF is only reported when nothing
// was read.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// parseChoice converts the raw menu input to a choice number. Anything that
// is not an integer becomes choiceInvalid.
func parseChoice(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return choiceInvalid
	}
	return n
}
