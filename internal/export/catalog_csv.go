package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"

	"course-planner/internal/domain"
)

// WriteCatalog writes courses in the catalog source format, one
// "ID,Title,PREREQ..." line per course, in the order given.
func WriteCatalog(w io.Writer, courses []domain.Course) error {
	bw := bufio.NewWriter(w)
	for _, c := range courses {
		if _, err := bw.WriteString(toLine(c)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteCatalogFile writes the catalog to path, creating parent dirs. A .br
// path is brotli compressed so it loads back the same way.
func WriteCatalogFile(path string, courses []domain.Course) (err error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: mkdir %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("export: close %s: %w", path, cerr)
		}
	}()

	if !strings.EqualFold(filepath.Ext(path), ".br") {
		if err := WriteCatalog(f, courses); err != nil {
			return fmt.Errorf("export: write %s: %w", path, err)
		}
		return nil
	}

	bw := brotli.NewWriterLevel(f, brotli.DefaultCompression)
	if err := WriteCatalog(bw, courses); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	if err := bw.Close(); err != nil {
		return fmt.Errorf("export: compress %s: %w", path, err)
	}
	return nil
}

func toLine(c domain.Course) string {
	fields := make([]string, 0, 2+len(c.Prerequisites))
	fields = append(fields, cleanField(c.ID), cleanField(c.Title))
	for _, p := range c.Prerequisites {
		if p = cleanField(p); p != "" {
			fields = append(fields, p)
		}
	}
	line := strings.Join(fields, ",")
	// a trailing delimiter reads back as no field, so an empty last field
	// needs one more
	if fields[len(fields)-1] == "" {
		line += ","
	}
	return line
}

// cleanField keeps a value on one line and inside one field.
func cleanField(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, ",", " ")
	return s
}
