package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"course-planner/internal/applog"
	"course-planner/internal/config"
)

func TestNewSessionUsesConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "courses.txt"), []byte("cs101, Intro\ncs102, Intro II, cs999\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Catalog.DataDir = dir
	cfg.Catalog.Suggestions = true

	var out, errW bytes.Buffer
	in := strings.NewReader("1\ncourses.txt\n3\ncs103\n9\n")
	if err := newSession(cfg, applog.New(cfg.Log.Level, cfg.Log.Format, &errW), in, &out).Run(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !strings.Contains(out.String(), "Data loaded successfully.") {
		t.Errorf("Expected relative source to resolve against data_dir, got %q", out.String())
	}
	if !strings.Contains(out.String(), "CS103 not found.\nDid you mean: CS101, CS102?") {
		t.Errorf("Expected suggestions in output, got %q", out.String())
	}
	if !strings.Contains(errW.String(), "prerequisite=CS999") {
		t.Errorf("Expected dangling prerequisite warning on stderr, got %q", errW.String())
	}
}

func TestRun(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	var out, errW bytes.Buffer
	if err := run(strings.NewReader("abc\n9\n"), &out, &errW); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(out.String(), "abc is not a valid option.") {
		t.Errorf("Expected invalid option message, got %q", out.String())
	}
	if !strings.HasSuffix(out.String(), "Thank you for using the course planner!\n") {
		t.Errorf("Expected farewell at the end, got %q", out.String())
	}
}
