package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"course-planner/internal/applog"
	"course-planner/internal/catalog"
	"course-planner/internal/config"
	"course-planner/internal/session"
)

func main() {
	if err := run(os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(in io.Reader, out, errW io.Writer) error {
	cfg, cfgErr := config.Load()
	logger := applog.New(cfg.Log.Level, cfg.Log.Format, errW)
	if cfgErr != nil {
		logger.Warn("using default settings", "err", cfgErr)
	}

	return newSession(cfg, logger, in, out).Run()
}

func newSession(cfg config.Config, logger *slog.Logger, in io.Reader, out io.Writer) *session.Session {
	cat := catalog.New(logger)
	cat.BaseDir = cfg.Catalog.DataDir

	s := session.New(cat, in, out)
	s.Logger = logger
	s.Suggestions = cfg.Catalog.Suggestions
	s.SuggestLimit = cfg.Catalog.SuggestLimit
	return s
}
