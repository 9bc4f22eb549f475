package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"course-planner/internal/applog"
	"course-planner/internal/catalog"
	"course-planner/internal/config"
	"course-planner/internal/export"
)

var errUsage = errors.New("usage")

func main() {
	err := run(os.Args[1:], os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, errUsage):
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, errW io.Writer) error {
	fs := flag.NewFlagSet("exportcatalog", flag.ContinueOnError)
	fs.SetOutput(errW)
	var (
		inPath  = fs.String("in", "", "catalog source to load (.br is decompressed)")
		outPath = fs.String("out", "catalog.csv", "output path (.br is compressed)")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return errUsage
	}
	if *inPath == "" {
		fmt.Fprintln(errW, "exportcatalog: -in is required")
		fs.Usage()
		return errUsage
	}

	cfg, cfgErr := config.Load()
	logger := applog.New(cfg.Log.Level, cfg.Log.Format, errW)
	if cfgErr != nil {
		logger.Warn("using default settings", "err", cfgErr)
	}

	cat := catalog.New(logger)
	cat.BaseDir = cfg.Catalog.DataDir

	rep, err := cat.Load(*inPath)
	if err != nil {
		return err
	}

	courses, err := cat.List()
	if err != nil && !errors.Is(err, catalog.ErrEmpty) {
		return err
	}

	if err := export.WriteCatalogFile(*outPath, courses); err != nil {
		return err
	}

	logger.Info("wrote catalog",
		"out", *outPath,
		"courses", len(courses),
		"warnings", len(rep.Warnings()),
	)
	return nil
}
