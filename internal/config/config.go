package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	appDir   = "course-planner"
	fileName = "config.toml"
)

type Config struct {
	Log     LogConfig     `toml:"log"`
	Catalog CatalogConfig `toml:"catalog"`
}

type LogConfig struct {
	Level  string `toml:"level"`  // debug|info|warn|error
	Format string `toml:"format"` // text|json
}

type CatalogConfig struct {
	DataDir      string `toml:"data_dir"`
	Suggestions  bool   `toml:"suggestions"`
	SuggestLimit int    `toml:"suggest_limit"`
}

func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Catalog: CatalogConfig{
			Suggestions:  false,
			SuggestLimit: 3,
		},
	}
}

// Path returns the settings file location under the user config dir.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: user config dir: %w", err)
	}
	return filepath.Join(dir, appDir, fileName), nil
}

// Load reads the settings file. A missing file is not an error. On any
// error the defaults are returned alongside it so callers can keep going.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFile(path)
}

func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("config: read %s: %w", path, err)
	}
	return parse(data)
}

func parse(data []byte) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", fileName, err)
	}
	return normalize(cfg), nil
}

// normalize falls back to defaults for values outside the accepted set.
func normalize(c Config) Config {
	def := Default()

	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		c.Log.Level = def.Log.Level
	}

	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	if c.Log.Format != "json" {
		c.Log.Format = "text"
	}

	c.Catalog.DataDir = strings.TrimSpace(c.Catalog.DataDir)
	if c.Catalog.SuggestLimit < 1 || c.Catalog.SuggestLimit > 10 {
		c.Catalog.SuggestLimit = def.Catalog.SuggestLimit
	}
	return c
}
