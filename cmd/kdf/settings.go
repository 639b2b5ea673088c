package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"kdf/internal/kdf"
	"kdf/internal/logging"
)

// Settings is the optional YAML settings file
type Settings struct {
	Iterations    uint32      `yaml:"iterations"`
	MaxIterations uint32      `yaml:"max_iterations"` // 0 means no ceiling
	Log           LogSettings `yaml:"log"`
}

// LogSettings controls the stderr logger
type LogSettings struct {
	Level  string `yaml:"level"`  // debug, info, warn or error
	Format string `yaml:"format"` // "text" or "json"
}

func defaultSettings() Settings {
	return Settings{
		Log: LogSettings{Level: "info", Format: "text"},
	}
}

// defaultSettingsPath returns <user config dir>/kdf/config.yaml, or "" when
// the platform has no config dir
func defaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "kdf", "config.yaml")
}

// loadSettings reads path. A missing file yields defaults unless the path
// was given explicitly.
func loadSettings(path string, explicit bool) (Settings, error) {
	s := defaultSettings()
	if path == "" {
		return s, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return s, nil
		}
		return s, fmt.Errorf("failed to open settings: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return s, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	if err := s.validate(); err != nil {
		return s, fmt.Errorf("invalid settings %s: %w", path, err)
	}
	return s, nil
}

func (s Settings) validate() error {
	if s.MaxIterations > 0 && s.Iterations > s.MaxIterations {
		return fmt.Errorf("iterations %d exceeds max_iterations %d", s.Iterations, s.MaxIterations)
	}
	switch s.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unsupported log format: %s", s.Log.Format)
	}
	switch strings.ToLower(s.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unsupported log level: %s", s.Log.Level)
	}
	return nil
}

// setup loads settings and builds the logger before any command runs
func (a *app) setup(cmd *cobra.Command, args []string) error {
	path, explicit := a.configPath, a.configPath != ""
	if !explicit {
		if env := os.Getenv(ConfigEnvVar); env != "" {
			path, explicit = env, true
		} else {
			path = defaultSettingsPath()
		}
	}

	s, err := loadSettings(path, explicit)
	if err != nil {
		return err
	}

	opts := logging.Options{Level: s.Log.Level, Format: s.Log.Format}
	if a.verbose {
		opts.Level = "debug"
	}
	if a.logFormat != "" {
		if a.logFormat != "text" && a.logFormat != "json" {
			return fmt.Errorf("unsupported log format: %s", a.logFormat)
		}
		opts.Format = a.logFormat
	}

	a.settings = s
	a.log = logging.New(cmd.ErrOrStderr(), opts)
	a.log.Debug("settings loaded", "path", path, "iterations", s.Iterations, "max_iterations", s.MaxIterations)
	return nil
}

// resolveIterations takes the count from args, falling back to the settings
// file, and enforces max_iterations
func (a *app) resolveIterations(args []string) (uint32, error) {
	var n uint32
	switch {
	case len(args) > 0:
		parsed, err := kdf.ParseIterations(args[0])
		if err != nil {
			return 0, err
		}
		n = parsed
	case a.settings.Iterations > 0:
		n = a.settings.Iterations
	default:
		return 0, fmt.Errorf("iterations required: pass [iterations] or set iterations in the settings file")
	}

	if ceiling := a.settings.MaxIterations; ceiling > 0 && n > ceiling {
		return 0, fmt.Errorf("%w: %d exceeds max_iterations %d", kdf.ErrInvalidIterations, n, ceiling)
	}
	return n, nil
}
