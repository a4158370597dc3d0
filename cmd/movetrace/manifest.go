package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"movetrace/internal/instrument"
)

// movetrace.toml lets a project pin where its interpreter writes traces, so
// the CLI can run without arguments from anywhere inside the tree.
type manifestConfig struct {
	Trace traceConfig `toml:"trace"`
}

type traceConfig struct {
	Path string `toml:"path"`
}

// findManifest walks up from startDir looking for movetrace.toml.
func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "movetrace.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// defaultTracePath resolves the trace file to operate on when the command
// line names none: the manifest's [trace] path (relative to the manifest's
// directory), falling back to the instrumentation default in the working
// directory.
func defaultTracePath() (string, error) {
	manifestPath, ok, err := findManifest(".")
	if err != nil {
		return "", err
	}
	if !ok {
		return instrument.DefaultTracePath, nil
	}

	var cfg manifestConfig
	if _, err := toml.DecodeFile(manifestPath, &cfg); err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", manifestPath, err)
	}
	if cfg.Trace.Path == "" {
		return instrument.DefaultTracePath, nil
	}
	if filepath.IsAbs(cfg.Trace.Path) {
		return cfg.Trace.Path, nil
	}
	return filepath.Join(filepath.Dir(manifestPath), cfg.Trace.Path), nil
}

// resolveTraceArg picks the explicit argument when given, the discovered
// default otherwise.
func resolveTraceArg(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	return defaultTracePath()
}
