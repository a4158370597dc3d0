package main

import (
	"os"
	"path/filepath"
	"testing"

	"movetrace/internal/instrument"
)

// chdir changes the working directory for the duration of the test.
// Equivalent to t.Chdir, which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func TestDefaultTracePathWithoutManifest(t *testing.T) {
	chdir(t, t.TempDir())

	got, err := defaultTracePath()
	if err != nil {
		t.Fatal(err)
	}
	if got != instrument.DefaultTracePath {
		t.Errorf("path = %q, want %q", got, instrument.DefaultTracePath)
	}
}

func TestDefaultTracePathFromManifest(t *testing.T) {
	root := t.TempDir()
	manifest := "[trace]\npath = \"out/run.trace\"\n"
	if err := os.WriteFile(filepath.Join(root, "movetrace.toml"), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}

	// Manifest discovery walks up from a nested directory.
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	chdir(t, nested)

	got, err := defaultTracePath()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(root, "out", "run.trace")
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestDefaultTracePathEmptyManifest(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "movetrace.toml"), []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, root)

	got, err := defaultTracePath()
	if err != nil {
		t.Fatal(err)
	}
	if got != instrument.DefaultTracePath {
		t.Errorf("path = %q, want default", got)
	}
}

func TestResolveTraceArgPrefersExplicit(t *testing.T) {
	got, err := resolveTraceArg([]string{"explicit.trace"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "explicit.trace" {
		t.Errorf("path = %q, want explicit.trace", got)
	}
}

func TestTruncateLabel(t *testing.T) {
	if got := truncateLabel("short", 10); got != "short" {
		t.Errorf("short label changed: %q", got)
	}
	got := truncateLabel("vector::borrow_mut<some::very::long::Type>", 16)
	if len(got) > 16 {
		t.Errorf("truncated label too wide: %q", got)
	}
}
