package asset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}

func TestResolve_OverrideExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitat_index_H.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	src, err := Resolve(context.Background(), path)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if src.Location() != path {
		t.Errorf("unexpected location: %s", src.Location())
	}
}

func TestResolve_OverrideMissing(t *testing.T) {
	_, err := Resolve(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResolve_DefaultCandidates(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "data"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "data", "habitat_index_H.json"), []byte("{}"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	chdir(t, dir)

	src, err := Resolve(context.Background(), "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if filepath.Base(src.Location()) != "habitat_index_H.json" {
		t.Errorf("unexpected location: %s", src.Location())
	}
}

func TestResolve_NothingFound(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Resolve(context.Background(), "")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFilesystemSource_Fetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "h.json")
	want := []byte(`{"lat":[1]}`)
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	src, err := NewFilesystemSource(path)
	if err != nil {
		t.Fatalf("NewFilesystemSource failed: %v", err)
	}
	got, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNewFilesystemSource_Missing(t *testing.T) {
	_, err := NewFilesystemSource(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
