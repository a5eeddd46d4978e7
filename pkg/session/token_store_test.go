package session

import (
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	store := NewFileStore(path)

	if got := store.Token(); got != "" {
		t.Fatalf("expected empty token before save, got %q", got)
	}

	if err := store.Save("abc123"); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if got := store.Token(); got != "abc123" {
		t.Fatalf("expected abc123, got %q", got)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	if got := store.Token(); got != "" {
		t.Fatalf("expected empty token after clear, got %q", got)
	}
}

func TestFileStoreClearMissing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "token"))
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear of a missing file should succeed, got %v", err)
	}
}

func TestMemStore(t *testing.T) {
	store := NewMemStore()
	if err := store.Save("tok"); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if got := store.Token(); got != "tok" {
		t.Fatalf("expected tok, got %q", got)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	if got := store.Token(); got != "" {
		t.Fatalf("expected empty token after clear, got %q", got)
	}
}
