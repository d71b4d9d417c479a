package store

import (
	"path/filepath"
	"testing"
)

func TestInMemoryStore(t *testing.T) {
	t.Parallel()
	s := New()

	if _, found := s.Get("missing"); found {
		t.Fatal("empty store should not find keys")
	}

	s.Set("adminAuthenticated", "true")
	v, found := s.Get("adminAuthenticated")
	if !found || v != "true" {
		t.Fatalf("Get = (%q, %t)", v, found)
	}

	s.Delete("adminAuthenticated")
	if _, found := s.Get("adminAuthenticated"); found {
		t.Fatal("deleted key should be gone")
	}

	if err := s.Flush(); err != nil {
		t.Fatalf("in-memory Flush should be a no-op: %v", err)
	}
}

func TestFileStoreRoundtrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "session.db")

	s, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	s.Set("palefo-api-url", "http://localhost:5056/api")
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	reopened, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile reopen: %v", err)
	}
	v, found := reopened.Get("palefo-api-url")
	if !found || v != "http://localhost:5056/api" {
		t.Fatalf("persisted value lost: (%q, %t)", v, found)
	}
}

func TestNewFileMissingSnapshotStartsEmpty(t *testing.T) {
	t.Parallel()
	s, err := NewFile(filepath.Join(t.TempDir(), "does-not-exist.db"))
	if err != nil {
		t.Fatalf("missing snapshot should not be an error: %v", err)
	}
	if _, found := s.Get("anything"); found {
		t.Fatal("fresh store should be empty")
	}
}

func TestNewFileEmptyPath(t *testing.T) {
	t.Parallel()
	if _, err := NewFile(""); err == nil {
		t.Fatal("empty path must be rejected")
	}
}
