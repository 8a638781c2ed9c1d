package store

import (
	"path/filepath"
	"testing"
)

// OpenTest opens a throwaway on-disk store under t.TempDir. A real file is
// used rather than ":memory:" because the sql pool may open more than one
// connection, and each in-memory connection would see its own empty database.
func OpenTest(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "gather_test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}
