// Package testutil provides catalog fixtures shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/nexus-games/internal/catalog"
)

// SampleGames mirrors the three-game scenario used throughout the tests.
func SampleGames() []catalog.GameRecord {
	return []catalog.GameRecord{
		{ID: "1", Title: "Chess Arena", Thumbnail: "https://thumbs.test/1.jpg", IframeURL: "https://games.test/chess-arena/"},
		{ID: "2", Title: "Speed Run", Thumbnail: "https://thumbs.test/2.jpg", IframeURL: "https://games.test/speed-run/"},
		{ID: "3", Title: "Chess Puzzle", Thumbnail: "https://thumbs.test/3.jpg", IframeURL: "https://games.test/chess-puzzle/"},
	}
}

// SampleCatalog builds a catalog from SampleGames.
func SampleCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	return MustCatalog(t, SampleGames()...)
}

// MustCatalog builds a catalog from records or fails the test.
func MustCatalog(t *testing.T, records ...catalog.GameRecord) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(records)
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return c
}

// WriteCatalogFile writes body to name inside a temporary directory and
// returns the full path.
func WriteCatalogFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}
	return path
}
