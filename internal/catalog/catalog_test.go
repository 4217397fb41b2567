package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func sampleRecords() []GameRecord {
	return []GameRecord{
		{ID: "1", Title: "Chess Arena", Thumbnail: "https://t/1.png", IframeURL: "https://g/1"},
		{ID: "2", Title: "Speed Run", Thumbnail: "https://t/2.png", IframeURL: "https://g/2"},
		{ID: "3", Title: "Chess Puzzle", Thumbnail: "https://t/3.png", IframeURL: "https://g/3"},
	}
}

func TestNewPreservesOrderAndCopies(t *testing.T) {
	records := sampleRecords()
	c, err := New(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	records[0].Title = "mutated"
	games := c.Games()
	if len(games) != 3 || c.Len() != 3 {
		t.Fatalf("expected 3 games, got %d", len(games))
	}
	if games[0].Title != "Chess Arena" {
		t.Fatalf("expected catalog to be isolated from input, got %q", games[0].Title)
	}
	games[1].Title = "changed"
	if again := c.Games(); again[1].Title != "Speed Run" {
		t.Fatalf("expected Games to return a copy, got %q", again[1].Title)
	}
	for i, id := range []string{"1", "2", "3"} {
		if games[i].ID != id {
			t.Fatalf("expected id %s at %d, got %s", id, i, games[i].ID)
		}
	}
}

func TestNewRejectsInvalidRecords(t *testing.T) {
	cases := []struct {
		name    string
		records []GameRecord
		want    error
	}{
		{"empty id", []GameRecord{{ID: " ", Title: "x", IframeURL: "https://g"}}, ErrEmptyID},
		{"duplicate", []GameRecord{{ID: "a", IframeURL: "https://g"}, {ID: "a", IframeURL: "https://h"}}, ErrDuplicateID},
		{"missing iframe", []GameRecord{{ID: "a", Title: "A"}}, ErrMissingIframeURL},
	}
	for _, tc := range cases {
		if _, err := New(tc.records); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestLookupAndContains(t *testing.T) {
	c, err := New(sampleRecords())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec, ok := c.Lookup("3")
	if !ok || rec.Title != "Chess Puzzle" {
		t.Fatalf("expected lookup of id 3, got %#v (%v)", rec, ok)
	}
	if _, ok := c.Lookup("missing"); ok {
		t.Fatalf("expected missing id to be absent")
	}
	if !c.Contains(rec) {
		t.Fatalf("expected catalog to contain its own record")
	}
	forged := rec
	forged.IframeURL = "https://evil/"
	if c.Contains(forged) {
		t.Fatalf("expected altered record not to be a member")
	}
	var nilCatalog *Catalog
	if nilCatalog.Len() != 0 || nilCatalog.Contains(rec) {
		t.Fatalf("expected nil catalog to behave as empty")
	}
}

func TestDefaultCatalogLoads(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("expected bundled catalog to load: %v", err)
	}
	if c.Len() == 0 {
		t.Fatalf("expected bundled catalog to contain games")
	}
}

func TestLoadJSONAndYAML(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "games.json")
	jsonBody := `[{"id":"a","title":"Alpha","thumbnail":"https://t/a","iframeUrl":"https://g/a"}]`
	if err := os.WriteFile(jsonPath, []byte(jsonBody), 0o644); err != nil {
		t.Fatalf("write json: %v", err)
	}
	c, err := Load(jsonPath)
	if err != nil {
		t.Fatalf("load json: %v", err)
	}
	if rec, ok := c.Lookup("a"); !ok || rec.IframeURL != "https://g/a" {
		t.Fatalf("unexpected json record %#v", rec)
	}

	yamlPath := filepath.Join(dir, "games.yaml")
	yamlBody := "- id: b\n  title: Beta\n  thumbnail: https://t/b\n  iframeUrl: https://g/b\n"
	if err := os.WriteFile(yamlPath, []byte(yamlBody), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	c, err = Load(yamlPath)
	if err != nil {
		t.Fatalf("load yaml: %v", err)
	}
	if rec, ok := c.Lookup("b"); !ok || rec.Title != "Beta" {
		t.Fatalf("unexpected yaml record %#v", rec)
	}
}

func TestLoadRejectsUnknownExtensionAndFields(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "games.txt")
	if err := os.WriteFile(txt, []byte("[]"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(txt); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`[{"id":"a","iframeUrl":"https://g","score":3}]`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Fatalf("expected unknown field to be rejected")
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
