package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestLibraryViewShowsCatalog(t *testing.T) {
	m := newTestModel(t, Options{Width: 100, Height: 20})
	view := m.View()
	for _, want := range []string{"Nexus Games", "Search games...", "Game Library", "Chess Arena", "Speed Run", "Chess Puzzle", "Details", "WEB GAME"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
	if rows := strings.Count(view, "\n") + 1; rows != 20 {
		t.Fatalf("expected view to fill 20 rows, got %d", rows)
	}
}

func TestLibraryViewNarrowDropsDetailPanel(t *testing.T) {
	m := newTestModel(t, Options{Width: 60})
	view := m.View()
	if strings.Contains(view, "Details") {
		t.Fatalf("expected no detail panel at width 60, got:\n%s", view)
	}
}

func TestLibraryViewEmptyPlaceholder(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Type("zzz")
	view := h.View()
	if !strings.Contains(view, "No games found") || !strings.Contains(view, "Try adjusting your search query.") {
		t.Fatalf("expected empty placeholder, got:\n%s", view)
	}
}

func TestPlayerViewShowsFrameAndControls(t *testing.T) {
	m := newTestModel(t, Options{Width: 100, Pages: fakePages{base: "http://127.0.0.1:4000"}})
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyEnter})
	view := m.View()
	for _, want := range []string{
		"← Back to Library (esc)",
		"Chess Arena",
		"Now Playing",
		"Game Frame",
		"https://games.test/chess-arena/",
		"http://127.0.0.1:4000/play/1",
		"Game Controls",
		"WASD / Arrows",
		"Esc / P",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in player view, got:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Search games...") {
		t.Fatalf("expected no search prompt in player view")
	}
}

func TestRenderPanelSizesToContent(t *testing.T) {
	m := newTestModel(t, Options{})
	panel := m.renderPanel("Box", []string{"one", "two"}, 20, 0)
	rows := strings.Split(panel, "\n")
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d:\n%s", len(rows), panel)
	}
	for i, row := range rows {
		if w := len([]rune(row)); w != 20 {
			t.Fatalf("row %d: expected width 20, got %d (%q)", i, w, row)
		}
	}
}

func TestVerboseShowsGameIDs(t *testing.T) {
	plain := newTestModel(t, Options{Width: 60}).View()
	if strings.Contains(plain, "[2]") {
		t.Fatalf("expected no ids without verbose, got:\n%s", plain)
	}
	verbose := newTestModel(t, Options{Width: 60, Verbose: true}).View()
	if !strings.Contains(verbose, "Speed Run  [2]") {
		t.Fatalf("expected ids with verbose, got:\n%s", verbose)
	}
}
