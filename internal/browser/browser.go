// Package browser owns the catalog browser's session state: the filter text and
// the selected game. The active view and the visible list are derived from that
// state on every read and are never stored.
package browser

import (
	"fmt"

	"github.com/atomicstack/nexus-games/internal/catalog"
)

// View identifies which screen the browser is showing.
type View int

const (
	ViewLibrary View = iota
	ViewPlayer
)

func (v View) String() string {
	switch v {
	case ViewPlayer:
		return "player"
	default:
		return "library"
	}
}

// State is a value copy of the browser's application state.
type State struct {
	FilterText string
	Selected   *catalog.GameRecord
}

// Browser drives the library/player view machine over a static catalog.
type Browser struct {
	catalog    *catalog.Catalog
	filterText string
	selected   *catalog.GameRecord
	generation int
}

// New starts a session in the library view with an empty filter.
func New(c *catalog.Catalog) *Browser {
	return &Browser{catalog: c}
}

// SetFilter replaces the filter text. Any string is accepted.
func (b *Browser) SetFilter(text string) {
	b.filterText = text
}

// SelectGame switches to the player view for g. g must be a catalog member;
// passing anything else is a programming error and panics.
func (b *Browser) SelectGame(g catalog.GameRecord) {
	if !b.catalog.Contains(g) {
		panic(fmt.Sprintf("browser: game %q is not in the catalog", g.ID))
	}
	rec := g
	b.selected = &rec
	b.generation++
}

// GoBack returns to the library, keeping the filter. It reports whether the
// state changed; calling it from the library is a no-op.
func (b *Browser) GoBack() bool {
	if b.selected == nil {
		return false
	}
	b.selected = nil
	return true
}

// View derives the active view from the selection.
func (b *Browser) View() View {
	if b.selected != nil {
		return ViewPlayer
	}
	return ViewLibrary
}

// Visible projects the catalog through the current filter.
func (b *Browser) Visible() []catalog.GameRecord {
	return catalog.Filter(b.catalog.Games(), b.filterText)
}

func (b *Browser) Filter() string {
	return b.filterText
}

// Selected returns the selected game, if any.
func (b *Browser) Selected() (catalog.GameRecord, bool) {
	if b.selected == nil {
		return catalog.GameRecord{}, false
	}
	return *b.selected, true
}

// Generation increases on every selection. Presentation code compares it to
// decide when the player view must scroll back to the top.
func (b *Browser) Generation() int {
	return b.generation
}

func (b *Browser) Catalog() *catalog.Catalog {
	return b.catalog
}

// Snapshot copies the current state.
func (b *Browser) Snapshot() State {
	s := State{FilterText: b.filterText}
	if b.selected != nil {
		rec := *b.selected
		s.Selected = &rec
	}
	return s
}
