package ui

import (
	"testing"

	"github.com/atomicstack/nexus-games/internal/browser"
	tea "github.com/charmbracelet/bubbletea"
)

func TestHandleEscapeKeyWithEmptyFilterQuits(t *testing.T) {
	m := newTestModel(t, Options{})
	cmd := m.handleEscapeKey()
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestHandleEscapeKeyClearsFilterFirst(t *testing.T) {
	m := newTestModel(t, Options{})
	m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("chess")})
	m.errMsg = "previous error"
	if cmd := m.handleEscapeKey(); cmd != nil {
		t.Fatalf("expected no command while clearing the filter")
	}
	if got := m.browser.Filter(); got != "" {
		t.Fatalf("expected filter cleared, got %q", got)
	}
	if m.caret.Pos != 0 {
		t.Fatalf("expected caret reset, got %d", m.caret.Pos)
	}
	if m.errMsg != "" {
		t.Fatalf("expected error cleared, got %q", m.errMsg)
	}
}

func TestCursorWrapsAround(t *testing.T) {
	m := newTestModel(t, Options{})
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyUp})
	if m.list.Cursor != 2 {
		t.Fatalf("expected wrap to last row, got %d", m.list.Cursor)
	}
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyDown})
	if m.list.Cursor != 0 {
		t.Fatalf("expected wrap to first row, got %d", m.list.Cursor)
	}
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyEnd})
	if m.list.Cursor != 2 {
		t.Fatalf("expected end to reach last row, got %d", m.list.Cursor)
	}
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyHome})
	if m.list.Cursor != 0 {
		t.Fatalf("expected home to reach first row, got %d", m.list.Cursor)
	}
}

func TestPlayerBackKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyBackspace},
		{Type: tea.KeyRunes, Runes: []rune{'b'}},
	} {
		m := newTestModel(t, Options{})
		m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyEnter})
		if m.browser.View() != browser.ViewPlayer {
			t.Fatalf("expected player view after enter")
		}
		m.handleKeyMsg(key)
		if m.browser.View() != browser.ViewLibrary {
			t.Fatalf("expected %q to go back, got %s", key.String(), m.browser.View())
		}
	}
}

func TestPlayerIgnoresSearchInput(t *testing.T) {
	m := newTestModel(t, Options{})
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyEnter})
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if got := m.browser.Filter(); got != "" {
		t.Fatalf("expected filter untouched in player view, got %q", got)
	}
}

func TestMouseWheelMovesLibraryCursor(t *testing.T) {
	m := newTestModel(t, Options{})
	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown})
	if m.list.Cursor != 1 {
		t.Fatalf("expected wheel down to move cursor, got %d", m.list.Cursor)
	}
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
}

func TestClickOnRowPlaysGameAndHeaderGoesBack(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{Width: 100, Height: 20}))
	h.Send(leftClick(4, libraryChromeRows+1))

	b := h.Model().Browser()
	if b.View() != browser.ViewPlayer {
		t.Fatalf("expected click on a row to open the player")
	}
	if game, _ := b.Selected(); game.ID != "2" {
		t.Fatalf("expected Speed Run selected, got %#v", game)
	}

	h.Send(leftClick(2, 0))
	if b.View() != browser.ViewLibrary {
		t.Fatalf("expected header click to return to the library")
	}
	if h.Model().list.Cursor != 1 {
		t.Fatalf("expected cursor on clicked row, got %d", h.Model().list.Cursor)
	}
}

func TestClickOutsideRowsDoesNothing(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{Width: 100, Height: 20}))
	for _, ev := range []tea.MouseMsg{
		leftClick(4, 0),
		leftClick(4, libraryChromeRows+3),
		leftClick(90, libraryChromeRows),
		{X: 4, Y: libraryChromeRows, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease},
	} {
		h.Send(ev)
		if view := h.Model().Browser().View(); view != browser.ViewLibrary {
			t.Fatalf("expected %+v to leave the library alone, got %s", ev, view)
		}
	}
}
