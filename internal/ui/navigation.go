package ui

import (
	"github.com/atomicstack/nexus-games/internal/browser"
	"github.com/atomicstack/nexus-games/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.browser.View() == browser.ViewPlayer {
		return m.handlePlayerKey(keyMsg)
	}
	return m.handleLibraryKey(keyMsg)
}

func (m *Model) handleLibraryKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	}
	if m.handleTextInput(msg) {
		return nil
	}
	switch msg.String() {
	case "up":
		m.moveCursor(m.list.MoveCursorUp)
	case "down":
		m.moveCursor(m.list.MoveCursorDown)
	case "pgup":
		m.moveCursor(func() bool { return m.list.MoveCursorPageUp(m.maxVisibleItems()) })
	case "pgdown":
		m.moveCursor(func() bool { return m.list.MoveCursorPageDown(m.maxVisibleItems()) })
	case "home":
		m.moveCursor(m.list.MoveCursorHome)
	case "end":
		m.moveCursor(m.list.MoveCursorEnd)
	}
	return nil
}

func (m *Model) handlePlayerKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "esc", "backspace", "b":
		m.goBack()
		return nil
	case "o":
		return m.openGameAction()
	case "p":
		return m.openPlayerPageAction()
	case "y":
		return m.copyGameAction()
	case "up":
		m.player.LineUp(1)
	case "down":
		m.player.LineDown(1)
	case "pgup":
		m.player.ViewUp()
	case "pgdown":
		m.player.ViewDown()
	case "home":
		m.player.GotoTop()
	case "end":
		m.player.GotoBottom()
	}
	return nil
}

// handleEscapeKey clears a non-empty search first; a second esc quits.
func (m *Model) handleEscapeKey() tea.Cmd {
	if m.browser.Filter() == "" {
		return tea.Quit
	}
	before := m.caret.Clamp(m.browser.Filter())
	m.caret.Pos = 0
	m.applyFilter("")
	m.noteFilterCursorChange(before)
	events.Filter.Cleared()
	return nil
}

func (m *Model) handleEnterKey() tea.Cmd {
	visible := m.browser.Visible()
	if len(visible) == 0 {
		return nil
	}
	cursor := m.list.Cursor
	if cursor < 0 || cursor >= len(visible) {
		return nil
	}
	game := visible[cursor]
	m.browser.SelectGame(game)
	events.View.Select(game.ID, game.Title, m.browser.Filter())
	m.errMsg = ""
	m.forceClearInfo()
	m.syncPlayer()
	return nil
}

func (m *Model) goBack() {
	game, _ := m.browser.Selected()
	if !m.browser.GoBack() {
		return
	}
	events.View.Back(game.ID, m.browser.Filter())
	m.errMsg = ""
	m.forceClearInfo()
	m.syncList()
}

func (m *Model) moveCursor(move func() bool) {
	if m.list.Len() == 0 {
		return
	}
	if move() {
		events.View.Cursor(m.list.Cursor)
	}
	m.syncViewport()
}

// syncList re-reads the visible set and keeps the cursor in range.
func (m *Model) syncList() {
	m.list.SetLen(len(m.browser.Visible()))
	m.syncViewport()
}

func (m *Model) syncViewport() {
	m.list.EnsureCursorVisible(m.maxVisibleItems())
}
