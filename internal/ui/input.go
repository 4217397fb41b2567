package ui

import (
	"unicode"

	"github.com/atomicstack/nexus-games/internal/catalog"
	"github.com/atomicstack/nexus-games/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const searchPlaceholder = "Search games..."

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.caret.Clamp(m.browser.Filter()) {
		m.filterCursorDirty = true
	}
}

// handleTextInput edits the search text. It only runs in the library view,
// the one view that shows the search field.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	text := m.browser.Filter()
	before := m.caret.Clamp(text)
	switch msg.String() {
	case "ctrl+u":
		if text == "" {
			return false
		}
		m.caret.Pos = 0
		m.applyFilter("")
		m.noteFilterCursorChange(before)
		events.Filter.Cleared()
		return true
	case "ctrl+w":
		updated, ok := m.caret.DeleteWordBackward(text)
		if !ok {
			return false
		}
		m.applyFilter(updated)
		m.noteFilterCursorChange(before)
		events.Filter.WordBackspace(updated)
		return true
	case "ctrl+a":
		if !m.caret.MoveStart(text) {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.caret.Pos)
		return true
	case "ctrl+e":
		if !m.caret.MoveEnd(text) {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.caret.Pos)
		return true
	case "alt+b":
		if !m.caret.MoveWordBackward(text) {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.CursorWord(m.caret.Pos)
		return true
	case "alt+f":
		if !m.caret.MoveWordForward(text) {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.CursorWord(m.caret.Pos)
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		updated, ok := m.caret.DeleteRuneBackward(text)
		if !ok {
			return false
		}
		visible := m.applyFilter(updated)
		m.noteFilterCursorChange(before)
		events.Filter.Backspace(updated, visible)
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToFilter(text, before, string(msg.Runes))
	case tea.KeySpace:
		return m.appendToFilter(text, before, " ")
	case tea.KeyLeft:
		if !m.caret.MoveRuneBackward(text) {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.caret.Pos)
		return true
	case tea.KeyRight:
		if !m.caret.MoveRuneForward(text) {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.caret.Pos)
		return true
	}
	return false
}

func (m *Model) appendToFilter(text string, before int, insert string) bool {
	updated, ok := m.caret.Insert(text, insert)
	if !ok {
		return false
	}
	visible := m.applyFilter(updated)
	m.noteFilterCursorChange(before)
	events.Filter.Append(updated, visible)
	return true
}

// applyFilter hands text to the browser, then re-seats the list cursor on the
// best match among the newly visible games. It returns the visible count.
func (m *Model) applyFilter(text string) int {
	m.browser.SetFilter(text)
	m.forceClearInfo()
	m.errMsg = ""
	visible := m.browser.Visible()
	m.list.SetLen(len(visible))
	if idx := catalog.BestMatch(visible, text); idx >= 0 {
		m.list.MoveCursorTo(idx)
	}
	m.syncViewport()
	return len(visible)
}

func (m *Model) filterPrompt() string {
	if styles.Cursor != nil {
		m.filterCursor.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = *styles.Filter
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := m.browser.Filter()
	if text == "" {
		runes := []rune(searchPlaceholder)
		caretRune := string(runes[0])
		rest := string(runes[1:])
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = *styles.FilterPlaceholder
		}
		return prompt + m.renderFilterCursor(caretRune) + render(styles.FilterPlaceholder, rest)
	}
	runes := []rune(text)
	pos := m.caret.Clamp(text)
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
