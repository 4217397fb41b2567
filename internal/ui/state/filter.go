package state

import "unicode"

// Caret is the edit position inside the search text. The text itself is owned
// by the browser; every edit takes the current text and returns the new one.
type Caret struct {
	Pos int
}

// Clamp returns the caret offset bounded to text.
func (c *Caret) Clamp(text string) int {
	n := len([]rune(text))
	if c.Pos < 0 {
		return 0
	}
	if c.Pos > n {
		return n
	}
	return c.Pos
}

// Reset moves the caret to the end of text.
func (c *Caret) Reset(text string) {
	c.Pos = len([]rune(text))
}

// Insert places insert at the caret.
func (c *Caret) Insert(text, insert string) (string, bool) {
	add := []rune(insert)
	if len(add) == 0 {
		return text, false
	}
	runes := []rune(text)
	pos := c.Clamp(text)
	updated := make([]rune, 0, len(runes)+len(add))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, add...)
	updated = append(updated, runes[pos:]...)
	c.Pos = pos + len(add)
	return string(updated), true
}

// DeleteRuneBackward deletes the rune before the caret.
func (c *Caret) DeleteRuneBackward(text string) (string, bool) {
	runes := []rune(text)
	pos := c.Clamp(text)
	if pos == 0 || len(runes) == 0 {
		return text, false
	}
	updated := append(runes[:pos-1:pos-1], runes[pos:]...)
	c.Pos = pos - 1
	return string(updated), true
}

// DeleteWordBackward deletes the word preceding the caret.
func (c *Caret) DeleteWordBackward(text string) (string, bool) {
	runes := []rune(text)
	pos := c.Clamp(text)
	if pos == 0 || len(runes) == 0 {
		return text, false
	}
	i := wordStart(runes, pos)
	updated := append(runes[:i:i], runes[pos:]...)
	c.Pos = i
	return string(updated), true
}

// MoveStart moves the caret to the start.
func (c *Caret) MoveStart(text string) bool {
	if c.Clamp(text) == 0 {
		return false
	}
	c.Pos = 0
	return true
}

// MoveEnd moves the caret to the end.
func (c *Caret) MoveEnd(text string) bool {
	end := len([]rune(text))
	if c.Clamp(text) == end {
		return false
	}
	c.Pos = end
	return true
}

// MoveWordBackward moves the caret one word backward.
func (c *Caret) MoveWordBackward(text string) bool {
	runes := []rune(text)
	pos := c.Clamp(text)
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	if i == pos {
		return false
	}
	c.Pos = i
	return true
}

// MoveWordForward moves the caret one word forward.
func (c *Caret) MoveWordForward(text string) bool {
	runes := []rune(text)
	pos := c.Clamp(text)
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	c.Pos = i
	return true
}

// MoveRuneBackward moves the caret one rune backward.
func (c *Caret) MoveRuneBackward(text string) bool {
	pos := c.Clamp(text)
	if pos == 0 {
		return false
	}
	c.Pos = pos - 1
	return true
}

// MoveRuneForward moves the caret one rune forward.
func (c *Caret) MoveRuneForward(text string) bool {
	pos := c.Clamp(text)
	if pos >= len([]rune(text)) {
		return false
	}
	c.Pos = pos + 1
	return true
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}
