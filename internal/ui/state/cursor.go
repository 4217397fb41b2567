package state

// List tracks the highlighted row and scroll offset of a list whose rows are
// supplied from elsewhere. Only the row count is stored here.
type List struct {
	Cursor         int
	ViewportOffset int
	count          int
}

// Len returns the row count the list was last synced to.
func (l *List) Len() int {
	return l.count
}

// SetLen updates the row count and clamps cursor and offset into range.
func (l *List) SetLen(n int) {
	if n < 0 {
		n = 0
	}
	l.count = n
	if n == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= n {
		l.Cursor = n - 1
	}
	if l.ViewportOffset > n-1 {
		l.ViewportOffset = 0
	}
}

// MoveCursorTo places the cursor on idx when it is in range.
func (l *List) MoveCursorTo(idx int) bool {
	if idx < 0 || idx >= l.count {
		return false
	}
	old := l.Cursor
	l.Cursor = idx
	return old != l.Cursor
}

// MoveCursorUp moves one row up, wrapping to the last row.
func (l *List) MoveCursorUp() bool {
	if l.count == 0 {
		return false
	}
	old := l.Cursor
	if l.Cursor > 0 {
		l.Cursor--
	} else {
		l.Cursor = l.count - 1
	}
	return old != l.Cursor
}

// MoveCursorDown moves one row down, wrapping to the first row.
func (l *List) MoveCursorDown() bool {
	if l.count == 0 {
		return false
	}
	old := l.Cursor
	if l.Cursor < l.count-1 {
		l.Cursor++
	} else {
		l.Cursor = 0
	}
	return old != l.Cursor
}

// MoveCursorHome moves the cursor to the first item.
func (l *List) MoveCursorHome() bool {
	if l.count == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = 0
	return old != l.Cursor
}

// MoveCursorEnd moves the cursor to the last item.
func (l *List) MoveCursorEnd() bool {
	if l.count == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = l.count - 1
	return old != l.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (l *List) MoveCursorPageUp(maxVisible int) bool {
	return l.moveCursorBy(-l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (l *List) MoveCursorPageDown(maxVisible int) bool {
	return l.moveCursorBy(l.pageSize(maxVisible))
}

func (l *List) moveCursorBy(delta int) bool {
	if l.count == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	l.Cursor += delta
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= l.count {
		l.Cursor = l.count - 1
	}
	return l.Cursor != old
}

func (l *List) pageSize(maxVisible int) int {
	if l.count == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > l.count {
		size = l.count
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (l *List) EnsureCursorVisible(maxVisible int) {
	if l.count == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= l.count {
		l.Cursor = l.count - 1
	}
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := l.count - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	upper := l.ViewportOffset + maxVisible - 1
	if l.Cursor > upper {
		l.ViewportOffset = l.Cursor - maxVisible + 1
	}
}

// Window returns the [start, end) row range that fits in maxVisible rows.
func (l *List) Window(maxVisible int) (int, int) {
	if maxVisible <= 0 || l.count <= maxVisible {
		return 0, l.count
	}
	start := l.ViewportOffset
	if start < 0 {
		start = 0
	}
	if start+maxVisible > l.count {
		start = l.count - maxVisible
		l.ViewportOffset = start
	}
	return start, start + maxVisible
}
