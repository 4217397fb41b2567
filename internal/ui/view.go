package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/nexus-games/internal/browser"
	"github.com/atomicstack/nexus-games/internal/catalog"
	"github.com/atomicstack/nexus-games/internal/format/table"
	"github.com/atomicstack/nexus-games/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	libraryHeading  = "Game Library"
	librarySubtitle = "Explore our collection of unblocked web games."
	emptyTitle      = "No games found"
	emptyBody       = "Try adjusting your search query."
	gameTag         = "WEB GAME"
	libraryFooter   = "↑/↓ move  enter play  ctrl+u clear  esc quit"

	detailPanelMinWidth = 36  // below this the detail panel is dropped
	detailPanelFraction = 0.4 // share of the width given to the detail panel
	libraryChromeRows   = 5   // header, blank, heading, subtitle, blank
	mouseScrollLines    = 3
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text carries ANSI escapes already; skip style wrapping
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.browser.View() == browser.ViewPlayer {
		return m.viewPlayer()
	}
	return m.viewLibrary()
}

func (m *Model) detailPanelWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := int(float64(m.width) * detailPanelFraction)
	if w < detailPanelMinWidth {
		return 0
	}
	return w
}

func (m *Model) viewLibrary() string {
	panelW := m.detailPanelWidth()
	listW := m.width - panelW

	top := []styledLine{
		{text: render(styles.Brand, brandTitle) + "  " + m.filterPrompt(), raw: true},
		{},
	}
	top = applyWidth(top, m.width)

	body := m.libraryBody(listW)
	bodyH := 0
	if m.height > 0 {
		bodyH = m.height - len(top) - 1
		if bodyH < 1 {
			bodyH = 1
		}
		body = limitHeight(body, bodyH, listW)
	}
	body = applyWidth(body, listW)

	status := applyWidth([]styledLine{m.statusStyledLine()}, m.width)

	if panelW == 0 {
		return renderLines(top) + "\n" + renderLines(body) + "\n" + renderLines(status)
	}

	if bodyH == 0 {
		bodyH = len(body)
		if bodyH < 8 {
			bodyH = 8
		}
	}
	for len(body) < bodyH {
		body = append(body, styledLine{})
	}
	leftRows := strings.Split(renderLines(body), "\n")
	for i, row := range leftRows {
		w := lipgloss.Width(row)
		if w > listW {
			leftRows[i] = truncate.StringWithTail(row, uint(listW-1), "…")
		} else if w < listW {
			leftRows[i] = row + strings.Repeat(" ", listW-w)
		}
	}
	right := m.renderPanel("Details", m.detailLines(), panelW, bodyH)
	middle := lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(leftRows, "\n"), right)
	return renderLines(top) + "\n" + middle + "\n" + renderLines(status)
}

func (m *Model) libraryBody(width int) []styledLine {
	lines := make([]styledLine, 0, 16)
	lines = append(lines,
		styledLine{text: libraryHeading, style: styles.Heading},
		styledLine{text: librarySubtitle, style: styles.Subtitle},
		styledLine{},
	)
	visible := m.browser.Visible()
	m.list.SetLen(len(visible))
	m.syncViewport()
	if len(visible) == 0 {
		lines = append(lines,
			styledLine{text: emptyTitle, style: styles.EmptyTitle},
			styledLine{text: emptyBody, style: styles.EmptyBody},
		)
	} else {
		start, end := m.list.Window(m.maxVisibleItems())
		for idx := start; idx < end; idx++ {
			lines = append(lines, m.buildItemLine(visible[idx], idx, width))
		}
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{}, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{}, styledLine{text: libraryFooter, style: styles.Footer})
	}
	return lines
}

// buildItemLine renders one game card row. The text is padded to width so
// the highlighted row spans the column.
func (m *Model) buildItemLine(game catalog.GameRecord, idx, width int) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if idx == m.list.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	text := "▌ " + game.Title
	if m.verbose {
		text += fmt.Sprintf("  [%s]", game.ID)
	}
	if width > 0 {
		if pad := width - lipgloss.Width(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) detailLines() []string {
	visible := m.browser.Visible()
	cursor := m.list.Cursor
	if cursor < 0 || cursor >= len(visible) {
		return []string{render(styles.EmptyBody, "No game selected")}
	}
	game := visible[cursor]
	lines := []string{render(styles.PanelTitle, game.Title), ""}
	lines = append(lines, table.KeyValue([][2]string{
		{"ID", game.ID},
		{"Thumbnail", game.Thumbnail},
		{"Frame", game.IframeURL},
	})...)
	lines = append(lines, "", render(styles.Tag, " "+gameTag+" "), "", render(styles.Footer, "enter to play"))
	return lines
}

func (m *Model) statusStyledLine() styledLine {
	if m.errMsg != "" {
		return styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	return styledLine{}
}

// statusLine is the rendered status row of the player view: an error wins
// over an info message.
func (m *Model) statusLine() string {
	if m.errMsg != "" {
		return render(styles.Error, fmt.Sprintf("Error: %s", m.errMsg))
	}
	return render(styles.Info, m.currentInfo())
}

// handleMouseMsg scrolls the list or the player viewport with the wheel.
// A left click on a library row plays that game; in the player view a click
// on the header row returns to the library.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft {
		return m.handleClick(ev.X, ev.Y)
	}
	if m.browser.View() == browser.ViewPlayer {
		switch ev.Button {
		case tea.MouseButtonWheelUp:
			m.player.LineUp(mouseScrollLines)
		case tea.MouseButtonWheelDown:
			m.player.LineDown(mouseScrollLines)
		}
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(m.list.MoveCursorUp)
	case tea.MouseButtonWheelDown:
		m.moveCursor(m.list.MoveCursorDown)
	}
	return nil
}

func (m *Model) handleClick(x, y int) tea.Cmd {
	if m.browser.View() == browser.ViewPlayer {
		if y == 0 {
			m.goBack()
		}
		return nil
	}
	row := y - libraryChromeRows
	if row < 0 {
		return nil
	}
	if panelW := m.detailPanelWidth(); panelW > 0 && x >= m.width-panelW {
		return nil
	}
	m.syncList()
	start, end := m.list.Window(m.maxVisibleItems())
	idx := start + row
	if idx >= end {
		return nil
	}
	if m.list.MoveCursorTo(idx) {
		events.View.Cursor(idx)
	}
	return m.handleEnterKey()
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncList()
	if m.browser.View() == browser.ViewPlayer {
		m.syncPlayer()
	}
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := libraryChromeRows + 1 // plus the status row
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			text = clipRow(text, width)
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
