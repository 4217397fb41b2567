package ui

import (
	"strings"

	"github.com/atomicstack/nexus-games/internal/catalog"
	"github.com/atomicstack/nexus-games/internal/embed"
	"github.com/atomicstack/nexus-games/internal/format/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	backHint       = "← Back to Library (esc)"
	nowPlaying     = "Now Playing"
	controlsTitle  = "Game Controls"
	frameTitle     = "Game Frame"
	playerMinWidth = 24
)

var playerActions = [][2]string{
	{"o", "open game in browser"},
	{"p", "open player page"},
	{"y", "copy game link"},
	{"esc", "back to library"},
}

// syncPlayer refreshes the player viewport for the selected game. A new
// selection generation scrolls back to the top.
func (m *Model) syncPlayer() {
	game, ok := m.browser.Selected()
	if !ok {
		m.playerFor = ""
		return
	}
	content := m.playerContent(game)
	m.player.Width = m.width
	if h := m.playerViewportHeight(); h > 0 {
		m.player.Height = h
	} else {
		m.player.Height = strings.Count(content, "\n") + 1
	}
	m.player.SetContent(content)
	if gen := m.browser.Generation(); gen != m.playerGen || m.playerFor != game.ID {
		m.playerGen = gen
		m.playerFor = game.ID
		m.player.GotoTop()
	}
}

func (m *Model) playerViewportHeight() int {
	if m.height <= 0 {
		return 0
	}
	used := 3 // header, blank separator, status line
	if m.showFooter {
		used++
	}
	if h := m.height - used; h > 0 {
		return h
	}
	return 1
}

func (m *Model) playerContent(game catalog.GameRecord) string {
	width := m.width
	if width > 0 && width < playerMinWidth {
		width = playerMinWidth
	}
	lines := make([]string, 0, 24)
	lines = append(lines, render(styles.Heading, game.Title))
	lines = append(lines, render(styles.NowPlaying, nowPlaying))
	lines = append(lines, "")

	pageURL, err := m.playerPageURL(game.ID)
	if err != nil {
		pageURL = "(unavailable: " + err.Error() + ")"
	}
	frame := table.KeyValue([][2]string{
		{"Embedded", game.IframeURL},
		{"Player", pageURL},
		{"Sandbox", embed.Sandbox},
		{"Allow", embed.Permissions},
	})
	lines = append(lines, m.renderPanel(frameTitle, frame, width, 0))
	lines = append(lines, "")

	hints := make([]string, 0, len(playerActions))
	for _, action := range playerActions {
		hints = append(hints, render(styles.HintKeys, action[0])+" "+render(styles.HintLabel, action[1]))
	}
	lines = append(lines, strings.Join(hints, "  "))
	lines = append(lines, "")

	lines = append(lines, render(styles.Heading, controlsTitle))
	pairs := make([][2]string, len(embed.Controls))
	for i, hint := range embed.Controls {
		pairs[i] = [2]string{render(styles.HintLabel, hint.Label), render(styles.HintKeys, hint.Keys)}
	}
	lines = append(lines, table.KeyValue(pairs)...)
	return strings.Join(lines, "\n")
}

func (m *Model) viewPlayer() string {
	m.syncPlayer()
	header := render(styles.Brand, brandTitle) + "  " + render(styles.Back, backHint)
	rows := []string{clipRow(header, m.width), ""}
	rows = append(rows, m.player.View())
	rows = append(rows, clipRow(m.statusLine(), m.width))
	if m.showFooter {
		rows = append(rows, clipRow(render(styles.Footer, "↑/↓ scroll  o open  p player page  y copy  esc back  q quit"), m.width))
	}
	return strings.Join(rows, "\n")
}

// renderPanel draws a rounded box titled title around body. A height of zero
// sizes the box to its content.
func (m *Model) renderPanel(title string, body []string, totalWidth, height int) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)
	if totalWidth <= 0 {
		totalWidth = 2
		for _, line := range body {
			if w := lipgloss.Width(line) + 4; w > totalWidth {
				totalWidth = w
			}
		}
		if w := lipgloss.Width(title) + 6; w > totalWidth {
			totalWidth = w
		}
	}
	innerW := totalWidth - 2
	if innerW < 1 {
		innerW = 1
	}
	innerH := height - 2
	if height <= 0 {
		innerH = len(body)
	}
	if innerH < 1 {
		innerH = 1
	}

	titleSeg := " " + title + " "
	dashes := totalWidth - 4 - lipgloss.Width(titleSeg)
	if dashes < 0 {
		titleSeg = " … "
		dashes = totalWidth - 4 - lipgloss.Width(titleSeg)
	}
	if dashes < 0 {
		dashes = 0
	}
	topLine := render(styles.PanelBorder, tlc+hz) +
		render(styles.PanelTitle, titleSeg) +
		render(styles.PanelBorder, strings.Repeat(hz, dashes)+hz+trc)
	bottomLine := render(styles.PanelBorder, blc+strings.Repeat(hz, innerW)+brc)

	rows := make([]string, 0, innerH+2)
	rows = append(rows, topLine)
	for i := 0; i < innerH; i++ {
		content := ""
		if i < len(body) {
			content = " " + body[i]
		}
		w := lipgloss.Width(content)
		if w > innerW {
			content = truncate.StringWithTail(content, uint(innerW-1), "…")
			w = lipgloss.Width(content)
		}
		if w < innerW {
			content += strings.Repeat(" ", innerW-w)
		}
		rows = append(rows, render(styles.PanelBorder, vt)+render(styles.PanelBody, content)+render(styles.PanelBorder, vt))
	}
	rows = append(rows, bottomLine)
	return strings.Join(rows, "\n")
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func clipRow(row string, width int) string {
	if width <= 0 {
		return row
	}
	if lipgloss.Width(row) > width {
		return truncate.StringWithTail(row, uint(width-1), "…")
	}
	return row
}
