package ui

import (
	"context"
	"reflect"
	"time"

	"github.com/atomicstack/nexus-games/internal/browser"
	"github.com/atomicstack/nexus-games/internal/launcher"
	"github.com/atomicstack/nexus-games/internal/theme"
	"github.com/atomicstack/nexus-games/internal/ui/command"
	uistate "github.com/atomicstack/nexus-games/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const brandTitle = "Nexus Games"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// PlayerPages resolves the sandboxed player page for a game id.
type PlayerPages interface {
	URL(id string) (string, error)
}

// Options configures a Model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Pages      PlayerPages
	Context    context.Context

	// OpenURL and CopyURL default to the launcher package.
	OpenURL func(ctx context.Context, url string) error
	CopyURL func(url string) error
}

// Model implements the Bubble Tea model for the catalog browser.
type Model struct {
	browser *browser.Browser

	list              uistate.List
	caret             uistate.Caret
	filterCursor      cursor.Model
	filterCursorDirty bool
	filterFocused     bool

	player    viewport.Model
	playerGen int
	playerFor string

	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	pages   PlayerPages
	openURL func(ctx context.Context, url string) error
	copyURL func(url string) error
	bus     *command.Bus

	handlers map[reflect.Type]msgHandler
}

// NewModel wires the UI to a browser session.
func NewModel(b *browser.Browser, opts Options) *Model {
	m := &Model{
		browser:    b,
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		pages:      opts.Pages,
		openURL:    opts.OpenURL,
		copyURL:    opts.CopyURL,
		bus:        command.New(opts.Context),
		player:     viewport.New(0, 0),
	}
	if m.openURL == nil {
		m.openURL = launcher.Open
	}
	if m.copyURL == nil {
		m.copyURL = launcher.Copy
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.caret.Reset(b.Filter())
	m.syncList()

	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		c.TextStyle = *styles.Filter
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	m.filterFocused = true
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(command.Result{}):    m.handleActionResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if m.filterFocused {
			if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Browser exposes the session state the model presents.
func (m *Model) Browser() *browser.Browser {
	return m.browser
}
