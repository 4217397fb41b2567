package command

import (
	"context"
	"fmt"

	"github.com/atomicstack/nexus-games/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Handler performs an action and returns a short status line on success.
type Handler func(ctx context.Context) (string, error)

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler Handler
}

// Result communicates the outcome of an action back to the model.
type Result struct {
	ID   string
	Info string
	Err  error
}

// Bus coordinates the execution of player actions.
type Bus struct {
	ctx context.Context
}

// New initialises a command bus whose actions inherit ctx.
func New(ctx context.Context) *Bus {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Bus{ctx: ctx}
}

// Execute wraps an action into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		info, err := req.Handler(b.ctx)
		msg := Result{ID: req.ID, Info: info, Err: err}
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
