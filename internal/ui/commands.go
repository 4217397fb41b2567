package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/atomicstack/nexus-games/internal/logging/events"
	"github.com/atomicstack/nexus-games/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

var errPlayerPageDisabled = errors.New("player page host is not running")

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Action.Error(result.Err)
		return nil
	}
	m.errMsg = ""
	if result.Info != "" {
		m.setInfo(result.Info)
	} else {
		m.forceClearInfo()
	}
	events.Action.Success(result.Info)
	return nil
}

func (m *Model) openGameAction() tea.Cmd {
	game, ok := m.browser.Selected()
	if !ok {
		return nil
	}
	open := m.openURL
	target := game.IframeURL
	return m.bus.Execute(command.Request{
		ID:    "game:open",
		Label: game.Title,
		Handler: func(ctx context.Context) (string, error) {
			if err := open(ctx, target); err != nil {
				return "", fmt.Errorf("open %s: %w", game.Title, err)
			}
			return fmt.Sprintf("Opened %s in browser", game.Title), nil
		},
	})
}

func (m *Model) openPlayerPageAction() tea.Cmd {
	game, ok := m.browser.Selected()
	if !ok {
		return nil
	}
	target, err := m.playerPageURL(game.ID)
	if err != nil {
		m.errMsg = err.Error()
		m.forceClearInfo()
		events.Action.Error(err)
		return nil
	}
	open := m.openURL
	return m.bus.Execute(command.Request{
		ID:    "game:player-page",
		Label: game.Title,
		Handler: func(ctx context.Context) (string, error) {
			if err := open(ctx, target); err != nil {
				return "", fmt.Errorf("open player page for %s: %w", game.Title, err)
			}
			return fmt.Sprintf("Opened player page for %s", game.Title), nil
		},
	})
}

func (m *Model) copyGameAction() tea.Cmd {
	game, ok := m.browser.Selected()
	if !ok {
		return nil
	}
	copyURL := m.copyURL
	target := game.IframeURL
	return m.bus.Execute(command.Request{
		ID:    "game:copy",
		Label: game.Title,
		Handler: func(context.Context) (string, error) {
			if err := copyURL(target); err != nil {
				return "", fmt.Errorf("copy link for %s: %w", game.Title, err)
			}
			return fmt.Sprintf("Copied link for %s", game.Title), nil
		},
	})
}

func (m *Model) playerPageURL(id string) (string, error) {
	if m.pages == nil {
		return "", errPlayerPageDisabled
	}
	return m.pages.URL(id)
}
