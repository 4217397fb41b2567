package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/nexus-games/internal/browser"
	"github.com/atomicstack/nexus-games/internal/catalog"
	"github.com/atomicstack/nexus-games/internal/embed"
	"github.com/atomicstack/nexus-games/internal/logging"
	"github.com/atomicstack/nexus-games/internal/logging/events"
	"github.com/atomicstack/nexus-games/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

const shutdownTimeout = 2 * time.Second

// Config describes user-provided application options.
type Config struct {
	CatalogPath  string
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
	EmbedAddr    string
	EmbedEnabled bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) (err error) {
	defer func() { events.App.Exit(err) }()

	games, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		Context:    ctx,
	}
	if host, err := startEmbedHost(cfg, games); err != nil {
		return err
	} else if host != nil {
		defer stopEmbedHost(host)
		opts.Pages = host
	}

	model := ui.NewModel(browser.New(games), opts)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// loadCatalog reads the catalog at path, or the bundled one when path is empty.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		games, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("load bundled catalog: %w", err)
		}
		events.App.CatalogLoaded("bundled", games.Len())
		return games, nil
	}
	games, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	events.App.CatalogLoaded(path, games.Len())
	return games, nil
}

// startEmbedHost returns nil without error when the host is disabled.
func startEmbedHost(cfg Config, games *catalog.Catalog) (*embed.Server, error) {
	if !cfg.EmbedEnabled || cfg.EmbedAddr == "" {
		return nil, nil
	}
	host := embed.NewServer(games)
	if err := host.Start(cfg.EmbedAddr); err != nil {
		return nil, fmt.Errorf("start player page host: %w", err)
	}
	return host, nil
}

func stopEmbedHost(host *embed.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := host.Shutdown(ctx); err != nil {
		logging.Errorf("stop player page host: %w", err)
	}
}
