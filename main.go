package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/nexus-games/internal/app"
	"github.com/atomicstack/nexus-games/internal/config"
	"github.com/atomicstack/nexus-games/internal/logging"
	"github.com/atomicstack/nexus-games/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	events.App.Start(startupTracePayload(cfg, detectTerminal()))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// terminal describes the screen the program is about to take over.
type terminal struct {
	Source string `json:"source,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// detectTerminal reports the first of stdout/stdin that is a sized terminal.
// A zero value means the program is not attached to one.
func detectTerminal() terminal {
	for _, probe := range []struct {
		name string
		f    *os.File
	}{
		{"stdout", os.Stdout},
		{"stdin", os.Stdin},
	} {
		fd := int(probe.f.Fd())
		if !term.IsTerminal(fd) {
			continue
		}
		if width, height, err := term.GetSize(fd); err == nil {
			return terminal{Source: probe.name, Width: width, Height: height}
		}
	}
	return terminal{}
}

// startupTracePayload records where the catalog comes from, how the player
// page host is set up and what screen the library will be drawn on.
func startupTracePayload(cfg config.Config, tty terminal) map[string]interface{} {
	source := cfg.App.CatalogPath
	if source == "" {
		source = "bundled"
	}
	embedHost := map[string]interface{}{"enabled": cfg.App.EmbedEnabled}
	if cfg.App.EmbedEnabled {
		embedHost["addr"] = cfg.App.EmbedAddr
	}
	screen := map[string]interface{}{
		"width":      cfg.App.Width,
		"height":     cfg.App.Height,
		"footer":     cfg.App.ShowFooter,
		"showIDs":    cfg.App.Verbose,
		"terminal":   tty,
		"fixedSize":  cfg.App.Width > 0 && cfg.App.Height > 0,
		"attachedTo": tty.Source,
	}
	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"catalog": source,
		"embed":   embedHost,
		"screen":  screen,
		"logFile": logging.Path(),
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}
