package config

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/nexus-games/internal/app"
	"github.com/caarlos0/env/v11"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const envPrefix = "NEXUS_GAMES_"

const defaultEmbedAddr = "127.0.0.1:0"

// envValues mirrors the NEXUS_GAMES_* variables. They seed flag defaults, so
// explicit flags always win.
type envValues struct {
	Catalog   string `env:"CATALOG"`
	Width     int    `env:"WIDTH"`
	Height    int    `env:"HEIGHT"`
	Footer    bool   `env:"FOOTER"`
	Verbose   bool   `env:"VERBOSE"`
	Trace     bool   `env:"TRACE"`
	LogFile   string `env:"LOG_FILE"`
	EmbedAddr string `env:"EMBED_ADDR" envDefault:"127.0.0.1:0"`
	NoEmbed   bool   `env:"NO_EMBED"`
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	var defaults envValues
	opts := env.Options{Prefix: envPrefix, Environment: parseEnv(environ)}
	if err := env.ParseWithOptions(&defaults, opts); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	fs := flag.NewFlagSet("nexus-games", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	catalogPath := fs.String("catalog", defaults.Catalog, "path to a .json or .yaml game catalog (bundled catalog when empty)")
	width := fs.Int("width", defaults.Width, "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", defaults.Height, "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", defaults.Footer, "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", defaults.Trace, "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", defaults.Verbose, "show game ids next to titles in the library")
	logFile := fs.String("log-file", defaults.LogFile, "path to the log file")
	embedAddr := fs.String("embed-addr", defaults.EmbedAddr, "loopback address for the player page host")
	noEmbed := fs.Bool("no-embed", defaults.NoEmbed, "do not start the player page host")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			CatalogPath:  *catalogPath,
			Width:        *width,
			Height:       *height,
			ShowFooter:   *footer,
			Verbose:      *verbose,
			EmbedAddr:    *embedAddr,
			EmbedEnabled: !*noEmbed,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"catalog":   *catalogPath,
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"footer":    strconv.FormatBool(*footer),
			"trace":     strconv.FormatBool(*trace),
			"verbose":   strconv.FormatBool(*verbose),
			"logFile":   *logFile,
			"embedAddr": *embedAddr,
			"noEmbed":   strconv.FormatBool(*noEmbed),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks references that can only be resolved against the host.
func Validate(cfg Config) error {
	if path := cfg.App.CatalogPath; path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("catalog: %s is a directory", path)
		}
	}
	if cfg.App.EmbedEnabled {
		if _, _, err := net.SplitHostPort(cfg.App.EmbedAddr); err != nil {
			return fmt.Errorf("embed-addr: %w", err)
		}
	}
	return nil
}
