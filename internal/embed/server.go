package embed

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/atomicstack/nexus-games/internal/catalog"
	"github.com/atomicstack/nexus-games/internal/logging"
	"github.com/atomicstack/nexus-games/internal/logging/events"
)

// ErrNotRunning is returned when a player URL is requested before Start.
var ErrNotRunning = errors.New("embed host is not running")

// NewHandler serves the player page for every game in c.
func NewHandler(c *catalog.Catalog) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /play/{id}", func(w http.ResponseWriter, r *http.Request) {
		game, ok := c.Lookup(r.PathValue("id"))
		if !ok {
			http.NotFound(w, r)
			return
		}
		servePlayer(w, game)
	})
	return traceRequests(mux)
}

func servePlayer(w http.ResponseWriter, game catalog.GameRecord) {
	frameSrc := frameOrigin(game.IframeURL)
	if frameSrc == "" {
		frameSrc = "'none'"
	}
	h := w.Header()
	h.Set("Content-Type", "text/html; charset=utf-8")
	h.Set("Content-Security-Policy", fmt.Sprintf("default-src 'none'; style-src 'unsafe-inline'; frame-src %s", frameSrc))
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("Referrer-Policy", "no-referrer")
	data := pageData{
		Title:       game.Title,
		IframeURL:   game.IframeURL,
		Permissions: Permissions,
		Sandbox:     Sandbox,
		Controls:    Controls,
	}
	if err := playerTemplate.Execute(w, data); err != nil {
		logging.Errorf("render player page %s: %w", game.ID, err)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func traceRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		events.Embed.Request(r.Method, r.URL.Path, rec.status)
	})
}

// Server runs the player page handler on a loopback listener.
type Server struct {
	handler http.Handler

	mu      sync.Mutex
	srv     *http.Server
	baseURL string
	done    chan struct{}
}

// NewServer prepares a server for c. Nothing listens until Start.
func NewServer(c *catalog.Catalog) *Server {
	return &Server{handler: NewHandler(c)}
}

// Start binds addr and serves in the background.
func (s *Server) Start(addr string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.srv != nil {
		return errors.New("embed host already started")
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.srv = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.baseURL = "http://" + ln.Addr().String()
	s.done = make(chan struct{})
	events.Embed.Start(ln.Addr().String())
	go func(srv *http.Server, done chan struct{}) {
		defer close(done)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Errorf("embed host: %w", err)
		}
	}(s.srv, s.done)
	return nil
}

// BaseURL returns the root URL of the running host, or "" when stopped.
func (s *Server) BaseURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.baseURL
}

// URL returns the player page address for the game id.
func (s *Server) URL(id string) (string, error) {
	base := s.BaseURL()
	if base == "" {
		return "", ErrNotRunning
	}
	return strings.TrimRight(base, "/") + "/play/" + url.PathEscape(id), nil
}

// Shutdown stops the listener and waits for the serve loop to exit.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv, done := s.srv, s.done
	s.srv = nil
	s.baseURL = ""
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	err := srv.Shutdown(ctx)
	if err == nil {
		select {
		case <-done:
		case <-ctx.Done():
			err = ctx.Err()
		}
	}
	events.Embed.Stop(err)
	return err
}
