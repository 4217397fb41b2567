// Package launcher hands URLs to the desktop: the system browser for a new
// top-level context, or the clipboard.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

var ErrUnsupportedScheme = errors.New("only http and https urls can be opened")

// execCommand and writeClipboard are swapped out by tests.
var (
	execCommand    = exec.Command
	writeClipboard = clipboard.WriteAll
	lookupEnv      = os.Getenv
)

// Open launches url in the user's browser. $BROWSER takes precedence over
// the platform opener. ctx only bounds the wait for a launch slot; the
// started browser outlives it.
func Open(ctx context.Context, raw string) error {
	if err := checkURL(raw); err != nil {
		return err
	}
	if err := launches.wait(ctx); err != nil {
		return err
	}
	name, args := opener(runtime.GOOS, lookupEnv("BROWSER"))
	cmd := execCommand(name, append(args, raw)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %s: %w", name, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// Copy places url on the system clipboard.
func Copy(raw string) error {
	if err := checkURL(raw); err != nil {
		return err
	}
	if err := writeClipboard(raw); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

func checkURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return nil
	default:
		return fmt.Errorf("%q: %w", raw, ErrUnsupportedScheme)
	}
}

func opener(goos, browserEnv string) (string, []string) {
	if fields := strings.Fields(browserEnv); len(fields) > 0 {
		return fields[0], fields[1:]
	}
	switch goos {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}
