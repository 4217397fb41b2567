// Package catalog holds the static, ordered collection of embeddable games the
// browser lists. A Catalog is built once and never mutated afterwards.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyID           = errors.New("game id is empty")
	ErrDuplicateID       = errors.New("duplicate game id")
	ErrMissingIframeURL  = errors.New("game iframe url is empty")
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

// GameRecord is one playable catalog entry.
type GameRecord struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Thumbnail string `json:"thumbnail" yaml:"thumbnail"`
	IframeURL string `json:"iframeUrl" yaml:"iframeUrl"`
}

// Catalog is an immutable, ordered set of games keyed by id.
type Catalog struct {
	games []GameRecord
	index map[string]int
}

// New validates records and returns a catalog that preserves their order.
func New(records []GameRecord) (*Catalog, error) {
	c := &Catalog{
		games: make([]GameRecord, 0, len(records)),
		index: make(map[string]int, len(records)),
	}
	for i, rec := range records {
		if strings.TrimSpace(rec.ID) == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyID)
		}
		if _, ok := c.index[rec.ID]; ok {
			return nil, fmt.Errorf("entry %d (%s): %w", i, rec.ID, ErrDuplicateID)
		}
		if strings.TrimSpace(rec.IframeURL) == "" {
			return nil, fmt.Errorf("entry %d (%s): %w", i, rec.ID, ErrMissingIframeURL)
		}
		c.index[rec.ID] = len(c.games)
		c.games = append(c.games, rec)
	}
	return c, nil
}

// Games returns a copy of the catalog entries in catalog order.
func (c *Catalog) Games() []GameRecord {
	if c == nil {
		return nil
	}
	dup := make([]GameRecord, len(c.games))
	copy(dup, c.games)
	return dup
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.games)
}

// Lookup returns the record registered under id.
func (c *Catalog) Lookup(id string) (GameRecord, bool) {
	if c == nil {
		return GameRecord{}, false
	}
	idx, ok := c.index[id]
	if !ok {
		return GameRecord{}, false
	}
	return c.games[idx], true
}

// Contains reports whether g is a member of the catalog, field for field.
func (c *Catalog) Contains(g GameRecord) bool {
	rec, ok := c.Lookup(g.ID)
	return ok && rec == g
}
