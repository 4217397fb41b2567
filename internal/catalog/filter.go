package catalog

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Filter returns the games whose title contains text, ignoring case. The
// result keeps the input order and never aliases the input slice.
func Filter(games []GameRecord, text string) []GameRecord {
	if text == "" {
		dup := make([]GameRecord, len(games))
		copy(dup, games)
		return dup
	}
	lower := cases.Lower(language.Und)
	needle := lower.String(text)
	filtered := make([]GameRecord, 0, len(games))
	for _, g := range games {
		if strings.Contains(lower.String(g.Title), needle) {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

// BestMatch returns the index within games that best answers query: an exact
// title, then a title prefix, then the closest fuzzy rank. It only picks a
// cursor position and has no bearing on which games are visible.
func BestMatch(games []GameRecord, query string) int {
	if len(games) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := cases.Lower(language.Und)
	needle := lower.String(trimmed)
	for i, g := range games {
		if strings.EqualFold(g.Title, trimmed) {
			return i
		}
	}
	for i, g := range games {
		if strings.HasPrefix(lower.String(g.Title), needle) {
			return i
		}
	}
	titles := make([]string, len(games))
	for i, g := range games {
		titles[i] = g.Title
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, titles)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(games) {
		return 0
	}
	return best.OriginalIndex
}
