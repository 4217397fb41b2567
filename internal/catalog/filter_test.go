package catalog

import (
	"reflect"
	"strings"
	"testing"
)

func ids(games []GameRecord) []string {
	out := make([]string, len(games))
	for i, g := range games {
		out[i] = g.ID
	}
	return out
}

func TestFilterKeepsCatalogOrder(t *testing.T) {
	got := ids(Filter(sampleRecords(), "chess"))
	if want := []string{"1", "3"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	games := []GameRecord{
		{ID: "z1", Title: "Zelda Tribute"},
		{ID: "m", Title: "Mario"},
		{ID: "z2", Title: "the legend of ZELDA"},
	}
	upper := Filter(games, "ZELDA")
	lower := Filter(games, "zelda")
	if !reflect.DeepEqual(upper, lower) {
		t.Fatalf("expected identical results, got %v vs %v", ids(upper), ids(lower))
	}
	if want := []string{"z1", "z2"}; !reflect.DeepEqual(ids(lower), want) {
		t.Fatalf("expected %v, got %v", want, ids(lower))
	}
}

func TestFilterEmptyReturnsEverything(t *testing.T) {
	games := sampleRecords()
	got := Filter(games, "")
	if !reflect.DeepEqual(got, games) {
		t.Fatalf("expected full catalog, got %v", ids(got))
	}
	got[0].Title = "changed"
	if games[0].Title != "Chess Arena" {
		t.Fatalf("expected filter result not to alias input")
	}
}

func TestFilterMatchesSubstringDefinition(t *testing.T) {
	games := sampleRecords()
	for _, query := range []string{"", "c", "CH", "ess p", "run", "n", "xyz", " ", "Chess Arena!"} {
		var want []string
		for _, g := range games {
			if strings.Contains(strings.ToLower(g.Title), strings.ToLower(query)) {
				want = append(want, g.ID)
			}
		}
		got := ids(Filter(games, query))
		if len(want) == 0 && len(got) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("query %q: expected %v, got %v", query, want, got)
		}
	}
}

func TestFilterNoMatches(t *testing.T) {
	if got := Filter(sampleRecords(), "nomatch"); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", ids(got))
	}
	if got := Filter(nil, "x"); len(got) != 0 {
		t.Fatalf("expected empty result for empty catalog")
	}
}

func TestBestMatch(t *testing.T) {
	games := sampleRecords()
	if idx := BestMatch(games, "speed run"); idx != 1 {
		t.Fatalf("expected exact title match at 1, got %d", idx)
	}
	if idx := BestMatch(games, "chess p"); idx != 2 {
		t.Fatalf("expected prefix match at 2, got %d", idx)
	}
	if idx := BestMatch(games, "puz"); idx != 2 {
		t.Fatalf("expected fuzzy match at 2, got %d", idx)
	}
	if idx := BestMatch(games, "qqq"); idx != 0 {
		t.Fatalf("expected fallback 0, got %d", idx)
	}
	if idx := BestMatch(nil, "x"); idx != -1 {
		t.Fatalf("expected -1 for empty list, got %d", idx)
	}
}

func TestFilterLowersFinalSigma(t *testing.T) {
	title := "ΟΔΥΣΣΕΑΣ"
	query := "οδυσσεας" // ends in final sigma
	games := []GameRecord{{ID: "g", Title: title}}

	if strings.Contains(strings.ToLower(title), query) {
		t.Fatalf("expected plain lowering to miss the final sigma")
	}
	if got := ids(Filter(games, query)); !reflect.DeepEqual(got, []string{"g"}) {
		t.Fatalf("expected final sigma query to match, got %v", got)
	}
	if got := ids(Filter(games, title)); !reflect.DeepEqual(got, []string{"g"}) {
		t.Fatalf("expected title to match itself, got %v", got)
	}
}
