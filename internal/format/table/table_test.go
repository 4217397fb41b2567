package table

import (
	"reflect"
	"testing"
)

func TestFormatPadsColumns(t *testing.T) {
	got := Format([][]string{
		{"Movement", "WASD / Arrows"},
		{"Pause", "Esc / P"},
	}, nil)
	want := []string{
		"Movement  WASD / Arrows",
		"Pause     Esc / P",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatRightAlignment(t *testing.T) {
	got := Format([][]string{{"1", "a"}, {"100", "b"}}, []Alignment{AlignRight})
	want := []string{"  1  a", "100  b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestKeyValue(t *testing.T) {
	got := KeyValue([][2]string{{"id", "3"}, {"title", "Chess Puzzle"}})
	want := []string{"id     3", "title  Chess Puzzle"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}
