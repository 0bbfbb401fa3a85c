package table

import (
	"reflect"
	"testing"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"*", "9:", "vim"},
		{" ", "10:", "logs"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight, AlignLeft})
	want := []string{
		"*   9:  vim",
		"   10:  logs",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected rows %q", got)
	}
}

func TestFormatIgnoresEscapeSequencesWhenMeasuring(t *testing.T) {
	rows := [][]string{
		{"\x1b[1mbold\x1b[0m", "x"},
		{"plain", "y"},
	}
	got := Format(rows, nil)
	want := []string{
		"\x1b[1mbold\x1b[0m   x",
		"plain  y",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected rows %q", got)
	}
}

func TestFormatEmptyInput(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil for empty input, got %q", got)
	}
}

func TestFormatIgnoresExtraCells(t *testing.T) {
	rows := [][]string{
		{"a", "b"},
		{"c", "d", "stray"},
	}
	got := Format(rows, nil)
	want := []string{"a  b", "c  d"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected rows %q", got)
	}
}
