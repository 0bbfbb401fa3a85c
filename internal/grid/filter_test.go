package grid

import "testing"

func labelFor(item Item) string {
	switch item.Session {
	case "main":
		return "main: 3 windows"
	case "work":
		return "work: 1 window"
	case "scratch":
		return "scratch: 2 windows"
	default:
		return item.Session
	}
}

func TestFilterByLabelFuzzyMatch(t *testing.T) {
	c := catalogOf([]Item{
		{Session: "main", Window: SessionTarget},
		{Session: "work", Window: SessionTarget},
		{Session: "scratch", Window: SessionTarget},
	})
	filtered := FilterByLabel(c, "scr", labelFor)
	if filtered.Len() != 1 {
		t.Fatalf("expected 1 match, got %d", filtered.Len())
	}
	item, _ := filtered.At(0)
	if item.Session != "scratch" {
		t.Fatalf("expected scratch, got %q", item.Session)
	}
}

func TestFilterByLabelEmptyQueryKeepsCatalog(t *testing.T) {
	c := catalogOf([]Item{{Session: "main", Window: SessionTarget}})
	if filtered := FilterByLabel(c, "   ", labelFor); filtered.Len() != 1 {
		t.Fatalf("expected catalog unchanged, got %d items", filtered.Len())
	}
}

func TestFilterByLabelNoMatches(t *testing.T) {
	c := catalogOf([]Item{
		{Session: "main", Window: SessionTarget},
		{Session: "work", Window: SessionTarget},
	})
	if filtered := FilterByLabel(c, "zzz", labelFor); filtered.Len() != 0 {
		t.Fatalf("expected no matches, got %d", filtered.Len())
	}
}
