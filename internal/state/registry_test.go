package state

import (
	"reflect"
	"testing"

	"github.com/atomicstack/tmux-grid-switch/internal/grid"
	"github.com/atomicstack/tmux-grid-switch/internal/tmux"
)

func seededRegistry() (*Registry, SessionStore, WindowStore) {
	sessions := NewSessionStore()
	sessions.SetEntries([]tmux.Session{
		{Name: "main", Label: "main: 2 windows (attached)", Attached: true, Windows: 2},
		{Name: "scratch", Label: "scratch: 1 window", Windows: 1},
	})
	sessions.SetCurrent("main")
	windows := NewWindowStore()
	windows.SetEntries([]tmux.Window{
		{ID: "main:2", Session: "main", Index: 2, Name: "logs"},
		{ID: "main:0", Session: "main", Index: 0, Name: "vim", Active: true},
		{ID: "scratch:0", Session: "scratch", Index: 0, Name: "sh"},
	})
	return NewRegistry(sessions, windows), sessions, windows
}

func TestLiveTargetsMirrorsSessionStore(t *testing.T) {
	reg, _, _ := seededRegistry()
	targets := reg.LiveTargets()
	want := []grid.TargetInfo{
		{ID: "main", Name: "main: 2 windows (attached)"},
		{ID: "scratch", Name: "scratch: 1 window"},
	}
	if !reflect.DeepEqual(targets, want) {
		t.Fatalf("unexpected targets %+v", targets)
	}
}

func TestChildrenSortedByIndex(t *testing.T) {
	reg, _, _ := seededRegistry()
	children := reg.Children("main")
	want := []grid.ChildInfo{
		{Index: 0, Name: "vim"},
		{Index: 2, Name: "logs"},
	}
	if !reflect.DeepEqual(children, want) {
		t.Fatalf("unexpected children %+v", children)
	}
	if got := reg.Children("gone"); len(got) != 0 {
		t.Fatalf("expected no children for unknown session, got %+v", got)
	}
}

func TestAliveChecksBothStores(t *testing.T) {
	reg, sessions, _ := seededRegistry()
	if !reg.Alive(grid.Item{Session: "main", Window: grid.SessionTarget}) {
		t.Fatal("expected live session to be alive")
	}
	if !reg.Alive(grid.Item{Session: "main", Window: 2}) {
		t.Fatal("expected live window to be alive")
	}
	if reg.Alive(grid.Item{Session: "main", Window: 1}) {
		t.Fatal("expected missing window index to be dead")
	}
	sessions.SetEntries(nil)
	if reg.Alive(grid.Item{Session: "main", Window: grid.SessionTarget}) {
		t.Fatal("expected killed session to be dead")
	}
}

func TestLabelFallsBackToSessionName(t *testing.T) {
	reg, _, _ := seededRegistry()
	if got := reg.Label(grid.Item{Session: "main", Window: 0}); got != "vim" {
		t.Fatalf("expected window name, got %q", got)
	}
	if got := reg.Label(grid.Item{Session: "gone", Window: grid.SessionTarget}); got != "gone" {
		t.Fatalf("expected fallback to item session, got %q", got)
	}
}

func TestStoreEntriesAreCopies(t *testing.T) {
	sessions := NewSessionStore()
	sessions.SetEntries([]tmux.Session{{Name: "main"}})
	got := sessions.Entries()
	got[0].Name = "mutated"
	if again := sessions.Entries(); again[0].Name != "main" {
		t.Fatalf("store leaked mutable slice: %+v", again)
	}

	windows := NewWindowStore()
	windows.SetEntries([]tmux.Window{{Session: "main", Index: 0, Name: "vim"}})
	view := windows.ForSession("main")
	view[0].Name = "mutated"
	if w, ok := windows.Lookup("main", 0); !ok || w.Name != "vim" {
		t.Fatalf("store leaked mutable slice: %+v", w)
	}
}
