package dispatcher

import (
	"errors"
	"testing"

	"github.com/atomicstack/tmux-grid-switch/internal/backend"
	"github.com/atomicstack/tmux-grid-switch/internal/state"
	"github.com/atomicstack/tmux-grid-switch/internal/tmux"
)

func TestHandleSessionsUpdatesStore(t *testing.T) {
	sessions := state.NewSessionStore()
	windows := state.NewWindowStore()
	d := New(sessions, windows)

	res := d.Handle(backend.Event{
		Kind: backend.KindSessions,
		Data: tmux.SessionSnapshot{
			Sessions: []tmux.Session{{Name: "main"}, {Name: "scratch"}},
			Current:  "main",
		},
	})
	if !res.SessionsUpdated || res.WindowsUpdated {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(sessions.Entries()) != 2 || sessions.Current() != "main" {
		t.Fatalf("store not updated: %+v", sessions.Entries())
	}
}

func TestHandleWindowsUpdatesStore(t *testing.T) {
	sessions := state.NewSessionStore()
	windows := state.NewWindowStore()
	d := New(sessions, windows)

	res := d.Handle(backend.Event{
		Kind: backend.KindWindows,
		Data: tmux.WindowSnapshot{
			Windows:        []tmux.Window{{ID: "main:0", Session: "main", Index: 0, Name: "vim"}},
			CurrentSession: "main",
		},
	})
	if !res.WindowsUpdated || res.SessionsUpdated {
		t.Fatalf("unexpected result %+v", res)
	}
	if w, ok := windows.Lookup("main", 0); !ok || w.Name != "vim" {
		t.Fatalf("store not updated: %+v", windows.Entries())
	}
	if windows.CurrentSession() != "main" {
		t.Fatalf("current session not recorded: %q", windows.CurrentSession())
	}
}

func TestHandleErrorLeavesStoresAlone(t *testing.T) {
	sessions := state.NewSessionStore()
	sessions.SetEntries([]tmux.Session{{Name: "main"}})
	windows := state.NewWindowStore()
	d := New(sessions, windows)

	res := d.Handle(backend.Event{Kind: backend.KindSessions, Err: errors.New("server gone")})
	if res.SessionsUpdated || res.Err == nil {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(sessions.Entries()) != 1 {
		t.Fatal("error event must not clear the store")
	}
}

func TestHandleIgnoresMistypedPayload(t *testing.T) {
	d := New(state.NewSessionStore(), state.NewWindowStore())
	res := d.Handle(backend.Event{Kind: backend.KindSessions, Data: "bogus"})
	if res.SessionsUpdated || res.Err != nil {
		t.Fatalf("unexpected result %+v", res)
	}
}
