package ui

import (
	"errors"
	"testing"
	"time"

	"github.com/atomicstack/tmux-grid-switch/internal/backend"
	"github.com/atomicstack/tmux-grid-switch/internal/grid"
	"github.com/atomicstack/tmux-grid-switch/internal/tmux"
	tea "github.com/charmbracelet/bubbletea"
)

type fakeSwitches struct {
	sessions []string
	windows  []string
	err      error
}

func stubCommands(t *testing.T) *fakeSwitches {
	t.Helper()
	calls := &fakeSwitches{}
	origSwitch, origSelect, origClient := switchClientFn, selectWindowFn, currentClientFn
	switchClientFn = func(socket, session, clientID string) error {
		calls.sessions = append(calls.sessions, session)
		return calls.err
	}
	selectWindowFn = func(socket, target, clientID string) error {
		calls.windows = append(calls.windows, target)
		return calls.err
	}
	currentClientFn = func(string) string { return "" }
	t.Cleanup(func() {
		switchClientFn, selectWindowFn, currentClientFn = origSwitch, origSelect, origClient
	})
	return calls
}

func stubPreviews(t *testing.T) {
	t.Helper()
	origPane, origSession, origWindow, origTick := panePreviewFn, sessionPreviewFn, windowPreviewFn, scheduleTick
	panePreviewFn = func(socket, target string) ([]string, error) {
		return []string{"$ echo " + target}, nil
	}
	sessionPreviewFn = func(socket, session string) ([]string, error) {
		return []string{"* 0: vim"}, nil
	}
	windowPreviewFn = func(socket, window string) ([]string, error) {
		return []string{"* 0: sh"}, nil
	}
	scheduleTick = func(time.Duration, func(time.Time) tea.Msg) tea.Cmd { return nil }
	t.Cleanup(func() {
		panePreviewFn, sessionPreviewFn, windowPreviewFn, scheduleTick = origPane, origSession, origWindow, origTick
	})
}

func testOptions() Options {
	return Options{
		Width:    120,
		Height:   42,
		Scope:    "sessions",
		MinCellW: 20,
		MinCellH: 6,
		Wrap:     true,
		Paging:   true,
		Refresh:  time.Second,
	}
}

func newTestHarness(t *testing.T, opts Options) *Harness {
	t.Helper()
	stubPreviews(t)
	return NewHarness(NewModel(opts, nil))
}

func sessionsEvent(names ...string) tea.Msg {
	entries := make([]tmux.Session, 0, len(names))
	for _, name := range names {
		entries = append(entries, tmux.Session{Name: name, Label: name})
	}
	return backendEventMsg{event: backend.Event{
		Kind: backend.KindSessions,
		Data: tmux.SessionSnapshot{Sessions: entries},
	}}
}

func windowsEvent(session string, count int) tea.Msg {
	windows := make([]tmux.Window, 0, count)
	for i := 0; i < count; i++ {
		windows = append(windows, tmux.Window{
			ID:      session + ":" + string(rune('0'+i)),
			Session: session,
			Index:   i,
			Name:    "win" + string(rune('0'+i)),
		})
	}
	return backendEventMsg{event: backend.Event{
		Kind: backend.KindWindows,
		Data: tmux.WindowSnapshot{Windows: windows, CurrentSession: session},
	}}
}

func TestBackendEventRebuildsCatalog(t *testing.T) {
	h := newTestHarness(t, testOptions())
	h.Send(sessionsEvent("a", "b", "c", "d", "e"))

	m := h.Model()
	if m.visible.Len() != 5 {
		t.Fatalf("expected 5 items, got %d", m.visible.Len())
	}
	g := m.geometry
	if g.Columns != 2 || g.TotalRows != 3 {
		t.Fatalf("unexpected geometry %+v", g)
	}
	if g.CellW != 60 || g.CellH != 13 {
		t.Fatalf("unexpected cell size %+v", g)
	}
}

func TestScopeWindowsAnchorsOnCurrentSession(t *testing.T) {
	opts := testOptions()
	opts.Scope = "windows"
	h := newTestHarness(t, opts)
	h.Send(sessionsEvent("main"))
	h.Send(windowsEvent("main", 4))

	m := h.Model()
	if m.visible.Len() != 4 {
		t.Fatalf("expected 4 window items, got %d", m.visible.Len())
	}
	item, _ := m.visible.At(0)
	if item.Session != "main" || item.Window != 0 {
		t.Fatalf("unexpected first item %+v", item)
	}
}

func TestCatalogShrinkSnapsCursor(t *testing.T) {
	h := newTestHarness(t, testOptions())
	h.Send(sessionsEvent("a", "b", "c", "d", "e"))

	m := h.Model()
	if !m.nav.Select(4, m.geometry, m.visible.Len()) {
		t.Fatal("failed to place cursor on last item")
	}
	h.Send(sessionsEvent("a", "b", "c"))

	m = h.Model()
	if idx := m.nav.Index(m.geometry); idx != 2 {
		t.Fatalf("expected cursor snapped to last item, got %d", idx)
	}
}

func TestCatalogEmptyResetsCursor(t *testing.T) {
	h := newTestHarness(t, testOptions())
	h.Send(sessionsEvent("a", "b"))

	m := h.Model()
	m.nav.Select(1, m.geometry, m.visible.Len())
	h.Send(backendEventMsg{event: backend.Event{
		Kind: backend.KindSessions,
		Data: tmux.SessionSnapshot{},
	}})

	m = h.Model()
	if m.nav.Col != 0 || m.nav.Row != 0 || m.nav.Offset != 0 {
		t.Fatalf("expected zero cursor state, got %+v", m.nav)
	}
	if m.visible.Len() != 0 {
		t.Fatalf("expected empty catalog, got %d items", m.visible.Len())
	}
}

func TestBackendErrorKeepsCatalog(t *testing.T) {
	h := newTestHarness(t, testOptions())
	h.Send(sessionsEvent("a", "b"))
	h.Send(backendEventMsg{event: backend.Event{
		Kind: backend.KindSessions,
		Err:  errors.New("server exited"),
	}})

	m := h.Model()
	if m.visible.Len() != 2 {
		t.Fatalf("poll error must keep previous catalog, got %d items", m.visible.Len())
	}
	if warn, detail := m.hasBackendIssue(); !warn || detail != "server exited" {
		t.Fatalf("expected backend warning, got %v %q", warn, detail)
	}
}

func TestResizeRecomputesGeometryOnly(t *testing.T) {
	opts := testOptions()
	opts.Width = 0
	opts.Height = 0
	h := newTestHarness(t, opts)
	h.Send(tea.WindowSizeMsg{Width: 120, Height: 42})
	h.Send(sessionsEvent("a", "b", "c", "d", "e"))
	before := h.Model().visible.Items()

	h.Send(tea.WindowSizeMsg{Width: 60, Height: 22})

	m := h.Model()
	if got := m.visible.Items(); len(got) != len(before) {
		t.Fatalf("resize must not rebuild the catalog: %d vs %d", len(got), len(before))
	}
	if m.geometry.CellW != 30 {
		t.Fatalf("expected recomputed cell width 30, got %d", m.geometry.CellW)
	}
}

func TestCommitSwitchesToSession(t *testing.T) {
	calls := stubCommands(t)
	h := newTestHarness(t, testOptions())
	h.Send(sessionsEvent("a", "b", "c"))
	h.Send(tea.KeyMsg{Type: tea.KeyRight})
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})

	if len(calls.sessions) != 1 || calls.sessions[0] != "b" {
		t.Fatalf("expected switch to session b, got %+v", calls.sessions)
	}
}

func TestCommitSelectsWindow(t *testing.T) {
	calls := stubCommands(t)
	opts := testOptions()
	opts.Scope = "windows"
	opts.Anchor = "main"
	h := newTestHarness(t, opts)
	h.Send(sessionsEvent("main"))
	h.Send(windowsEvent("main", 3))
	h.Send(tea.KeyMsg{Type: tea.KeyRight})
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})

	if len(calls.windows) != 1 || calls.windows[0] != "main:1" {
		t.Fatalf("expected select of main:1, got %+v", calls.windows)
	}
	if len(calls.sessions) != 0 {
		t.Fatalf("window commit must not also switch sessions here: %+v", calls.sessions)
	}
}

func TestCommitDeadTargetIsNoOp(t *testing.T) {
	calls := stubCommands(t)
	h := newTestHarness(t, testOptions())
	h.Send(sessionsEvent("a", "b"))

	m := h.Model()
	// Kill "a" in the store without a catalog rebuild to simulate the race.
	m.sessions.SetEntries([]tmux.Session{{Name: "b", Label: "b"}})
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})

	if len(calls.sessions) != 0 {
		t.Fatalf("dead target must not reach tmux, got %+v", calls.sessions)
	}
	m = h.Model()
	if m.errMsg == "" {
		t.Fatal("expected an error message for the vanished target")
	}
	if m.visible.Len() != 1 {
		t.Fatalf("expected catalog rebuilt to 1 item, got %d", m.visible.Len())
	}
}

func TestCommitFailureSurfacesError(t *testing.T) {
	calls := stubCommands(t)
	calls.err = errors.New("no current client")
	h := newTestHarness(t, testOptions())
	h.Send(sessionsEvent("a"))
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})

	m := h.Model()
	if m.errMsg != "no current client" {
		t.Fatalf("expected switch error surfaced, got %q", m.errMsg)
	}
}

func TestDeadItemOutsideCatalogIgnored(t *testing.T) {
	h := newTestHarness(t, testOptions())
	m := h.Model()
	if cmd := m.commitSelection(); cmd != nil {
		t.Fatal("empty catalog commit must be a no-op")
	}
}

func TestNewModelScopeParsing(t *testing.T) {
	m := NewModel(Options{Scope: "windows", Refresh: time.Second}, nil)
	if m.scope != grid.ScopeWindows {
		t.Fatalf("unexpected scope %v", m.scope)
	}
	m = NewModel(Options{Scope: "sessions", Refresh: time.Second}, nil)
	if m.scope != grid.ScopeSessions {
		t.Fatalf("unexpected scope %v", m.scope)
	}
	if m.wrap != grid.WrapNone {
		t.Fatalf("wrap disabled by default, got %v", m.wrap)
	}
}
