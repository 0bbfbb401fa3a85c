package state

import (
	"sort"

	"github.com/atomicstack/tmux-grid-switch/internal/grid"
)

// Registry exposes the session and window stores as the read-only snapshot
// view the grid catalog is rebuilt from. Every call copies out of the stores
// so callers never see later store mutations.
type Registry struct {
	sessions SessionStore
	windows  WindowStore
}

func NewRegistry(sessions SessionStore, windows WindowStore) *Registry {
	return &Registry{sessions: sessions, windows: windows}
}

func (r *Registry) LiveTargets() []grid.TargetInfo {
	entries := r.sessions.Entries()
	out := make([]grid.TargetInfo, 0, len(entries))
	for _, entry := range entries {
		out = append(out, grid.TargetInfo{ID: entry.Name, Name: entry.Label})
	}
	return out
}

func (r *Registry) Children(targetID string) []grid.ChildInfo {
	windows := r.windows.ForSession(targetID)
	sort.Slice(windows, func(i, j int) bool {
		return windows[i].Index < windows[j].Index
	})
	out := make([]grid.ChildInfo, 0, len(windows))
	for _, w := range windows {
		out = append(out, grid.ChildInfo{Index: w.Index, Name: w.Name})
	}
	return out
}

// Alive reports whether the item still resolves against the current stores.
// Commit paths check this so a selection that raced a kill becomes a no-op.
func (r *Registry) Alive(item grid.Item) bool {
	if _, ok := r.sessions.Lookup(item.Session); !ok {
		return false
	}
	if item.IsSession() {
		return true
	}
	_, ok := r.windows.Lookup(item.Session, item.Window)
	return ok
}

// Label resolves a display label for the item; the bare session name or
// "session:index name" when the stores no longer know it.
func (r *Registry) Label(item grid.Item) string {
	if item.IsSession() {
		if s, ok := r.sessions.Lookup(item.Session); ok && s.Name != "" {
			return s.Name
		}
		return item.Session
	}
	if w, ok := r.windows.Lookup(item.Session, item.Window); ok && w.Name != "" {
		return w.Name
	}
	return item.Session
}
