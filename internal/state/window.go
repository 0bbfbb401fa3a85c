package state

import "github.com/atomicstack/tmux-grid-switch/internal/tmux"

type WindowStore interface {
	Entries() []tmux.Window
	SetEntries([]tmux.Window)
	CurrentSession() string
	SetCurrentSession(string)
	ForSession(session string) []tmux.Window
	Lookup(session string, index int) (tmux.Window, bool)
}

type windowStore struct {
	entries        []tmux.Window
	currentSession string
}

func NewWindowStore() WindowStore {
	return &windowStore{}
}

func (w *windowStore) Entries() []tmux.Window {
	return cloneWindows(w.entries)
}

func (w *windowStore) SetEntries(entries []tmux.Window) {
	w.entries = cloneWindows(entries)
}

func (w *windowStore) CurrentSession() string {
	return w.currentSession
}

func (w *windowStore) SetCurrentSession(session string) {
	w.currentSession = session
}

func (w *windowStore) ForSession(session string) []tmux.Window {
	var out []tmux.Window
	for _, entry := range w.entries {
		if entry.Session == session {
			out = append(out, entry)
		}
	}
	return out
}

func (w *windowStore) Lookup(session string, index int) (tmux.Window, bool) {
	for _, entry := range w.entries {
		if entry.Session == session && entry.Index == index {
			return entry, true
		}
	}
	return tmux.Window{}, false
}

func cloneWindows(entries []tmux.Window) []tmux.Window {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]tmux.Window, len(entries))
	copy(dup, entries)
	return dup
}
