package state

import "github.com/atomicstack/tmux-grid-switch/internal/tmux"

type SessionStore interface {
	Entries() []tmux.Session
	SetEntries([]tmux.Session)
	Current() string
	SetCurrent(string)
	Lookup(name string) (tmux.Session, bool)
}

type sessionStore struct {
	entries []tmux.Session
	current string
}

func NewSessionStore() SessionStore {
	return &sessionStore{}
}

func (s *sessionStore) Entries() []tmux.Session {
	return cloneSessions(s.entries)
}

func (s *sessionStore) SetEntries(entries []tmux.Session) {
	s.entries = cloneSessions(entries)
}

func (s *sessionStore) Current() string {
	return s.current
}

func (s *sessionStore) SetCurrent(current string) {
	s.current = current
}

func (s *sessionStore) Lookup(name string) (tmux.Session, bool) {
	for _, entry := range s.entries {
		if entry.Name == name {
			return entry, true
		}
	}
	return tmux.Session{}, false
}

func cloneSessions(entries []tmux.Session) []tmux.Session {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]tmux.Session, len(entries))
	copy(dup, entries)
	return dup
}
