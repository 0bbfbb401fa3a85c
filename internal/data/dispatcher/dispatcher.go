package dispatcher

import (
	"github.com/atomicstack/tmux-grid-switch/internal/backend"
	"github.com/atomicstack/tmux-grid-switch/internal/state"
	"github.com/atomicstack/tmux-grid-switch/internal/tmux"
)

// Result reports which stores a backend event touched, so the model knows
// whether the catalog needs a rebuild.
type Result struct {
	SessionsUpdated bool
	WindowsUpdated  bool
	Err             error
}

type Dispatcher struct {
	sessions state.SessionStore
	windows  state.WindowStore
}

func New(sessions state.SessionStore, windows state.WindowStore) *Dispatcher {
	return &Dispatcher{sessions: sessions, windows: windows}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		res.Err = evt.Err
		return res
	}
	switch evt.Kind {
	case backend.KindSessions:
		if snapshot, ok := evt.Data.(tmux.SessionSnapshot); ok {
			d.sessions.SetEntries(snapshot.Sessions)
			d.sessions.SetCurrent(snapshot.Current)
			res.SessionsUpdated = true
		}
	case backend.KindWindows:
		if snapshot, ok := evt.Data.(tmux.WindowSnapshot); ok {
			d.windows.SetEntries(snapshot.Windows)
			d.windows.SetCurrentSession(snapshot.CurrentSession)
			res.WindowsUpdated = true
		}
	}
	return res
}
