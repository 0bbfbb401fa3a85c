package ui

import (
	"fmt"

	"github.com/atomicstack/tmux-grid-switch/internal/grid"
	"github.com/atomicstack/tmux-grid-switch/internal/logging/events"
	"github.com/atomicstack/tmux-grid-switch/internal/tmux"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	switchClientFn  = tmux.SwitchClient
	selectWindowFn  = tmux.SelectWindow
	currentClientFn = tmux.CurrentClientID
)

type actionResultMsg struct {
	target string
	err    error
}

func itemTarget(item grid.Item) string {
	if item.IsSession() {
		return item.Session
	}
	return fmt.Sprintf("%s:%d", item.Session, item.Window)
}

// commitSelection resolves the cursor item and switches to it. A target that
// died since the last rebuild is dropped on the floor: the catalog is rebuilt
// and the switcher stays open.
func (m *Model) commitSelection() tea.Cmd {
	item, ok := m.selectedItem()
	if !ok {
		return nil
	}
	target := itemTarget(item)
	if !m.registry.Alive(item) {
		events.Action.Dead(target)
		m.errMsg = fmt.Sprintf("%s is gone", target)
		m.rebuildCatalog()
		return m.ensurePreviews()
	}
	socket := m.socketPath
	isSession := item.IsSession()
	return func() tea.Msg {
		clientID := currentClientFn(socket)
		var err error
		if isSession {
			err = switchClientFn(socket, target, clientID)
		} else {
			err = selectWindowFn(socket, target, clientID)
		}
		return actionResultMsg{target: target, err: err}
	}
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(actionResultMsg)
	if !ok {
		return nil
	}
	if result.err != nil {
		m.errMsg = result.err.Error()
		events.Action.Error(result.err)
		return nil
	}
	m.errMsg = ""
	events.Action.Commit(result.target)
	return tea.Quit
}
