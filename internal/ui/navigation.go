package ui

import (
	"github.com/atomicstack/tmux-grid-switch/internal/grid"
	"github.com/atomicstack/tmux-grid-switch/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.filterActive {
		return m.handleFilterKey(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		events.Action.Cancel(keyMsg.String())
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Filter):
		m.filterActive = true
		return nil
	case key.Matches(keyMsg, m.keys.Commit):
		return m.commitSelection()
	case key.Matches(keyMsg, m.keys.Left):
		if m.nav.MoveLeft() {
			return m.afterMove()
		}
		return nil
	case key.Matches(keyMsg, m.keys.Right):
		if m.nav.MoveRight(m.geometry, m.visible.Len()) {
			return m.afterMove()
		}
		return nil
	case key.Matches(keyMsg, m.keys.Up):
		if m.nav.MoveUp() {
			return m.afterMove()
		}
		return nil
	case key.Matches(keyMsg, m.keys.Down):
		if m.nav.MoveDown(m.geometry, m.visible.Len()) {
			return m.afterMove()
		}
		return nil
	case key.Matches(keyMsg, m.keys.PageUp):
		if m.nav.PageUp(m.visibleRows()) {
			return m.afterMove()
		}
		return nil
	case key.Matches(keyMsg, m.keys.PageDown):
		if m.nav.PageDown(m.geometry, m.visible.Len(), m.visibleRows()) {
			return m.afterMove()
		}
		return nil
	case key.Matches(keyMsg, m.keys.Prev):
		if m.moveLinear(-1) {
			return m.afterMove()
		}
		return nil
	case key.Matches(keyMsg, m.keys.Next):
		if m.moveLinear(1) {
			return m.afterMove()
		}
		return nil
	}

	if idx, ok := digitIndex(keyMsg); ok {
		if m.nav.Select(idx, m.geometry, m.visible.Len()) {
			return m.afterMove()
		}
	}
	return nil
}

// moveLinear steps the selection by flat index. Under WrapLinear the ends
// wrap around; otherwise the cursor stops there.
func (m *Model) moveLinear(delta int) bool {
	n := m.visible.Len()
	if n == 0 {
		return false
	}
	if m.wrap == grid.WrapLinear {
		if delta < 0 {
			return m.nav.Prev(m.geometry, n)
		}
		return m.nav.Next(m.geometry, n)
	}
	idx := m.nav.Index(m.geometry) + delta
	return m.nav.Select(idx, m.geometry, n)
}

func (m *Model) afterMove() tea.Cmd {
	m.nav.ClampOffset(m.visibleRows())
	m.errMsg = ""
	events.Grid.Cursor(m.nav.Col, m.nav.Row, m.nav.Index(m.geometry))
	events.Grid.Scroll(m.nav.Offset, m.visibleRows())
	return m.ensurePreviews()
}

func digitIndex(msg tea.KeyMsg) (int, bool) {
	s := msg.String()
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '0'), true
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		events.Action.Cancel("ctrl+c")
		return tea.Quit
	case "esc":
		m.filterActive = false
		if m.filterQuery != "" {
			m.filterQuery = ""
			events.Filter.Cleared()
			return m.refilter()
		}
		return nil
	case "enter":
		m.filterActive = false
		return nil
	case "backspace":
		if m.filterQuery == "" {
			return nil
		}
		runes := []rune(m.filterQuery)
		m.filterQuery = string(runes[:len(runes)-1])
		return m.refilter()
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 {
		m.filterQuery += string(msg.Runes)
		return m.refilter()
	}
	if msg.Type == tea.KeySpace {
		m.filterQuery += " "
		return m.refilter()
	}
	return nil
}

func (m *Model) refilter() tea.Cmd {
	m.applyFilter()
	m.recomputeGeometry()
	events.Filter.Append(m.filterQuery, m.visible.Len())
	return m.ensurePreviews()
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch mouse.Button {
	case tea.MouseButtonWheelUp:
		if m.nav.MoveUp() {
			return m.afterMove()
		}
		return nil
	case tea.MouseButtonWheelDown:
		if m.nav.MoveDown(m.geometry, m.visible.Len()) {
			return m.afterMove()
		}
		return nil
	case tea.MouseButtonLeft:
		if mouse.Action != tea.MouseActionPress {
			return nil
		}
		idx, hit := m.nav.PointerIndex(mouse.X, mouse.Y-headerRows, m.geometry, m.visible.Len())
		events.Grid.Pointer(mouse.X, mouse.Y, idx, hit)
		if !hit {
			return nil
		}
		// Clicking the selected cell commits, like a double click.
		if idx == m.nav.Index(m.geometry) {
			return m.commitSelection()
		}
		if m.nav.Select(idx, m.geometry, m.visible.Len()) {
			return m.afterMove()
		}
	}
	return nil
}
