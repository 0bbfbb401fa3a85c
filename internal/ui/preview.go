package ui

import (
	"time"

	"github.com/atomicstack/tmux-grid-switch/internal/grid"
	"github.com/atomicstack/tmux-grid-switch/internal/tmux"
	tea "github.com/charmbracelet/bubbletea"
)

type previewData struct {
	target  string
	lines   []string
	err     string
	loading bool
	seq     int
}

type previewLoadedMsg struct {
	target string
	seq    int
	lines  []string
	err    error
}

type refreshTickMsg struct{}

var (
	panePreviewFn    = tmux.PanePreview
	sessionPreviewFn = tmux.SessionPreview
	windowPreviewFn  = tmux.WindowPreview

	scheduleTick = tea.Tick
)

// armRefresh schedules the next preview refresh tick. The flag keeps exactly
// one tick in flight; handlers re-arm only after the previous refresh has
// fully landed.
func (m *Model) armRefresh() tea.Cmd {
	if m.refreshArmed {
		return nil
	}
	m.refreshArmed = true
	return scheduleTick(m.refresh, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}

func (m *Model) handleRefreshTickMsg(tea.Msg) tea.Cmd {
	m.refreshArmed = false
	if cmd := m.capturePreviews(true); cmd != nil {
		return cmd
	}
	return m.armRefresh()
}

// ensurePreviews captures panes for visible items that have no preview yet.
func (m *Model) ensurePreviews() tea.Cmd {
	return m.capturePreviews(false)
}

func (m *Model) capturePreviews(force bool) tea.Cmd {
	items := m.visibleItems()
	if len(items) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(items))
	for _, item := range items {
		target := itemTarget(item)
		if data, ok := m.previews[target]; ok && !force && !data.loading {
			continue
		}
		m.previewSeq++
		seq := m.previewSeq
		m.previews[target] = &previewData{target: target, loading: true, seq: seq}
		cmds = append(cmds, capturePreview(m.socketPath, item, seq))
	}
	if len(cmds) == 0 {
		return nil
	}
	m.previewPending += len(cmds)
	return tea.Batch(cmds...)
}

// capturePreview grabs the recent pane contents for one item. When the live
// capture fails the preview falls back to a textual window or pane listing.
func capturePreview(socket string, item grid.Item, seq int) tea.Cmd {
	target := itemTarget(item)
	isSession := item.IsSession()
	return func() tea.Msg {
		lines, err := panePreviewFn(socket, target)
		if err != nil {
			if isSession {
				lines, err = sessionPreviewFn(socket, target)
			} else {
				lines, err = windowPreviewFn(socket, target)
			}
		}
		return previewLoadedMsg{target: target, seq: seq, lines: lines, err: err}
	}
}

func (m *Model) handlePreviewLoadedMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(previewLoadedMsg)
	if !ok {
		return nil
	}
	if m.previewPending > 0 {
		m.previewPending--
	}
	if data, ok := m.previews[update.target]; ok && data.seq == update.seq {
		data.loading = false
		if update.err != nil {
			data.err = update.err.Error()
			data.lines = nil
		} else {
			data.err = ""
			data.lines = update.lines
		}
	}
	if m.previewPending == 0 {
		return m.armRefresh()
	}
	return nil
}

// visibleItems returns the items of the rows inside the current viewport.
func (m *Model) visibleItems() []grid.Item {
	g := m.geometry
	if g.Columns == 0 {
		return nil
	}
	start := m.nav.Offset * g.Columns
	end := (m.nav.Offset + m.visibleRows()) * g.Columns
	if end > m.visible.Len() {
		end = m.visible.Len()
	}
	if start >= end {
		return nil
	}
	items := make([]grid.Item, 0, end-start)
	for i := start; i < end; i++ {
		if item, ok := m.visible.At(i); ok {
			items = append(items, item)
		}
	}
	return items
}

func (m *Model) previewFor(item grid.Item) *previewData {
	return m.previews[itemTarget(item)]
}
