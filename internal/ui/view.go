package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/tmux-grid-switch/internal/grid"
)

const (
	cellTLC = "╭"
	cellTRC = "╮"
	cellBLC = "╰"
	cellBRC = "╯"
	cellHz  = "─"
	cellVt  = "│"
)

// View renders the header, the grid of bordered cells, and the footer.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return styles.Loading.Render("Loading…")
	}
	rows := make([]string, 0, m.height)
	rows = append(rows, m.renderHeader())
	rows = append(rows, m.renderGrid()...)
	rows = append(rows, m.renderFooter())
	return strings.Join(rows, "\n")
}

func (m *Model) renderHeader() string {
	title := scopeName(m.scope)
	if m.scope == grid.ScopeWindows {
		anchor := m.anchor
		if anchor == "" {
			anchor = m.windows.CurrentSession()
		}
		if anchor != "" {
			title = fmt.Sprintf("windows of %s", anchor)
		}
	}
	header := styles.Header.Render(title)
	if m.filterActive || m.filterQuery != "" {
		header += "  " + styles.FilterPrompt.Render("/") + styles.Filter.Render(m.filterQuery)
		if m.filterActive {
			header += styles.Filter.Render("▌")
		}
	}
	if m.errMsg != "" {
		header += "  " + styles.Error.Render(m.errMsg)
	} else if warn, detail := m.hasBackendIssue(); warn {
		header += "  " + styles.Error.Render("tmux: "+detail)
	}
	return truncateLine(header, m.width)
}

func (m *Model) renderFooter() string {
	hints := []string{"↑↓←→ move", "() cycle"}
	if m.paging {
		hints = append(hints, "pgup/pgdn page")
	}
	hints = append(hints, "0-9 jump", "/ filter", "enter switch", "q quit")
	return truncateLine(styles.Footer.Render(strings.Join(hints, " · ")), m.width)
}

// renderGrid produces exactly surfaceH lines: the visible grid rows padded
// with blanks so the footer never drifts.
func (m *Model) renderGrid() []string {
	lines := make([]string, 0, m.surfaceH())
	g := m.geometry
	n := m.visible.Len()
	if n == 0 || g.Columns == 0 {
		lines = append(lines, m.centeredLine(styles.Footer.Render("(nothing to switch to)")))
	} else {
		last := m.nav.Offset + m.visibleRows()
		if last > g.TotalRows {
			last = g.TotalRows
		}
		for row := m.nav.Offset; row < last; row++ {
			cells := make([]string, 0, g.Columns)
			for col := 0; col < g.Columns; col++ {
				idx := row*g.Columns + col
				item, ok := m.visible.At(idx)
				if !ok {
					cells = append(cells, blankCell(g.CellW, g.CellH))
					continue
				}
				selected := idx == m.nav.Index(g)
				cells = append(cells, m.renderCell(item, idx, selected, g.CellW, g.CellH))
			}
			joined := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
			lines = append(lines, strings.Split(joined, "\n")...)
		}
	}
	for len(lines) < m.surfaceH() {
		lines = append(lines, "")
	}
	if len(lines) > m.surfaceH() {
		lines = lines[:m.surfaceH()]
	}
	return lines
}

// renderCell draws one bordered cell, cellW wide and cellH tall, with the
// item label centred in the top border and the cached pane capture inside.
func (m *Model) renderCell(item grid.Item, idx int, selected bool, cellW, cellH int) string {
	borderStyle := styles.Border
	labelStyle := styles.Label
	if selected {
		borderStyle = styles.SelectedBorder
		labelStyle = styles.SelectedLabel
	}
	alive := m.registry.Alive(item)
	if !alive {
		labelStyle = styles.DeadLabel
	}

	label := m.registry.Label(item)
	if idx < 10 {
		label = fmt.Sprintf("%d %s", idx, label)
	}

	innerW := cellW - 2
	innerH := cellH - 2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 0 {
		innerH = 0
	}

	rows := make([]string, 0, cellH)
	rows = append(rows, m.cellTopBorder(label, cellW, borderStyle, labelStyle))

	var content []string
	if data := m.previewFor(item); data != nil {
		if data.err != "" {
			content = []string{styles.PreviewBody.Render(data.err)}
		} else if data.loading && len(data.lines) == 0 {
			content = []string{styles.PreviewBody.Render("Loading…")}
		} else {
			content = data.lines
		}
	}
	if len(content) > innerH {
		content = content[len(content)-innerH:]
	}
	for i := 0; i < innerH; i++ {
		var line string
		if i < len(content) {
			line = content[i]
		}
		w := lipgloss.Width(line)
		if w > innerW {
			line = truncate.StringWithTail(line, uint(innerW-1), "…")
			w = lipgloss.Width(line)
		}
		if w < innerW {
			line += strings.Repeat(" ", innerW-w)
		}
		rows = append(rows, borderStyle.Render(cellVt)+line+borderStyle.Render(cellVt))
	}
	rows = append(rows, borderStyle.Render(cellBLC+strings.Repeat(cellHz, innerW)+cellBRC))
	return strings.Join(rows, "\n")
}

// cellTopBorder centres the label between the corner runs, truncating long
// labels with a ".." tail the way narrow cells demand.
func (m *Model) cellTopBorder(label string, cellW int, borderStyle, labelStyle *lipgloss.Style) string {
	innerW := cellW - 2
	seg := " " + label + " "
	segRunes := []rune(seg)
	if len(segRunes) > innerW-2 && innerW > 4 {
		keep := innerW - 4
		seg = " " + string([]rune(label)[:keep-1]) + ".. "
		segRunes = []rune(seg)
	}
	if len(segRunes) > innerW {
		segRunes = segRunes[:innerW]
		seg = string(segRunes)
	}
	left := (innerW - len(segRunes)) / 2
	right := innerW - len(segRunes) - left
	return borderStyle.Render(cellTLC+strings.Repeat(cellHz, left)) +
		labelStyle.Render(seg) +
		borderStyle.Render(strings.Repeat(cellHz, right)+cellTRC)
}

func blankCell(cellW, cellH int) string {
	row := strings.Repeat(" ", cellW)
	rows := make([]string, cellH)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func (m *Model) centeredLine(text string) string {
	w := lipgloss.Width(text)
	if w >= m.width {
		return truncateLine(text, m.width)
	}
	return strings.Repeat(" ", (m.width-w)/2) + text
}

func truncateLine(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width-1), "…")
}
