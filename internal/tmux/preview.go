package tmux

import (
	"fmt"
	"strings"

	"github.com/atomicstack/tmux-grid-switch/internal/format/table"
)

const panePreviewDefaultLines = 40

// Listing formats emit tab-separated fields so the columns can be aligned
// locally after the fact.
var (
	sessionPreviewFormat = "#{?window_active,*, }\t#{window_index}:\t#{window_name}"
	windowPreviewFormat  = "#{?pane_active,*, }\t#{pane_index}:\t#{pane_title} (#{pane_current_command})"
)

var listingAlignments = []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignLeft}

// PanePreview captures the recent contents of the active pane of the
// given target (a session name or "session:index" window target) with
// escape sequences preserved.
func PanePreview(socketPath, target string) ([]string, error) {
	trimmed := strings.TrimSpace(target)
	if trimmed == "" {
		return nil, fmt.Errorf("pane target required")
	}
	args := append(baseArgs(socketPath), "capture-pane", "-ep", "-S", fmt.Sprintf("-%d", panePreviewDefaultLines), "-t", trimmed)
	output, err := runExecCommand("tmux", args...).Output()
	if err != nil {
		return nil, fmt.Errorf("capture-pane %s: %w", trimmed, err)
	}
	lines := splitPreviewLines(string(output), true)
	if len(lines) == 0 {
		return []string{"(pane is empty)"}, nil
	}
	if len(lines) > panePreviewDefaultLines {
		lines = lines[len(lines)-panePreviewDefaultLines:]
	}
	return lines, nil
}

// SessionPreview returns a textual listing of the windows in a session,
// used when a live pane capture is unavailable.
func SessionPreview(socketPath, session string) ([]string, error) {
	target := strings.TrimSpace(session)
	if target == "" {
		return nil, fmt.Errorf("session name required")
	}
	args := append(baseArgs(socketPath), "list-windows", "-t", target, "-F", sessionPreviewFormat)
	output, err := runExecCommand("tmux", args...).Output()
	if err != nil {
		return nil, fmt.Errorf("list-windows %s: %w", target, err)
	}
	lines := alignListing(splitPreviewLines(string(output), false))
	if len(lines) == 0 {
		return []string{"(no windows)"}, nil
	}
	return lines, nil
}

// WindowPreview returns a textual listing of the panes in a window.
func WindowPreview(socketPath, window string) ([]string, error) {
	target := strings.TrimSpace(window)
	if target == "" {
		return nil, fmt.Errorf("window target required")
	}
	args := append(baseArgs(socketPath), "list-panes", "-t", target, "-F", windowPreviewFormat)
	output, err := runExecCommand("tmux", args...).Output()
	if err != nil {
		return nil, fmt.Errorf("list-panes %s: %w", target, err)
	}
	lines := alignListing(splitPreviewLines(string(output), false))
	if len(lines) == 0 {
		return []string{"(no panes)"}, nil
	}
	return lines, nil
}

func alignListing(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, strings.SplitN(line, "\t", 3))
	}
	return table.Format(rows, listingAlignments)
}

func splitPreviewLines(text string, keepEmpty bool) []string {
	if text == "" {
		return nil
	}
	normalised := strings.ReplaceAll(text, "\r\n", "\n")
	normalised = strings.ReplaceAll(normalised, "\r", "\n")
	normalised = strings.TrimRight(normalised, "\n")
	if normalised == "" {
		return nil
	}
	raw := strings.Split(normalised, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		trimmed := strings.TrimRight(line, " \t")
		if trimmed == "" && !keepEmpty {
			continue
		}
		lines = append(lines, trimmed)
	}
	return lines
}
