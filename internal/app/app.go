package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/tmux-grid-switch/internal/backend"
	"github.com/atomicstack/tmux-grid-switch/internal/tmux"
	"github.com/atomicstack/tmux-grid-switch/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	SocketPath string
	Width      int
	Height     int
	Scope      string
	Anchor     string
	MinCellW   int
	MinCellH   int
	Wrap       bool
	Paging     bool
	Refresh    time.Duration
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	socketPath, err := tmux.ResolveSocketPath(cfg.SocketPath)
	if err != nil {
		return fmt.Errorf("resolve socket path: %w", err)
	}
	watcher := backend.NewWatcher(socketPath, 1500*time.Millisecond)
	defer watcher.Stop()
	model := ui.NewModel(ui.Options{
		SocketPath: socketPath,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Scope:      cfg.Scope,
		Anchor:     cfg.Anchor,
		MinCellW:   cfg.MinCellW,
		MinCellH:   cfg.MinCellH,
		Wrap:       cfg.Wrap,
		Paging:     cfg.Paging,
		Refresh:    cfg.Refresh,
	}, watcher)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
