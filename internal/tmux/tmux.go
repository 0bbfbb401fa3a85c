package tmux

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// FetchSessions gathers a snapshot of every session on the server. The
// control-mode client is the primary source; a direct list-sessions
// invocation covers the startup race where control mode reports nothing.
func FetchSessions(socketPath string) (SessionSnapshot, error) {
	client, err := newTmux(socketPath)
	if err != nil {
		return SessionSnapshot{}, err
	}
	defer client.Close()
	sessions, err := client.ListSessions()
	if err != nil || len(sessions) == 0 {
		sessions, err = fetchSessionsFallback(socketPath)
		if err != nil {
			return SessionSnapshot{}, err
		}
	}
	currentName := currentSessionName(client)
	out := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		if s == nil || s.Name == "" {
			continue
		}
		out = append(out, Session{
			Name:     s.Name,
			Label:    labelForSession(s),
			Attached: s.Attached > 0,
			Windows:  s.Windows,
			Current:  s.Name == currentName,
		})
	}
	return SessionSnapshot{Sessions: out, Current: currentName}, nil
}

// FetchWindows gathers a snapshot of every window across all sessions.
func FetchWindows(socketPath string) (WindowSnapshot, error) {
	client, err := newTmux(socketPath)
	if err != nil {
		return WindowSnapshot{}, err
	}
	defer client.Close()
	windows, err := client.ListAllWindows()
	if err != nil {
		return WindowSnapshot{}, err
	}
	currentSession := currentSessionName(client)
	snapshot := WindowSnapshot{CurrentSession: currentSession}
	for _, w := range windows {
		if w == nil {
			continue
		}
		session := firstSession(w)
		if session == "" {
			continue
		}
		snapshot.Windows = append(snapshot.Windows, Window{
			ID:      fmt.Sprintf("%s:%d", session, w.Index),
			Session: session,
			Index:   w.Index,
			Name:    w.Name,
			Active:  w.Active,
			Label:   fmt.Sprintf("%s:%d %s", session, w.Index, w.Name),
		})
	}
	return snapshot, nil
}

// SwitchClient retargets the attached client onto the named session.
// clientID may be empty, in which case tmux picks the most recently
// active client on the socket.
func SwitchClient(socketPath, session, clientID string) error {
	target := strings.TrimSpace(session)
	if target == "" {
		return fmt.Errorf("session name required")
	}
	client, err := newTmux(socketPath)
	if err != nil {
		return err
	}
	defer client.Close()
	opts := &gotmux.SwitchClientOptions{TargetSession: target}
	if clientID != "" {
		opts.TargetClient = clientID
	}
	return client.SwitchClient(opts)
}

// SelectWindow makes "session:index" the active window of its session
// and then switches the client onto that session.
func SelectWindow(socketPath, target, clientID string) error {
	trimmed := strings.TrimSpace(target)
	if trimmed == "" {
		return fmt.Errorf("window target required")
	}
	session := trimmed
	if idx := strings.IndexRune(trimmed, ':'); idx >= 0 {
		session = trimmed[:idx]
	}
	args := append(baseArgs(socketPath), "select-window", "-t", trimmed)
	if err := runExecCommand("tmux", args...).Run(); err != nil {
		return fmt.Errorf("select-window %s: %w", trimmed, err)
	}
	return SwitchClient(socketPath, session, clientID)
}

// CurrentClientID detects the client that launched the popup so switch
// commands can target the visible client instead of the control-mode
// connection.
func CurrentClientID(socketPath string) string {
	client, err := newTmux(socketPath)
	if err != nil {
		return ""
	}
	defer client.Close()
	target := strings.TrimSpace(os.Getenv("TMUX_PANE"))
	name, err := client.DisplayMessage(target, "#{client_name}")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(name)
}

// ResolveSocketPath picks the tmux socket to talk to: explicit flag,
// then the TMUX_GRID_SWITCH_SOCKET override, then the socket recorded
// in $TMUX, then tmux's default path for the current user.
func ResolveSocketPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if envSocket := os.Getenv("TMUX_GRID_SWITCH_SOCKET"); envSocket != "" {
		return envSocket, nil
	}
	if tmuxEnv := os.Getenv("TMUX"); tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0], nil
		}
	}
	baseDir := os.Getenv("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", u.Uid), "default"), nil
}

func labelForSession(s *gotmux.Session) string {
	label := fmt.Sprintf("%s: %d window", s.Name, s.Windows)
	if s.Windows != 1 {
		label += "s"
	}
	if s.Attached > 0 {
		label += " (attached)"
	}
	return label
}

func currentSessionName(client tmuxClient) string {
	if pane := strings.TrimSpace(os.Getenv("TMUX_PANE")); pane != "" {
		if name, err := client.DisplayMessage(pane, "#{session_name}"); err == nil {
			if name = strings.TrimSpace(name); name != "" {
				return name
			}
		}
	}
	if clients, err := client.ListClients(); err == nil {
		for _, c := range clients {
			if c == nil || c.ControlMode || c.Session == "" {
				continue
			}
			return c.Session
		}
	}
	return ""
}

func firstSession(w *gotmux.Window) string {
	if len(w.ActiveSessionsList) > 0 {
		return w.ActiveSessionsList[0]
	}
	if len(w.LinkedSessionsList) > 0 {
		return w.LinkedSessionsList[0]
	}
	return ""
}

// fetchSessionsFallback lists sessions with a direct tmux invocation so
// the snapshot still works if the control-mode transport is misbehaving.
func fetchSessionsFallback(socketPath string) ([]*gotmux.Session, error) {
	format := "#{session_name}\t#{session_windows}\t#{session_attached}"
	args := append(baseArgs(socketPath), "list-sessions", "-F", format)
	output, err := runExecCommand("tmux", args...).Output()
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(string(output))
	if text == "" {
		return []*gotmux.Session{}, nil
	}
	lines := strings.Split(text, "\n")
	sessions := make([]*gotmux.Session, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) < 3 {
			continue
		}
		windows, _ := strconv.Atoi(strings.TrimSpace(parts[1]))
		attached, _ := strconv.Atoi(strings.TrimSpace(parts[2]))
		sessions = append(sessions, &gotmux.Session{
			Name:     strings.TrimSpace(parts[0]),
			Windows:  windows,
			Attached: attached,
		})
	}
	return sessions, nil
}
