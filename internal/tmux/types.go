package tmux

import (
	"os/exec"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// Session is a point-in-time snapshot of one tmux session.
type Session struct {
	Name     string
	Label    string
	Attached bool
	Windows  int
	Current  bool
}

// Window is a point-in-time snapshot of one tmux window. ID is the
// "session:index" target string accepted by tmux commands.
type Window struct {
	ID      string
	Session string
	Index   int
	Name    string
	Active  bool
	Label   string
}

type SessionSnapshot struct {
	Sessions []Session
	Current  string
}

type WindowSnapshot struct {
	Windows        []Window
	CurrentSession string
}

// tmuxClient is the slice of the gotmuxcc API this package depends on,
// kept as an interface so tests can substitute a fake.
type tmuxClient interface {
	ListSessions() ([]*gotmux.Session, error)
	ListAllWindows() ([]*gotmux.Window, error)
	ListClients() ([]*gotmux.Client, error)
	DisplayMessage(target, format string) (string, error)
	SwitchClient(*gotmux.SwitchClientOptions) error
	Close() error
}

var (
	newTmux = func(socketPath string) (tmuxClient, error) {
		if socketPath != "" {
			return gotmux.NewTmux(socketPath)
		}
		return gotmux.DefaultTmux()
	}

	runExecCommand = func(name string, args ...string) commander {
		return realCommander{cmd: exec.Command(name, args...)}
	}
)

type commander interface {
	Run() error
	Output() ([]byte, error)
}

type realCommander struct {
	cmd *exec.Cmd
}

func (r realCommander) Run() error {
	return r.cmd.Run()
}

func (r realCommander) Output() ([]byte, error) {
	return r.cmd.Output()
}
