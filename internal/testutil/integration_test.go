package testutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestGridRendering(t *testing.T) {
	bin := buildBinary(t)
	socket, cleanup, logDir := StartTmuxServer(t)
	defer cleanup()
	t.Cleanup(func() {
		AssertNoServerCrash(t, logDir)
	})
	for _, name := range []string{"alpha", "beta"} {
		if err := TmuxCommand(socket, "new-session", "-d", "-s", name, "sleep", "600").Run(); err != nil {
			t.Skipf("skipping: unable to create session %s: %v", name, err)
		}
	}
	session := "gridhost"
	pane := session + ":0.0"
	scriptDir := t.TempDir()
	exitFile := filepath.Join(scriptDir, "exit-code")
	scriptPath := filepath.Join(scriptDir, "run.sh")
	script := "#!/bin/sh\n" +
		"\"$GRID_BIN\" -socket \"$GRID_SOCKET\" -width 80 -height 24\n" +
		"printf '%s' $? > \"$GRID_EXIT\"\n" +
		"sleep 300\n"
	if err := os.WriteFile(scriptPath, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write launcher script: %v", err)
	}
	cmd := TmuxCommand(socket, "new-session", "-d", "-x", "80", "-y", "24",
		"-e", "GRID_BIN="+bin,
		"-e", "GRID_SOCKET="+socket,
		"-e", "GRID_EXIT="+exitFile,
		"-s", session, scriptPath)
	cmd.Env = append(cmd.Env,
		"GRID_BIN="+bin,
		"GRID_SOCKET="+socket,
		"GRID_EXIT="+exitFile,
	)
	if err := cmd.Run(); err != nil {
		t.Fatalf("failed to launch binary: %v", err)
	}
	if err := TmuxCommand(socket, "has-session", "-t", session).Run(); err != nil {
		t.Skipf("skipping: unable to create tmux session: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	waitForRender(t, ctx, socket, pane, exitFile)
	output, err := CapturePane(t, socket, pane)
	if err != nil {
		t.Fatalf("capture-pane failed: %v", err)
	}
	if strings.TrimSpace(output) == "" {
		t.Skip("tmux capture returned empty output; skipping render checks")
	}
	for _, want := range []string{"alpha", "beta", "╭"} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected rendered grid to contain %q\noutput:\n%s", want, output)
		}
	}
	_ = TmuxCommand(socket, "send-keys", "-t", pane, "q").Run()
	_ = TmuxCommand(socket, "kill-session", "-t", session).Run()
}
