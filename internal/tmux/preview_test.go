package tmux

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestPanePreviewCapturesTail(t *testing.T) {
	calls := withFakeCommands(t, func(string, ...string) commander {
		return fakeCommander{output: []byte("one\ntwo\n\nthree\n")}
	})

	lines, err := PanePreview("/tmp/sock", "main:1")
	if err != nil {
		t.Fatalf("PanePreview: %v", err)
	}
	want := []string{"one", "two", "", "three"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("unexpected lines %v", lines)
	}
	joined := strings.Join((*calls)[0], " ")
	if joined != "tmux -S /tmp/sock capture-pane -ep -S -40 -t main:1" {
		t.Fatalf("unexpected command %q", joined)
	}
}

func TestPanePreviewEmptyPane(t *testing.T) {
	withFakeCommands(t, func(string, ...string) commander {
		return fakeCommander{output: []byte("\n\n")}
	})

	lines, err := PanePreview("", "main")
	if err != nil {
		t.Fatalf("PanePreview: %v", err)
	}
	if len(lines) != 1 || lines[0] != "(pane is empty)" {
		t.Fatalf("unexpected lines %v", lines)
	}
}

func TestPanePreviewRequiresTarget(t *testing.T) {
	if _, err := PanePreview("", "  "); err == nil {
		t.Fatal("expected error for empty target")
	}
}

func TestPanePreviewWrapsCaptureError(t *testing.T) {
	withFakeCommands(t, func(string, ...string) commander {
		return fakeCommander{err: errors.New("no server")}
	})

	_, err := PanePreview("", "main:0")
	if err == nil || !strings.Contains(err.Error(), "capture-pane main:0") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestSessionPreviewAlignsWindowListing(t *testing.T) {
	withFakeCommands(t, func(string, ...string) commander {
		return fakeCommander{output: []byte("*\t9:\tvim\n \t10:\tlogs\n")}
	})

	lines, err := SessionPreview("", "main")
	if err != nil {
		t.Fatalf("SessionPreview: %v", err)
	}
	want := []string{"*   9:  vim", "   10:  logs"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("unexpected lines %q", lines)
	}
}

func TestWindowPreviewEmptyOutput(t *testing.T) {
	withFakeCommands(t, func(string, ...string) commander {
		return fakeCommander{output: nil}
	})

	lines, err := WindowPreview("", "main:0")
	if err != nil {
		t.Fatalf("WindowPreview: %v", err)
	}
	if len(lines) != 1 || lines[0] != "(no panes)" {
		t.Fatalf("unexpected lines %v", lines)
	}
}

func TestSplitPreviewLinesNormalisesCarriageReturns(t *testing.T) {
	lines := splitPreviewLines("a\r\nb\rc   \n", true)
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("unexpected lines %v", lines)
	}
}
