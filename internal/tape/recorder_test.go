package tape

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Gaurav-Gosain/retrodesk/internal/desktop"
	"github.com/Gaurav-Gosain/retrodesk/internal/geometry"
	"github.com/Gaurav-Gosain/retrodesk/internal/shell"
)

func TestRecorderCapturesSession(t *testing.T) {
	s := newShell(nil)
	rec := NewRecorder()
	rec.Start(s)

	s.Open(desktop.Projects)
	rec.Sync(s)

	// Drag projects left by 100 and down by 50.
	s.PointerDown(geometry.Point{X: 450, Y: 105})
	s.PointerMove(geometry.Point{X: 400, Y: 130})
	rec.Sync(s) // mid-gesture, ignored
	s.PointerMove(geometry.Point{X: 350, Y: 155})
	s.PointerUp(geometry.Point{X: 350, Y: 155})
	rec.Sync(s)

	s.ToggleMaximize(desktop.Projects)
	rec.Sync(s)
	s.ToggleMaximize(desktop.Projects)
	rec.Sync(s)

	if s.Key("p") {
		rec.RecordKey("p")
	}
	s.Focus(desktop.Welcome)
	s.Focus(desktop.Welcome)
	s.Minimize(desktop.Welcome)
	rec.Stop(s)

	if rec.IsRecording() {
		t.Error("recorder should stop")
	}

	want := []string{
		"Viewport 1000 800",
		"Open projects",
		"Drag projects -100 50",
		"Maximize projects",
		"Maximize projects",
		`Key "p"`,
		"Focus welcome",
		"Minimize welcome",
		"ExpectOpen projects",
		"ExpectFocused none",
		"Expect projects 300 150 700 500",
	}
	var got []string
	for _, c := range rec.GetCommands() {
		got = append(got, c.String())
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("recorded:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestRecordingReplays(t *testing.T) {
	s := newShell(nil)
	rec := NewRecorder()
	rec.Start(s)

	s.Open(desktop.Projects)
	rec.Sync(s)
	s.SetViewport(1280, 1024)
	rec.Sync(s)

	// Grow projects from its corner handle.
	s.PointerDown(geometry.Point{X: 1095, Y: 590})
	s.PointerMove(geometry.Point{X: 1135, Y: 610})
	s.PointerUp(geometry.Point{X: 1135, Y: 610})
	rec.Sync(s)

	s.Open(desktop.Blog)
	s.Close(desktop.Welcome)
	rec.Stop(s)

	script := rec.String("session")
	if !strings.HasPrefix(script, "# session\n# Recorded: ") {
		t.Errorf("missing header:\n%s", script)
	}
	if !strings.Contains(script, "Resize projects 40 20\n") {
		t.Errorf("resize not recorded:\n%s", script)
	}

	cmds, err := Parse(script)
	if err != nil {
		t.Fatalf("recorded script does not parse: %v\n%s", err, script)
	}
	if err := NewPlayer(cmds, nil).Run(context.Background(), newShell(nil)); err != nil {
		t.Errorf("replay failed: %v\n%s", err, script)
	}
}

func TestMobileRecordingReplays(t *testing.T) {
	recorded := shell.New(geometry.NewEnv(600, 800), desktop.DefaultRegistry())
	rec := NewRecorder()
	rec.Start(recorded)
	rec.Stop(recorded)

	cmds, err := Parse(rec.String(""))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	vp, ok := StartViewport(cmds)
	if !ok || vp != (geometry.Size{Width: 600, Height: 800}) {
		t.Fatalf("StartViewport = %+v, %v; want 600x800", vp, ok)
	}

	replay := shell.New(geometry.NewEnv(vp.Width, vp.Height), desktop.DefaultRegistry())
	if err := NewPlayer(cmds, nil).Run(context.Background(), replay); err != nil {
		t.Errorf("replay at the recorded viewport failed: %v", err)
	}

	// Built at another size, the startup window no longer matches.
	if err := NewPlayer(cmds, nil).Run(context.Background(), newShell(nil)); !errors.Is(err, ErrExpectation) {
		t.Errorf("replay on a 1000x800 shell: err = %v, want an expectation failure", err)
	}
}

func TestStartViewport(t *testing.T) {
	tests := []struct {
		script string
		want   geometry.Size
		ok     bool
	}{
		{"# header\nViewport 1280 1024\nOpen blog\n", geometry.Size{Width: 1280, Height: 1024}, true},
		{"Open blog\nViewport 1280 1024\n", geometry.Size{}, false},
		{"", geometry.Size{}, false},
	}
	for _, tt := range tests {
		cmds, err := Parse(tt.script)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.script, err)
		}
		got, ok := StartViewport(cmds)
		if got != tt.want || ok != tt.ok {
			t.Errorf("StartViewport(%q) = %+v, %v; want %+v, %v", tt.script, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRecorderIgnoresEventsWhenStopped(t *testing.T) {
	s := newShell(nil)
	rec := NewRecorder()
	rec.Start(s)
	rec.Stop(s)
	n := rec.CommandCount()

	s.Open(desktop.Blog)
	rec.RecordKey("x")
	rec.Sync(s)

	if rec.CommandCount() != n {
		t.Errorf("commands grew from %d to %d after Stop", n, rec.CommandCount())
	}
}
