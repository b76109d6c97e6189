package tape

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Gaurav-Gosain/retrodesk/internal/desktop"
	"github.com/Gaurav-Gosain/retrodesk/internal/geometry"
	"github.com/Gaurav-Gosain/retrodesk/internal/shell"
)

// Recorder records a live session as tape commands. Desktop operations come
// from controller events; geometry changes are diffed at each Sync, so one
// whole drag becomes one Drag or Resize line. Scrolling is not recorded.
//
// Playback of a recording starts from the default desktop, so Start should
// be called on a fresh session.
type Recorder struct {
	commands  []Command
	startTime time.Time
	enabled   bool

	attached *desktop.Desktop
	focused  desktop.Application
	viewport geometry.Size
	frames   map[desktop.Application]shell.FrameState
}

// NewRecorder creates a new tape recorder
func NewRecorder() *Recorder {
	return &Recorder{startTime: time.Now()}
}

// Start begins recording s.
func (r *Recorder) Start(s *shell.Shell) {
	r.enabled = true
	r.startTime = time.Now()
	r.commands = nil

	if r.attached != s.Desktop() {
		r.attached = s.Desktop()
		r.attached.Subscribe(r.handleEvent)
	}
	r.focused, _ = s.Desktop().Focused()

	st := s.Snapshot()
	r.viewport = st.Viewport
	r.frames = indexFrames(st.Frames)
	r.add(Command{Type: CommandType_Viewport, Args: []float64{st.Viewport.Width, st.Viewport.Height}})
}

// Stop ends recording and appends assertions for the final state.
func (r *Recorder) Stop(s *shell.Shell) {
	if !r.enabled {
		return
	}
	r.Sync(s)
	r.enabled = false

	st := s.Snapshot()
	r.add(Command{Type: CommandType_ExpectOpen, Apps: st.Open})
	r.add(Command{Type: CommandType_ExpectFocused, App: st.Focused})
	for _, f := range st.Frames {
		r.add(Command{
			Type: CommandType_Expect,
			App:  f.App,
			Args: []float64{f.Rect.Left, f.Rect.Top, f.Rect.Width, f.Rect.Height},
		})
	}
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.enabled
}

// RecordKey records a key delivered to window content.
func (r *Recorder) RecordKey(key string) {
	if !r.enabled {
		return
	}
	r.add(Command{Type: CommandType_Key, Key: key})
}

// Sync records geometry changes since the last call. It does nothing while a
// gesture is in progress.
func (r *Recorder) Sync(s *shell.Shell) {
	if !r.enabled || s.Dragging() {
		return
	}
	st := s.Snapshot()

	if st.Viewport != r.viewport {
		r.viewport = st.Viewport
		r.add(Command{Type: CommandType_Viewport, Args: []float64{st.Viewport.Width, st.Viewport.Height}})
	}

	for _, f := range st.Frames {
		prev, ok := r.frames[f.App]
		if !ok {
			continue
		}
		was, now := prev.Rect, f.Rect
		switch {
		case prev.Maximized != f.Maximized:
			r.add(Command{Type: CommandType_Maximize, App: f.App})
		case was == now:
		case was.Width == now.Width && was.Height == now.Height:
			r.add(Command{Type: CommandType_Drag, App: f.App, Args: []float64{now.Left - was.Left, now.Top - was.Top}})
		default:
			r.add(Command{Type: CommandType_Resize, App: f.App, Args: []float64{now.Width - was.Width, now.Height - was.Height}})
		}
	}
	r.frames = indexFrames(st.Frames)
}

func (r *Recorder) handleEvent(e desktop.Event) {
	if !r.enabled {
		return
	}
	switch e.Kind {
	case desktop.EventOpened:
		r.focused = e.App // Open focuses
		r.add(Command{Type: CommandType_Open, App: e.App})
	case desktop.EventMinimized:
		r.add(Command{Type: CommandType_Minimize, App: e.App})
	case desktop.EventClosed:
		r.add(Command{Type: CommandType_Close, App: e.App})
	case desktop.EventFocused:
		if e.App == r.focused {
			return
		}
		r.focused = e.App
		if e.App != "" {
			r.add(Command{Type: CommandType_Focus, App: e.App})
		}
	}
}

func (r *Recorder) add(cmd Command) {
	cmd.Line = len(r.commands) + 1
	cmd.Column = 1
	r.commands = append(r.commands, cmd)
}

func indexFrames(frames []shell.FrameState) map[desktop.Application]shell.FrameState {
	m := make(map[desktop.Application]shell.FrameState, len(frames))
	for _, f := range frames {
		m[f.App] = f
	}
	return m
}

// GetCommands returns all recorded commands
func (r *Recorder) GetCommands() []Command {
	return r.commands
}

// CommandCount returns the number of recorded commands
func (r *Recorder) CommandCount() int {
	return len(r.commands)
}

// String returns the tape content as a formatted string
func (r *Recorder) String(header string) string {
	var sb strings.Builder

	if header != "" {
		fmt.Fprintf(&sb, "# %s\n", header)
		fmt.Fprintf(&sb, "# Recorded: %s\n\n", r.startTime.Format(time.RFC3339))
	}

	for _, cmd := range r.commands {
		sb.WriteString(cmd.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}

// WriteToFile saves the recorded tape to a file
func (r *Recorder) WriteToFile(filename string, header string) error {
	if err := os.WriteFile(filename, []byte(r.String(header)), 0o644); err != nil {
		return fmt.Errorf("writing tape: %w", err)
	}
	return nil
}
