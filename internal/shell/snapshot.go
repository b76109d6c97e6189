package shell

import (
	"github.com/Gaurav-Gosain/retrodesk/internal/desktop"
	"github.com/Gaurav-Gosain/retrodesk/internal/geometry"
)

// FrameState is a read-only copy of one frame.
type FrameState struct {
	App         desktop.Application
	Rect        geometry.Rect
	Maximized   bool
	Overflowing bool
	ScrollTop   float64
}

// State is a read-only copy of the whole session.
type State struct {
	Viewport geometry.Size
	Open     []desktop.Application
	Running  []desktop.Application
	Focused  desktop.Application // empty when nothing is focused
	Frames   []FrameState        // bottom to top
}

// Snapshot copies the current session state.
func (s *Shell) Snapshot() State {
	st := State{
		Viewport: s.env.Viewport,
		Open:     s.desk.OpenApps(),
		Running:  s.desk.RunningApps(),
	}
	if app, ok := s.desk.Focused(); ok {
		st.Focused = app
	}
	for _, f := range s.Frames() {
		st.Frames = append(st.Frames, FrameState{
			App:         f.App,
			Rect:        f.Rect(),
			Maximized:   f.Window.IsMaximized(),
			Overflowing: f.Overflow.Overflowing(),
			ScrollTop:   f.Pane.ScrollTop(),
		})
	}
	return st
}
