// Package shell composes the desktop controller, per-window geometry, the
// gesture document and the scroll panes into one headless engine. The
// terminal front end, the tape player and the tests all drive it the same way.
package shell

import (
	"io"

	"github.com/Gaurav-Gosain/retrodesk/internal/content"
	"github.com/Gaurav-Gosain/retrodesk/internal/desktop"
	"github.com/Gaurav-Gosain/retrodesk/internal/geometry"
	"github.com/Gaurav-Gosain/retrodesk/internal/gesture"
	"github.com/Gaurav-Gosain/retrodesk/internal/scrollbar"
	"github.com/charmbracelet/log"
)

// Shell owns one desktop session.
type Shell struct {
	env      geometry.Env
	registry *desktop.Registry
	desk     *desktop.Desktop
	doc      *gesture.Document
	frames   map[desktop.Application]*Frame
	metrics  Metrics
	thumb    float64
	logger   *log.Logger
}

// Option configures a Shell.
type Option func(*Shell)

// WithDesktop uses d instead of a desktop in its default initial state.
func WithDesktop(d *desktop.Desktop) Option {
	return func(s *Shell) { s.desk = d }
}

// WithLogger sets the structured logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Shell) { s.logger = l }
}

// WithMetrics sets the cell size used for chrome and content layout.
func WithMetrics(m Metrics) Option {
	return func(s *Shell) { s.metrics = m }
}

// WithThumbHeight sets the scrollbar thumb height in pixels.
func WithThumbHeight(h float64) Option {
	return func(s *Shell) { s.thumb = h }
}

// New builds a shell over env. Frames are created for every app the
// desktop already has open.
func New(env geometry.Env, registry *desktop.Registry, opts ...Option) *Shell {
	s := &Shell{
		env:      env,
		registry: registry,
		doc:      gesture.NewDocument(),
		frames:   make(map[desktop.Application]*Frame),
		metrics:  DefaultMetrics(),
		thumb:    scrollbar.DefaultThumbHeight,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.desk == nil {
		s.desk = desktop.New(desktop.WithLogger(s.logger))
	}
	for _, app := range s.desk.OpenApps() {
		s.buildFrame(app)
	}
	s.desk.Subscribe(s.handleEvent)
	return s
}

func (s *Shell) handleEvent(e desktop.Event) {
	switch e.Kind {
	case desktop.EventOpened:
		s.buildFrame(e.App)
	case desktop.EventMinimized, desktop.EventClosed:
		s.destroyFrame(e.App)
	}
	s.logger.Info("window", "event", e.Kind, "app", e.App)
}

func (s *Shell) buildFrame(app desktop.Application) {
	desc, ok := s.registry.Lookup(app)
	if !ok {
		s.logger.Warn("no descriptor", "app", app)
		return
	}
	f := newFrame(s.env, desc, s.metrics, s.thumb)
	f.Refresh()
	s.frames[app] = f
}

func (s *Shell) destroyFrame(app desktop.Application) {
	s.doc.CancelOwned(string(app))
	delete(s.frames, app)
}

// Desktop exposes the controller for read access and direct operations.
func (s *Shell) Desktop() *desktop.Desktop { return s.desk }

// Registry returns the descriptor table.
func (s *Shell) Registry() *desktop.Registry { return s.registry }

// Document returns the gesture document.
func (s *Shell) Document() *gesture.Document { return s.doc }

// Env returns the current layout environment.
func (s *Shell) Env() geometry.Env { return s.env }

// Metrics returns the cell metrics.
func (s *Shell) Metrics() Metrics { return s.metrics }

// Dragging reports whether a gesture is in progress.
func (s *Shell) Dragging() bool { return s.doc.Dragging() }

func (s *Shell) Open(app desktop.Application)     { s.desk.Open(app) }
func (s *Shell) Minimize(app desktop.Application) { s.desk.Minimize(app) }
func (s *Shell) Close(app desktop.Application)    { s.desk.Close(app) }
func (s *Shell) Focus(app desktop.Application)    { s.desk.Focus(app) }

// SetViewport changes the viewport. Existing windows keep their geometry;
// only later gesture clamps see the new size.
func (s *Shell) SetViewport(width, height float64) {
	s.env.Viewport = geometry.Size{Width: width, Height: height}
}

// ToggleMaximize maximizes or restores app's window.
func (s *Shell) ToggleMaximize(app desktop.Application) {
	f, ok := s.frames[app]
	if !ok {
		return
	}
	f.Window.ToggleMaximize(s.env)
	f.Refresh()
	s.logger.Debug("window", "event", "maximize", "app", app, "maximized", f.Window.IsMaximized(), "rect", f.Rect())
}

// Frame returns the frame of an open app.
func (s *Shell) Frame(app desktop.Application) (*Frame, bool) {
	f, ok := s.frames[app]
	return f, ok
}

// Frames returns the open frames bottom to top, refreshed for drawing.
func (s *Shell) Frames() []*Frame {
	order := s.desk.StackingOrder()
	frames := make([]*Frame, 0, len(order))
	for _, app := range order {
		if f, ok := s.frames[app]; ok {
			f.Refresh()
			frames = append(frames, f)
		}
	}
	return frames
}

// FrameAt returns the topmost frame containing p.
func (s *Shell) FrameAt(p geometry.Point) (*Frame, bool) {
	frames := s.Frames()
	for i := len(frames) - 1; i >= 0; i-- {
		if frames[i].Rect().Contains(p) {
			return frames[i], true
		}
	}
	return nil, false
}

// Hit describes what a pointer-down landed on.
type Hit struct {
	App  desktop.Application
	Part Part
}

// PointerDown routes a press at p to the topmost frame under it. It reports
// false when p is on the bare desktop.
func (s *Shell) PointerDown(p geometry.Point) (Hit, bool) {
	f, ok := s.FrameAt(p)
	if !ok {
		return Hit{}, false
	}
	part := f.HitTest(p, s.env.IsMobile())
	hit := Hit{App: f.App, Part: part}
	s.desk.Focus(f.App)

	switch part {
	case PartMinimize:
		s.desk.Minimize(f.App)
	case PartMaximize:
		s.ToggleMaximize(f.App)
	case PartClose:
		s.desk.Close(f.App)
	case PartTitle:
		s.beginMove(f, p)
	case PartResize:
		s.beginResize(f, p)
	case PartThumb:
		f.Scrollbar.BeginDrag(s.doc, string(f.App), p)
	case PartContent:
		s.click(f, p)
	}
	return hit, true
}

func (s *Shell) beginMove(f *Frame, p geometry.Point) {
	mv := f.Window.BeginMove(p)
	s.doc.Begin(gesture.Options{
		Kind:   gesture.KindMove,
		Owner:  string(f.App),
		OnMove: func(q geometry.Point) { mv.Update(s.env, q) },
		OnEnd: func() {
			s.logger.Debug("window", "event", "moved", "app", f.App, "rect", f.Rect())
		},
	})
}

func (s *Shell) beginResize(f *Frame, p geometry.Point) {
	rs := f.Window.BeginResize(p)
	s.doc.Begin(gesture.Options{
		Kind:  gesture.KindResize,
		Owner: string(f.App),
		OnMove: func(q geometry.Point) {
			rs.Update(s.env, q)
			f.Refresh()
		},
		OnEnd: func() {
			s.logger.Debug("window", "event", "resized", "app", f.App, "rect", f.Rect())
		},
	})
}

func (s *Shell) click(f *Frame, p geometry.Point) {
	h, ok := f.Content.(content.ClickHandler)
	if !ok {
		return
	}
	paint := func(q geometry.Point) {
		if col, row, in := f.cellAt(q); in && h.Click(col, row) {
			f.Invalidate()
			f.Refresh()
		}
	}
	paint(p)
	if pt, ok := h.(content.Painter); ok && pt.Paints() {
		s.doc.Begin(gesture.Options{
			Kind:   gesture.KindPaint,
			Owner:  string(f.App),
			OnMove: paint,
		})
	}
}

// PointerMove forwards motion to the active gesture, if any.
func (s *Shell) PointerMove(p geometry.Point) { s.doc.Move(p) }

// PointerUp ends the active gesture wherever the pointer is.
func (s *Shell) PointerUp(p geometry.Point) { s.doc.Up(p) }

// Wheel scrolls the frame under p by dy pixels.
func (s *Shell) Wheel(p geometry.Point, dy float64) bool {
	f, ok := s.FrameAt(p)
	if !ok {
		return false
	}
	f.Pane.ScrollBy(dy)
	return true
}

// Key sends a key to the focused window's content. It reports whether the
// content changed.
func (s *Shell) Key(key string) bool {
	app, ok := s.desk.Focused()
	if !ok {
		return false
	}
	f, ok := s.frames[app]
	if !ok {
		return false
	}
	h, ok := f.Content.(content.KeyHandler)
	if !ok || !h.HandleKey(key) {
		return false
	}
	f.Invalidate()
	f.Refresh()
	return true
}
