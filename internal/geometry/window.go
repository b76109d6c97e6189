package geometry

// Spec carries the fixed defaults and minimums for one kind of window.
type Spec struct {
	Default   Rect
	MinWidth  float64
	MinHeight float64
}

// Window is the geometry owned by a single open window.
type Window struct {
	rect      Rect
	minWidth  float64
	minHeight float64
	previous  *Rect
}

// New creates the geometry for a freshly opened window.
//
// On mobile layouts the window takes a fraction of the viewport instead of
// the default rect. The decision is made once here and never revisited.
func New(env Env, spec Spec) *Window {
	w := &Window{
		rect:      spec.Default,
		minWidth:  spec.MinWidth,
		minHeight: spec.MinHeight,
	}
	if env.IsMobile() {
		vw, vh := env.Viewport.Width, env.Viewport.Height
		w.rect = Rect{
			Left:   vw * 0.05,
			Top:    vh*0.1 - env.TaskbarHeight,
			Width:  vw * 0.9,
			Height: vh * 0.85,
		}
	}
	return w
}

// Rect returns the current rectangle.
func (w *Window) Rect() Rect { return w.rect }

func (w *Window) Width() float64  { return w.rect.Width }
func (w *Window) Height() float64 { return w.rect.Height }
func (w *Window) Top() float64    { return w.rect.Top }
func (w *Window) Left() float64   { return w.rect.Left }

func (w *Window) MinWidth() float64  { return w.minWidth }
func (w *Window) MinHeight() float64 { return w.minHeight }

func (w *Window) SetWidth(v float64)  { w.rect.Width = v }
func (w *Window) SetHeight(v float64) { w.rect.Height = v }
func (w *Window) SetTop(v float64)    { w.rect.Top = v }
func (w *Window) SetLeft(v float64)   { w.rect.Left = v }

// SetRect replaces all four fields at once.
func (w *Window) SetRect(r Rect) { w.rect = r }

// IsMaximized reports whether a pre-maximize snapshot is held.
func (w *Window) IsMaximized() bool { return w.previous != nil }

// Previous returns the pre-maximize snapshot, if any.
func (w *Window) Previous() (Rect, bool) {
	if w.previous == nil {
		return Rect{}, false
	}
	return *w.previous, true
}

// ToggleMaximize switches between an inset full-viewport rectangle and the
// geometry the window had before it was maximized.
func (w *Window) ToggleMaximize(env Env) {
	if w.previous != nil {
		w.rect = *w.previous
		w.previous = nil
		return
	}

	snapshot := w.rect
	w.previous = &snapshot

	usable := env.UsableHeight()
	w.rect = Rect{
		Left:   env.Viewport.Width * MaximizeMargin,
		Top:    usable * MaximizeMargin,
		Width:  env.Viewport.Width * (1 - MaximizeMargin*2),
		Height: usable * (1 - MaximizeMargin*2),
	}
}
