package geometry

// Move repositions a window from a pointer delta. Every update is computed
// from the snapshot taken when the drag started plus the cumulative delta.
type Move struct {
	win   *Window
	start Point
	from  Rect
}

// BeginMove snapshots the window for a title-bar drag starting at p.
func (w *Window) BeginMove(p Point) *Move {
	return &Move{win: w, start: p, from: w.rect}
}

// Update applies the pointer position p, keeping the window inside the
// viewport and above the taskbar.
func (m *Move) Update(env Env, p Point) {
	d := p.Sub(m.start)

	maxTop := env.Viewport.Height - m.from.Height - env.TaskbarHeight
	maxLeft := env.Viewport.Width - m.from.Width

	m.win.SetTop(clamp(m.from.Top+d.Y, 0, maxTop))
	m.win.SetLeft(clamp(m.from.Left+d.X, 0, maxLeft))
}

// Resize grows or shrinks a window from its bottom-right handle while the
// top-left corner stays put.
type Resize struct {
	win   *Window
	start Point
	from  Rect
}

// BeginResize snapshots the window for a handle drag starting at p.
func (w *Window) BeginResize(p Point) *Resize {
	return &Resize{win: w, start: p, from: w.rect}
}

// Update applies the pointer position p within the window minimums and the
// space left between the window origin and the viewport edges.
func (r *Resize) Update(env Env, p Point) {
	deltaX := p.X - r.start.X
	// Measured upwards; subtracting it below makes a downward drag grow the window.
	deltaY := r.start.Y - p.Y

	maxWidth := env.Viewport.Width - r.from.Left
	maxHeight := env.Viewport.Height - r.from.Top - env.TaskbarHeight

	r.win.SetWidth(atLeast(r.from.Width+deltaX, r.win.minWidth, maxWidth))
	r.win.SetHeight(atLeast(r.from.Height-deltaY, r.win.minHeight, maxHeight))
}
