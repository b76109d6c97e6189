package shell

import (
	"github.com/Gaurav-Gosain/retrodesk/internal/content"
	"github.com/Gaurav-Gosain/retrodesk/internal/desktop"
	"github.com/Gaurav-Gosain/retrodesk/internal/geometry"
	"github.com/Gaurav-Gosain/retrodesk/internal/scrollbar"
)

// Metrics converts between terminal cells and pixels and sizes the chrome.
type Metrics struct {
	CellWidth  float64
	CellHeight float64
}

// DefaultMetrics maps one cell to 10x20 pixels.
func DefaultMetrics() Metrics {
	return Metrics{CellWidth: 10, CellHeight: 20}
}

func (m Metrics) TitleHeight() float64  { return m.CellHeight }
func (m Metrics) ButtonWidth() float64  { return 3 * m.CellWidth }
func (m Metrics) BorderWidth() float64  { return m.CellWidth }
func (m Metrics) BorderHeight() float64 { return m.CellHeight }
func (m Metrics) ScrollWidth() float64  { return m.CellWidth }

// Part names a region of a frame.
type Part int

const (
	PartNone Part = iota
	PartTitle
	PartMinimize
	PartMaximize
	PartClose
	PartResize
	PartThumb
	PartScrollbar
	PartContent
	PartBorder
)

func (p Part) String() string {
	switch p {
	case PartTitle:
		return "title"
	case PartMinimize:
		return "minimize"
	case PartMaximize:
		return "maximize"
	case PartClose:
		return "close"
	case PartResize:
		return "resize"
	case PartThumb:
		return "thumb"
	case PartScrollbar:
		return "scrollbar"
	case PartContent:
		return "content"
	case PartBorder:
		return "border"
	default:
		return "none"
	}
}

// ChromeButton is a title bar button and its hit box.
type ChromeButton struct {
	Part Part
	Rect geometry.Rect
}

// Frame is everything the shell keeps for one open window. It is built when
// the app opens and discarded when it is minimized or closed.
type Frame struct {
	App        desktop.Application
	Descriptor desktop.Descriptor
	Window     *geometry.Window
	Content    content.Content
	Pane       *scrollbar.Pane
	Overflow   *scrollbar.Overflow
	Scrollbar  *scrollbar.Scrollbar

	metrics Metrics
	cols    int
	dirty   bool
}

func newFrame(env geometry.Env, desc desktop.Descriptor, m Metrics, thumb float64) *Frame {
	f := &Frame{
		App:        desc.App,
		Descriptor: desc,
		Window:     geometry.New(env, desc.Geometry),
		metrics:    m,
		dirty:      true,
	}
	if desc.NewContent != nil {
		f.Content = desc.NewContent()
	}
	f.Pane = scrollbar.NewPane(m.CellHeight)
	f.Overflow = scrollbar.NewOverflow(f.Pane, nil)
	f.Scrollbar = scrollbar.New(f.Pane, f.Pane, thumb)
	return f
}

// Rect is the outer frame rectangle.
func (f *Frame) Rect() geometry.Rect { return f.Window.Rect() }

// TitleBar is the draggable strip along the top edge.
func (f *Frame) TitleBar() geometry.Rect {
	r := f.Rect()
	return geometry.Rect{Left: r.Left, Top: r.Top, Width: r.Width, Height: f.metrics.TitleHeight()}
}

// Buttons returns the title bar buttons from left to right. The maximize
// button is left out on mobile layouts.
func (f *Frame) Buttons(mobile bool) []ChromeButton {
	parts := []Part{PartMinimize, PartMaximize, PartClose}
	if mobile {
		parts = []Part{PartMinimize, PartClose}
	}
	bar := f.TitleBar()
	w := f.metrics.ButtonWidth()
	left := bar.Right() - float64(len(parts))*w
	buttons := make([]ChromeButton, len(parts))
	for i, p := range parts {
		buttons[i] = ChromeButton{
			Part: p,
			Rect: geometry.Rect{Left: left + float64(i)*w, Top: bar.Top, Width: w, Height: bar.Height},
		}
	}
	return buttons
}

// ResizeHandle is the bottom-right corner. ok is false for fixed-size apps.
func (f *Frame) ResizeHandle() (r geometry.Rect, ok bool) {
	if !f.Descriptor.Resizable {
		return geometry.Rect{}, false
	}
	outer := f.Rect()
	w, h := f.metrics.BorderWidth(), f.metrics.BorderHeight()
	return geometry.Rect{Left: outer.Right() - w, Top: outer.Bottom() - h, Width: w, Height: h}, true
}

// ContentRect is the area inside the border and below the title bar.
func (f *Frame) ContentRect() geometry.Rect {
	r := f.Rect()
	bw, bh := f.metrics.BorderWidth(), f.metrics.BorderHeight()
	th := f.metrics.TitleHeight()
	return geometry.Rect{
		Left:   r.Left + bw,
		Top:    r.Top + th,
		Width:  max(r.Width-2*bw, 0),
		Height: max(r.Height-th-bh, 0),
	}
}

// ScrollbarRect is the rightmost column of the content area.
func (f *Frame) ScrollbarRect() geometry.Rect {
	c := f.ContentRect()
	w := min(f.metrics.ScrollWidth(), c.Width)
	return geometry.Rect{Left: c.Right() - w, Top: c.Top, Width: w, Height: c.Height}
}

// ThumbRect is the scrollbar thumb. ok is false when nothing overflows.
func (f *Frame) ThumbRect() (r geometry.Rect, ok bool) {
	if !f.Overflow.Overflowing() {
		return geometry.Rect{}, false
	}
	track := f.ScrollbarRect()
	return geometry.Rect{
		Left:   track.Left,
		Top:    track.Top + f.Scrollbar.ThumbTop(),
		Width:  track.Width,
		Height: f.Scrollbar.ThumbHeight(),
	}, true
}

// Columns is the text width of the content area in cells.
func (f *Frame) Columns() int {
	c := f.ContentRect()
	return max(int((c.Width-f.metrics.ScrollWidth())/f.metrics.CellWidth), 0)
}

// Rows is the number of visible content rows.
func (f *Frame) Rows() int {
	return max(int(f.ContentRect().Height/f.metrics.CellHeight), 0)
}

// Invalidate marks the content as changed so the next Refresh re-renders it.
func (f *Frame) Invalidate() { f.dirty = true }

// Refresh re-renders content when it changed or the width changed, resizes
// the pane to the content area and re-evaluates overflow.
func (f *Frame) Refresh() {
	cols := f.Columns()
	changed := f.dirty || cols != f.cols
	if changed && f.Content != nil {
		f.Pane.SetLines(f.Content.Lines(cols))
	}
	f.cols, f.dirty = cols, false
	f.Pane.SetClientHeight(float64(f.Rows()) * f.metrics.CellHeight)
	if changed {
		f.Overflow.Invalidate()
		return
	}
	f.Overflow.Observe()
}

// Visible returns the content lines currently scrolled into view.
func (f *Frame) Visible() []string {
	return f.Pane.Visible(f.Rows())
}

// HitTest resolves p to a frame part. mobile hides the maximize button.
func (f *Frame) HitTest(p geometry.Point, mobile bool) Part {
	if !f.Rect().Contains(p) {
		return PartNone
	}
	if f.TitleBar().Contains(p) {
		for _, b := range f.Buttons(mobile) {
			if b.Rect.Contains(p) {
				return b.Part
			}
		}
		return PartTitle
	}
	if h, ok := f.ResizeHandle(); ok && h.Contains(p) {
		return PartResize
	}
	if t, ok := f.ThumbRect(); ok && t.Contains(p) {
		return PartThumb
	}
	if f.Overflow.Overflowing() && f.ScrollbarRect().Contains(p) {
		return PartScrollbar
	}
	if f.ContentRect().Contains(p) {
		return PartContent
	}
	return PartBorder
}

// cellAt converts p to a content column and row, row counted from the first
// content line rather than the first visible one.
func (f *Frame) cellAt(p geometry.Point) (col, row int, ok bool) {
	c := f.ContentRect()
	if !c.Contains(p) {
		return 0, 0, false
	}
	col = int((p.X - c.Left) / f.metrics.CellWidth)
	row = int((p.Y-c.Top)/f.metrics.CellHeight) + f.Pane.FirstRow()
	return col, row, true
}
