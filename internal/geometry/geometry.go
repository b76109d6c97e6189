// Package geometry holds per-window position and size state for retrodesk
// together with the pure math behind moving, resizing and maximizing a window.
//
// All values are pixels. The terminal front end converts cells to pixels
// before anything reaches this package.
package geometry

import (
	"fmt"
	"math"
)

const (
	// DefaultTaskbarHeight is the band reserved at the bottom of the viewport.
	DefaultTaskbarHeight = 40.0
	// DefaultMobileBreakpoint is the viewport width at or below which windows
	// open with viewport-fraction defaults.
	DefaultMobileBreakpoint = 768.0
	// MaximizeMargin is the inset applied on every side of a maximized window.
	MaximizeMargin = 0.1
)

// Point is a pointer position in viewport coordinates.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Rect is a window rectangle anchored at its top-left corner.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Right returns the x coordinate just past the rectangle.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the y coordinate just past the rectangle.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Contains reports whether p lies inside the rectangle (right and bottom edges excluded).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right() && p.Y >= r.Top && p.Y < r.Bottom()
}

func (r Rect) String() string {
	return fmt.Sprintf("%gx%g@%g,%g", r.Width, r.Height, r.Left, r.Top)
}

// Env describes the screen windows are laid out on.
type Env struct {
	Viewport         Size
	TaskbarHeight    float64
	MobileBreakpoint float64
}

// NewEnv returns an Env for the given viewport with default taskbar and breakpoint.
func NewEnv(width, height float64) Env {
	return Env{
		Viewport:         Size{Width: width, Height: height},
		TaskbarHeight:    DefaultTaskbarHeight,
		MobileBreakpoint: DefaultMobileBreakpoint,
	}
}

// IsMobile reports whether the viewport uses the narrow layout.
func (e Env) IsMobile() bool {
	return e.Viewport.Width <= e.MobileBreakpoint
}

// UsableHeight is the viewport height minus the taskbar band.
func (e Env) UsableHeight() float64 {
	return e.Viewport.Height - e.TaskbarHeight
}

// clamp bounds v to [lo, hi]. When hi < lo the upper bound wins.
func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(lo, v), hi)
}

// atLeast bounds v to [lo, hi]. When hi < lo the lower bound wins.
func atLeast(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
