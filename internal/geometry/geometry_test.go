package geometry

import (
	"math/rand/v2"
	"testing"
)

func aboutMeSpec() Spec {
	return Spec{
		Default:   Rect{Left: 100, Top: 100, Width: 700, Height: 210},
		MinWidth:  700,
		MinHeight: 210,
	}
}

func TestNewUsesDefaultsOnDesktop(t *testing.T) {
	w := New(NewEnv(1000, 800), aboutMeSpec())

	want := Rect{Left: 100, Top: 100, Width: 700, Height: 210}
	if got := w.Rect(); got != want {
		t.Errorf("Rect() = %v, want %v", got, want)
	}
}

func TestNewUsesViewportFractionsOnMobile(t *testing.T) {
	tests := []struct {
		name   string
		width  float64
		height float64
		want   Rect
	}{
		{
			name:  "phone",
			width: 400, height: 800,
			want: Rect{Left: 20, Top: 40, Width: 360, Height: 680},
		},
		{
			name:  "exactly at breakpoint",
			width: 768, height: 1000,
			want: Rect{Left: 38.4, Top: 60, Width: 691.2, Height: 850},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(NewEnv(tt.width, tt.height), aboutMeSpec())
			if got := w.Rect(); !rectNear(got, tt.want) {
				t.Errorf("Rect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMobileDecisionIsMadeOnce(t *testing.T) {
	env := NewEnv(1000, 800)
	w := New(env, aboutMeSpec())

	env.Viewport.Width = 500
	w.ToggleMaximize(env)
	w.ToggleMaximize(env)

	if got := w.Width(); got != 700 {
		t.Errorf("Width() = %v after viewport shrink, want 700", got)
	}
}

func TestMoveClampsToViewport(t *testing.T) {
	env := NewEnv(1000, 800)

	tests := []struct {
		name     string
		dx, dy   float64
		wantTop  float64
		wantLeft float64
	}{
		{"no movement", 0, 0, 100, 100},
		{"inside bounds", 50, 25, 125, 150},
		{"past top-left", -200, -150, 0, 0},
		{"past bottom-right", 5000, 5000, 550, 300},
		{"exact right edge", 200, 0, 100, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(env, aboutMeSpec())
			start := Point{X: 150, Y: 105}
			m := w.BeginMove(start)
			m.Update(env, Point{X: start.X + tt.dx, Y: start.Y + tt.dy})

			if w.Top() != tt.wantTop || w.Left() != tt.wantLeft {
				t.Errorf("top/left = %v/%v, want %v/%v", w.Top(), w.Left(), tt.wantTop, tt.wantLeft)
			}
		})
	}
}

func TestMoveUsesGestureStartSnapshot(t *testing.T) {
	env := NewEnv(1000, 800)
	w := New(env, aboutMeSpec())
	m := w.BeginMove(Point{X: 0, Y: 0})

	// Intermediate positions must not accumulate.
	m.Update(env, Point{X: 10, Y: 10})
	m.Update(env, Point{X: 20, Y: 20})
	m.Update(env, Point{X: 30, Y: 40})

	if w.Left() != 130 || w.Top() != 140 {
		t.Errorf("left/top = %v/%v, want 130/140", w.Left(), w.Top())
	}
}

func TestMoveStaysInBoundsForAnyDelta(t *testing.T) {
	env := NewEnv(1280, 900)
	r := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 500; i++ {
		w := New(env, Spec{
			Default: Rect{
				Left:   r.Float64() * 500,
				Top:    r.Float64() * 500,
				Width:  100 + r.Float64()*800,
				Height: 100 + r.Float64()*500,
			},
		})
		m := w.BeginMove(Point{X: 10, Y: 10})
		m.Update(env, Point{X: (r.Float64() - 0.5) * 6000, Y: (r.Float64() - 0.5) * 6000})

		maxTop := env.Viewport.Height - w.Height() - env.TaskbarHeight
		maxLeft := env.Viewport.Width - w.Width()
		if w.Top() < 0 || w.Top() > maxTop {
			t.Fatalf("iteration %d: top %v outside [0, %v]", i, w.Top(), maxTop)
		}
		if w.Left() < 0 || w.Left() > maxLeft {
			t.Fatalf("iteration %d: left %v outside [0, %v]", i, w.Left(), maxLeft)
		}
	}
}

func TestResize(t *testing.T) {
	env := NewEnv(1000, 800)
	spec := Spec{
		Default:   Rect{Left: 100, Top: 100, Width: 700, Height: 500},
		MinWidth:  350,
		MinHeight: 250,
	}

	tests := []struct {
		name       string
		dx, dy     float64
		wantWidth  float64
		wantHeight float64
	}{
		{"grow", 50, 40, 750, 540},
		{"shrink", -100, -100, 600, 400},
		{"below minimum", -1000, -1000, 350, 250},
		{"past viewport", 1000, 1000, 900, 660},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(env, spec)
			start := Point{X: 795, Y: 595}
			rz := w.BeginResize(start)
			rz.Update(env, Point{X: start.X + tt.dx, Y: start.Y + tt.dy})

			if w.Width() != tt.wantWidth || w.Height() != tt.wantHeight {
				t.Errorf("size = %vx%v, want %vx%v", w.Width(), w.Height(), tt.wantWidth, tt.wantHeight)
			}
			if w.Left() != 100 || w.Top() != 100 {
				t.Errorf("origin moved to %v/%v", w.Left(), w.Top())
			}
		})
	}
}

func TestResizeNeverBelowMinimum(t *testing.T) {
	env := NewEnv(1000, 800)
	r := rand.New(rand.NewPCG(3, 4))

	for i := 0; i < 500; i++ {
		w := New(env, Spec{
			// Parked near the bottom-right so the upper bound can fall under the minimum.
			Default:   Rect{Left: 600 + r.Float64()*400, Top: 500 + r.Float64()*300, Width: 400, Height: 300},
			MinWidth:  350,
			MinHeight: 250,
		})
		rz := w.BeginResize(Point{})
		rz.Update(env, Point{X: (r.Float64() - 0.5) * 1e5, Y: (r.Float64() - 0.5) * 1e5})

		if w.Width() < 350 || w.Height() < 250 {
			t.Fatalf("iteration %d: size %vx%v below minimum", i, w.Width(), w.Height())
		}
	}
}

func TestMaximizeRestoreRoundTrip(t *testing.T) {
	env := NewEnv(1000, 800)
	w := New(env, aboutMeSpec())
	w.SetLeft(123.456)
	w.SetTop(7.25)
	before := w.Rect()

	w.ToggleMaximize(env)
	if !w.IsMaximized() {
		t.Fatal("expected window to be maximized")
	}
	if prev, ok := w.Previous(); !ok || prev != before {
		t.Errorf("Previous() = %v, %v, want %v, true", prev, ok, before)
	}

	w.ToggleMaximize(env)
	if w.IsMaximized() {
		t.Error("expected snapshot to be cleared after restore")
	}
	if got := w.Rect(); got != before {
		t.Errorf("Rect() = %v after restore, want %v", got, before)
	}
}

func TestAboutMeScenario(t *testing.T) {
	env := NewEnv(1000, 800)
	w := New(env, aboutMeSpec())

	m := w.BeginMove(Point{X: 300, Y: 110})
	m.Update(env, Point{X: 100, Y: -40})
	if w.Top() != 0 || w.Left() != 0 {
		t.Fatalf("after drag top/left = %v/%v, want 0/0", w.Top(), w.Left())
	}

	w.ToggleMaximize(env)
	want := Rect{Left: 100, Top: 76, Width: 800, Height: 608}
	if got := w.Rect(); !rectNear(got, want) {
		t.Errorf("maximized = %v, want %v", got, want)
	}

	w.ToggleMaximize(env)
	if got := w.Rect(); got != (Rect{Left: 0, Top: 0, Width: 700, Height: 210}) {
		t.Errorf("restored = %v", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Left: 10, Top: 10, Width: 10, Height: 10}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{10, 10}, true},
		{Point{19.9, 19.9}, true},
		{Point{20, 15}, false},
		{Point{15, 20}, false},
		{Point{9, 15}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func rectNear(a, b Rect) bool {
	const eps = 1e-9
	near := func(x, y float64) bool { return x-y < eps && y-x < eps }
	return near(a.Left, b.Left) && near(a.Top, b.Top) && near(a.Width, b.Width) && near(a.Height, b.Height)
}
