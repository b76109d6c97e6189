package shell

import (
	"fmt"
	"math"
	"testing"

	"github.com/Gaurav-Gosain/retrodesk/internal/content"
	"github.com/Gaurav-Gosain/retrodesk/internal/desktop"
	"github.com/Gaurav-Gosain/retrodesk/internal/geometry"
)

func newShell(t *testing.T, w, h float64, reg *desktop.Registry) *Shell {
	t.Helper()
	if reg == nil {
		reg = desktop.DefaultRegistry()
	}
	return New(geometry.NewEnv(w, h), reg, WithDesktop(desktop.New(desktop.WithInitial())))
}

func pt(x, y float64) geometry.Point { return geometry.Point{X: x, Y: y} }

func near(a, b geometry.Rect) bool {
	const eps = 1e-9
	return math.Abs(a.Left-b.Left) < eps && math.Abs(a.Top-b.Top) < eps &&
		math.Abs(a.Width-b.Width) < eps && math.Abs(a.Height-b.Height) < eps
}

func TestFramesFollowDesktopEvents(t *testing.T) {
	s := newShell(t, 1280, 1024, nil)
	s.Open(desktop.Blog)
	if _, ok := s.Frame(desktop.Blog); !ok {
		t.Fatal("open should build a frame")
	}

	f, _ := s.Frame(desktop.Blog)
	f.Window.SetLeft(0)
	s.Minimize(desktop.Blog)
	if _, ok := s.Frame(desktop.Blog); ok {
		t.Fatal("minimize should discard the frame")
	}

	s.Open(desktop.Blog)
	f, _ = s.Frame(desktop.Blog)
	if f.Rect().Left != 275 {
		t.Errorf("reopened left = %v, want descriptor default 275", f.Rect().Left)
	}
}

func TestDefaultShellHasWelcome(t *testing.T) {
	s := New(geometry.NewEnv(1280, 1024), desktop.DefaultRegistry())
	if _, ok := s.Frame(desktop.Welcome); !ok {
		t.Error("expected the welcome window at startup")
	}
}

func TestAboutMeDragMaximizeRestore(t *testing.T) {
	s := newShell(t, 1000, 800, nil)
	s.Open(desktop.AboutMe)

	hit, ok := s.PointerDown(pt(105, 105))
	if !ok || hit.Part != PartTitle || hit.App != desktop.AboutMe {
		t.Fatalf("hit = %+v, %v", hit, ok)
	}
	s.PointerMove(pt(-95, -45))
	s.PointerUp(pt(-95, -45))

	f, _ := s.Frame(desktop.AboutMe)
	dragged := geometry.Rect{Left: 0, Top: 0, Width: 700, Height: 210}
	if !near(f.Rect(), dragged) {
		t.Fatalf("after drag = %v, want %v", f.Rect(), dragged)
	}
	if n := s.Document().Listeners(); n != 0 {
		t.Errorf("%d listeners left after pointer-up", n)
	}

	s.ToggleMaximize(desktop.AboutMe)
	if want := (geometry.Rect{Left: 100, Top: 76, Width: 800, Height: 608}); !near(f.Rect(), want) {
		t.Errorf("maximized = %v, want %v", f.Rect(), want)
	}
	s.ToggleMaximize(desktop.AboutMe)
	if f.Rect() != dragged {
		t.Errorf("restored = %v, want %v", f.Rect(), dragged)
	}
}

func TestTitleButtons(t *testing.T) {
	s := newShell(t, 1000, 800, nil)
	s.Open(desktop.AboutMe)
	// about-me spans x 100..800; buttons are the last 90 px of the title bar.
	tests := []struct {
		x    float64
		part Part
	}{
		{715, PartMinimize},
		{745, PartMaximize},
		{775, PartClose},
	}
	for _, tt := range tests {
		f, _ := s.Frame(desktop.AboutMe)
		if got := f.HitTest(pt(tt.x, 110), false); got != tt.part {
			t.Errorf("HitTest(%v) = %v, want %v", tt.x, got, tt.part)
		}
	}

	s.PointerDown(pt(745, 110))
	f, _ := s.Frame(desktop.AboutMe)
	if !f.Window.IsMaximized() {
		t.Error("maximize button should maximize")
	}

	minimize := f.Buttons(false)[0].Rect
	s.PointerDown(pt(minimize.Left+1, minimize.Top+1))
	if s.Desktop().IsOpen(desktop.AboutMe) || !s.Desktop().IsRunning(desktop.AboutMe) {
		t.Error("minimize button should minimize")
	}

	s.Open(desktop.AboutMe)
	s.PointerDown(pt(775, 110))
	if s.Desktop().IsRunning(desktop.AboutMe) {
		t.Error("close button should close")
	}
}

func TestMobileHidesMaximize(t *testing.T) {
	s := newShell(t, 700, 800, nil)
	s.Open(desktop.Connect)
	f, _ := s.Frame(desktop.Connect)
	for _, b := range f.Buttons(s.Env().IsMobile()) {
		if b.Part == PartMaximize {
			t.Fatal("maximize button present on mobile")
		}
	}
	if got := len(f.Buttons(false)); got != 3 {
		t.Errorf("desktop buttons = %d, want 3", got)
	}
}

func TestResizeHandle(t *testing.T) {
	s := newShell(t, 1280, 1024, nil)
	s.Open(desktop.Projects)
	f, _ := s.Frame(desktop.Projects)

	// Projects is 700x500 at 400/100; the handle is the 10x20 corner.
	hit, _ := s.PointerDown(pt(1095, 590))
	if hit.Part != PartResize {
		t.Fatalf("hit = %v, want resize", hit.Part)
	}
	s.PointerMove(pt(1145, 620))
	s.PointerUp(pt(1145, 620))

	if f.Window.Width() != 750 || f.Window.Height() != 530 {
		t.Errorf("size = %vx%v, want 750x530", f.Window.Width(), f.Window.Height())
	}
	if n := s.Document().Listeners(); n != 0 {
		t.Errorf("%d listeners left", n)
	}
}

func TestFixedWindowHasNoHandle(t *testing.T) {
	s := newShell(t, 1280, 1024, nil)
	s.Open(desktop.Blog)
	f, _ := s.Frame(desktop.Blog)
	if _, ok := f.ResizeHandle(); ok {
		t.Error("blog is not resizable")
	}
}

func TestGestureReleasedWhenFrameDestroyed(t *testing.T) {
	s := newShell(t, 1000, 800, nil)
	s.Open(desktop.AboutMe)
	s.PointerDown(pt(105, 105))
	if !s.Dragging() {
		t.Fatal("expected a drag in progress")
	}
	s.Minimize(desktop.AboutMe)
	if s.Dragging() || s.Document().Listeners() != 0 {
		t.Errorf("dragging=%v listeners=%d after destroy", s.Dragging(), s.Document().Listeners())
	}
	s.PointerMove(pt(500, 500))
}

func TestPointerUpOutsideFrameEndsGesture(t *testing.T) {
	s := newShell(t, 1000, 800, nil)
	s.Open(desktop.AboutMe)
	s.PointerDown(pt(105, 105))
	s.PointerMove(pt(2000, 2000))
	s.PointerUp(pt(5000, -300))
	if s.Document().Listeners() != 0 {
		t.Error("listeners leaked")
	}
	f, _ := s.Frame(desktop.AboutMe)
	before := f.Rect()
	s.PointerMove(pt(0, 0))
	if f.Rect() != before {
		t.Error("window moved after the gesture ended")
	}
}

func TestClickFocusesTopmost(t *testing.T) {
	s := newShell(t, 1280, 1024, nil)
	s.Open(desktop.Blog)    // 275..675 x 300..500
	s.Open(desktop.Welcome) // 525..1000 x 250..475

	if hit, _ := s.PointerDown(pt(600, 400)); hit.App != desktop.Welcome {
		t.Errorf("overlap hit %v, want welcome on top", hit.App)
	}
	s.PointerDown(pt(300, 450))
	if app, _ := s.Desktop().Focused(); app != desktop.Blog {
		t.Errorf("focused = %v, want blog", app)
	}
	if hit, _ := s.PointerDown(pt(600, 400)); hit.App != desktop.Blog {
		t.Errorf("overlap hit %v, want blog after focusing it", hit.App)
	}
	if _, ok := s.PointerDown(pt(5, 5)); ok {
		t.Error("desktop click should not hit a frame")
	}
}

type tallContent int

func (n tallContent) Lines(int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	return lines
}

func tallRegistry(lines int) *desktop.Registry {
	return desktop.NewRegistry(desktop.Descriptor{
		App:   desktop.Blog,
		Title: "Blog",
		Geometry: geometry.Spec{
			Default:  geometry.Rect{Left: 100, Top: 100, Width: 400, Height: 240},
			MinWidth: 400, MinHeight: 240,
		},
		NewContent: func() content.Content { return tallContent(lines) },
	})
}

func TestThumbDragScrollsContent(t *testing.T) {
	s := newShell(t, 1280, 1024, tallRegistry(100))
	s.Open(desktop.Blog)
	f, _ := s.Frame(desktop.Blog)

	if !f.Overflow.Overflowing() {
		t.Fatal("100 lines should overflow 10 rows")
	}
	thumb, ok := f.ThumbRect()
	if !ok || thumb.Left != 480 || thumb.Top != 120 {
		t.Fatalf("thumb = %v, %v", thumb, ok)
	}

	hit, _ := s.PointerDown(pt(485, 130))
	if hit.Part != PartThumb {
		t.Fatalf("hit = %v, want thumb", hit.Part)
	}
	s.PointerMove(pt(485, 206))
	s.PointerUp(pt(485, 206))

	// 76px of a 152px track over 1800px of scrollable content.
	if got := f.Pane.ScrollTop(); got != 900 {
		t.Errorf("scrollTop = %v, want 900", got)
	}
	if got := f.Visible()[0]; got != "line 45" {
		t.Errorf("first visible = %q, want line 45", got)
	}
}

func TestShortContentHasNoThumb(t *testing.T) {
	s := newShell(t, 1280, 1024, tallRegistry(3))
	s.Open(desktop.Blog)
	f, _ := s.Frame(desktop.Blog)
	if _, ok := f.ThumbRect(); ok {
		t.Error("no thumb expected without overflow")
	}
	if got := f.HitTest(pt(485, 130), false); got != PartContent {
		t.Errorf("scrollbar column without overflow = %v, want content", got)
	}
}

func TestWheel(t *testing.T) {
	s := newShell(t, 1280, 1024, tallRegistry(100))
	s.Open(desktop.Blog)
	f, _ := s.Frame(desktop.Blog)
	s.Wheel(pt(200, 200), 60)
	s.Wheel(pt(200, 200), 60)
	if got := f.Pane.ScrollTop(); got != 120 {
		t.Errorf("scrollTop = %v, want 120", got)
	}
	s.Wheel(pt(200, 200), -1000)
	if got := f.Pane.ScrollTop(); got != 0 {
		t.Errorf("scrollTop = %v, want 0", got)
	}
}

func TestKeyGoesToFocusedContent(t *testing.T) {
	s := newShell(t, 1280, 1024, nil)
	s.Open(desktop.Projects)
	s.Open(desktop.Blog)

	if s.Key("f") {
		t.Error("blog should ignore project shortcuts")
	}
	s.Focus(desktop.Projects)
	if !s.Key("f") {
		t.Error("projects should take the shortcut")
	}
	f, _ := s.Frame(desktop.Projects)
	proj, ok := f.Content.(*content.Projects).Selected()
	if !ok || proj.Tab != "Fora" {
		t.Errorf("selected = %+v, %v", proj, ok)
	}
}

func TestTabClick(t *testing.T) {
	s := newShell(t, 1280, 1024, nil)
	s.Open(desktop.Projects)
	// Content starts one cell in from 400/100 plus the title bar: 410/120.
	s.PointerDown(pt(410+7*10+5, 125))
	f, _ := s.Frame(desktop.Projects)
	proj, ok := f.Content.(*content.Projects).Selected()
	if !ok || proj.Tab != "PUPpy" {
		t.Errorf("selected = %+v, %v", proj, ok)
	}
}

func TestPaintDrag(t *testing.T) {
	s := newShell(t, 1280, 1024, nil)
	s.Open(desktop.Paint)
	f, _ := s.Frame(desktop.Paint)
	c := f.ContentRect()

	// Row 0 is the toolbar; canvas row 0 is content row 1.
	s.PointerDown(pt(c.Left+5, c.Top+25))
	s.PointerMove(pt(c.Left+25, c.Top+25))
	s.PointerUp(pt(c.Left+25, c.Top+25))

	p := f.Content.(*content.Paint)
	if !p.Painted(0, 0) || !p.Painted(2, 0) {
		t.Error("press and drag cells should be painted")
	}
	if s.Document().Listeners() != 0 {
		t.Error("paint gesture leaked listeners")
	}
}

func TestSnapshot(t *testing.T) {
	s := newShell(t, 1280, 1024, nil)
	s.Open(desktop.Blog)
	s.Open(desktop.Connect)
	s.Minimize(desktop.Blog)

	st := s.Snapshot()
	if st.Focused != desktop.Connect || len(st.Frames) != 1 || len(st.Running) != 2 {
		t.Errorf("snapshot = %+v", st)
	}
}
