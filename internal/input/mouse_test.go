package input

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/retrodesk/internal/app"
	"github.com/Gaurav-Gosain/retrodesk/internal/desktop"
)

// newSession is a 100x40 cell desktop: 1000x800 px with the default cell.
func newSession(t *testing.T, opts ...app.Option) *app.Desktop {
	t.Helper()
	return app.New(nil, 100, 40, opts...)
}

func click(d *app.Desktop, x, y int) {
	HandleInput(tea.MouseClickMsg{Button: tea.MouseLeft, X: x, Y: y}, d)
}

func TestTitleDragMovesWindow(t *testing.T) {
	d := newSession(t)

	// welcome sits at 525,250; row 12 is its title bar.
	click(d, 60, 12)
	if !d.Shell.Dragging() {
		t.Fatal("expected a move gesture after pressing the title bar")
	}
	HandleInput(tea.MouseMotionMsg{X: 50, Y: 12}, d)
	HandleInput(tea.MouseReleaseMsg{Button: tea.MouseLeft, X: 50, Y: 12}, d)

	if d.Shell.Dragging() {
		t.Error("gesture should end on release")
	}
	f, ok := d.Shell.Frame(desktop.Welcome)
	if !ok {
		t.Fatal("welcome frame missing")
	}
	if got := f.Window.Left(); got != 425 {
		t.Errorf("left = %v, want 425", got)
	}
	if got := f.Window.Top(); got != 250 {
		t.Errorf("top = %v, want 250", got)
	}
}

func TestRightClickIgnored(t *testing.T) {
	d := newSession(t)
	HandleInput(tea.MouseClickMsg{Button: tea.MouseRight, X: 60, Y: 12}, d)
	if d.Shell.Dragging() {
		t.Error("right button should not start a gesture")
	}
}

func TestTaskbarClickRestoresMinimized(t *testing.T) {
	d := newSession(t)
	d.Shell.Minimize(desktop.Welcome)

	layout := d.TaskbarLayout()
	if len(layout.Buttons) != 1 {
		t.Fatalf("taskbar buttons = %d, want 1", len(layout.Buttons))
	}
	btn := layout.Buttons[0]
	if btn.Pressed {
		t.Error("minimized app should not look pressed")
	}

	click(d, btn.X+1, d.Height-1)

	if !d.Shell.Desktop().IsOpen(desktop.Welcome) {
		t.Error("taskbar click should reopen welcome")
	}
	if got, _ := d.Shell.Desktop().Focused(); got != desktop.Welcome {
		t.Errorf("focused = %q, want welcome", got)
	}
}

func TestTaskbarCoversWindows(t *testing.T) {
	d := newSession(t)
	d.Shell.Open(desktop.Blog)
	d.Resize(100, 20) // welcome now reaches into the taskbar band

	// Row 19 is taskbar; underneath it is welcome's content area.
	click(d, 70, 19)
	if got, _ := d.Shell.Desktop().Focused(); got != desktop.Blog {
		t.Errorf("focused = %q, want blog", got)
	}
}

func TestDesktopIconDoubleClick(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	dc := NewDoubleClick(300 * time.Millisecond)
	dc.Now = func() time.Time { return now }

	d := newSession(t, app.WithDoubleClick(dc))
	var about app.Icon
	for _, icon := range d.Icons() {
		if icon.Descriptor.App == desktop.AboutMe {
			about = icon
		}
	}
	if about.Descriptor.App == "" {
		t.Fatal("about-me has no desktop icon")
	}

	click(d, about.X, about.Y)
	if d.Shell.Desktop().IsOpen(desktop.AboutMe) {
		t.Fatal("single click should not open")
	}

	now = now.Add(500 * time.Millisecond)
	click(d, about.X, about.Y)
	if d.Shell.Desktop().IsOpen(desktop.AboutMe) {
		t.Fatal("slow second click should not open")
	}

	now = now.Add(100 * time.Millisecond)
	click(d, about.X+1, about.Y+1)
	if !d.Shell.Desktop().IsOpen(desktop.AboutMe) {
		t.Error("double click should open about-me")
	}
}

func TestDesktopIconWithoutDetectorOpensImmediately(t *testing.T) {
	d := newSession(t)
	icons := d.Icons()
	if len(icons) == 0 {
		t.Fatal("no icons")
	}
	last := icons[len(icons)-1]
	click(d, last.X, last.Y)
	if !d.Shell.Desktop().IsOpen(last.Descriptor.App) {
		t.Errorf("%s should open on a single click", last.Descriptor.App)
	}
}

func TestClickEmptyDesktopDoesNothing(t *testing.T) {
	d := newSession(t)
	before := d.Shell.Snapshot()
	click(d, 40, 30)
	after := d.Shell.Snapshot()
	if len(before.Open) != len(after.Open) || before.Focused != after.Focused {
		t.Errorf("state changed: %+v -> %+v", before, after)
	}
}

func TestMaximizedChromeIsClickable(t *testing.T) {
	d := newSession(t)
	d.Shell.ToggleMaximize(desktop.Welcome)
	f, ok := d.Shell.Frame(desktop.Welcome)
	if !ok {
		t.Fatal("welcome frame missing")
	}
	x, y, w, _ := d.CellRect(f.Rect())

	// The title row drags the window.
	click(d, x+2, y)
	if !d.Shell.Dragging() {
		t.Error("pressing the drawn title row should start a move")
	}
	HandleInput(tea.MouseReleaseMsg{Button: tea.MouseLeft, X: x + 2, Y: y}, d)

	// The middle button restores it.
	click(d, x+w-5, y)
	HandleInput(tea.MouseReleaseMsg{Button: tea.MouseLeft, X: x + w - 5, Y: y}, d)
	if f.Window.IsMaximized() {
		t.Error("clicking the drawn restore button should restore the window")
	}
}
