package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/retrodesk/internal/app"
)

// wheelRows is how many content rows one wheel notch scrolls.
const wheelRows = 3

// handleMouseClick handles mouse click events
func handleMouseClick(msg tea.MouseClickMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return d, nil
	}
	X, Y := mouse.X, mouse.Y

	// The taskbar band is reserved and sits above every window.
	if d.InTaskbar(Y) {
		layout := d.TaskbarLayout()
		if app, ok := layout.HitTest(X); ok {
			d.Shell.Open(app)
		}
		return d, nil
	}

	if hit, ok := d.Shell.PointerDown(d.ToPixel(X, Y)); ok {
		d.Logger.Debug("pointer down", "app", hit.App, "part", hit.Part)
		return d, nil
	}

	// Bare desktop: icons open on double click.
	if app, ok := d.IconAt(X, Y); ok {
		if d.Clicks == nil || d.Clicks.Activate(string(app)) {
			d.Shell.Open(app)
		}
	}
	return d, nil
}

// handleMouseMotion feeds the active gesture.
func handleMouseMotion(msg tea.MouseMotionMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	mouse := msg.Mouse()
	d.Shell.PointerMove(d.ToPixel(mouse.X, mouse.Y))
	return d, nil
}

// handleMouseRelease ends the active gesture wherever the pointer is.
func handleMouseRelease(msg tea.MouseReleaseMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	mouse := msg.Mouse()
	d.Shell.PointerUp(d.ToPixel(mouse.X, mouse.Y))
	return d, nil
}

// handleMouseWheel scrolls the window under the pointer.
func handleMouseWheel(msg tea.MouseWheelMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	mouse := msg.Mouse()
	step := wheelRows * d.Metrics().CellHeight
	switch mouse.Button {
	case tea.MouseWheelUp:
		d.Shell.Wheel(d.ToPixel(mouse.X, mouse.Y), -step)
	case tea.MouseWheelDown:
		d.Shell.Wheel(d.ToPixel(mouse.X, mouse.Y), step)
	}
	return d, nil
}
