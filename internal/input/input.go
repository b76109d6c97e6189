// Package input routes terminal key and mouse events to a desktop session.
package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/retrodesk/internal/app"
)

// HandleInput is the app.InputHandler for a desktop session.
func HandleInput(msg tea.Msg, d *app.Desktop) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return handleKeyPress(msg, d)
	case tea.MouseClickMsg:
		return handleMouseClick(msg, d)
	case tea.MouseMotionMsg:
		return handleMouseMotion(msg, d)
	case tea.MouseReleaseMsg:
		return handleMouseRelease(msg, d)
	case tea.MouseWheelMsg:
		return handleMouseWheel(msg, d)
	}
	return d, nil
}
