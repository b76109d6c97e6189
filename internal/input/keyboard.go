package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/retrodesk/internal/app"
)

// handleKeyPress runs a bound action, or hands the key to the focused window.
func handleKeyPress(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	key := msg.String()
	if d.ShowHelp && key == "esc" {
		d.ShowHelp = false
		return d, nil
	}
	if action := d.Keybinds.GetAction(key); action != "" {
		return GetDispatcher().Dispatch(action, msg, d)
	}
	if d.Shell.Key(key) && d.Recorder != nil {
		d.Recorder.RecordKey(key)
	}
	return d, nil
}
