package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/retrodesk/internal/config"
	"github.com/Gaurav-Gosain/retrodesk/internal/theme"
)

// ClockTickMsg redraws the taskbar clock.
type ClockTickMsg time.Time

// ConfigReloadMsg carries a freshly loaded config from the file watcher.
type ConfigReloadMsg struct {
	Config *config.UserConfig
	Err    error
}

// InputHandler is a function type that handles input messages.
// This allows the Update method to delegate to the input package without creating a circular dependency.
type InputHandler func(msg tea.Msg, d *Desktop) (tea.Model, tea.Cmd)

var inputHandler InputHandler

// SetInputHandler registers the input handler function.
// This must be called during initialization before the Update loop runs.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// ClockTickCmd ticks on the next minute boundary.
func ClockTickCmd() tea.Cmd {
	return tea.Every(time.Minute, func(t time.Time) tea.Msg {
		return ClockTickMsg(t)
	})
}

// Init starts the clock when it is shown.
func (d *Desktop) Init() tea.Cmd {
	if d.Config.Appearance.ShowClock {
		return ClockTickCmd()
	}
	return nil
}

// Update handles all incoming messages.
func (d *Desktop) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.Resize(msg.Width, msg.Height)
		d.Logger.Debug("resize", "cols", msg.Width, "rows", msg.Height)
		d.syncRecorder()
		return d, nil

	case tea.KeyPressMsg, tea.MouseClickMsg, tea.MouseMotionMsg,
		tea.MouseReleaseMsg, tea.MouseWheelMsg:
		if inputHandler == nil {
			return d, nil
		}
		model, cmd := inputHandler(msg, d)
		d.syncRecorder()
		return model, cmd

	case ClockTickMsg:
		return d, ClockTickCmd()

	case ConfigReloadMsg:
		if msg.Err != nil {
			d.Logger.Warn("config reload failed", "err", msg.Err)
			return d, nil
		}
		d.ApplyAppearance(msg.Config)
		return d, nil

	case tea.MouseMsg:
		return d, nil
	}

	return d, nil
}

func (d *Desktop) syncRecorder() {
	if d.Recorder != nil {
		d.Recorder.Sync(d.Shell)
	}
}

// ApplyAppearance adopts the appearance section and keybindings of cfg.
// Layout changes need a restart; they would invalidate open geometry.
func (d *Desktop) ApplyAppearance(cfg *config.UserConfig) {
	next := *d.Config
	next.Appearance = cfg.Appearance
	next.Keybindings = cfg.Keybindings
	d.Config = &next
	d.Keybinds = config.NewKeybindRegistry(d.Config)
	if err := theme.Initialize(cfg.Appearance.Theme); err != nil {
		d.Logger.Warn("theme", "err", err)
	}
	d.Logger.Info("config reloaded", "theme", cfg.Appearance.Theme, "ascii", cfg.Appearance.ASCIIOnly)
}

// MotionFilter drops pointer motion while no gesture is active. Use it with
// tea.WithFilter.
func MotionFilter(m tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}
	if d, ok := m.(*Desktop); ok && !d.Shell.Dragging() {
		return nil
	}
	return msg
}
