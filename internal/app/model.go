// Package app is the bubbletea model of one desktop session.
package app

import (
	"math"
	"time"

	"github.com/Gaurav-Gosain/retrodesk/internal/config"
	"github.com/Gaurav-Gosain/retrodesk/internal/desktop"
	"github.com/Gaurav-Gosain/retrodesk/internal/geometry"
	"github.com/Gaurav-Gosain/retrodesk/internal/logging"
	"github.com/Gaurav-Gosain/retrodesk/internal/shell"
	"github.com/Gaurav-Gosain/retrodesk/internal/tape"
	"github.com/Gaurav-Gosain/retrodesk/internal/taskbar"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// DoubleClicker decides whether an activation completes a double click.
type DoubleClicker interface {
	Activate(key string) bool
}

// Desktop is the bubbletea model. All state changes happen inside Update.
type Desktop struct {
	ID       string
	Shell    *shell.Shell
	Config   *config.UserConfig
	Keybinds *config.KeybindRegistry
	Logger   *log.Logger

	// Terminal size in cells.
	Width  int
	Height int

	Clicks DoubleClicker
	Now    func() time.Time

	ShowHelp bool

	// Recorder, when set, captures the session as a tape script.
	Recorder *tape.Recorder

	initial *desktop.Desktop
}

// Option configures a Desktop.
type Option func(*Desktop)

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(d *Desktop) { d.Logger = l }
}

// WithDoubleClick sets the desktop icon double-click detector.
func WithDoubleClick(dc DoubleClicker) Option {
	return func(d *Desktop) { d.Clicks = dc }
}

// WithClock replaces time.Now for the taskbar clock.
func WithClock(now func() time.Time) Option {
	return func(d *Desktop) { d.Now = now }
}

// WithRecorder records the session into rec. Recording starts immediately.
func WithRecorder(rec *tape.Recorder) Option {
	return func(d *Desktop) { d.Recorder = rec }
}

// WithDesktopState starts the session from an existing controller instead
// of the default welcome screen.
func WithDesktopState(state *desktop.Desktop) Option {
	return func(d *Desktop) { d.initial = state }
}

// New creates a session of width x height cells.
func New(cfg *config.UserConfig, width, height int, opts ...Option) *Desktop {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	d := &Desktop{
		ID:       uuid.NewString(),
		Config:   cfg,
		Keybinds: config.NewKeybindRegistry(cfg),
		Logger:   logging.Discard(),
		Width:    width,
		Height:   height,
		Now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.Logger = d.Logger.With("session", d.ID[:8])
	if d.initial == nil {
		d.initial = desktop.New(desktop.WithLogger(d.Logger))
	}
	d.Shell = shell.New(d.env(), desktop.DefaultRegistry(),
		shell.WithLogger(d.Logger),
		shell.WithMetrics(d.Metrics()),
		shell.WithThumbHeight(d.Config.Layout.ScrollbarThumb),
		shell.WithDesktop(d.initial),
	)
	if d.Recorder != nil {
		d.Recorder.Start(d.Shell)
	}
	return d
}

// Metrics returns the configured cell size.
func (d *Desktop) Metrics() shell.Metrics {
	return shell.Metrics{CellWidth: d.Config.Layout.CellWidth, CellHeight: d.Config.Layout.CellHeight}
}

func (d *Desktop) env() geometry.Env {
	m := d.Metrics()
	return geometry.Env{
		Viewport: geometry.Size{
			Width:  float64(d.Width) * m.CellWidth,
			Height: float64(d.Height) * m.CellHeight,
		},
		TaskbarHeight:    d.Config.Layout.TaskbarHeight,
		MobileBreakpoint: d.Config.Layout.MobileBreakpoint,
	}
}

// Resize updates the terminal size and the shell viewport.
func (d *Desktop) Resize(width, height int) {
	d.Width, d.Height = width, height
	env := d.env()
	d.Shell.SetViewport(env.Viewport.Width, env.Viewport.Height)
}

// TaskbarRows is the taskbar band height in rows.
func (d *Desktop) TaskbarRows() int {
	return int(math.Ceil(d.Config.Layout.TaskbarHeight / d.Config.Layout.CellHeight))
}

// InTaskbar reports whether row y is inside the taskbar band.
func (d *Desktop) InTaskbar(y int) bool {
	return y >= d.Height-d.TaskbarRows()
}

// Clock returns the taskbar clock text, or "" when hidden.
func (d *Desktop) Clock() string {
	if !d.Config.Appearance.ShowClock {
		return ""
	}
	return d.Now().Format("15:04")
}

// TaskbarLayout lays out the taskbar for the current state.
func (d *Desktop) TaskbarLayout() taskbar.Layout {
	buttons := taskbar.Project(d.Shell.Desktop(), d.Shell.Registry(), d.Config.Appearance.ASCIIOnly)
	return taskbar.NewLayout(buttons, d.Width, taskbar.ClockWidth(d.Clock()))
}

// ToPixel maps a cell to the pixel at its center.
func (d *Desktop) ToPixel(x, y int) geometry.Point {
	m := d.Metrics()
	return geometry.Point{
		X: (float64(x) + 0.5) * m.CellWidth,
		Y: (float64(y) + 0.5) * m.CellHeight,
	}
}

// ToCell maps a pixel coordinate to the cell containing it.
func (d *Desktop) ToCell(x, y float64) (int, int) {
	m := d.Metrics()
	return int(math.Floor(x / m.CellWidth)), int(math.Floor(y / m.CellHeight))
}

// CellRect returns the cells whose centers lie inside r. A click on any of
// them maps back into r through ToPixel, so windows are drawn on exactly
// these cells.
func (d *Desktop) CellRect(r geometry.Rect) (x, y, w, h int) {
	m := d.Metrics()
	x = int(math.Ceil(r.Left/m.CellWidth - 0.5))
	y = int(math.Ceil(r.Top/m.CellHeight - 0.5))
	w = max(int(math.Ceil(r.Right()/m.CellWidth-0.5))-x, 0)
	h = max(int(math.Ceil(r.Bottom()/m.CellHeight-0.5))-y, 0)
	return x, y, w, h
}
