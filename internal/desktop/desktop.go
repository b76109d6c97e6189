package desktop

import (
	"slices"

	"github.com/charmbracelet/log"
)

// EventKind names a desktop state change.
type EventKind int

const (
	EventOpened EventKind = iota
	EventMinimized
	EventClosed
	EventFocused
)

func (k EventKind) String() string {
	switch k {
	case EventOpened:
		return "opened"
	case EventMinimized:
		return "minimized"
	case EventClosed:
		return "closed"
	case EventFocused:
		return "focused"
	default:
		return "unknown"
	}
}

// Event reports a change. EventFocused with an empty App means focus was cleared.
type Event struct {
	Kind EventKind
	App  Application
}

// Desktop owns the open, running and focused state.
//
// Invariants: open and running hold no duplicates, every open app is running,
// and the focused app, when set, is open.
type Desktop struct {
	open        []Application
	running     []Application
	focused     Application
	hasFocus    bool
	subscribers []func(Event)
	logger      *log.Logger
}

// Option configures a Desktop.
type Option func(*Desktop)

// WithInitial replaces the default initial state with the given open apps.
// The last one is focused. Passing nothing yields an empty desktop.
func WithInitial(apps ...Application) Option {
	return func(d *Desktop) {
		d.open, d.running = nil, nil
		d.focused, d.hasFocus = "", false
		for _, app := range apps {
			if !slices.Contains(d.open, app) {
				d.open = append(d.open, app)
			}
			if !slices.Contains(d.running, app) {
				d.running = append(d.running, app)
			}
			d.focused, d.hasFocus = app, true
		}
	}
}

// WithLogger sets the logger used for state change events.
func WithLogger(logger *log.Logger) Option {
	return func(d *Desktop) {
		d.logger = logger
	}
}

// New creates a desktop with Welcome open and focused.
func New(opts ...Option) *Desktop {
	d := &Desktop{
		open:     []Application{Welcome},
		running:  []Application{Welcome},
		focused:  Welcome,
		hasFocus: true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Subscribe registers fn for every subsequent change.
func (d *Desktop) Subscribe(fn func(Event)) {
	d.subscribers = append(d.subscribers, fn)
}

func (d *Desktop) emit(kind EventKind, app Application) {
	if d.logger != nil {
		d.logger.Debug("desktop", "event", kind, "app", app)
	}
	for _, fn := range d.subscribers {
		fn(Event{Kind: kind, App: app})
	}
}

// Open makes app visible and focused, starting it if needed.
func (d *Desktop) Open(app Application) {
	if !slices.Contains(d.open, app) {
		d.open = append(d.open, app)
		if !slices.Contains(d.running, app) {
			d.running = append(d.running, app)
		}
		d.emit(EventOpened, app)
	}
	d.setFocus(app)
}

// Minimize hides app but keeps it running.
func (d *Desktop) Minimize(app Application) {
	i := slices.Index(d.open, app)
	if i < 0 {
		return
	}
	d.open = slices.Delete(d.open, i, i+1)
	d.emit(EventMinimized, app)
	d.dropFocus(app)
}

// Close hides and stops app.
func (d *Desktop) Close(app Application) {
	wasOpen := slices.Contains(d.open, app)
	wasRunning := slices.Contains(d.running, app)
	if !wasOpen && !wasRunning {
		return
	}
	d.open = slices.DeleteFunc(d.open, func(a Application) bool { return a == app })
	d.running = slices.DeleteFunc(d.running, func(a Application) bool { return a == app })
	d.emit(EventClosed, app)
	d.dropFocus(app)
}

// Focus brings app to the front. Apps that are not open are ignored.
func (d *Desktop) Focus(app Application) {
	if !slices.Contains(d.open, app) {
		return
	}
	d.setFocus(app)
}

func (d *Desktop) setFocus(app Application) {
	if d.hasFocus && d.focused == app {
		return
	}
	d.focused, d.hasFocus = app, true
	d.emit(EventFocused, app)
}

func (d *Desktop) dropFocus(app Application) {
	if !d.hasFocus || d.focused != app {
		return
	}
	d.focused, d.hasFocus = "", false
	d.emit(EventFocused, "")
}

// OpenApps returns a copy of the open apps in creation order.
func (d *Desktop) OpenApps() []Application { return slices.Clone(d.open) }

// RunningApps returns a copy of the running apps in launch order.
func (d *Desktop) RunningApps() []Application { return slices.Clone(d.running) }

// Focused returns the focused app, if any.
func (d *Desktop) Focused() (Application, bool) { return d.focused, d.hasFocus }

func (d *Desktop) IsOpen(app Application) bool    { return slices.Contains(d.open, app) }
func (d *Desktop) IsRunning(app Application) bool { return slices.Contains(d.running, app) }

// StackingOrder returns open apps bottom to top; the focused app is last.
func (d *Desktop) StackingOrder() []Application {
	order := make([]Application, 0, len(d.open))
	for _, app := range d.open {
		if d.hasFocus && app == d.focused {
			continue
		}
		order = append(order, app)
	}
	if d.hasFocus {
		order = append(order, d.focused)
	}
	return order
}
