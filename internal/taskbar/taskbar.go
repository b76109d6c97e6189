// Package taskbar projects desktop state into the bottom bar.
//
// Layout and hit testing work in terminal cells; callers convert pointer
// positions before asking which button sits under them.
package taskbar

import (
	"github.com/Gaurav-Gosain/retrodesk/internal/desktop"
	"github.com/charmbracelet/x/ansi"
)

// MaxLabelWidth caps a button label, icon included.
const MaxLabelWidth = 16

// StartLabel is drawn at the left edge. Clicking it does nothing.
const StartLabel = "Start"

// Button is one running application.
type Button struct {
	App     desktop.Application
	Title   string
	Icon    string
	Pressed bool
}

// Label returns the text drawn inside the button.
func (b Button) Label() string {
	label := b.Title
	if b.Icon != "" {
		label = b.Icon + " " + label
	}
	return ansi.Truncate(label, MaxLabelWidth, "…")
}

// Project returns one button per running app in launch order. A button is
// pressed while its window is open.
func Project(d *desktop.Desktop, reg *desktop.Registry, ascii bool) []Button {
	running := d.RunningApps()
	buttons := make([]Button, 0, len(running))
	for _, app := range running {
		b := Button{App: app, Title: string(app), Pressed: d.IsOpen(app)}
		if desc, ok := reg.Lookup(app); ok {
			b.Title = desc.Title
			b.Icon = desc.Icon
			if ascii {
				b.Icon = desc.ASCIIIcon
			}
		}
		buttons = append(buttons, b)
	}
	return buttons
}

// Region is a laid out button: cells [X, X+Width).
type Region struct {
	Button
	X     int
	Width int
}

// Layout places the Start button and the app buttons left to right.
type Layout struct {
	Width    int
	Start    Region
	Buttons  []Region
	Overflow bool // some buttons did not fit
}

const (
	buttonPadding = 1
	buttonGap     = 1
)

func buttonWidth(label string) int {
	return ansi.StringWidth(label) + 2*buttonPadding + 2 // bevel edges
}

// NewLayout lays out buttons within width cells, reserving reserve cells on
// the right for the clock. Buttons that do not fit are dropped.
func NewLayout(buttons []Button, width, reserve int) Layout {
	l := Layout{Width: width}
	l.Start = Region{Button: Button{Title: StartLabel}, X: 0, Width: buttonWidth(StartLabel)}

	x := l.Start.Width + buttonGap + 1
	limit := width - reserve
	for _, b := range buttons {
		w := buttonWidth(b.Label())
		if x+w > limit {
			l.Overflow = true
			break
		}
		l.Buttons = append(l.Buttons, Region{Button: b, X: x, Width: w})
		x += w + buttonGap
	}
	return l
}

// HitTest returns the app whose button covers column x.
func (l Layout) HitTest(x int) (desktop.Application, bool) {
	for _, r := range l.Buttons {
		if x >= r.X && x < r.X+r.Width {
			return r.App, true
		}
	}
	return "", false
}

// OnStart reports whether column x falls on the Start button.
func (l Layout) OnStart(x int) bool {
	return x >= l.Start.X && x < l.Start.X+l.Start.Width
}
