package tape

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/Gaurav-Gosain/retrodesk/internal/desktop"
	"github.com/Gaurav-Gosain/retrodesk/internal/geometry"
	"github.com/Gaurav-Gosain/retrodesk/internal/shell"
	"github.com/charmbracelet/log"
	"github.com/hashicorp/go-multierror"
)

var (
	// ErrExpectation marks a failed Expect, ExpectOpen or ExpectFocused.
	ErrExpectation = errors.New("expectation failed")
	// ErrNotOpen is returned by gestures on an app without a window.
	ErrNotOpen = errors.New("application is not open")
	// ErrNoTarget is returned when a gesture's grab point is missing:
	// no resize handle, no scrollbar thumb, or another part under the press.
	ErrNoTarget = errors.New("gesture target not available")
)

// geometryTolerance absorbs float noise in Expect comparisons.
const geometryTolerance = 1e-6

// grabInset is how far inside the title bar a Drag presses.
const grabInset = 5

// StartViewport returns the size set by a leading Viewport command. Windows
// open at startup are laid out for the viewport the shell is built with, so
// a recording replays faithfully only on a shell created at this size.
func StartViewport(commands []Command) (geometry.Size, bool) {
	if len(commands) == 0 || commands[0].Type != CommandType_Viewport {
		return geometry.Size{}, false
	}
	return geometry.Size{Width: commands[0].Args[0], Height: commands[0].Args[1]}, true
}

// Player manages script playback against a shell
type Player struct {
	commands []Command
	index    int // Current command index
	logger   *log.Logger
}

// NewPlayer creates a new script player from a list of commands
func NewPlayer(commands []Command, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{commands: commands, logger: logger}
}

// IsFinished returns true if all commands have been executed
func (p *Player) IsFinished() bool {
	return p.index >= len(p.commands)
}

// CurrentIndex returns the current command index
func (p *Player) CurrentIndex() int {
	return p.index
}

// TotalCommands returns the total number of commands
func (p *Player) TotalCommands() int {
	return len(p.commands)
}

// Progress returns a value between 0 and 100 representing playback progress
func (p *Player) Progress() int {
	if len(p.commands) == 0 {
		return 100
	}
	return (p.index * 100) / len(p.commands)
}

// Reset resets the player to the beginning
func (p *Player) Reset() {
	p.index = 0
}

// Step runs the next command. It returns io.EOF when the script is done.
func (p *Player) Step(s *shell.Shell) error {
	if p.IsFinished() {
		return io.EOF
	}
	cmd := p.commands[p.index]
	p.index++

	p.logger.Debug("tape", "line", cmd.Line, "command", cmd.String())
	if err := execute(s, cmd); err != nil {
		return fmt.Errorf("line %d: %s: %w", cmd.Line, cmd.String(), err)
	}
	return nil
}

// Run plays every remaining command. A failing command does not stop
// playback; all failures are returned together.
func (p *Player) Run(ctx context.Context, s *shell.Shell) error {
	var result *multierror.Error
	for !p.IsFinished() {
		if err := ctx.Err(); err != nil {
			return multierror.Append(result, err).ErrorOrNil()
		}
		if err := p.Step(s); err != nil {
			p.logger.Warn("tape", "err", err)
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

func execute(s *shell.Shell, cmd Command) error {
	switch cmd.Type {
	case CommandType_Viewport:
		s.SetViewport(cmd.Args[0], cmd.Args[1])
	case CommandType_Open:
		s.Open(cmd.App)
	case CommandType_Minimize:
		s.Minimize(cmd.App)
	case CommandType_Close:
		s.Close(cmd.App)
	case CommandType_Focus:
		s.Focus(cmd.App)
	case CommandType_Maximize:
		if _, ok := s.Frame(cmd.App); !ok {
			return ErrNotOpen
		}
		s.ToggleMaximize(cmd.App)
	case CommandType_Drag:
		return drag(s, cmd.App, func(f *shell.Frame) (geometry.Point, bool) {
			bar := f.TitleBar()
			return geometry.Point{X: bar.Left + grabInset, Y: bar.Top + grabInset}, true
		}, shell.PartTitle, cmd.Args[0], cmd.Args[1])
	case CommandType_Resize:
		return drag(s, cmd.App, func(f *shell.Frame) (geometry.Point, bool) {
			r, ok := f.ResizeHandle()
			return center(r), ok
		}, shell.PartResize, cmd.Args[0], cmd.Args[1])
	case CommandType_Scroll:
		return drag(s, cmd.App, func(f *shell.Frame) (geometry.Point, bool) {
			r, ok := f.ThumbRect()
			return center(r), ok
		}, shell.PartThumb, 0, cmd.Args[0])
	case CommandType_Key:
		s.Key(cmd.Key)
	case CommandType_Expect:
		return expectRect(s, cmd)
	case CommandType_ExpectOpen:
		return expectOpen(s, cmd.Apps)
	case CommandType_ExpectFocused:
		return expectFocused(s, cmd.App)
	default:
		return fmt.Errorf("unsupported command %q", cmd.Type)
	}
	return nil
}

func center(r geometry.Rect) geometry.Point {
	return geometry.Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// drag presses at grab(frame), moves by dx, dy and releases, the way a
// pointer would. The app is focused first so nothing above it takes the press.
func drag(s *shell.Shell, app desktop.Application, grab func(*shell.Frame) (geometry.Point, bool), want shell.Part, dx, dy float64) error {
	f, ok := s.Frame(app)
	if !ok {
		return ErrNotOpen
	}
	s.Focus(app)

	start, ok := grab(f)
	if !ok {
		return ErrNoTarget
	}
	hit, ok := s.PointerDown(start)
	if !ok || hit.App != app || hit.Part != want {
		s.PointerUp(start)
		return fmt.Errorf("%w: pressed %s of %q", ErrNoTarget, hit.Part, hit.App)
	}
	end := geometry.Point{X: start.X + dx, Y: start.Y + dy}
	s.PointerMove(end)
	s.PointerUp(end)
	return nil
}

func expectRect(s *shell.Shell, cmd Command) error {
	f, ok := s.Frame(cmd.App)
	if !ok {
		return fmt.Errorf("%w: %s is not open", ErrExpectation, cmd.App)
	}
	want := geometry.Rect{Left: cmd.Args[0], Top: cmd.Args[1], Width: cmd.Args[2], Height: cmd.Args[3]}
	got := f.Rect()
	if !near(got.Left, want.Left) || !near(got.Top, want.Top) ||
		!near(got.Width, want.Width) || !near(got.Height, want.Height) {
		return fmt.Errorf("%w: %s at %s, want %s", ErrExpectation, cmd.App, formatRect(got), formatRect(want))
	}
	return nil
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= geometryTolerance
}

func formatRect(r geometry.Rect) string {
	return fmt.Sprintf("%g %g %gx%g", r.Left, r.Top, r.Width, r.Height)
}

func expectOpen(s *shell.Shell, want []desktop.Application) error {
	got := s.Desktop().OpenApps()
	g, w := slices.Clone(got), slices.Clone(want)
	slices.Sort(g)
	slices.Sort(w)
	w = slices.Compact(w)
	if !slices.Equal(g, w) {
		return fmt.Errorf("%w: open [%s], want [%s]", ErrExpectation, joinApps(got), joinApps(want))
	}
	return nil
}

func expectFocused(s *shell.Shell, want desktop.Application) error {
	got, ok := s.Desktop().Focused()
	if !ok {
		got = ""
	}
	if got != want {
		return fmt.Errorf("%w: focused %q, want %q", ErrExpectation, got, want)
	}
	return nil
}

func joinApps(apps []desktop.Application) string {
	names := make([]string, len(apps))
	for i, a := range apps {
		names[i] = string(a)
	}
	return strings.Join(names, " ")
}
