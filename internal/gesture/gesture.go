package gesture

import "github.com/Gaurav-Gosain/retrodesk/internal/geometry"

// Kind names what a gesture manipulates.
type Kind string

const (
	KindMove   Kind = "move"
	KindResize Kind = "resize"
	KindThumb  Kind = "thumb"
	KindPaint  Kind = "paint"
)

// Options configures a gesture.
type Options struct {
	Kind  Kind
	Owner string
	// OnMove receives every pointer position while the gesture is active.
	OnMove Handler
	// OnEnd runs exactly once, after the listeners are released.
	OnEnd func()
}

// Gesture is one Idle -> Dragging -> Idle cycle.
type Gesture struct {
	doc    *Document
	kind   Kind
	owner  string
	moveID int
	upID   int
	onMove Handler
	onEnd  func()
	ended  bool
}

// Begin starts a gesture on the document. Any gesture still in progress is
// cancelled first, so at most one gesture is active per document.
func (d *Document) Begin(opts Options) *Gesture {
	if d.active != nil {
		d.active.Cancel()
	}

	g := &Gesture{
		doc:    d,
		kind:   opts.Kind,
		owner:  opts.Owner,
		onMove: opts.OnMove,
		onEnd:  opts.OnEnd,
	}
	g.moveID = d.AddListener(PointerMove, g.handleMove)
	g.upID = d.AddListener(PointerUp, g.handleUp)
	d.active = g
	return g
}

func (g *Gesture) Kind() Kind    { return g.kind }
func (g *Gesture) Owner() string { return g.owner }
func (g *Gesture) Active() bool  { return !g.ended }

func (g *Gesture) handleMove(p geometry.Point) {
	if g.onMove != nil {
		g.onMove(p)
	}
}

func (g *Gesture) handleUp(geometry.Point) {
	g.end()
}

// Cancel ends the gesture without a pointer release, for example when the
// window it manipulates is destroyed mid-drag.
func (g *Gesture) Cancel() {
	g.end()
}

func (g *Gesture) end() {
	if g.ended {
		return
	}
	g.ended = true
	g.doc.RemoveListener(g.moveID)
	g.doc.RemoveListener(g.upID)
	if g.doc.active == g {
		g.doc.active = nil
	}
	if g.onEnd != nil {
		g.onEnd()
	}
}

// CancelOwned cancels the active gesture if it belongs to owner.
func (d *Document) CancelOwned(owner string) {
	if d.active != nil && d.active.owner == owner {
		d.active.Cancel()
	}
}
