// Package scrollbar derives scrollbar thumb geometry from a scrollable
// container and turns thumb drags into scroll offsets.
package scrollbar

import (
	"math"

	"github.com/Gaurav-Gosain/retrodesk/internal/geometry"
	"github.com/Gaurav-Gosain/retrodesk/internal/gesture"
)

// DefaultThumbHeight is the fixed thumb height in pixels.
const DefaultThumbHeight = 48.0

// Container is a scrollable element: a viewport of ClientHeight pixels over
// ScrollHeight pixels of content.
type Container interface {
	ScrollTop() float64
	SetScrollTop(v float64)
	ScrollHeight() float64
	ClientHeight() float64
}

// Content is the element being scrolled.
type Content interface {
	Height() float64
}

// Scrollbar is composed against a container/content pair. It keeps no state
// besides the drag flag; every position is derived on demand.
type Scrollbar struct {
	container   Container
	content     Content
	thumbHeight float64
	dragging    bool
}

// New returns a scrollbar for the given refs. Either may be nil while the
// window is still being assembled, in which case every query returns zero.
func New(container Container, content Content, thumbHeight float64) *Scrollbar {
	if thumbHeight <= 0 {
		thumbHeight = DefaultThumbHeight
	}
	return &Scrollbar{container: container, content: content, thumbHeight: thumbHeight}
}

func (s *Scrollbar) attached() bool {
	return s.container != nil && s.content != nil
}

// ThumbHeight returns the fixed thumb height.
func (s *Scrollbar) ThumbHeight() float64 { return s.thumbHeight }

// Dragging reports whether the thumb is being dragged.
func (s *Scrollbar) Dragging() bool { return s.dragging }

// Percentage returns how far the container is scrolled, from 0 to 100.
func (s *Scrollbar) Percentage() float64 {
	if !s.attached() {
		return 0
	}
	scrollable := s.container.ScrollHeight() - s.container.ClientHeight()
	if scrollable <= 0 {
		return 0
	}
	return s.container.ScrollTop() / scrollable * 100
}

// Track returns the distance the thumb top can travel.
func (s *Scrollbar) Track() float64 {
	if !s.attached() {
		return 0
	}
	return s.container.ClientHeight() - 1.5*s.thumbHeight
}

// ThumbTop returns the thumb offset from the top of the track.
func (s *Scrollbar) ThumbTop() float64 {
	if !s.attached() {
		return 0
	}
	track := s.Track()
	top := s.Percentage() / 100 * track
	return math.Min(math.Max(top, 0), track)
}

// BeginDrag starts a thumb drag at p. Pointer motion is translated into a
// proportional scroll from the offset held when the drag started.
func (s *Scrollbar) BeginDrag(doc *gesture.Document, owner string, p geometry.Point) *gesture.Gesture {
	startScroll := 0.0
	if s.container != nil {
		startScroll = s.container.ScrollTop()
	}
	g := doc.Begin(gesture.Options{
		Kind:  gesture.KindThumb,
		Owner: owner,
		OnMove: func(cur geometry.Point) {
			if !s.attached() {
				return
			}
			trackSpan := s.container.ClientHeight() - s.thumbHeight
			if trackSpan <= 0 {
				return
			}
			scrollable := s.container.ScrollHeight() - s.container.ClientHeight()
			move := (cur.Y - p.Y) / trackSpan * scrollable
			s.container.SetScrollTop(startScroll + move)
		},
		OnEnd: func() {
			s.dragging = false
		},
	})
	// Begin ends any previous gesture first, which may be this bar's own.
	s.dragging = true
	return g
}
