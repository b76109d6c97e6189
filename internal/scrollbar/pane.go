package scrollbar

import "math"

// Pane is an in-memory scroll container over rendered content lines. Each
// line is RowHeight pixels tall.
type Pane struct {
	lines        []string
	rowHeight    float64
	clientHeight float64
	scrollTop    float64
}

// NewPane returns an empty pane whose rows are rowHeight pixels tall.
func NewPane(rowHeight float64) *Pane {
	if rowHeight <= 0 {
		rowHeight = 1
	}
	return &Pane{rowHeight: rowHeight}
}

// SetLines replaces the content.
func (p *Pane) SetLines(lines []string) {
	p.lines = lines
	p.SetScrollTop(p.scrollTop)
}

// Lines returns the full content.
func (p *Pane) Lines() []string { return p.lines }

// SetClientHeight sets the visible height in pixels.
func (p *Pane) SetClientHeight(h float64) {
	p.clientHeight = math.Max(h, 0)
	p.SetScrollTop(p.scrollTop)
}

func (p *Pane) RowHeight() float64    { return p.rowHeight }
func (p *Pane) ScrollTop() float64    { return p.scrollTop }
func (p *Pane) ClientHeight() float64 { return p.clientHeight }

// ScrollHeight is the full content height in pixels.
func (p *Pane) ScrollHeight() float64 {
	return float64(len(p.lines)) * p.rowHeight
}

// Height satisfies Content.
func (p *Pane) Height() float64 { return p.ScrollHeight() }

// SetScrollTop moves the viewport, clamped to the scrollable range.
func (p *Pane) SetScrollTop(v float64) {
	maxScroll := math.Max(p.ScrollHeight()-p.clientHeight, 0)
	p.scrollTop = math.Min(math.Max(v, 0), maxScroll)
}

// ScrollBy scrolls by dy pixels.
func (p *Pane) ScrollBy(dy float64) {
	p.SetScrollTop(p.scrollTop + dy)
}

// FirstRow is the index of the topmost visible line.
func (p *Pane) FirstRow() int {
	return int(p.scrollTop / p.rowHeight)
}

// Visible returns at most rows lines starting at FirstRow.
func (p *Pane) Visible(rows int) []string {
	start := min(p.FirstRow(), len(p.lines))
	end := min(start+max(rows, 0), len(p.lines))
	return p.lines[start:end]
}
