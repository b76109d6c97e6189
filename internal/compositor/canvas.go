// Package compositor paints styled text blocks onto a fixed-size cell grid.
// Later draws cover earlier ones, so callers draw back to front.
package compositor

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/retrodesk/internal/pool"
	"github.com/charmbracelet/x/ansi"
)

const reset = "\x1b[m"

// Canvas is a grid of Width x Height cells. Each row is kept as one ANSI
// string exactly Width cells wide.
type Canvas struct {
	width  int
	height int
	rows   []string
}

// New returns a canvas filled with spaces in the background style.
func New(width, height int, background lipgloss.Style) *Canvas {
	width, height = max(width, 0), max(height, 0)
	c := &Canvas{width: width, height: height, rows: make([]string, height)}
	blank := background.Render(strings.Repeat(" ", width))
	for i := range c.rows {
		c.rows[i] = blank
	}
	return c
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Draw places block with its top-left cell at x, y. Lines are clipped to the
// canvas on every side.
func (c *Canvas) Draw(x, y int, block string) {
	for i, line := range strings.Split(block, "\n") {
		c.DrawLine(x, y+i, line)
	}
}

// DrawLines is Draw for pre-split lines.
func (c *Canvas) DrawLines(x, y int, lines []string) {
	for i, line := range lines {
		c.DrawLine(x, y+i, line)
	}
}

// DrawLine splices one line into row y starting at column x.
func (c *Canvas) DrawLine(x, y int, line string) {
	if y < 0 || y >= c.height || x >= c.width {
		return
	}
	if x < 0 {
		line = ansi.TruncateLeft(line, -x, "")
		x = 0
	}
	line = ansi.Truncate(line, c.width-x, "")
	w := ansi.StringWidth(line)
	if w == 0 {
		return
	}

	row := c.rows[y]
	sb := pool.GetStringBuilder()
	defer pool.PutStringBuilder(sb)
	sb.WriteString(ansi.Truncate(row, x, ""))
	sb.WriteString(reset)
	sb.WriteString(line)
	sb.WriteString(reset)
	sb.WriteString(ansi.TruncateLeft(row, x+w, ""))
	c.rows[y] = sb.String()
}

// Fill paints a w x h rectangle of spaces in style.
func (c *Canvas) Fill(x, y, w, h int, style lipgloss.Style) {
	if w <= 0 || h <= 0 {
		return
	}
	line := style.Render(strings.Repeat(" ", w))
	for i := range h {
		c.DrawLine(x, y+i, line)
	}
}

// Lines returns a copy of the rows.
func (c *Canvas) Lines() []string {
	return append([]string(nil), c.rows...)
}

// Render joins the rows into a frame.
func (c *Canvas) Render() string {
	sb := pool.GetStringBuilder()
	defer pool.PutStringBuilder(sb)
	for i, row := range c.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(row)
	}
	return sb.String()
}
