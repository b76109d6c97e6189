package content

import "strings"

// Paint is a freehand canvas. The first line is a toolbar; every line below
// it is drawable.
type Paint struct {
	cells  map[[2]int]bool
	eraser bool
}

// NewPaint returns an empty canvas.
func NewPaint() *Paint {
	return &Paint{cells: make(map[[2]int]bool)}
}

// Paints implements Painter.
func (p *Paint) Paints() bool { return true }

// Painted reports whether the canvas cell at col, row (canvas coordinates,
// toolbar excluded) is set.
func (p *Paint) Painted(col, row int) bool {
	return p.cells[[2]int{col, row}]
}

// Click implements ClickHandler. Row 0 is the toolbar.
func (p *Paint) Click(col, row int) bool {
	if row <= 0 || col < 0 {
		return false
	}
	key := [2]int{col, row - 1}
	if p.eraser {
		if !p.cells[key] {
			return false
		}
		delete(p.cells, key)
		return true
	}
	if p.cells[key] {
		return false
	}
	p.cells[key] = true
	return true
}

// HandleKey implements KeyHandler: "e" toggles the eraser, "c" clears.
func (p *Paint) HandleKey(key string) bool {
	switch strings.ToLower(key) {
	case "e":
		p.eraser = !p.eraser
		return true
	case "c":
		if len(p.cells) == 0 {
			return false
		}
		clear(p.cells)
		return true
	}
	return false
}

// Lines implements Content. The canvas is as tall as its lowest painted cell.
func (p *Paint) Lines(width int) []string {
	tool := "[pencil]"
	if p.eraser {
		tool = "[eraser]"
	}
	out := []string{tool + "  e: toggle eraser  c: clear"}

	rows := 0
	for k := range p.cells {
		rows = max(rows, k[1]+1)
	}
	for r := 0; r < rows; r++ {
		var b strings.Builder
		for c := 0; c < width; c++ {
			if p.cells[[2]int{c, r}] {
				b.WriteRune('█')
			} else {
				b.WriteByte(' ')
			}
		}
		out = append(out, b.String())
	}
	return out
}
