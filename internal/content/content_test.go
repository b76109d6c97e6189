package content

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestTextWrapsToWidth(t *testing.T) {
	for _, c := range []Content{NewWelcome(), NewAboutMe(), NewBlog(), NewConnect()} {
		for _, line := range c.Lines(30) {
			if w := ansi.StringWidth(line); w > 30 {
				t.Errorf("%T: line %q is %d cells wide, want <= 30", c, line, w)
			}
		}
	}
}

func TestProjectsShortcuts(t *testing.T) {
	p := NewProjects()
	if _, ok := p.Selected(); ok {
		t.Fatal("expected no initial selection")
	}

	tests := []struct {
		key         string
		wantChanged bool
		wantTitle   string
	}{
		{"f", true, "Fora"},
		{"F", false, "Fora"},
		{"P", true, "PUPpy"},
		{"r", true, "reeslabree.com"},
		{"a", true, "Arduino Guitar-Hero Guitar"},
		{"z", false, "Arduino Guitar-Hero Guitar"},
	}
	for _, tt := range tests {
		if got := p.HandleKey(tt.key); got != tt.wantChanged {
			t.Errorf("HandleKey(%q) = %v, want %v", tt.key, got, tt.wantChanged)
		}
		proj, _ := p.Selected()
		if proj.Title != tt.wantTitle {
			t.Errorf("after %q selected %q, want %q", tt.key, proj.Title, tt.wantTitle)
		}
	}
}

func TestProjectsPanelsHaveDifferentHeights(t *testing.T) {
	p := NewProjects()
	empty := len(p.Lines(40))
	p.Select("p")
	puppy := len(p.Lines(40))

	if puppy <= empty {
		t.Errorf("panel lines = %d, placeholder = %d; want the panel to be taller", puppy, empty)
	}
}

func TestProjectsTabClick(t *testing.T) {
	p := NewProjects()

	// "Fora" + gap, then "PUPpy" starts at column 6.
	if !p.Click(7, 0) {
		t.Fatal("click on second tab did not change selection")
	}
	if proj, _ := p.Selected(); proj.Key != "p" {
		t.Errorf("selected %q, want p", proj.Key)
	}
	if p.Click(4, 0) {
		t.Error("click in the gap between tabs changed selection")
	}
	if p.Click(0, 3) {
		t.Error("click outside the tab row changed selection")
	}
}

func TestPaint(t *testing.T) {
	p := NewPaint()

	if p.Click(3, 0) {
		t.Error("clicking the toolbar painted a cell")
	}
	if !p.Click(3, 2) || !p.Painted(3, 1) {
		t.Fatal("expected cell 3,1 to be painted")
	}
	if p.Click(3, 2) {
		t.Error("repainting a cell reported a change")
	}

	lines := p.Lines(5)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want toolbar + 2 canvas rows", len(lines))
	}
	if lines[2] != "   █ " {
		t.Errorf("canvas row = %q", lines[2])
	}

	p.HandleKey("e")
	if !p.Click(3, 2) || p.Painted(3, 1) {
		t.Error("eraser did not clear the cell")
	}
	if !strings.Contains(p.Lines(5)[0], "eraser") {
		t.Error("toolbar does not show the eraser")
	}

	p.HandleKey("e")
	p.Click(0, 1)
	if !p.HandleKey("c") || p.Painted(0, 0) {
		t.Error("clear did not empty the canvas")
	}
}
