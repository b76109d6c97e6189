// Package content renders what is shown inside each retrodesk window.
//
// Contents are plain line producers. They know nothing about window
// geometry; the shell hands them a width in cells and scrolls the result.
package content

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Content produces the lines of a window body for the given width in cells.
type Content interface {
	Lines(width int) []string
}

// KeyHandler is implemented by contents that react to keys while their
// window is focused. HandleKey reports whether the content changed.
type KeyHandler interface {
	HandleKey(key string) bool
}

// ClickHandler is implemented by contents that react to clicks. col and row
// are relative to the first rendered line, including scrolled-off rows.
// Click reports whether the content changed.
type ClickHandler interface {
	Click(col, row int) bool
}

// Painter is implemented by contents that keep receiving pointer positions
// while the button is held after a click.
type Painter interface {
	ClickHandler
	Paints() bool
}

var headingStyle = lipgloss.NewStyle().Bold(true)

// wrap word-wraps text to width cells and returns the lines.
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	rendered := lipgloss.NewStyle().Width(width).Render(text)
	return strings.Split(rendered, "\n")
}

// paragraphs wraps each paragraph and separates them with a blank line.
func paragraphs(width int, paras ...string) []string {
	var out []string
	for i, p := range paras {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, wrap(p, width)...)
	}
	return out
}

// heading renders a bold title wrapped to width.
func heading(title string, width int) []string {
	lines := wrap(title, width)
	for i, l := range lines {
		lines[i] = headingStyle.Render(l)
	}
	return lines
}

// Text is static content made of a heading and paragraphs.
type Text struct {
	Title      string
	Paragraphs []string
}

// Lines implements Content.
func (t *Text) Lines(width int) []string {
	var out []string
	if t.Title != "" {
		out = append(out, heading(t.Title, width)...)
		out = append(out, "")
	}
	return append(out, paragraphs(width, t.Paragraphs...)...)
}
