package taskbar

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/retrodesk/internal/theme"
	"github.com/charmbracelet/x/ansi"
)

// Render draws the taskbar as rows lines of exactly l.Width cells. The top
// rows form the raised edge; buttons sit on the last row.
func Render(l Layout, rows int, clock string) []string {
	if rows <= 0 || l.Width <= 0 {
		return nil
	}

	bar := lipgloss.NewStyle().Background(theme.SurfaceBg()).Foreground(theme.SurfaceFg())
	edge := lipgloss.NewStyle().Background(theme.SurfaceBg()).Foreground(theme.BevelLight())

	lines := make([]string, 0, rows)
	for range rows - 1 {
		lines = append(lines, edge.Render(strings.Repeat("▔", l.Width)))
	}

	var sb strings.Builder
	cursor := 0
	pad := func(to int) {
		if to > cursor {
			sb.WriteString(bar.Render(strings.Repeat(" ", to-cursor)))
			cursor = to
		}
	}

	sb.WriteString(button(StartLabel, false, true))
	cursor = l.Start.Width
	for _, r := range l.Buttons {
		pad(r.X)
		sb.WriteString(button(r.Label(), r.Pressed, false))
		cursor += r.Width
	}
	if l.Overflow {
		more := bar.Render(" …")
		sb.WriteString(more)
		cursor += lipgloss.Width(more)
	}

	if clock != "" {
		tray := lipgloss.NewStyle().
			Background(theme.SurfaceBg()).
			Foreground(theme.Clock()).
			Render("▏" + clock + " ")
		pad(l.Width - lipgloss.Width(tray))
		sb.WriteString(tray)
		cursor += lipgloss.Width(tray)
	}
	pad(l.Width)

	lines = append(lines, ansi.Truncate(sb.String(), l.Width, ""))
	return lines
}

// ClockWidth is the cell width Render needs for clock.
func ClockWidth(clock string) int {
	if clock == "" {
		return 0
	}
	return ansi.StringWidth(clock) + 2
}

func button(label string, pressed, bold bool) string {
	left, right := "▕", "▏"
	style := lipgloss.NewStyle().
		Background(theme.SurfaceBg()).
		Foreground(theme.SurfaceFg()).
		Bold(bold).
		Padding(0, buttonPadding)
	if pressed {
		style = style.Background(theme.BevelLight()).Underline(true)
	}
	edge := lipgloss.NewStyle().Background(theme.SurfaceBg()).Foreground(theme.BevelShadow())
	return edge.Render(left) + style.Render(label) + edge.Render(right)
}
