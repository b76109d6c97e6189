package app

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/Gaurav-Gosain/retrodesk/internal/config"
	"github.com/Gaurav-Gosain/retrodesk/internal/theme"
	"github.com/charmbracelet/x/ansi"
)

// ToggleHelp shows or hides the keybinding overlay.
func (d *Desktop) ToggleHelp() {
	d.ShowHelp = !d.ShowHelp
}

// helpRows flattens the keybinding sections into table rows. Section titles
// get a row of their own with an empty action column.
func helpRows(sections []config.KeybindingSection) (rows [][]string, titles map[int]bool) {
	titles = make(map[int]bool)
	for i, s := range sections {
		if i > 0 {
			rows = append(rows, []string{"", ""})
		}
		titles[len(rows)] = true
		rows = append(rows, []string{s.Title, ""})
		for _, b := range s.Bindings {
			rows = append(rows, []string{b.Key, b.Description})
		}
	}
	return rows, titles
}

// RenderHelp renders the help box. It is cut to fit width x height.
func (d *Desktop) RenderHelp(width, height int) string {
	rows, titles := helpRows(config.GetKeybindings(d.Keybinds))

	surface := lipgloss.NewStyle().Background(theme.SurfaceBg()).Foreground(theme.SurfaceFg())
	titleBg, titleFg := theme.TitleActive()
	headerStyle := surface.Bold(true).Padding(0, 1)
	sectionStyle := surface.Bold(true).Underline(true).Padding(0, 1)
	keyStyle := surface.Foreground(theme.Link()).Padding(0, 1)
	actionStyle := surface.Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(surface.Foreground(theme.BevelShadow())).
		BorderColumn(false).
		Headers("Keys", "Action").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case titles[row]:
				return sectionStyle
			case col == 0:
				return keyStyle
			}
			return actionStyle
		})

	body := t.Render()
	title := lipgloss.NewStyle().
		Background(titleBg).
		Foreground(titleFg).
		Bold(true).
		Width(lipgloss.Width(body)).
		Render(" Help")
	footer := surface.Width(lipgloss.Width(body)).
		Align(lipgloss.Center).
		Render("press " + d.Keybinds.GetKeysForDisplay("toggle_help") + " or Esc to close")

	box := lipgloss.JoinVertical(lipgloss.Left, title, body, footer)

	lines := strings.Split(box, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "")
	}
	return strings.Join(lines, "\n")
}
