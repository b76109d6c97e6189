package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/retrodesk/internal/compositor"
	"github.com/Gaurav-Gosain/retrodesk/internal/pool"
	"github.com/Gaurav-Gosain/retrodesk/internal/shell"
	"github.com/Gaurav-Gosain/retrodesk/internal/taskbar"
	"github.com/Gaurav-Gosain/retrodesk/internal/theme"
	"github.com/charmbracelet/x/ansi"
)

// View returns the rendered view.
func (d *Desktop) View() tea.View {
	var view tea.View

	view.SetContent(lipgloss.Sprint(d.Render()))
	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion

	return view
}

// Render composes the desktop, the windows in stacking order and the
// taskbar into one frame.
func (d *Desktop) Render() string {
	if d.Width <= 0 || d.Height <= 0 {
		return ""
	}

	canvas := compositor.New(d.Width, d.Height, lipgloss.NewStyle().Background(theme.DesktopBg()))
	d.drawIcons(canvas)

	focused, _ := d.Shell.Desktop().Focused()
	for _, f := range d.Shell.Frames() {
		x, y, w, h := d.CellRect(f.Rect())
		canvas.DrawLines(x, y, d.renderFrame(f, f.App == focused, y, w, h))
	}

	rows := d.TaskbarRows()
	canvas.DrawLines(0, d.Height-rows, taskbar.Render(d.TaskbarLayout(), rows, d.Clock()))

	if d.ShowHelp {
		help := d.RenderHelp(d.Width, d.Height-rows)
		x := max((d.Width-lipgloss.Width(help))/2, 0)
		y := max((d.Height-rows-lipgloss.Height(help))/2, 0)
		canvas.Draw(x, y, help)
	}
	return canvas.Render()
}

func (d *Desktop) drawIcons(canvas *compositor.Canvas) {
	style := lipgloss.NewStyle().
		Width(iconWidth).
		Align(lipgloss.Center).
		Background(theme.DesktopBg()).
		Foreground(theme.DesktopFg())

	for _, icon := range d.Icons() {
		glyph := icon.Descriptor.Icon
		if d.Config.Appearance.ASCIIOnly {
			glyph = icon.Descriptor.ASCIIIcon
		}
		canvas.DrawLine(icon.X, icon.Y, style.Render(glyph))
		canvas.DrawLine(icon.X, icon.Y+1, style.Render(ansi.Truncate(icon.Descriptor.Title, iconWidth, "…")))
	}
}

func (d *Desktop) buttonGlyph(part shell.Part, maximized bool) string {
	ascii := d.Config.Appearance.ASCIIOnly
	switch part {
	case shell.PartMinimize:
		return "[_]"
	case shell.PartMaximize:
		if ascii {
			return "[^]"
		}
		if maximized {
			return "[❐]"
		}
		return "[□]"
	case shell.PartClose:
		if ascii {
			return "[x]"
		}
		return "[×]"
	}
	return ""
}

// renderFrame draws one window of cols x rows cells starting at row top:
// title bar, bordered content with its scrollbar column, and the bottom edge.
func (d *Desktop) renderFrame(f *shell.Frame, focused bool, top, cols, rows int) []string {
	if cols < 3 || rows < 2 {
		return nil
	}
	textCols := cols - 3
	contentRows := rows - 2

	lines := pool.GetLineSlice()
	defer pool.PutLineSlice(lines)

	*lines = append(*lines, d.renderTitle(f, focused, cols))

	surface := lipgloss.NewStyle().Background(theme.SurfaceBg()).Foreground(theme.BevelShadow())
	body := lipgloss.NewStyle().Background(theme.ContentBg()).Foreground(theme.ContentFg())
	track := lipgloss.NewStyle().Background(theme.ScrollTrack()).Foreground(theme.BevelShadow())
	thumb := lipgloss.NewStyle().Background(theme.ScrollTrack()).Foreground(theme.ScrollThumb())

	thumbRect, overflowing := f.ThumbRect()
	isThumb := func(row int) bool {
		y := d.ToPixel(0, top+1+row).Y
		return y >= thumbRect.Top && y < thumbRect.Bottom()
	}

	visible := f.Visible()
	edge := surface.Render(" ")
	for row := range contentRows {
		text := ""
		if row < len(visible) {
			text = ansi.Truncate(visible[row], textCols, "")
		}
		sb := pool.GetStringBuilder()
		sb.WriteString(edge)
		sb.WriteString(body.Render(text + strings.Repeat(" ", max(textCols-ansi.StringWidth(text), 0))))
		switch {
		case !overflowing:
			sb.WriteString(body.Render(" "))
		case isThumb(row):
			sb.WriteString(thumb.Render("█"))
		default:
			sb.WriteString(track.Render("░"))
		}
		sb.WriteString(edge)
		*lines = append(*lines, sb.String())
		pool.PutStringBuilder(sb)
	}

	handle := " "
	if _, ok := f.ResizeHandle(); ok {
		handle = "◢"
		if d.Config.Appearance.ASCIIOnly {
			handle = "/"
		}
	}
	*lines = append(*lines, surface.Render(strings.Repeat(" ", max(cols-1, 0))+handle))

	return append([]string(nil), *lines...)
}

func (d *Desktop) renderTitle(f *shell.Frame, focused bool, cols int) string {
	bg, fg := theme.TitleInactive()
	if focused {
		bg, fg = theme.TitleActive()
	}
	bar := lipgloss.NewStyle().Background(bg).Foreground(fg).Bold(focused)
	btn := lipgloss.NewStyle().Background(theme.SurfaceBg()).Foreground(theme.SurfaceFg())

	buttons := f.Buttons(d.Shell.Env().IsMobile())
	var right strings.Builder
	for _, b := range buttons {
		right.WriteString(btn.Render(d.buttonGlyph(b.Part, f.Window.IsMaximized())))
	}

	icon := f.Descriptor.Icon
	if d.Config.Appearance.ASCIIOnly {
		icon = f.Descriptor.ASCIIIcon
	}
	room := max(cols-3*len(buttons), 0)
	title := ansi.Truncate(" "+icon+" "+f.Descriptor.Title, room, "…")
	title += strings.Repeat(" ", max(room-ansi.StringWidth(title), 0))

	return bar.Render(title) + right.String()
}
