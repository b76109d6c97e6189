// Package theme provides the desktop color palette.
//
// With no theme configured the palette is the classic grey-on-teal desktop.
// With a bubbletint theme the same roles map onto the theme's ANSI colors.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// If themeName is empty, theming is disabled and the built-in palette is used.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	if ok := tint.SetTintID(themeName); !ok {
		tint.SetTintID("default")
	}

	return nil
}

// IsEnabled returns true if theming is enabled
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme, or nil when theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// Desktop background and icon labels
func DesktopBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#008080")
	}
	return t.Cyan
}

func DesktopFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ffffff")
	}
	return t.BrightWhite
}

// Surface is the grey of window frames and the taskbar.
func SurfaceBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#c0c0c0")
	}
	return t.White
}

func SurfaceFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#000000")
	}
	return t.Black
}

// Bevel edges
func BevelLight() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ffffff")
	}
	return t.BrightWhite
}

func BevelShadow() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#808080")
	}
	return t.BrightBlack
}

// Title bars
func TitleActive() (bg color.Color, fg color.Color) {
	t := Current()
	if t == nil {
		return lipgloss.Color("#000080"), lipgloss.Color("#ffffff")
	}
	return t.Blue, t.BrightWhite
}

func TitleInactive() (bg color.Color, fg color.Color) {
	t := Current()
	if t == nil {
		return lipgloss.Color("#808080"), lipgloss.Color("#c0c0c0")
	}
	return t.BrightBlack, t.White
}

// Window content area
func ContentBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ffffff")
	}
	return t.Bg
}

func ContentFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#000000")
	}
	return t.Fg
}

func Link() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#0000ee")
	}
	return t.BrightBlue
}

// Scrollbar colors
func ScrollTrack() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#dfdfdf")
	}
	return t.BrightBlack
}

func ScrollThumb() color.Color {
	return SurfaceBg()
}

// Taskbar clock
func Clock() color.Color {
	return SurfaceFg()
}

// CLI table colors
func CLITableHeader() color.Color {
	return lipgloss.Color("12")
}

func CLITableBorder() color.Color {
	return lipgloss.Color("14")
}

func CLITableKey() color.Color {
	return lipgloss.Color("11")
}

func CLITableDim() color.Color {
	return lipgloss.Color("8")
}
