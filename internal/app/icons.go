package app

import (
	"github.com/Gaurav-Gosain/retrodesk/internal/desktop"
)

// Desktop icon grid, in cells.
const (
	iconLeft   = 2
	iconTop    = 1
	iconWidth  = 10
	iconHeight = 3 // glyph row, label row, spacer
)

// Icon is a desktop launcher and the cells it covers.
type Icon struct {
	Descriptor desktop.Descriptor
	X, Y       int
}

// Icons lays out the desktop launchers top to bottom.
func (d *Desktop) Icons() []Icon {
	descs := d.Shell.Registry().DesktopIcons()
	icons := make([]Icon, 0, len(descs))
	for i, desc := range descs {
		icons = append(icons, Icon{Descriptor: desc, X: iconLeft, Y: iconTop + i*iconHeight})
	}
	return icons
}

// IconAt returns the app whose launcher covers cell x, y.
func (d *Desktop) IconAt(x, y int) (desktop.Application, bool) {
	for _, icon := range d.Icons() {
		if x >= icon.X && x < icon.X+iconWidth && y >= icon.Y && y < icon.Y+iconHeight-1 {
			return icon.Descriptor.App, true
		}
	}
	return "", false
}
