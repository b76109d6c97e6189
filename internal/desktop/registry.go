package desktop

import (
	"github.com/Gaurav-Gosain/retrodesk/internal/content"
	"github.com/Gaurav-Gosain/retrodesk/internal/geometry"
)

// Descriptor is the static description of an application window.
type Descriptor struct {
	App   Application
	Title string
	Icon  string
	// ASCIIIcon replaces Icon when the terminal cannot draw symbols.
	ASCIIIcon   string
	Geometry    geometry.Spec
	Resizable   bool
	DesktopIcon bool
	NewContent  func() content.Content
}

// Registry maps every Application to its Descriptor.
type Registry struct {
	order       []Application
	descriptors map[Application]Descriptor
}

// NewRegistry builds a registry from descriptors, keeping their order.
func NewRegistry(descs ...Descriptor) *Registry {
	r := &Registry{descriptors: make(map[Application]Descriptor, len(descs))}
	for _, d := range descs {
		if _, dup := r.descriptors[d.App]; !dup {
			r.order = append(r.order, d.App)
		}
		r.descriptors[d.App] = d
	}
	return r
}

// Lookup returns the descriptor for app.
func (r *Registry) Lookup(app Application) (Descriptor, bool) {
	d, ok := r.descriptors[app]
	return d, ok
}

// Descriptors returns all descriptors in registration order.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, app := range r.order {
		out = append(out, r.descriptors[app])
	}
	return out
}

// DesktopIcons returns the descriptors that get a desktop launch icon.
func (r *Registry) DesktopIcons() []Descriptor {
	var out []Descriptor
	for _, d := range r.Descriptors() {
		if d.DesktopIcon {
			out = append(out, d)
		}
	}
	return out
}

func fixed(left, top, width, height float64) geometry.Spec {
	return geometry.Spec{
		Default:   geometry.Rect{Left: left, Top: top, Width: width, Height: height},
		MinWidth:  width,
		MinHeight: height,
	}
}

// DefaultRegistry returns the built-in application table.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Descriptor{
			App: Welcome, Title: "Welcome", Icon: "✉", ASCIIIcon: "W",
			Geometry:    fixed(525, 250, 475, 225),
			DesktopIcon: true,
			NewContent:  content.NewWelcome,
		},
		Descriptor{
			App: AboutMe, Title: "About Me", Icon: "☺", ASCIIIcon: "A",
			Geometry:    fixed(100, 100, 700, 210),
			DesktopIcon: true,
			NewContent:  content.NewAboutMe,
		},
		Descriptor{
			App: Projects, Title: "Projects", Icon: "▤", ASCIIIcon: "P",
			Geometry: geometry.Spec{
				Default:   geometry.Rect{Left: 400, Top: 100, Width: 700, Height: 500},
				MinWidth:  350,
				MinHeight: 250,
			},
			Resizable:   true,
			DesktopIcon: true,
			NewContent:  func() content.Content { return content.NewProjects() },
		},
		Descriptor{
			App: Connect, Title: "Connect", Icon: "☏", ASCIIIcon: "C",
			Geometry:    fixed(300, 100, 300, 200),
			DesktopIcon: true,
			NewContent:  content.NewConnect,
		},
		Descriptor{
			App: Blog, Title: "Blog", Icon: "✎", ASCIIIcon: "B",
			Geometry:    fixed(275, 300, 400, 200),
			DesktopIcon: true,
			NewContent:  content.NewBlog,
		},
		Descriptor{
			App: Paint, Title: "Paint", Icon: "✐", ASCIIIcon: "~",
			Geometry: geometry.Spec{
				Default:   geometry.Rect{Left: 275, Top: 300, Width: 820, Height: 740},
				MinWidth:  820,
				MinHeight: 650,
			},
			Resizable:  true,
			NewContent: func() content.Content { return content.NewPaint() },
		},
	)
}
