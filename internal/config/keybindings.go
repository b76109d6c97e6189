package config

// Keybinding represents a single keybinding entry
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection represents a section of related keybindings
type KeybindingSection struct {
	Title    string
	Bindings []Keybinding
}

// GetKeybindings returns all keybinding sections for help output.
// If registry is nil, the defaults are shown.
func GetKeybindings(registry *KeybindRegistry) []KeybindingSection {
	if registry == nil {
		registry = NewKeybindRegistry(DefaultConfig())
	}

	system := KeybindingSection{Title: "SYSTEM"}
	addBinding(&system, registry, "toggle_help")
	addBinding(&system, registry, "quit")

	var sections []KeybindingSection
	for _, s := range []KeybindingSection{system} {
		if len(s.Bindings) > 0 {
			sections = append(sections, s)
		}
	}
	return append(sections, getStaticHelpSections()...)
}

// addBinding adds a keybinding to a section if the action has keys configured
func addBinding(section *KeybindingSection, registry *KeybindRegistry, action string) {
	keys := registry.GetKeysForDisplay(action)
	if keys == "" {
		return
	}
	section.Bindings = append(section.Bindings, Keybinding{
		Key:         keys,
		Description: ActionDescriptions[action],
	})
}

// getStaticHelpSections returns the mouse and per-window bindings, which are
// not configurable.
func getStaticHelpSections() []KeybindingSection {
	return []KeybindingSection{
		{
			Title: "MOUSE",
			Bindings: []Keybinding{
				{"Double-click icon", "Open application"},
				{"Click taskbar button", "Open or focus application"},
				{"Title bar buttons", "Minimize, maximize or close"},
				{"Drag title bar", "Move window"},
				{"Drag corner", "Resize window (Projects, Paint)"},
				{"Drag scrollbar thumb", "Scroll content"},
				{"Wheel", "Scroll content"},
			},
		},
		{
			Title: "PROJECTS",
			Bindings: []Keybinding{
				{"f, p, r, a", "Show project panel"},
			},
		},
		{
			Title: "PAINT",
			Bindings: []Keybinding{
				{"e", "Toggle eraser"},
				{"c", "Clear canvas"},
			},
		},
	}
}
