package config

import (
	"slices"
	"sort"
	"strings"
)

// KeybindRegistry resolves keys to actions and back.
type KeybindRegistry struct {
	actions    map[string][]string
	keyToAct   map[string]string
	normalizer *KeyNormalizer
}

// NewKeybindRegistry indexes cfg's keybindings.
func NewKeybindRegistry(cfg *UserConfig) *KeybindRegistry {
	r := &KeybindRegistry{
		actions:    make(map[string][]string, len(cfg.Keybindings)),
		keyToAct:   make(map[string]string),
		normalizer: NewKeyNormalizer(),
	}
	for action, keys := range cfg.Keybindings {
		r.actions[action] = slices.Clone(keys)
		for _, key := range keys {
			for _, variant := range r.normalizer.NormalizeKey(key) {
				r.keyToAct[variant] = action
			}
		}
	}
	return r
}

// GetKeys returns the keys bound to action.
func (r *KeybindRegistry) GetKeys(action string) []string {
	return r.actions[action]
}

// GetAction returns the action bound to key, or "".
func (r *KeybindRegistry) GetAction(key string) string {
	return r.keyToAct[r.normalizer.Canonical(key)]
}

// GetKeysForDisplay formats the keys bound to action for help text.
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	keys := r.GetKeys(action)
	display := make([]string, len(keys))
	for i, k := range keys {
		display[i] = displayKey(k)
	}
	return strings.Join(display, ", ")
}

// Actions returns the bound actions in sorted order.
func (r *KeybindRegistry) Actions() []string {
	out := make([]string, 0, len(r.actions))
	for action := range r.actions {
		out = append(out, action)
	}
	sort.Strings(out)
	return out
}

func displayKey(key string) string {
	parts := strings.Split(key, "+")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, "+")
}

// KeyNormalizer maps the many spellings of a key to the names bubbletea
// reports.
type KeyNormalizer struct {
	aliases map[string]string
}

// NewKeyNormalizer returns a normalizer with the common aliases.
func NewKeyNormalizer() *KeyNormalizer {
	return &KeyNormalizer{
		aliases: map[string]string{
			"return":   "enter",
			"escape":   "esc",
			"control":  "ctrl",
			"option":   "alt",
			"opt":      "alt",
			"meta":     "alt",
			"del":      "delete",
			"spacebar": "space",
		},
	}
}

var modifierOrder = []string{"ctrl", "alt", "shift", "super", "hyper"}

// Canonical lowercases key, resolves aliases and orders modifiers.
func (n *KeyNormalizer) Canonical(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return ""
	}
	parts := strings.Split(key, "+")
	// "ctrl++" binds the plus key.
	if strings.HasSuffix(key, "++") {
		parts = append(parts[:len(parts)-2], "+")
	}
	base := parts[len(parts)-1]
	if a, ok := n.aliases[base]; ok {
		base = a
	}
	mods := map[string]bool{}
	for _, m := range parts[:len(parts)-1] {
		if a, ok := n.aliases[m]; ok {
			m = a
		}
		mods[m] = true
	}
	var out []string
	for _, m := range modifierOrder {
		if mods[m] {
			out = append(out, m)
			delete(mods, m)
		}
	}
	// Unknown modifiers are kept so ValidateKey can reject them.
	unknown := make([]string, 0, len(mods))
	for m := range mods {
		unknown = append(unknown, m)
	}
	sort.Strings(unknown)
	out = append(out, unknown...)
	return strings.Join(append(out, base), "+")
}

// NormalizeKey returns key as written (lowercased) plus its canonical form.
func (n *KeyNormalizer) NormalizeKey(key string) []string {
	lower := strings.ToLower(strings.TrimSpace(key))
	if lower == "" {
		return nil
	}
	canonical := n.Canonical(key)
	if canonical == lower {
		return []string{lower}
	}
	return []string{lower, canonical}
}

// ValidateKey reports whether key can be bound, with a reason when not.
func (n *KeyNormalizer) ValidateKey(key string) (bool, string) {
	canonical := n.Canonical(key)
	if canonical == "" {
		return false, "empty key"
	}
	parts := strings.Split(canonical, "+")
	if strings.HasSuffix(canonical, "++") {
		parts = append(parts[:len(parts)-2], "+")
	}
	for _, m := range parts[:len(parts)-1] {
		if !slices.Contains(modifierOrder, m) {
			return false, "unknown modifier " + m + " in " + key
		}
	}
	if parts[len(parts)-1] == "" {
		return false, "missing key after modifier in " + key
	}
	return true, ""
}
