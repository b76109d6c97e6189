package config

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
)

// Validate reports every problem in the config at once.
func (c *UserConfig) Validate() error {
	var result *multierror.Error

	positive := []struct {
		name  string
		value float64
	}{
		{"layout.cell_width", c.Layout.CellWidth},
		{"layout.cell_height", c.Layout.CellHeight},
		{"layout.scrollbar_thumb", c.Layout.ScrollbarThumb},
	}
	for _, p := range positive {
		if p.value <= 0 {
			result = multierror.Append(result, fmt.Errorf("%s must be positive, got %v", p.name, p.value))
		}
	}
	if c.Layout.TaskbarHeight < 0 {
		result = multierror.Append(result, fmt.Errorf("layout.taskbar_height must not be negative, got %v", c.Layout.TaskbarHeight))
	}
	if c.Layout.MobileBreakpoint < 0 {
		result = multierror.Append(result, fmt.Errorf("layout.mobile_breakpoint must not be negative, got %v", c.Layout.MobileBreakpoint))
	}
	if c.Behavior.DoubleClickMS <= 0 {
		result = multierror.Append(result, fmt.Errorf("behavior.double_click_ms must be positive, got %d", c.Behavior.DoubleClickMS))
	}

	normalizer := NewKeyNormalizer()
	owner := map[string]string{}
	actions := make([]string, 0, len(c.Keybindings))
	for action := range c.Keybindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	for _, action := range actions {
		if _, ok := ActionDescriptions[action]; !ok {
			result = multierror.Append(result, fmt.Errorf("keybindings: unknown action %q", action))
			continue
		}
		for _, key := range c.Keybindings[action] {
			if ok, reason := normalizer.ValidateKey(key); !ok {
				result = multierror.Append(result, fmt.Errorf("keybindings.%s: %s", action, reason))
				continue
			}
			canonical := normalizer.Canonical(key)
			if prev, dup := owner[canonical]; dup && prev != action {
				result = multierror.Append(result, fmt.Errorf("keybindings: %q bound to both %s and %s", key, prev, action))
				continue
			}
			owner[canonical] = action
		}
	}

	return result.ErrorOrNil()
}
