// Package config loads and validates the retrodesk configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// UserConfig is the on-disk configuration.
type UserConfig struct {
	Layout      LayoutConfig        `toml:"layout"`
	Appearance  AppearanceConfig    `toml:"appearance"`
	Behavior    BehaviorConfig      `toml:"behavior"`
	Keybindings map[string][]string `toml:"keybindings"`
}

// LayoutConfig maps terminal cells to the pixel model windows are laid out in.
type LayoutConfig struct {
	CellWidth        float64 `toml:"cell_width"`
	CellHeight       float64 `toml:"cell_height"`
	TaskbarHeight    float64 `toml:"taskbar_height"`
	MobileBreakpoint float64 `toml:"mobile_breakpoint"`
	ScrollbarThumb   float64 `toml:"scrollbar_thumb"`
}

type AppearanceConfig struct {
	Theme     string `toml:"theme"`
	ASCIIOnly bool   `toml:"ascii_only"`
	ShowClock bool   `toml:"show_clock"`
}

type BehaviorConfig struct {
	DoubleClickMS int `toml:"double_click_ms"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Layout: LayoutConfig{
			CellWidth:        10,
			CellHeight:       20,
			TaskbarHeight:    40,
			MobileBreakpoint: 768,
			ScrollbarThumb:   48,
		},
		Appearance: AppearanceConfig{
			ShowClock: true,
		},
		Behavior: BehaviorConfig{
			DoubleClickMS: 300,
		},
		Keybindings: DefaultKeybindings(),
	}
}

// DefaultKeybindings returns the default action to keys table.
func DefaultKeybindings() map[string][]string {
	return map[string][]string{
		"quit":        {"ctrl+c", "ctrl+q"},
		"toggle_help": {"f1"},
	}
}

// ActionDescriptions describes every bindable action.
var ActionDescriptions = map[string]string{
	"quit":        "Quit",
	"toggle_help": "Show or hide this help",
}

// DoubleClick returns the double-click window.
func (c *UserConfig) DoubleClick() time.Duration {
	return time.Duration(c.Behavior.DoubleClickMS) * time.Millisecond
}

// GetConfigPath returns the config file location, creating its directory.
func GetConfigPath() (string, error) {
	path, err := xdg.ConfigFile(filepath.Join("retrodesk", "config.toml"))
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return path, nil
}

// LoadUserConfig loads the config from its default location. A default file
// is written on first use.
func LoadUserConfig() (*UserConfig, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		if err := Save(path, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return Load(path)
}

// Load reads path over the defaults, so omitted keys keep their default
// values, and validates the result.
func Load(path string) (*UserConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (*UserConfig, error) {
	cfg := DefaultConfig()
	userKeys := map[string][]string{}
	cfg.Keybindings = userKeys
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.Keybindings = mergeKeybindings(DefaultKeybindings(), cfg.Keybindings)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func mergeKeybindings(defaults, user map[string][]string) map[string][]string {
	for action, keys := range user {
		defaults[action] = keys
	}
	return defaults
}

// Save writes cfg to path with a short header.
func Save(path string, cfg *UserConfig) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# retrodesk configuration\n")
	sb.WriteString("#\n")
	sb.WriteString("# [layout] sizes are in pixels; one terminal cell is cell_width x cell_height.\n")
	sb.WriteString("# [keybindings] maps an action to one or more keys.\n\n")
	sb.Write(data)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
