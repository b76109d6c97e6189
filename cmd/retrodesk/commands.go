package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/Gaurav-Gosain/retrodesk/internal/config"
	"github.com/Gaurav-Gosain/retrodesk/internal/desktop"
	"github.com/Gaurav-Gosain/retrodesk/internal/geometry"
	"github.com/Gaurav-Gosain/retrodesk/internal/logging"
	"github.com/Gaurav-Gosain/retrodesk/internal/shell"
	"github.com/Gaurav-Gosain/retrodesk/internal/tape"
	"github.com/Gaurav-Gosain/retrodesk/internal/theme"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/term"
)

// Viewport used by play when stdout is not a terminal.
const (
	playDefaultWidth  = 1000
	playDefaultHeight = 800
)

func newTable(headers ...string) *table.Table {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.CLITableHeader()).
		Padding(0, 1)

	cellStyle := lipgloss.NewStyle().
		Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.CLITableDim())).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func title(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(theme.CLITableBorder()).Render(s)
}

func dim(s string) string {
	return lipgloss.NewStyle().Foreground(theme.CLITableDim()).Render(s)
}

func formatNumber(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

// playViewport picks the pixel viewport for a headless replay.
func playViewport(cfg *config.UserConfig, width, height float64) geometry.Size {
	size := geometry.Size{Width: playDefaultWidth, Height: playDefaultHeight}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		size = geometry.Size{
			Width:  float64(w) * cfg.Layout.CellWidth,
			Height: float64(h) * cfg.Layout.CellHeight,
		}
	}
	if width > 0 {
		size.Width = width
	}
	if height > 0 {
		size.Height = height
	}
	return size
}

// playTape replays a tape script against a fresh desktop and prints the
// resulting state.
func playTape(ctx context.Context, path string, width, height float64) error {
	logger, closer, err := logging.OpenFile("play", debugMode)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	commands, err := tape.ParseFile(path)
	if err != nil {
		return err
	}

	cfg := loadConfig(logger)
	viewport := playViewport(cfg, width, height)
	if start, ok := tape.StartViewport(commands); ok {
		viewport = start
	}
	env := geometry.Env{
		Viewport:         viewport,
		TaskbarHeight:    cfg.Layout.TaskbarHeight,
		MobileBreakpoint: cfg.Layout.MobileBreakpoint,
	}
	s := shell.New(env, desktop.DefaultRegistry(),
		shell.WithLogger(logger),
		shell.WithMetrics(shell.Metrics{CellWidth: cfg.Layout.CellWidth, CellHeight: cfg.Layout.CellHeight}),
		shell.WithThumbHeight(cfg.Layout.ScrollbarThumb),
	)

	if ctx == nil {
		ctx = context.Background()
	}
	player := tape.NewPlayer(commands, logger)
	runErr := player.Run(ctx, s)

	printState(s.Snapshot())

	if runErr != nil {
		var merr *multierror.Error
		if errors.As(runErr, &merr) {
			fmt.Println(title(fmt.Sprintf("%d failure(s)", len(merr.Errors))))
			for _, e := range merr.Errors {
				fmt.Println("  " + e.Error())
			}
			fmt.Println()
		}
		return fmt.Errorf("%s: replay failed", path)
	}

	fmt.Println(dim(fmt.Sprintf("%d commands replayed", player.TotalCommands())))
	return nil
}

func printState(st shell.State) {
	fmt.Println()
	fmt.Println(title(fmt.Sprintf("Desktop %sx%s",
		formatNumber(st.Viewport.Width), formatNumber(st.Viewport.Height))))
	fmt.Println()

	t := newTable("App", "Left", "Top", "Width", "Height", "State", "Scroll")
	for _, f := range st.Frames {
		state := ""
		if f.Maximized {
			state = "maximized"
		}
		if f.App == st.Focused {
			state = strings.TrimSpace("focused " + state)
		}
		scroll := "-"
		if f.Overflowing {
			scroll = formatNumber(f.ScrollTop)
		}
		t.Row(f.App.String(),
			formatNumber(f.Rect.Left), formatNumber(f.Rect.Top),
			formatNumber(f.Rect.Width), formatNumber(f.Rect.Height),
			state, scroll)
	}
	fmt.Println(t.Render())

	var minimized []string
	for _, app := range st.Running {
		if !slices.Contains(st.Open, app) {
			minimized = append(minimized, app.String())
		}
	}
	if len(minimized) > 0 {
		fmt.Println(dim("Minimized: " + strings.Join(minimized, ", ")))
	}
	fmt.Println()
}

// listApps prints the application table.
func listApps() error {
	t := newTable("Name", "Title", "Left", "Top", "Width", "Height", "Resizable", "Icon")
	for _, d := range desktop.DefaultRegistry().Descriptors() {
		r := d.Geometry.Default
		resizable := "no"
		if d.Resizable {
			resizable = fmt.Sprintf("min %sx%s", formatNumber(d.Geometry.MinWidth), formatNumber(d.Geometry.MinHeight))
		}
		icon := "-"
		if d.DesktopIcon {
			icon = d.Icon
		}
		t.Row(d.App.String(), d.Title,
			formatNumber(r.Left), formatNumber(r.Top),
			formatNumber(r.Width), formatNumber(r.Height),
			resizable, icon)
	}

	fmt.Println()
	fmt.Println(title("Applications"))
	fmt.Println()
	fmt.Println(t.Render())
	fmt.Println()
	return nil
}

// printConfigPath prints the config file path
func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

// editConfigFile opens the config file in $EDITOR
func editConfigFile() error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	// LoadUserConfig writes the defaults when the file is missing.
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("Config file doesn't exist, creating default at: %s\n", configPath)
		if _, err := config.LoadUserConfig(); err != nil {
			return fmt.Errorf("could not create config file: %w", err)
		}
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		for _, e := range []string{"vim", "vi", "nano", "emacs"} {
			if _, err := exec.LookPath(e); err == nil {
				editor = e
				break
			}
		}
	}
	if editor == "" {
		return fmt.Errorf("no editor found. Please set $EDITOR environment variable")
	}

	cmd := exec.Command(editor, configPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// resetConfigToDefaults resets the configuration file to default settings
func resetConfigToDefaults() error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Warning: This will overwrite your existing configuration at:\n")
		fmt.Printf("  %s\n\n", configPath)
		fmt.Printf("Are you sure you want to reset to defaults? (yes/no): ")

		var response string
		_, _ = fmt.Scanln(&response)
		response = strings.ToLower(strings.TrimSpace(response))

		if response != "yes" && response != "y" {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	if err := config.Save(configPath, config.DefaultConfig()); err != nil {
		return err
	}

	fmt.Printf("Configuration reset to defaults\n")
	fmt.Printf("  Location: %s\n", configPath)
	fmt.Println("\nYou can customize it with: retrodesk config edit")
	return nil
}

// listKeybindings prints all configured keybindings in a pretty table
func listKeybindings() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		fmt.Fprintln(os.Stderr, "Using default keybindings...")
		userConfig = config.DefaultConfig()
	}

	fmt.Println()
	fmt.Println(title("retrodesk Keybindings"))
	fmt.Println()

	for _, section := range config.GetKeybindings(config.NewKeybindRegistry(userConfig)) {
		t := newTable("Keys", "Action")
		for _, b := range section.Bindings {
			t.Row(b.Key, b.Description)
		}
		fmt.Println(lipgloss.NewStyle().Bold(true).Foreground(theme.CLITableKey()).Render(section.Title))
		fmt.Println(t.Render())
		fmt.Println()
	}

	fmt.Println(lipgloss.NewStyle().
		Foreground(theme.CLITableDim()).
		Italic(true).
		Render("Mouse: double-click icons to open, drag title bars to move, drag the corner to resize."))
	fmt.Println()
	return nil
}

// Customization represents a customized keybinding
type Customization struct {
	Action      string
	DefaultKeys string
	CustomKeys  string
}

// listCustomKeybindings shows only the keybindings that differ from defaults
func listCustomKeybindings() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	customizations := findCustomizations(userConfig.Keybindings, config.DefaultKeybindings())
	if len(customizations) == 0 {
		fmt.Println(dim("No custom keybindings configured. All keybindings are using defaults."))
		fmt.Println()
		fmt.Println("Run 'retrodesk keybinds list' to see all keybindings.")
		return nil
	}

	t := newTable("Action", "Default", "Custom")
	for _, c := range customizations {
		t.Row(c.Action, c.DefaultKeys, c.CustomKeys)
	}

	fmt.Println()
	fmt.Println(title("Custom Keybindings"))
	fmt.Println()
	fmt.Println(t.Render())
	fmt.Println()
	fmt.Println(lipgloss.NewStyle().
		Foreground(theme.CLITableKey()).
		Render(fmt.Sprintf("Found %d customized keybinding(s)", len(customizations))))
	fmt.Println()
	return nil
}

// findCustomizations lists the actions whose keys differ from the defaults,
// sorted by action.
func findCustomizations(user, defaults map[string][]string) []Customization {
	var out []Customization
	for action, defaultKeys := range defaults {
		userKeys, ok := user[action]
		if !ok || slices.Equal(userKeys, defaultKeys) {
			continue
		}
		out = append(out, Customization{
			Action:      formatActionName(action),
			DefaultKeys: strings.Join(defaultKeys, ", "),
			CustomKeys:  strings.Join(userKeys, ", "),
		})
	}
	slices.SortFunc(out, func(a, b Customization) int { return strings.Compare(a.Action, b.Action) })
	return out
}

// formatActionName formats an action name for display
func formatActionName(action string) string {
	if desc, ok := config.ActionDescriptions[action]; ok {
		return desc
	}
	return strings.ReplaceAll(action, "_", " ")
}
