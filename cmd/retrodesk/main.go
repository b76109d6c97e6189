// Package main implements retrodesk, a retro desktop that runs in the
// terminal: draggable, resizable windows, desktop icons and a taskbar,
// locally or over SSH.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode bool
	themeName string
	asciiOnly bool
)

func main() {
	var recordPath string

	rootCmd := &cobra.Command{
		Use:   "retrodesk",
		Short: "A retro desktop in your terminal",
		Long: `retrodesk - a retro desktop in your terminal

Double-click desktop icons to open windows, drag them by the title bar,
resize them from the corner, and switch between them from the taskbar.`,
		Example: `  # Run the desktop
  retrodesk

  # Run with debug logging
  retrodesk --debug

  # Record the session as a tape script
  retrodesk --record session.tape

  # Serve the desktop over SSH
  retrodesk ssh --port 2222

  # Replay a tape script headlessly
  retrodesk play session.tape`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocal(recordPath)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Theme name (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&asciiOnly, "ascii", false, "Use ASCII glyphs only (overrides config)")
	rootCmd.Flags().StringVar(&recordPath, "record", "", "Write the session to a tape script on exit")

	// SSH command variables
	var sshPort, sshHost, sshKeyPath string

	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Serve retrodesk over SSH",
		Long: `Serve retrodesk over SSH

Every connection gets its own desktop. The server generates a host key
automatically if none is given.`,
		Example: `  # Start SSH server on default port
  retrodesk ssh

  # Start on custom port
  retrodesk ssh --port 2222

  # Specify custom host key
  retrodesk ssh --key-path /path/to/host_key`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSSHServer(sshHost, sshPort, sshKeyPath)
		},
	}

	sshCmd.Flags().StringVar(&sshPort, "port", "2222", "SSH server port")
	sshCmd.Flags().StringVar(&sshHost, "host", "localhost", "SSH server host")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to SSH host key (auto-generated if not specified)")

	// Play command variables
	var playWidth, playHeight float64

	playCmd := &cobra.Command{
		Use:   "play FILE",
		Short: "Replay a tape script headlessly",
		Long: `Replay a tape script against a fresh desktop and print the final state

The viewport defaults to the size of the current terminal, or to --width and
--height. A script that starts with a Viewport command, as every recording
does, is played at that size from the start. Exits non-zero when any command
or expectation fails.`,
		Example: `  # Replay a recording
  retrodesk play session.tape

  # Replay at a fixed pixel size
  retrodesk play --width 1000 --height 800 scenario.tape`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return playTape(cmd.Context(), args[0], playWidth, playHeight)
		},
	}

	playCmd.Flags().Float64Var(&playWidth, "width", 0, "Viewport width in pixels")
	playCmd.Flags().Float64Var(&playHeight, "height", 0, "Viewport height in pixels")

	appsCmd := &cobra.Command{
		Use:   "apps",
		Short: "List the desktop applications",
		Long:  `List every application with its default window geometry`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listApps()
		},
	}

	// Config command group
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage retrodesk configuration",
		Long:  `Manage the retrodesk configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		Long:  `Print the path to the retrodesk configuration file`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the retrodesk configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return editConfigFile()
		},
	}

	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the retrodesk configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return resetConfigToDefaults()
		},
	}

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)

	// Keybinds command group
	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "View keybinding configuration",
		Long:    `View and inspect retrodesk keybinding configuration`,
	}

	keybindsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all keybindings",
		Long:  `Display all configured keybindings in a formatted table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listKeybindings()
		},
	}

	keybindsCustomCmd := &cobra.Command{
		Use:   "list-custom",
		Short: "List customized keybindings",
		Long: `Display only keybindings that differ from defaults

Shows a comparison of default and custom keybindings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listCustomKeybindings()
		},
	}

	keybindsCmd.AddCommand(keybindsListCmd, keybindsCustomCmd)

	rootCmd.AddCommand(sshCmd, playCmd, appsCmd, configCmd, keybindsCmd)

	// Execute with fang
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
