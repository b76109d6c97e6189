package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/retrodesk/internal/app"
	"github.com/Gaurav-Gosain/retrodesk/internal/config"
	"github.com/Gaurav-Gosain/retrodesk/internal/input"
	"github.com/Gaurav-Gosain/retrodesk/internal/logging"
	"github.com/Gaurav-Gosain/retrodesk/internal/server"
	"github.com/Gaurav-Gosain/retrodesk/internal/tape"
	"github.com/Gaurav-Gosain/retrodesk/internal/theme"
	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// Fallback terminal size when stdout is not a terminal.
const (
	defaultCols = 100
	defaultRows = 40
)

// loadConfig loads the user config, falls back to defaults on error, and
// applies the command line overrides.
func loadConfig(logger *log.Logger) *config.UserConfig {
	cfg, err := config.LoadUserConfig()
	if err != nil {
		logger.Warn("failed to load config, using defaults", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: failed to load config, using defaults: %v\n", err)
		cfg = config.DefaultConfig()
	}
	if themeName != "" {
		cfg.Appearance.Theme = themeName
	}
	if asciiOnly {
		cfg.Appearance.ASCIIOnly = true
	}
	return cfg
}

func terminalSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return defaultCols, defaultRows
	}
	return w, h
}

func runLocal(recordPath string) error {
	logger, closer, err := logging.OpenFile("retrodesk", debugMode)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	if debugMode {
		if path, err := logging.Path(); err == nil {
			fmt.Printf("Debug log: %s\n", path)
		}
	}

	userConfig := loadConfig(logger)
	if err := theme.Initialize(userConfig.Appearance.Theme); err != nil {
		logger.Warn("theme", "err", err)
	}

	app.SetInputHandler(input.HandleInput)

	opts := []app.Option{
		app.WithLogger(logger),
		app.WithDoubleClick(input.NewDoubleClick(userConfig.DoubleClick())),
	}
	var recorder *tape.Recorder
	if recordPath != "" {
		recorder = tape.NewRecorder()
		opts = append(opts, app.WithRecorder(recorder))
	}

	cols, rows := terminalSize()
	desk := app.New(userConfig, cols, rows, opts...)

	p := tea.NewProgram(
		desk,
		tea.WithoutSignalHandler(),
		tea.WithFilter(app.MotionFilter),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if configPath, err := config.GetConfigPath(); err == nil {
		logger.Debug("watching config", "path", configPath)
		err := config.Watch(ctx, configPath, func(cfg *config.UserConfig, err error) {
			p.Send(app.ConfigReloadMsg{Config: cfg, Err: err})
		})
		if err != nil {
			logger.Warn("config watcher disabled", "err", err)
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			p.Send(tea.QuitMsg{})
		case <-ctx.Done():
		}
	}()

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("program error: %w", err)
	}

	if recorder != nil {
		final, ok := finalModel.(*app.Desktop)
		if !ok {
			final = desk
		}
		recorder.Stop(final.Shell)
		if err := recorder.WriteToFile(recordPath, "recorded by retrodesk "+version); err != nil {
			return err
		}
		fmt.Printf("Recorded %d commands to %s\n", recorder.CommandCount(), recordPath)
	}
	return nil
}

func runSSHServer(sshHost, sshPort, sshKeyPath string) error {
	level := log.InfoLevel
	if debugMode {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "retrodesk",
		Level:           level,
	})

	userConfig := loadConfig(logger)
	if err := theme.Initialize(userConfig.Appearance.Theme); err != nil {
		logger.Warn("theme", "err", err)
	}

	app.SetInputHandler(input.HandleInput)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(c)
	go func() {
		select {
		case <-c:
			logger.Info("shutting down SSH server")
			cancel()
		case <-ctx.Done():
		}
	}()

	err := server.StartSSHServer(ctx, &server.SSHServerConfig{
		Host:    sshHost,
		Port:    sshPort,
		KeyPath: sshKeyPath,
		Config:  userConfig,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("SSH server error: %w", err)
	}
	return nil
}
