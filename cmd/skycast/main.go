package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"skycast/internal/config"
	"skycast/internal/logging"
	"skycast/internal/ui"
	"skycast/internal/weatherapi"
)

func main() {
	// Parse command line arguments
	flags := pflag.NewFlagSet("skycast", pflag.ExitOnError)
	config.RegisterFlags(flags)
	_ = flags.Parse(os.Args[1:])

	// Load configuration
	configSvc := config.NewConfigService(flags)
	cfg, loadErr := configSvc.Load()
	if loadErr != nil {
		cfg = config.DefaultConfig()
	}

	// Set up logging
	logger, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		logger = logging.Nop()
	}
	defer func() { _ = logger.Sync() }()

	if loadErr != nil {
		logger.Warnw("error loading config, using defaults", "path", configSvc.Path(), "error", loadErr)
	} else {
		ensureConfigFile(configSvc, logger)
	}

	if cfg.API.Key == "" {
		logger.Warnw("no API key configured, requests will be rejected",
			"env", config.EnvPrefix+"_API_KEY")
	}

	client := weatherapi.NewClient(cfg.API.BaseURL, cfg.API.Key, cfg.API.Timeout, logger)
	model := ui.NewModel(client, client, ui.Options{
		DefaultLocation: cfg.Forecast.DefaultLocation,
		Debounce:        cfg.Search.Debounce,
		RequestTimeout:  cfg.API.Timeout,
		ShowHelp:        cfg.UISettings.ShowHelp,
	}, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Infow("received signal, shutting down")
		p.Quit()
	}()

	logger.Infow("starting UI", "config", configSvc.Path(), "api", cfg.API.BaseURL)
	if _, err := p.Run(); err != nil {
		logger.Errorw("error running program", "error", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	logger.Infow("UI exited normally")
}

// ensureConfigFile writes a default config on first run so the user has a
// file to edit
func ensureConfigFile(configSvc config.ConfigService, logger *zap.SugaredLogger) {
	created, err := configSvc.EnsureFile()
	if err != nil {
		logger.Warnw("failed to save config", "path", configSvc.Path(), "error", err)
		return
	}
	if created {
		logger.Infow("created config", "path", configSvc.Path())
	}
}
