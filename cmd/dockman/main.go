package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flycatch/DockerManager/internal/adapters/docker"
	"github.com/flycatch/DockerManager/internal/adapters/tui"
	"github.com/flycatch/DockerManager/internal/config"
	"github.com/flycatch/DockerManager/internal/core/reconcile"
	"github.com/flycatch/DockerManager/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "dockman:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to config file (TOML)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	logger, logCloser, err := logging.Init(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	// Infrastructure: the Docker adapter serves as snapshot provider and
	// as the container/project control service.
	dockerAdapter, err := docker.NewAdapter(
		docker.WithHost(cfg.DockerHost),
		docker.WithStopTimeout(time.Duration(cfg.StopTimeoutSeconds)*time.Second),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize Docker adapter: %w", err)
	}

	// The poll loop owns the world snapshot; the UI only ever sees the
	// mutation stream it publishes.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	poller := reconcile.NewPoller(
		dockerAdapter,
		time.Duration(cfg.PollIntervalSeconds)*time.Second,
		time.Duration(cfg.FetchTimeoutSeconds)*time.Second,
		logger,
	)
	events := poller.Run(ctx)

	model := tui.New(events, dockerAdapter, dockerAdapter, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info().
		Int("poll_interval_seconds", cfg.PollIntervalSeconds).
		Msg("starting dockman")

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("ui terminated: %w", err)
	}
	return nil
}
