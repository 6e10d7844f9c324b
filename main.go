// vecerka runs the corner shop in the local terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"os/user"

	"vecerka/internal/config"
	"vecerka/internal/game"
	"vecerka/internal/telemetry"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to a YAML config file")
	logPath := flag.String("log", "", "Write logs to this file instead of discarding them")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// The terminal belongs to the game; logs go to a file or the log panel.
	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := telemetry.ConfigureSlog(logOut, cfg.Log.Level, cfg.Log.Format)

	shutdownMetrics, err := telemetry.InitMetrics(telemetry.MetricsConfig{
		Enabled:  cfg.Metrics.Enabled,
		Interval: cfg.Metrics.Interval,
	})
	if err != nil {
		return err
	}
	defer shutdownMetrics(context.Background()) //nolint:errcheck
	metrics, err := telemetry.NewMetrics()
	if err != nil {
		return err
	}
	catalog, err := game.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		return err
	}

	name := "shopper"
	if u, err := user.Current(); err == nil {
		name = u.Username
	}
	sess, err := game.NewSession(game.Options{
		Config:  cfg,
		Catalog: catalog,
		Metrics: metrics,
		Logger:  logger,
		Name:    name,
	})
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := game.New(screen, sess, 0).Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
