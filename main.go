package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"dungeonescape/pkg/engine/terminal"
	"dungeonescape/pkg/game/config"
	"dungeonescape/pkg/game/events"
	"dungeonescape/pkg/game/gameplay"
	"dungeonescape/pkg/game/items"
	"dungeonescape/pkg/game/locale"
	"dungeonescape/pkg/game/logger"
	"dungeonescape/pkg/game/renderer/tui"
	"dungeonescape/pkg/game/telemetry"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = logger.DefaultVersion

func main() {
	if err := run(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		slog.Error("Startup failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}

	log := initLogger(cfg)

	if err := locale.Configure(cfg.Lang); err != nil {
		return fmt.Errorf("failed to load messages: %w", err)
	}

	ctx := context.Background()

	tracer := telemetry.NoopTracer()
	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Setup(ctx, version)
		if err != nil {
			log.Warn("Telemetry disabled", "error", err)
		} else {
			defer func() {
				sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(sctx); err != nil {
					log.Warn("Telemetry shutdown failed", "error", err)
				}
			}()
			tracer = telemetry.Tracer("gameplay")
		}
	}

	g, err := gameplay.BuildGame()
	if err != nil {
		return err
	}

	plain := cfg.NoColor || !terminal.StdoutIsTerminal()
	r := tui.New(os.Stdout, plain)
	r.Init()

	session := gameplay.NewSession(g, r, os.Stdin, events.NewSeededGenerator(cfg.Seed),
		gameplay.WithItems(items.DefaultTable()),
		gameplay.WithLogger(log),
		gameplay.WithTracer(tracer),
	)

	log.Debug("Starting game",
		"session_id", session.ID,
		"seed", cfg.Seed,
		"plain", plain,
		"interactive", terminal.IsInteractive())

	session.Run(ctx)

	return nil
}

// initLogger installs the default logger; logs go to stderr so they never mix with the game text
func initLogger(cfg *config.Config) *slog.Logger {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		version,
		cfg.Environment,
		cfg.IsDevelopment(),
	)

	return logger.Init(loggerConfig, os.Stderr)
}
