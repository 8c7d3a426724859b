package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/belphemur/english-calendar/internal/clock"
	"github.com/belphemur/english-calendar/internal/config"
	"github.com/belphemur/english-calendar/internal/constants"
	"github.com/belphemur/english-calendar/internal/display"
	"github.com/belphemur/english-calendar/internal/logging"
	appSignals "github.com/belphemur/english-calendar/internal/signals"
	"github.com/belphemur/english-calendar/internal/viewhelpers"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	isDev := os.Getenv("ENV") != "production"
	logging.Initialize(isDev)

	logger := logging.GetLogger("main")
	logger.Info().
		Str("version", version).
		Str("commit", commit).
		Str("build_date", date).
		Msgf("Starting %s", constants.AppName)

	// Create context that's canceled on SIGINT/SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info().Str("signal", sig.String()).Msg("Received signal, initiating shutdown")
		cancel()
	}()

	if err := run(ctx, os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("Application run failed")
	}
}

func run(ctx context.Context, out io.Writer) error {
	logger := logging.GetLogger("main")

	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = constants.DefaultConfigPath
	}

	// Apply the log level once configuration is loaded
	const configListenerKey = "main-config-loaded-handler"
	appSignals.OnConfigLoaded(func(ctx context.Context, data appSignals.ConfigLoadedData) {
		signalLogger := logging.GetLogger("signal-config-loaded")
		logging.SetLogLevel(data.LogLevel)
		signalLogger.Info().
			Str("config_path", data.Path).
			Str("log_level", data.LogLevel).
			Str("mode", data.Mode).
			Msg("Configuration loaded")
	}, configListenerKey)
	defer appSignals.OffConfigLoaded(configListenerKey)

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error().Err(err).Str("config_path", configPath).Msg("Failed to load configuration")
		return err
	}
	appSignals.EmitConfigLoaded(ctx, configPath, cfg.App.Mode, cfg.Service.LogLevel)

	switch cfg.Mode() {
	case constants.ModeMonth:
		return printMonth(out, cfg, time.Now())
	case constants.ModeClock:
		return runClock(ctx, out, cfg)
	default:
		c := newClock(cfg)
		line, err := c.Render(time.Now())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, line)
		return err
	}
}

func newClock(cfg *config.Config, opts ...clock.Option) *clock.Clock {
	// Layouts were validated by config.Load
	dateFmt := display.MustFormatter(cfg.Display.DateLayout)
	timeFmt := display.MustFormatter(cfg.Display.TimeLayout)
	return clock.New(dateFmt, timeFmt, cfg.Display.Separator, cfg.Location(), opts...)
}

func printMonth(out io.Writer, cfg *config.Config, now time.Time) error {
	view, err := viewhelpers.StructureMonth(now.In(cfg.Location()), cfg.WeekStart())
	if err != nil {
		return err
	}
	for _, line := range view.Lines() {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func runClock(ctx context.Context, out io.Writer, cfg *config.Config, opts ...clock.Option) error {
	logger := logging.GetLogger("clock-output")

	const listenerKey = "main-clock-output"
	appSignals.OnClockTick(func(ctx context.Context, data appSignals.ClockTickData) {
		if _, err := fmt.Fprintln(out, data.Line); err != nil {
			logger.Warn().Err(err).Uint64("sequence", data.Sequence).Msg("Failed to write clock line")
		}
	}, listenerKey)
	defer appSignals.OffClockTick(listenerKey)

	return newClock(cfg, opts...).Run(ctx, cfg.Clock.RefreshInterval, cfg.Clock.Ticks)
}
