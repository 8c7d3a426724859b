package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/belphemur/english-calendar/internal/constants"
	"github.com/belphemur/english-calendar/internal/display"
	"github.com/belphemur/english-calendar/internal/logging"
)

// Config holds the application configuration
type Config struct {
	App     AppConfig     `koanf:"app"`
	Display DisplayConfig `koanf:"display"`
	Clock   ClockConfig   `koanf:"clock"`
	Service ServiceConfig `koanf:"service"`

	location *time.Location
}

// AppConfig selects what the command renders
type AppConfig struct {
	Mode string `koanf:"mode"`
}

// DisplayConfig holds the rendering layouts
type DisplayConfig struct {
	DateLayout string `koanf:"date_layout"`
	TimeLayout string `koanf:"time_layout"`
	Separator  string `koanf:"separator"`
	WeekStart  string `koanf:"week_start"`
	Timezone   string `koanf:"timezone"`
}

// ClockConfig holds the refresh loop parameters
type ClockConfig struct {
	RefreshInterval time.Duration `koanf:"refresh_interval"`
	Ticks           int           `koanf:"ticks"` // 0 runs until cancelled
}

// ServiceConfig holds the service configuration
type ServiceConfig struct {
	LogLevel string `koanf:"log_level"`
}

var defaults = map[string]any{
	"app.mode":               string(constants.ModeOnce),
	"display.date_layout":    "%a %d %b %Y",
	"display.time_layout":    "%H:%M:%S",
	"display.separator":      "  ",
	"display.week_start":     string(constants.WeekStartSunday),
	"display.timezone":       "Local",
	"clock.refresh_interval": "1s",
	"clock.ticks":            0,
	"service.log_level":      "info",
}

// Load reads defaults, then the TOML file at path if it exists, then
// CALENDAR_ environment variables. Nested keys use a double underscore,
// e.g. CALENDAR_DISPLAY__DATE_LAYOUT.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
			}
			logger.Debug().Str("path", path).Msg("Loaded configuration file")
		} else if errors.Is(err, fs.ErrNotExist) {
			logger.Debug().Str("path", path).Msg("Configuration file not found, using defaults and environment")
		} else {
			return nil, fmt.Errorf("failed to stat config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider(".", env.Opt{
		Prefix: constants.EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, constants.EnvPrefix))
			return strings.ReplaceAll(key, "__", "."), value
		},
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Config
	err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate collects every problem in the configuration rather than stopping at the first
func validate(cfg *Config) error {
	var result *multierror.Error

	if _, err := constants.ParseMode(cfg.App.Mode); err != nil {
		result = multierror.Append(result, err)
	}

	if _, err := display.NewFormatter(cfg.Display.DateLayout); err != nil {
		result = multierror.Append(result, fmt.Errorf("display.date_layout: %w", err))
	}
	if _, err := display.NewFormatter(cfg.Display.TimeLayout); err != nil {
		result = multierror.Append(result, fmt.Errorf("display.time_layout: %w", err))
	}

	if _, err := constants.ParseWeekStart(cfg.Display.WeekStart); err != nil {
		result = multierror.Append(result, err)
	}

	loc, err := time.LoadLocation(cfg.Display.Timezone)
	if err != nil {
		result = multierror.Append(result, fmt.Errorf("invalid timezone %q: %w", cfg.Display.Timezone, err))
	}
	cfg.location = loc

	if cfg.Clock.RefreshInterval <= 0 {
		result = multierror.Append(result, fmt.Errorf("clock refresh interval must be positive"))
	}
	if cfg.Clock.Ticks < 0 {
		result = multierror.Append(result, fmt.Errorf("clock ticks must not be negative"))
	}

	if !logging.IsValidLevel(cfg.Service.LogLevel) {
		result = multierror.Append(result, fmt.Errorf("invalid log level: %s", cfg.Service.LogLevel))
	}

	return result.ErrorOrNil()
}

// Location returns the timezone rendering happens in
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

// Mode returns the validated app mode
func (c *Config) Mode() constants.Mode {
	return constants.Mode(c.App.Mode)
}

// WeekStart returns the validated week start
func (c *Config) WeekStart() constants.WeekStart {
	return constants.WeekStart(c.Display.WeekStart)
}
