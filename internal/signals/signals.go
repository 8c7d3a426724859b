package signals

import (
	"context"
	"time"

	"github.com/maniartech/signals"
)

// ClockTickData is emitted each time the clock renders a line
type ClockTickData struct {
	At       time.Time
	Line     string
	Sequence uint64
}

// ConfigLoadedData is emitted once the configuration has been loaded
type ConfigLoadedData struct {
	Path     string
	Mode     string
	LogLevel string
}

// Signal definitions using generics
var ClockTick = signals.New[ClockTickData]()
var ConfigLoaded = signals.New[ConfigLoadedData]()

// EmitClockTick emits a rendered clock line
func EmitClockTick(ctx context.Context, data ClockTickData) {
	ClockTick.Emit(ctx, data)
}

// EmitConfigLoaded emits a signal when configuration is loaded
func EmitConfigLoaded(ctx context.Context, path, mode, logLevel string) {
	ConfigLoaded.Emit(ctx, ConfigLoadedData{
		Path:     path,
		Mode:     mode,
		LogLevel: logLevel,
	})
}

// OnClockTick registers a handler for clock ticks
func OnClockTick(handler func(ctx context.Context, data ClockTickData), key ...string) {
	if len(key) > 0 {
		ClockTick.AddListener(handler, key[0])
	} else {
		ClockTick.AddListener(handler)
	}
}

// OffClockTick removes a keyed clock tick handler
func OffClockTick(key string) {
	ClockTick.RemoveListener(key)
}

// OffConfigLoaded removes a keyed configuration load handler
func OffConfigLoaded(key string) {
	ConfigLoaded.RemoveListener(key)
}

// OnConfigLoaded registers a handler for configuration load events
func OnConfigLoaded(handler func(ctx context.Context, data ConfigLoadedData), key ...string) {
	if len(key) > 0 {
		ConfigLoaded.AddListener(handler, key[0])
	} else {
		ConfigLoaded.AddListener(handler)
	}
}
