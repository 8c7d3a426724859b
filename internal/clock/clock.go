// Package clock renders a date and time line on a fixed refresh interval,
// the way a clock display redraws itself.
package clock

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"

	"github.com/belphemur/english-calendar/internal/display"
	"github.com/belphemur/english-calendar/internal/logging"
	appSignals "github.com/belphemur/english-calendar/internal/signals"
)

// Clock renders lines made of a date part and a time part
type Clock struct {
	dateFmt  *display.Formatter
	timeFmt  *display.Formatter
	sep      string
	loc      *time.Location
	now      func() time.Time
	sequence *atomic.Uint64
	logger   zerolog.Logger
}

// Option configures a Clock
type Option func(*Clock)

// WithNow replaces the time source
func WithNow(now func() time.Time) Option {
	return func(c *Clock) {
		c.now = now
	}
}

// New creates a clock. A nil timeFmt renders the date part only.
func New(dateFmt, timeFmt *display.Formatter, sep string, loc *time.Location, opts ...Option) *Clock {
	if loc == nil {
		loc = time.Local
	}
	c := &Clock{
		dateFmt:  dateFmt,
		timeFmt:  timeFmt,
		sep:      sep,
		loc:      loc,
		now:      time.Now,
		sequence: atomic.NewUint64(0),
		logger:   logging.GetLogger("clock"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Render formats t in the clock's location
func (c *Clock) Render(t time.Time) (string, error) {
	t = t.In(c.loc)

	datePart, err := c.dateFmt.Format(t)
	if err != nil {
		return "", fmt.Errorf("failed to render date: %w", err)
	}
	if c.timeFmt == nil {
		return datePart, nil
	}

	timePart, err := c.timeFmt.Format(t)
	if err != nil {
		return "", fmt.Errorf("failed to render time: %w", err)
	}
	return datePart + c.sep + timePart, nil
}

// Rendered returns how many lines have been emitted so far
func (c *Clock) Rendered() uint64 {
	return c.sequence.Load()
}

// Run renders immediately and then once per interval, emitting a ClockTick
// signal for each line. It stops when ctx is cancelled or, if ticks is
// positive, after that many lines.
func (c *Clock) Run(ctx context.Context, interval time.Duration, ticks int) error {
	if interval <= 0 {
		return fmt.Errorf("clock interval must be positive, got %s", interval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	c.logger.Info().Dur("interval", interval).Int("ticks", ticks).Msg("Starting clock")

	// The limit counts this run only, the sequence spans the clock's lifetime.
	rendered := 0
	for {
		if err := c.tick(ctx); err != nil {
			return err
		}
		rendered++
		if ticks > 0 && rendered >= ticks {
			c.logger.Info().Int("rendered", rendered).Msg("Clock reached tick limit")
			return nil
		}

		select {
		case <-ctx.Done():
			c.logger.Info().Int("rendered", rendered).Msg("Context cancelled, stopping clock")
			return nil
		case <-ticker.C:
		}
	}
}

func (c *Clock) tick(ctx context.Context) error {
	at := c.now()
	line, err := c.Render(at)
	if err != nil {
		c.logger.Error().Err(err).Time("at", at).Msg("Failed to render clock line")
		return err
	}

	seq := c.sequence.Inc()
	c.logger.Debug().Uint64("sequence", seq).Str("line", line).Msg("Clock tick")
	appSignals.EmitClockTick(ctx, appSignals.ClockTickData{
		At:       at,
		Line:     line,
		Sequence: seq,
	})
	return nil
}
