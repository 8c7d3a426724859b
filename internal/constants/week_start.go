// Package constants provides shared constants for the english-calendar application
package constants

import (
	"fmt"
	"strings"
	"time"
)

// WeekStart represents the first column of a month grid
type WeekStart string

const (
	// WeekStartSunday starts weeks on Sunday, the first entry of the weekday table
	WeekStartSunday WeekStart = "sunday"
	// WeekStartMonday starts weeks on Monday
	WeekStartMonday WeekStart = "monday"
)

// IsValid checks if the week start value is valid
func (w WeekStart) IsValid() bool {
	return w == WeekStartSunday || w == WeekStartMonday
}

// String returns the string representation of the week start
func (w WeekStart) String() string {
	return string(w)
}

// Weekday returns the time.Weekday of the first grid column.
// Invalid values fall back to Sunday.
func (w WeekStart) Weekday() time.Weekday {
	if w == WeekStartMonday {
		return time.Monday
	}
	return time.Sunday
}

// ParseWeekStart parses a string into a WeekStart type
// Returns an error if the value is invalid
func ParseWeekStart(s string) (WeekStart, error) {
	ws := WeekStart(s)
	if !ws.IsValid() {
		allowed := make([]string, 0, 2)
		for _, w := range GetAllWeekStarts() {
			allowed = append(allowed, w.String())
		}
		return "", fmt.Errorf("invalid week start: %s (must be one of: %s)", s, strings.Join(allowed, ", "))
	}
	return ws, nil
}

// GetAllWeekStarts returns all valid week start values, Sunday first
func GetAllWeekStarts() []WeekStart {
	return []WeekStart{WeekStartSunday, WeekStartMonday}
}
