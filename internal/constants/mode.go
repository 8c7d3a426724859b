package constants

import "fmt"

// Mode selects what the command renders
type Mode string

const (
	// ModeOnce prints a single date line and exits
	ModeOnce Mode = "once"
	// ModeMonth prints the month grid for the current date
	ModeMonth Mode = "month"
	// ModeClock refreshes the date line until cancelled
	ModeClock Mode = "clock"
)

// IsValid checks if the mode is one of the known modes
func (m Mode) IsValid() bool {
	switch m {
	case ModeOnce, ModeMonth, ModeClock:
		return true
	}
	return false
}

// ParseMode parses a string into a Mode
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.IsValid() {
		return "", fmt.Errorf("invalid mode: %s (must be 'once', 'month' or 'clock')", s)
	}
	return m, nil
}
