// Package display renders dates and times for clock and console output
// using the English abbreviations from calendarnames.
package display

import (
	"errors"
	"fmt"
	"time"

	"github.com/lestrrat-go/strftime"

	"github.com/belphemur/english-calendar/internal/calendarnames"
)

// ErrInvalidLayout is returned for layouts that cannot be parsed
var ErrInvalidLayout = errors.New("invalid layout")

// Weekday and month numbers are checked in Format before these run.
var (
	weekdayAppender = strftime.AppendFunc(func(b []byte, t time.Time) []byte {
		return append(b, calendarnames.MustWeekdayName(int(t.Weekday()))...)
	})
	monthAppender = strftime.AppendFunc(func(b []byte, t time.Time) []byte {
		return append(b, calendarnames.MustMonthName(int(t.Month())-1)...)
	})
)

// Formatter renders a time.Time with a strftime layout. The standard
// directives come from lestrrat-go/strftime; %a and %b read the
// calendarnames tables, so %b is also the abbreviation used for %h.
type Formatter struct {
	layout string
	s      *strftime.Strftime
}

// NewFormatter compiles layout once so that Format never fails on syntax.
func NewFormatter(layout string) (*Formatter, error) {
	s, err := strftime.New(layout,
		strftime.WithSpecification('a', weekdayAppender),
		strftime.WithSpecification('b', monthAppender),
		strftime.WithSpecification('h', monthAppender),
	)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidLayout, layout, err)
	}
	return &Formatter{layout: layout, s: s}, nil
}

// MustFormatter is like NewFormatter but panics if the layout is invalid.
func MustFormatter(layout string) *Formatter {
	f, err := NewFormatter(layout)
	if err != nil {
		panic(err)
	}
	return f
}

// Layout returns the layout the formatter was built from
func (f *Formatter) Layout() string {
	return f.layout
}

// Format renders t. Weekday and month are looked up in calendarnames first,
// so an out-of-range value surfaces as an IndexOutOfRange error.
func (f *Formatter) Format(t time.Time) (string, error) {
	if _, err := calendarnames.ForWeekday(t.Weekday()); err != nil {
		return "", err
	}
	if _, err := calendarnames.ForMonth(t.Month()); err != nil {
		return "", err
	}
	return f.s.FormatString(t), nil
}

// Header joins a weekday and a month abbreviation, e.g. Header(0, 0, ", ") is "Sun, Jan".
func Header(weekdayIndex, monthIndex int, sep string) (string, error) {
	day, err := calendarnames.WeekdayName(weekdayIndex)
	if err != nil {
		return "", fmt.Errorf("failed to build header: %w", err)
	}
	month, err := calendarnames.MonthName(monthIndex)
	if err != nil {
		return "", fmt.Errorf("failed to build header: %w", err)
	}
	return day + sep + month, nil
}
