package viewhelpers

import (
	"fmt"
	"strings"
	"time"

	"github.com/belphemur/english-calendar/internal/calendarnames"
	"github.com/belphemur/english-calendar/internal/constants"
)

// CalendarDay represents a single day cell in the month grid.
type CalendarDay struct {
	Date           time.Time
	DayOfMonth     int
	IsCurrentMonth bool // Is this day within the primary month being displayed?
}

// MonthView is a month laid out in full weeks.
type MonthView struct {
	Title  string   // e.g. "Mar 2021"
	Header []string // weekday abbreviations, rotated to the week start
	Weeks  [][]CalendarDay
}

// CalculateCalendarRange determines the start and end dates for a calendar view
// that displays full weeks, beginning on weekStart, containing the month of refDate.
func CalculateCalendarRange(refDate time.Time, weekStart constants.WeekStart) (startDate time.Time, endDate time.Time) {
	year, month, _ := refDate.Date()
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, refDate.Location())
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	first := int(weekStart.Weekday())

	// Days to go back from the 1st to reach the first grid column
	daysToSubtract := (int(firstOfMonth.Weekday()) - first + 7) % 7
	startDate = firstOfMonth.AddDate(0, 0, -daysToSubtract)

	// Days to go forward from the last day to reach the last grid column
	last := (first + 6) % 7
	daysToAdd := (last - int(lastOfMonth.Weekday()) + 7) % 7
	endDate = lastOfMonth.AddDate(0, 0, daysToAdd)

	endDate = time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 23, 59, 59, 999999999, endDate.Location())

	return startDate, endDate
}

// WeekHeader returns the weekday abbreviations in grid column order.
func WeekHeader(weekStart constants.WeekStart) []string {
	first := int(weekStart.Weekday())
	header := make([]string, 0, calendarnames.WeekdayCount)
	for i := 0; i < calendarnames.WeekdayCount; i++ {
		header = append(header, calendarnames.MustWeekdayName((first+i)%calendarnames.WeekdayCount))
	}
	return header
}

// StructureMonth organizes the days of refDate's month into weeks.
func StructureMonth(refDate time.Time, weekStart constants.WeekStart) (MonthView, error) {
	monthName, err := calendarnames.ForMonth(refDate.Month())
	if err != nil {
		return MonthView{}, fmt.Errorf("failed to structure month: %w", err)
	}

	view := MonthView{
		Title:  fmt.Sprintf("%s %d", monthName, refDate.Year()),
		Header: WeekHeader(weekStart),
	}

	startDate, endDate := CalculateCalendarRange(refDate, weekStart)
	lastColumn := (weekStart.Weekday() + 6) % 7

	var currentWeek []CalendarDay
	for currentDate := startDate; !currentDate.After(endDate); currentDate = currentDate.AddDate(0, 0, 1) {
		currentWeek = append(currentWeek, CalendarDay{
			Date:           currentDate,
			DayOfMonth:     currentDate.Day(),
			IsCurrentMonth: currentDate.Month() == refDate.Month() && currentDate.Year() == refDate.Year(),
		})

		if currentDate.Weekday() == lastColumn {
			view.Weeks = append(view.Weeks, currentWeek)
			currentWeek = nil
		}
	}
	if len(currentWeek) > 0 {
		view.Weeks = append(view.Weeks, currentWeek)
	}

	return view, nil
}

// Lines renders the view as fixed-width text rows, blanking days of adjacent months.
func (v MonthView) Lines() []string {
	lines := make([]string, 0, len(v.Weeks)+2)
	lines = append(lines, v.Title, strings.Join(v.Header, " "))

	for _, week := range v.Weeks {
		cells := make([]string, 0, len(week))
		for _, day := range week {
			if day.IsCurrentMonth {
				cells = append(cells, fmt.Sprintf("%3d", day.DayOfMonth))
			} else {
				cells = append(cells, "   ")
			}
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, " "), " "))
	}
	return lines
}
