// Package calendarnames holds the abbreviated English weekday and month names.
//
// The tables are fixed at package initialization and never change, so any
// number of goroutines may read them without synchronization.
package calendarnames

import "time"

const (
	// WeekdayCount is the number of entries in the weekday table
	WeekdayCount = 7
	// MonthCount is the number of entries in the month table
	MonthCount = 12
)

// Sunday first, matching time.Weekday.
var weekdayNames = [WeekdayCount]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

var monthNames = [MonthCount]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// WeekdayName returns the abbreviation for a zero-based weekday index (0 = Sun).
func WeekdayName(index int) (string, error) {
	if index < 0 || index >= WeekdayCount {
		return "", &IndexOutOfRangeError{Table: TableWeekday, Index: index, Len: WeekdayCount}
	}
	return weekdayNames[index], nil
}

// MonthName returns the abbreviation for a zero-based month index (0 = Jan).
func MonthName(index int) (string, error) {
	if index < 0 || index >= MonthCount {
		return "", &IndexOutOfRangeError{Table: TableMonth, Index: index, Len: MonthCount}
	}
	return monthNames[index], nil
}

// MustWeekdayName is like WeekdayName but panics on an invalid index.
func MustWeekdayName(index int) string {
	name, err := WeekdayName(index)
	if err != nil {
		panic(err)
	}
	return name
}

// MustMonthName is like MonthName but panics on an invalid index.
func MustMonthName(index int) string {
	name, err := MonthName(index)
	if err != nil {
		panic(err)
	}
	return name
}

// WeekdayNames returns a copy of the whole weekday table.
func WeekdayNames() [WeekdayCount]string {
	return weekdayNames
}

// MonthNames returns a copy of the whole month table.
func MonthNames() [MonthCount]string {
	return monthNames
}

// ForWeekday looks up a time.Weekday.
func ForWeekday(day time.Weekday) (string, error) {
	return WeekdayName(int(day))
}

// ForMonth looks up a time.Month. time.Month is 1-based while the table is not.
func ForMonth(month time.Month) (string, error) {
	return MonthName(int(month) - 1)
}
