package calendarnames

import (
	"errors"
	"fmt"
)

// Table identifies which lookup table rejected an index
type Table string

const (
	// TableWeekday is the weekday abbreviation table
	TableWeekday Table = "weekday"
	// TableMonth is the month abbreviation table
	TableMonth Table = "month"
)

// ErrIndexOutOfRange is matched by every IndexOutOfRangeError
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexOutOfRangeError reports a lookup outside [0, Len).
type IndexOutOfRangeError struct {
	Table Table
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%s name index %d out of range [0, %d]", e.Table, e.Index, e.Len-1)
}

// Is lets errors.Is(err, ErrIndexOutOfRange) match.
func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
