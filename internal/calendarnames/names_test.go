package calendarnames

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayName(t *testing.T) {
	expected := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

	for i, want := range expected {
		got, err := WeekdayName(i)
		require.NoError(t, err)
		assert.Equal(t, want, got, "weekday index %d", i)
	}
}

func TestMonthName(t *testing.T) {
	expected := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

	for i, want := range expected {
		got, err := MonthName(i)
		require.NoError(t, err)
		assert.Equal(t, want, got, "month index %d", i)
	}
}

func TestLookup_OutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		lookup func(int) (string, error)
		index  int
		table  Table
		size   int
	}{
		{"weekday one past end", WeekdayName, 7, TableWeekday, WeekdayCount},
		{"weekday negative", WeekdayName, -1, TableWeekday, WeekdayCount},
		{"weekday far past end", WeekdayName, 1000, TableWeekday, WeekdayCount},
		{"month one past end", MonthName, 12, TableMonth, MonthCount},
		{"month negative", MonthName, -1, TableMonth, MonthCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, err := tt.lookup(tt.index)
			require.Error(t, err)
			assert.Empty(t, name)
			assert.True(t, errors.Is(err, ErrIndexOutOfRange))

			var rangeErr *IndexOutOfRangeError
			require.True(t, errors.As(err, &rangeErr))
			assert.Equal(t, tt.table, rangeErr.Table)
			assert.Equal(t, tt.index, rangeErr.Index)
			assert.Equal(t, tt.size, rangeErr.Len)
		})
	}
}

func TestLookup_Boundaries(t *testing.T) {
	sat, err := WeekdayName(6)
	require.NoError(t, err)
	assert.Equal(t, "Sat", sat)

	dec, err := MonthName(11)
	require.NoError(t, err)
	assert.Equal(t, "Dec", dec)
}

func TestIndexOutOfRangeError_Message(t *testing.T) {
	_, err := WeekdayName(7)
	assert.EqualError(t, err, "weekday name index 7 out of range [0, 6]")

	_, err = MonthName(-3)
	assert.EqualError(t, err, "month name index -3 out of range [0, 11]")
}

func TestTables_Distinct(t *testing.T) {
	weekdays := WeekdayNames()
	months := MonthNames()

	assert.Len(t, weekdays, 7)
	assert.Len(t, months, 12)

	seen := make(map[string]bool)
	for _, n := range weekdays {
		assert.False(t, seen[n], "duplicate weekday %s", n)
		assert.Len(t, n, 3)
		seen[n] = true
	}
	seen = make(map[string]bool)
	for _, n := range months {
		assert.False(t, seen[n], "duplicate month %s", n)
		assert.Len(t, n, 3)
		seen[n] = true
	}
}

func TestTables_CopiesCannotMutate(t *testing.T) {
	weekdays := WeekdayNames()
	weekdays[0] = "XXX"
	months := MonthNames()
	months[0] = "YYY"

	assert.Equal(t, "Sun", MustWeekdayName(0))
	assert.Equal(t, "Jan", MustMonthName(0))
}

func TestMust_Panics(t *testing.T) {
	assert.Panics(t, func() { MustWeekdayName(7) })
	assert.Panics(t, func() { MustMonthName(12) })
	assert.NotPanics(t, func() { MustMonthName(0) })
}

func TestForWeekdayAndMonth(t *testing.T) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		got, err := ForWeekday(d)
		require.NoError(t, err)
		assert.Equal(t, d.String()[:3], got)
	}
	for m := time.January; m <= time.December; m++ {
		got, err := ForMonth(m)
		require.NoError(t, err)
		assert.Equal(t, m.String()[:3], got)
	}

	_, err := ForMonth(time.Month(0))
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = ForMonth(time.Month(13))
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestLookup_ConcurrentReadsAreStable(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan string, 64)

	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 500; n++ {
				if MustWeekdayName(n%WeekdayCount) != weekdayNames[n%WeekdayCount] {
					errs <- "weekday drift"
					return
				}
				if MustMonthName(n%MonthCount) != monthNames[n%MonthCount] {
					errs <- "month drift"
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Error(e)
	}
}
