package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekStart(t *testing.T) {
	monday := date(2026, time.August, 24)

	// Every day of the week maps back to the same Monday.
	for i := 0; i < 7; i++ {
		assert.Equal(t, monday, WeekStart(AddDays(monday, i)), "offset %d", i)
	}

	// The next Monday starts its own week.
	assert.Equal(t, AddDays(monday, 7), WeekStart(AddDays(monday, 7)))
}

func TestWeekDays(t *testing.T) {
	days := WeekDays(date(2026, time.August, 27)) // a Thursday

	assert.Len(t, days, 7)
	assert.Equal(t, time.Monday, days[0].Weekday())
	assert.Equal(t, time.Sunday, days[6].Weekday())
	for i := 1; i < 7; i++ {
		assert.Equal(t, AddDays(days[0], i), days[i])
	}
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2026, time.August, 24, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, time.August, 24, 23, 59, 0, 0, time.UTC)

	assert.True(t, SameDay(morning, evening))
	assert.False(t, SameDay(morning, AddDays(morning, 1)))
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "2026-08-24", DayKey(date(2026, time.August, 24)))
}
