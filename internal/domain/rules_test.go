package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2026-08-24 is a Monday.
func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestRulesForDate_Sunday(t *testing.T) {
	rules := RulesForDate(date(2026, time.August, 30))

	assert.True(t, rules.Closed)
	assert.Equal(t, 0, rules.MaxAppointments)
	assert.Equal(t, 0, rules.CellCount())
}

func TestRulesForDate_Saturday(t *testing.T) {
	rules := RulesForDate(date(2026, time.August, 29))

	assert.False(t, rules.Closed)
	assert.Equal(t, 9, rules.OpenHour)
	assert.Equal(t, 15, rules.CloseHour)
	assert.Equal(t, 3, rules.MaxAppointments)
	assert.Equal(t, 12, rules.CellCount())
}

func TestRulesForDate_Weekdays(t *testing.T) {
	// Monday through Friday share the same window and cap.
	for offset := 0; offset < 5; offset++ {
		day := date(2026, time.August, 24+offset)
		rules := RulesForDate(day)

		assert.False(t, rules.Closed, "weekday %s", day.Weekday())
		assert.Equal(t, 8, rules.OpenHour)
		assert.Equal(t, 16, rules.CloseHour)
		assert.Equal(t, 5, rules.MaxAppointments)
		assert.Equal(t, 16, rules.CellCount())
	}
}

func TestRulesForDate_TotalOverYear(t *testing.T) {
	// Every date resolves to rules without gaps: closed exactly on Sundays.
	day := date(2026, time.January, 1)
	for i := 0; i < 365; i++ {
		rules := RulesForDate(day)
		assert.Equal(t, day.Weekday() == time.Sunday, rules.Closed, "%s", day.Format(DateFormat))
		day = AddDays(day, 1)
	}
}
