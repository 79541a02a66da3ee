package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NSS-ScheduleService/pkg/types"
)

func labels(times []types.TimeString) []string {
	out := make([]string, len(times))
	for i, ts := range times {
		out[i] = ts.String()
	}
	return out
}

func TestAvailableStartTimes_EmptyMondayFor90Minutes(t *testing.T) {
	monday := date(2026, time.August, 24)

	times := AvailableStartTimes(monday, nil, 90)

	// Every slot whose 90-minute span fits by 16:00: 08:00 through 14:30.
	require.Len(t, times, 14)
	assert.Equal(t, "08:00", times[0].String())
	assert.Equal(t, "14:30", times[13].String())
}

func TestAvailableStartTimes_ExcludesOccupiedCells(t *testing.T) {
	monday := date(2026, time.August, 24)
	existing := []*Appointment{appointment(monday, "10:00", 60)}

	times := labels(AvailableStartTimes(monday, existing, 30))

	assert.NotContains(t, times, "10:00")
	assert.NotContains(t, times, "10:30")
	assert.Contains(t, times, "09:30")
	assert.Contains(t, times, "11:00")
}

func TestAvailableStartTimes_ClosedDayEmpty(t *testing.T) {
	sunday := date(2026, time.August, 30)
	assert.Empty(t, AvailableStartTimes(sunday, nil, 30))
}

func TestAvailableStartTimes_DurationClampedNotRejected(t *testing.T) {
	monday := date(2026, time.August, 24)

	// 10 behaves as 30, 500 behaves as 90.
	assert.Equal(t,
		labels(AvailableStartTimes(monday, nil, 30)),
		labels(AvailableStartTimes(monday, nil, 10)))
	assert.Equal(t,
		labels(AvailableStartTimes(monday, nil, 90)),
		labels(AvailableStartTimes(monday, nil, 500)))
}

func TestAvailableStartTimes_NeverOverlapsAndNeverOverruns(t *testing.T) {
	saturday := date(2026, time.August, 29)
	existing := []*Appointment{
		appointment(saturday, "09:30", 60),
		appointment(saturday, "12:00", 90),
	}

	for _, duration := range []int{10, 30, 45, 60, 90, 500} {
		occ := BuildOccupancy(saturday, existing)
		rules := RulesForDate(saturday)

		for _, slot := range AvailableStartTimes(saturday, existing, duration) {
			start, err := slot.Minutes()
			require.NoError(t, err)
			end := start + ClampDuration(duration)

			assert.LessOrEqual(t, end, rules.CloseMinutes(),
				"duration %d start %s overruns closing", duration, slot)
			assert.True(t, occ.IsRangeFree(rules.OpenMinutes(), start, end),
				"duration %d start %s overlaps existing", duration, slot)
		}
	}
}

func TestAvailableStartTimes_SaturatedDayEmpty(t *testing.T) {
	saturday := date(2026, time.August, 29)
	existing := []*Appointment{
		appointment(saturday, "09:00", 90),
		appointment(saturday, "10:30", 90),
		appointment(saturday, "12:00", 90),
		appointment(saturday, "13:30", 90),
	}

	assert.Empty(t, AvailableStartTimes(saturday, existing, 30))
}

func TestCanSchedule(t *testing.T) {
	monday := date(2026, time.August, 24)
	existing := []*Appointment{appointment(monday, "10:00", 60)}

	assert.True(t, CanSchedule(monday, existing, "09:00", 60))
	assert.False(t, CanSchedule(monday, existing, "09:30", 60), "would overlap 10:00")
	assert.False(t, CanSchedule(monday, existing, "15:30", 60), "would overrun closing")
	assert.False(t, CanSchedule(monday, existing, "07:30", 30), "before opening")
	assert.False(t, CanSchedule(monday, existing, "09:15", 30), "off the 30-minute grid")
	assert.False(t, CanSchedule(date(2026, time.August, 30), nil, "10:00", 30), "closed day")
}
