package domain

import (
	"time"

	"github.com/m04kA/NSS-ScheduleService/pkg/types"
)

// AvailableStartTimes returns every grid start time at which a new
// appointment of the requested duration fits: the clamped duration must end
// by closing time and must not overlap any cell already occupied by the
// existing appointments. The candidate itself is never added to the
// occupancy before the check.
//
// The raw duration is clamped into [30, 90] silently; an empty result is a
// normal outcome (closed day, saturated grid), not an error.
func AvailableStartTimes(date time.Time, existing []*Appointment, durationMinutes int) []types.TimeString {
	rules := RulesForDate(date)
	available := make([]types.TimeString, 0)
	if rules.Closed {
		return available
	}

	duration := ClampDuration(durationMinutes)
	occupancy := BuildOccupancy(date, existing)
	open := rules.OpenMinutes()
	close := rules.CloseMinutes()

	// The grid is at most 16 cells, so each candidate re-walks its cells
	// instead of precomputing a prefix sum.
	for _, slot := range SlotGridForRules(rules) {
		start, err := slot.Minutes()
		if err != nil {
			continue
		}

		end := start + duration
		if end > close {
			continue
		}

		if occupancy.IsRangeFree(open, start, end) {
			available = append(available, slot)
		}
	}

	return available
}

// CanSchedule reports whether a single candidate (start, duration) fits the
// day exactly as AvailableStartTimes would judge it. The create path uses it
// to re-validate a chosen slot against the latest committed state.
func CanSchedule(date time.Time, existing []*Appointment, start types.TimeString, durationMinutes int) bool {
	rules := RulesForDate(date)
	if rules.Closed {
		return false
	}

	startMinutes, err := start.Minutes()
	if err != nil {
		return false
	}
	if startMinutes < rules.OpenMinutes() || startMinutes%SlotStepMinutes != 0 {
		return false
	}

	endMinutes := startMinutes + ClampDuration(durationMinutes)
	if endMinutes > rules.CloseMinutes() {
		return false
	}

	occupancy := BuildOccupancy(date, existing)
	return occupancy.IsRangeFree(rules.OpenMinutes(), startMinutes, endMinutes)
}
