package domain

import (
	"time"

	"github.com/m04kA/NSS-ScheduleService/pkg/types"
)

// SlotGrid enumerates the valid 30-minute start labels for a day, from
// opening (inclusive) to closing (exclusive). The sequence is strictly
// increasing with no duplicates; a closed day yields an empty grid.
func SlotGrid(date time.Time) []types.TimeString {
	rules := RulesForDate(date)
	return SlotGridForRules(rules)
}

// SlotGridForRules is SlotGrid over an already-resolved DayRules value,
// for callers that have the rules at hand and must not re-derive them.
func SlotGridForRules(rules DayRules) []types.TimeString {
	grid := make([]types.TimeString, 0, rules.CellCount())
	if rules.Closed {
		return grid
	}

	for m := rules.OpenMinutes(); m < rules.CloseMinutes(); m += SlotStepMinutes {
		label, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			// Unreachable for sane rules; skip rather than fail.
			continue
		}
		grid = append(grid, label)
	}

	return grid
}
