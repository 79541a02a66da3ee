package domain

import "time"

// Occupancy is the occupancy bitmap of one working day: one boolean per
// 30-minute cell, index i covering the half-open interval
// [open + 30*i, open + 30*(i+1)) minutes from midnight.
// It is rebuilt from scratch on every query and never persisted.
type Occupancy []bool

// BuildOccupancy folds a day's appointments into the day's occupancy bitmap.
// For each appointment the start is clamped forward to opening, the duration
// is clamped into [30, 90] minutes and the end is capped at closing; only the
// in-window portion contributes. Overlapping appointments are tolerated:
// their cells simply both map to occupied, so the fold is order-independent.
func BuildOccupancy(date time.Time, appointments []*Appointment) Occupancy {
	rules := RulesForDate(date)
	cells := make(Occupancy, rules.CellCount())
	if len(cells) == 0 {
		return cells
	}

	open := rules.OpenMinutes()
	close := rules.CloseMinutes()

	for _, appt := range appointments {
		start, err := appt.StartTime.Minutes()
		if err != nil {
			// Malformed start label: the record cannot be placed on the grid.
			continue
		}
		if start < open {
			start = open
		}

		end := start + appt.EffectiveDuration()
		if end > close {
			end = close
		}

		// Mark every cell whose interval intersects [start, end).
		for i := range cells {
			cellStart := open + SlotStepMinutes*i
			if cellStart < end && cellStart+SlotStepMinutes > start {
				cells[i] = true
			}
		}
	}

	return cells
}

// OccupiedCells returns the number of occupied cells.
func (o Occupancy) OccupiedCells() int {
	count := 0
	for _, occupied := range o {
		if occupied {
			count++
		}
	}
	return count
}

// HasFreeCell reports whether at least one cell is free.
func (o Occupancy) HasFreeCell() bool {
	return o.OccupiedCells() < len(o)
}

// CoveragePercent returns the share of occupied cells in [0, 100].
// An empty bitmap (closed day) yields 0.
func (o Occupancy) CoveragePercent() float64 {
	if len(o) == 0 {
		return 0
	}
	return 100 * float64(o.OccupiedCells()) / float64(len(o))
}

// IsRangeFree reports whether every cell overlapped by the interval
// [startMinutes, endMinutes) is inside the bitmap and free. openMinutes is
// the minute-of-day the bitmap starts at.
func (o Occupancy) IsRangeFree(openMinutes, startMinutes, endMinutes int) bool {
	for m := startMinutes; m < endMinutes; m += SlotStepMinutes {
		idx := (m - openMinutes) / SlotStepMinutes
		if m < openMinutes || idx >= len(o) || o[idx] {
			return false
		}
	}
	return true
}
