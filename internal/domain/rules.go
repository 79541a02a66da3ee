package domain

import "time"

// DayRules describes the working window and capacity of one calendar day.
// It is derived from the weekday on every query and never stored or cached.
type DayRules struct {
	OpenHour        int // opening hour, inclusive
	CloseHour       int // closing hour, exclusive
	MaxAppointments int
	Closed          bool
}

// RulesForDate resolves the business rules for the day containing date.
// The mapping is total: every valid date yields a DayRules value.
func RulesForDate(date time.Time) DayRules {
	switch date.Weekday() {
	case time.Sunday:
		return DayRules{OpenHour: 0, CloseHour: 0, MaxAppointments: 0, Closed: true}
	case time.Saturday:
		return DayRules{OpenHour: 9, CloseHour: 15, MaxAppointments: 3}
	default:
		return DayRules{OpenHour: 8, CloseHour: 16, MaxAppointments: 5}
	}
}

// OpenMinutes returns the opening time in minutes from midnight.
func (r DayRules) OpenMinutes() int {
	return r.OpenHour * 60
}

// CloseMinutes returns the closing time in minutes from midnight.
func (r DayRules) CloseMinutes() int {
	return r.CloseHour * 60
}

// CellCount returns the number of 30-minute cells in the working window.
// A closed or empty window has zero cells.
func (r DayRules) CellCount() int {
	if r.Closed || r.CloseHour <= r.OpenHour {
		return 0
	}
	return (r.CloseHour - r.OpenHour) * 60 / SlotStepMinutes
}
