package domain

import "time"

// CoveragePercent returns the fill percentage of a day's working window
// given its appointments. Closed days are 0.
func CoveragePercent(date time.Time, appointments []*Appointment) float64 {
	return BuildOccupancy(date, appointments).CoveragePercent()
}

// IsFullyBooked reports whether a day accepts no further appointments.
// A closed day is never fully booked. An open day is full when the grid
// has no free cell OR when the appointment count has reached the day's
// cap — the two conditions are independent: a handful of long overlapping
// appointments can saturate the grid below the cap, and a full count of
// short appointments can hit the cap with free cells remaining.
func IsFullyBooked(date time.Time, appointments []*Appointment) bool {
	rules := RulesForDate(date)
	if rules.Closed {
		return false
	}

	occupancy := BuildOccupancy(date, appointments)

	return !occupancy.HasFreeCell() || len(appointments) >= rules.MaxAppointments
}
