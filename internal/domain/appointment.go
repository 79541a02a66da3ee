package domain

import (
	"time"

	"github.com/m04kA/NSS-ScheduleService/pkg/types"
)

// Appointment represents a single client appointment in the salon schedule.
// Records are immutable once created: they are inserted by the validated
// create path and removed by id, never updated in place.
type Appointment struct {
	ID              string // opaque unique identifier, assigned at creation
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	ClientName      string
	Notes           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveDuration returns the stored duration clamped into the supported
// range. Stored values are never trusted: even a record inserted by another
// path is re-clamped everywhere it is consumed.
func (a *Appointment) EffectiveDuration() int {
	return ClampDuration(a.DurationMinutes)
}

// IsOnDate reports whether the appointment belongs to the given calendar day.
func (a *Appointment) IsOnDate(date time.Time) bool {
	return SameDay(a.Date, date)
}

// ClampDuration constrains an appointment duration to [30, 90] minutes.
// Out-of-range values are clamped silently, never rejected.
func ClampDuration(minutes int) int {
	if minutes < MinAppointmentMinutes {
		return MinAppointmentMinutes
	}
	if minutes > MaxAppointmentMinutes {
		return MaxAppointmentMinutes
	}
	return minutes
}
