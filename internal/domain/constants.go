package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Scheduling grid constants. The whole day is divided into 30-minute cells;
// every appointment duration is clamped into [30, 90] minutes wherever it is
// consumed, regardless of what was stored.
const (
	SlotStepMinutes = 30

	MinAppointmentMinutes = 30
	MaxAppointmentMinutes = 90
)

// Business validation constants
const (
	MaxClientNameLength = 200
	MaxNotesLength      = 500
)
