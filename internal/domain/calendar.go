package domain

import "time"

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// StartOfDay truncates a timestamp to midnight, keeping its location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AddDays shifts a date by the given number of calendar days.
func AddDays(t time.Time, days int) time.Time {
	return StartOfDay(t).AddDate(0, 0, days)
}

// DayKey formats a date as its YYYY-MM-DD partition key.
func DayKey(t time.Time) string {
	return t.Format(DateFormat)
}

// WeekStart returns the Monday of the week containing t.
func WeekStart(t time.Time) time.Time {
	// time.Weekday has Sunday == 0, the schedule week starts on Monday.
	offset := (int(t.Weekday()) + 6) % 7
	return AddDays(t, -offset)
}

// WeekDays returns the seven days of the week containing t, Monday first.
func WeekDays(t time.Time) []time.Time {
	start := WeekStart(t)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = AddDays(start, i)
	}
	return days
}
