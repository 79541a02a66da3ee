package get_week_overview

import "time"

// Request модель запроса недельной сводки
// Неделя определяется любым входящим в неё днём
type Request struct {
	Date time.Time
}

// Response модель ответа с недельной сводкой
type Response struct {
	WeekStart time.Time    // Понедельник недели
	Days      []DaySummary // Ровно 7 дней, с понедельника по воскресенье
}

// DaySummary сводка одного дня недели
type DaySummary struct {
	Date             time.Time
	Weekday          time.Weekday
	Closed           bool
	AppointmentCount int
	CoveragePercent  float64
	FullyBooked      bool
}
