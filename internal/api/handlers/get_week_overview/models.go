package get_week_overview

import (
	"time"

	"github.com/m04kA/NSS-ScheduleService/internal/domain"
	getWeekOverview "github.com/m04kA/NSS-ScheduleService/internal/usecase/get_week_overview"
)

// WeekOverviewResponse HTTP response model
type WeekOverviewResponse struct {
	WeekStart string       `json:"weekStart"`
	Days      []DaySummary `json:"days"`
}

// DaySummary сводка одного дня недели
type DaySummary struct {
	Date             string  `json:"date"`
	Weekday          string  `json:"weekday"`
	Closed           bool    `json:"closed"`
	AppointmentCount int     `json:"appointmentCount"`
	CoveragePercent  float64 `json:"coveragePercent"`
	FullyBooked      bool    `json:"fullyBooked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeekOverview.Response) *WeekOverviewResponse {
	days := make([]DaySummary, len(resp.Days))
	for i, day := range resp.Days {
		days[i] = DaySummary{
			Date:             day.Date.Format(domain.DateFormat),
			Weekday:          day.Weekday.String(),
			Closed:           day.Closed,
			AppointmentCount: day.AppointmentCount,
			CoveragePercent:  day.CoveragePercent,
			FullyBooked:      day.FullyBooked,
		}
	}

	return &WeekOverviewResponse{
		WeekStart: resp.WeekStart.Format(domain.DateFormat),
		Days:      days,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr string) (*getWeekOverview.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getWeekOverview.Request{Date: date}, nil
}
