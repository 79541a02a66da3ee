package get_day_schedule

import (
	"time"

	"github.com/m04kA/NSS-ScheduleService/internal/domain"
	getDaySchedule "github.com/m04kA/NSS-ScheduleService/internal/usecase/get_day_schedule"
)

// DayScheduleResponse HTTP response model
type DayScheduleResponse struct {
	Date            string        `json:"date"`
	Rules           DayRules      `json:"rules"`
	Cells           []Cell        `json:"cells"`
	CoveragePercent float64       `json:"coveragePercent"`
	FullyBooked     bool          `json:"fullyBooked"`
	Appointments    []Appointment `json:"appointments"`
}

// DayRules правила рабочего дня
type DayRules struct {
	OpenHour        int  `json:"openHour"`
	CloseHour       int  `json:"closeHour"`
	MaxAppointments int  `json:"maxAppointments"`
	Closed          bool `json:"closed"`
}

// Cell одна 30-минутная ячейка занятости
type Cell struct {
	StartTime string `json:"startTime"`
	Occupied  bool   `json:"occupied"`
}

// Appointment запись в расписании дня
type Appointment struct {
	ID              string  `json:"id"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	ClientName      string  `json:"clientName"`
	Notes           *string `json:"notes,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySchedule.Response) *DayScheduleResponse {
	cells := make([]Cell, len(resp.Cells))
	for i, cell := range resp.Cells {
		cells[i] = Cell{
			StartTime: cell.StartTime.String(),
			Occupied:  cell.Occupied,
		}
	}

	appointments := make([]Appointment, len(resp.Appointments))
	for i, appt := range resp.Appointments {
		appointments[i] = Appointment{
			ID:              appt.ID,
			StartTime:       appt.StartTime.String(),
			DurationMinutes: appt.DurationMinutes,
			ClientName:      appt.ClientName,
			Notes:           appt.Notes,
		}
	}

	return &DayScheduleResponse{
		Date: resp.Date.Format(domain.DateFormat),
		Rules: DayRules{
			OpenHour:        resp.Rules.OpenHour,
			CloseHour:       resp.Rules.CloseHour,
			MaxAppointments: resp.Rules.MaxAppointments,
			Closed:          resp.Rules.Closed,
		},
		Cells:           cells,
		CoveragePercent: resp.CoveragePercent,
		FullyBooked:     resp.FullyBooked,
		Appointments:    appointments,
	}
}

// ToUseCaseRequest создает запрос use case из параметров пути
func ToUseCaseRequest(dateStr string) (*getDaySchedule.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getDaySchedule.Request{Date: date}, nil
}
