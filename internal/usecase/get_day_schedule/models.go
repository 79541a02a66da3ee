package get_day_schedule

import (
	"time"

	"github.com/m04kA/NSS-ScheduleService/internal/domain"
	"github.com/m04kA/NSS-ScheduleService/pkg/types"
)

// Request модель запроса расписания дня
type Request struct {
	Date time.Time
}

// Response модель ответа с расписанием дня
// Занятость, процент заполнения и признак полной брони пересчитываются
// из списка записей на каждый запрос — производное состояние не хранится
type Response struct {
	Date            time.Time
	Rules           domain.DayRules
	Cells           []Cell        // Ячейки занятости, по одной на 30 минут окна
	CoveragePercent float64       // Доля занятых ячеек, [0, 100]
	FullyBooked     bool          // Нет свободных ячеек ИЛИ достигнут лимит записей
	Appointments    []Appointment // Записи дня, по времени начала
}

// Cell одна 30-минутная ячейка занятости дня
type Cell struct {
	StartTime types.TimeString
	Occupied  bool
}

// Appointment модель записи в расписании дня
type Appointment struct {
	ID              string
	StartTime       types.TimeString
	DurationMinutes int // Фактическая (после клампа) длительность
	ClientName      string
	Notes           *string
}

// fromDomainAppointments конвертирует доменные записи в модели ответа
func fromDomainAppointments(appts []*domain.Appointment) []Appointment {
	result := make([]Appointment, len(appts))
	for i, appt := range appts {
		result[i] = Appointment{
			ID:              appt.ID,
			StartTime:       appt.StartTime,
			DurationMinutes: appt.EffectiveDuration(),
			ClientName:      appt.ClientName,
			Notes:           appt.Notes,
		}
	}
	return result
}
