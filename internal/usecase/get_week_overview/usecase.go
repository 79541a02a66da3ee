package get_week_overview

import (
	"context"
	"fmt"

	"github.com/m04kA/NSS-ScheduleService/internal/domain"
)

// UseCase use case для недельной сводки: по каждому дню недели —
// количество записей, процент заполнения и признак полной брони
type UseCase struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute выполняет use case недельной сводки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetWeekOverview: date=%s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		uc.logger.Warn("GetWeekOverview: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	days := domain.WeekDays(req.Date)
	weekStart := days[0]
	weekEnd := days[len(days)-1]

	// Все записи недели одним запросом, дальше раскладываем по дням
	appointments, err := uc.appointmentRepo.GetByDateRange(ctx, weekStart, weekEnd)
	if err != nil {
		uc.logger.Error("GetWeekOverview: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	byDay := make(map[string][]*domain.Appointment, len(days))
	for _, appt := range appointments {
		key := domain.DayKey(appt.Date)
		byDay[key] = append(byDay[key], appt)
	}

	summaries := make([]DaySummary, len(days))
	for i, day := range days {
		dayAppointments := byDay[domain.DayKey(day)]
		rules := domain.RulesForDate(day)

		summaries[i] = DaySummary{
			Date:             day,
			Weekday:          day.Weekday(),
			Closed:           rules.Closed,
			AppointmentCount: len(dayAppointments),
			CoveragePercent:  domain.CoveragePercent(day, dayAppointments),
			FullyBooked:      domain.IsFullyBooked(day, dayAppointments),
		}
	}

	uc.logger.Info("GetWeekOverview: week of %s, %d appointments",
		domain.DayKey(weekStart), len(appointments))

	return &Response{
		WeekStart: weekStart,
		Days:      summaries,
	}, nil
}
