package get_day_schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/NSS-ScheduleService/internal/domain"
)

// UseCase use case для получения расписания дня: занятость по ячейкам,
// процент заполнения, признак полной брони и список записей
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

// Execute выполняет use case получения расписания дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySchedule: date=%s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		uc.logger.Warn("GetDaySchedule: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	rules := domain.RulesForDate(req.Date)

	// Закрытый день: пустое расписание без похода в хранилище
	if rules.Closed {
		uc.logger.Info("GetDaySchedule: salon is closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:         req.Date,
			Rules:        rules,
			Cells:        []Cell{},
			Appointments: []Appointment{},
		}, nil
	}

	appointments, err := uc.appointmentRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// Сетка слотов и битовая карта занятости имеют одинаковую длину:
	// по одной ячейке на каждые 30 минут рабочего окна
	grid := domain.SlotGridForRules(rules)
	occupancy := domain.BuildOccupancy(req.Date, appointments)

	cells := make([]Cell, len(grid))
	for i, slot := range grid {
		cells[i] = Cell{StartTime: slot, Occupied: occupancy[i]}
	}

	response := &Response{
		Date:            req.Date,
		Rules:           rules,
		Cells:           cells,
		CoveragePercent: occupancy.CoveragePercent(),
		FullyBooked:     domain.IsFullyBooked(req.Date, appointments),
		Appointments:    fromDomainAppointments(appointments),
	}

	uc.logger.Info("GetDaySchedule: date=%s, appointments=%d, coverage=%.1f%%, fullyBooked=%t",
		req.Date.Format(domain.DateFormat), len(appointments), response.CoveragePercent, response.FullyBooked)

	return response, nil
}
