package get_available_times

import (
	"context"
	"fmt"

	"github.com/m04kA/NSS-ScheduleService/internal/domain"
	"github.com/m04kA/NSS-ScheduleService/pkg/types"
)

// UseCase use case для подбора доступного времени начала записи
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

// Execute выполняет use case подбора времени
// Пустой список — штатный результат (закрытый день, заполненная сетка),
// а не ошибка; длительность вне [30, 90] молча клампится
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTimes: date=%s, duration=%d",
		req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableTimes: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	duration := domain.ClampDuration(req.DurationMinutes)

	// 2. Закрытый день: сразу пустой результат, в хранилище не ходим
	rules := domain.RulesForDate(req.Date)
	if rules.Closed {
		uc.logger.Info("GetAvailableTimes: salon is closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:            req.Date,
			DurationMinutes: duration,
			Times:           []types.TimeString{},
		}, nil
	}

	// 3. Существующие записи дня
	existing, err := uc.appointmentRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 4. Поиск свободных слотов по битовой карте занятости
	times := domain.AvailableStartTimes(req.Date, existing, duration)

	uc.logger.Info("GetAvailableTimes: %d options for date=%s, duration=%d",
		len(times), req.Date.Format(domain.DateFormat), duration)

	return &Response{
		Date:            req.Date,
		DurationMinutes: duration,
		Times:           times,
	}, nil
}
