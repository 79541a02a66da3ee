package create_appointment

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/NSS-ScheduleService/internal/domain"
)

// UseCase use case для создания записи клиента
type UseCase struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	idGenerator     IDGenerator
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		idGenerator:     &UUIDGenerator{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Проверка доступности слота и вставка выполняются в одной сериализуемой
// транзакции: два конкурентных создания не могут оба пройти проверку по
// устаревшей картине занятости дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: date=%s, time=%s, duration=%d",
		req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Правила дня: на закрытый день записаться нельзя
	rules := domain.RulesForDate(req.Date)
	if rules.Closed {
		uc.logger.Warn("CreateAppointment: salon is closed on %s", req.Date.Format(domain.DateFormat))
		return nil, ErrSalonClosed
	}

	duration := domain.ClampDuration(req.DurationMinutes)

	var result *domain.Appointment

	// 3. Проверка доступности и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Актуальные записи дня (в PostgreSQL строки блокируются FOR UPDATE)
		existing, err := uc.appointmentRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 3.2. Лимит записей на день проверяется независимо от занятости сетки
		if len(existing) >= rules.MaxAppointments {
			uc.logger.Warn("CreateAppointment: day %s is fully booked by count (%d/%d)",
				req.Date.Format(domain.DateFormat), len(existing), rules.MaxAppointments)
			return ErrDayFullyBooked
		}

		// 3.3. Слот должен целиком помещаться до закрытия и не пересекать занятые ячейки
		if !domain.CanSchedule(req.Date, existing, req.StartTime, duration) {
			uc.logger.Warn("CreateAppointment: slot %s (%d min) not available on %s",
				req.StartTime, duration, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 3.4. Сохраняем запись с уже клампнутой длительностью
		appt := &domain.Appointment{
			ID:              uc.idGenerator.NewID(),
			Date:            domain.StartOfDay(req.Date),
			StartTime:       req.StartTime,
			DurationMinutes: duration,
			ClientName:      strings.TrimSpace(req.ClientName),
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	return &Response{
		ID:              result.ID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		ClientName:      result.ClientName,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
