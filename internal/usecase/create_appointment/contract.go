package create_appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/NSS-ScheduleService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetByDate получает все записи на дату (с блокировкой внутри транзакции)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// IDGenerator генерирует непрозрачные уникальные идентификаторы записей
// Ядро расписания идентификаторы не придумывает — это внешний коллаборатор
type IDGenerator interface {
	NewID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// UUIDGenerator генератор идентификаторов на основе UUID v4
type UUIDGenerator struct{}

// NewID возвращает новый случайный идентификатор
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
