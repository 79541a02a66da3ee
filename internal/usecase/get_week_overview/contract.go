package get_week_overview

import (
	"context"
	"time"

	"github.com/m04kA/NSS-ScheduleService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetByDateRange получает записи за период [from, to] включительно
	GetByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
