package create_appointment

import (
	"time"

	"github.com/m04kA/NSS-ScheduleService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	Date            time.Time        // День записи (время суток игнорируется)
	StartTime       types.TimeString // Время начала, на 30-минутной сетке
	DurationMinutes int              // Запрошенная длительность, до клампа
	ClientName      string           // Имя клиента, обязательное
	Notes           *string          // Комментарий, опционально
}

// Response модель ответа с созданной записью
type Response struct {
	ID              string
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int // Фактическая (после клампа) длительность
	ClientName      string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
