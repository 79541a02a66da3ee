package get_available_times

import (
	"time"

	"github.com/m04kA/NSS-ScheduleService/pkg/types"
)

// Request модель запроса на получение доступного времени начала
type Request struct {
	Date            time.Time // День, на который подбирается время
	DurationMinutes int       // Запрошенная длительность, до клампа
}

// Response модель ответа со списком доступного времени
type Response struct {
	Date            time.Time
	DurationMinutes int                // Фактическая (после клампа) длительность
	Times           []types.TimeString // Упорядоченный список времени начала
}
