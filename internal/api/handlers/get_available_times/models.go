package get_available_times

import (
	"time"

	"github.com/m04kA/NSS-ScheduleService/internal/domain"
	getAvailableTimes "github.com/m04kA/NSS-ScheduleService/internal/usecase/get_available_times"
)

// AvailableTimesResponse HTTP response model
type AvailableTimesResponse struct {
	Date            string   `json:"date"`
	DurationMinutes int      `json:"durationMinutes"`
	Times           []string `json:"times"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableTimes.Response) *AvailableTimesResponse {
	times := make([]string, len(resp.Times))
	for i, ts := range resp.Times {
		times[i] = ts.String()
	}

	return &AvailableTimesResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Times:           times,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(dateStr string, durationMinutes int) (*getAvailableTimes.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableTimes.Request{
		Date:            date,
		DurationMinutes: durationMinutes,
	}, nil
}
