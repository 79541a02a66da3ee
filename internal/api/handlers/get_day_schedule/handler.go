package get_day_schedule

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/NSS-ScheduleService/internal/api/handlers"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

type Handler struct {
	useCase GetDayScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetDayScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/days/{date}
// Занятость, процент заполнения и признак полной брони пересчитываются на запрос
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	useCaseReq, err := ToUseCaseRequest(vars["date"])
	if err != nil {
		h.logger.Warn("GET /schedule/days/{date} - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.logger.Error("GET /schedule/days/{date} - Failed to get schedule: date=%s, error=%v",
			vars["date"], err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule/days/{date} - Schedule retrieved successfully: date=%s, appointments=%d",
		vars["date"], len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
