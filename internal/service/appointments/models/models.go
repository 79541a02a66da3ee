package models

import (
	"time"

	"github.com/m04kA/NSS-ScheduleService/internal/domain"
	"github.com/m04kA/NSS-ScheduleService/pkg/types"
)

// AppointmentResponse модель записи, отдаваемая сервисом
type AppointmentResponse struct {
	ID              string
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int // Фактическая (после клампа) длительность
	ClientName      string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FromDomainAppointment конвертирует доменную запись в модель ответа
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              appt.ID,
		Date:            appt.Date,
		StartTime:       appt.StartTime,
		DurationMinutes: appt.EffectiveDuration(),
		ClientName:      appt.ClientName,
		Notes:           appt.Notes,
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}
}
