package create_appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createAppointment "github.com/m04kA/NSS-ScheduleService/internal/usecase/create_appointment"
	"github.com/m04kA/NSS-ScheduleService/pkg/types"
)

type fakeUseCase struct {
	resp *createAppointment.Response
	err  error
	got  *createAppointment.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createAppointment.Response{
		ID:              "b7f2",
		Date:            time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 90,
		ClientName:      "Анна П.",
		CreatedAt:       time.Date(2026, time.August, 20, 12, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2026, time.August, 20, 12, 0, 0, 0, time.UTC),
	}}

	rec := doRequest(t, uc, `{"date":"2026-08-24","startTime":"10:00","durationMinutes":120,"clientName":"Анна П."}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "b7f2", resp.ID)
	assert.Equal(t, "2026-08-24", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	// Отдаётся фактическая длительность, не запрошенная
	assert.Equal(t, 90, resp.DurationMinutes)

	// Запрошенная длительность передаётся в use case как есть
	require.NotNil(t, uc.got)
	assert.Equal(t, 120, uc.got.DurationMinutes)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"date":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"date":"24.08.2026","startTime":"10:00","durationMinutes":60,"clientName":"Анна"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"salon closed", createAppointment.ErrSalonClosed, http.StatusBadRequest},
		{"invalid time slot", createAppointment.ErrInvalidTimeSlot, http.StatusBadRequest},
		{"invalid input", createAppointment.ErrInvalidInput, http.StatusBadRequest},
		{"slot not available", createAppointment.ErrSlotNotAvailable, http.StatusConflict},
		{"day fully booked", createAppointment.ErrDayFullyBooked, http.StatusConflict},
		{"internal", createAppointment.ErrInternal, http.StatusInternalServerError},
	}

	body := `{"date":"2026-08-24","startTime":"10:00","durationMinutes":60,"clientName":"Анна"}`
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tc.err}, body)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}
