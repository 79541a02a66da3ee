package get_day_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NSS-ScheduleService/internal/domain"
	"github.com/m04kA/NSS-ScheduleService/pkg/types"
)

type fakeRepo struct {
	appointments []*domain.Appointment
	getErr       error
	calls        int
}

func (r *fakeRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.Appointment, error) {
	r.calls++
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.appointments, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func monday() time.Time {
	return time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)
}

func appt(start string, duration int) *domain.Appointment {
	return &domain.Appointment{
		ID:              "a-" + start,
		Date:            monday(),
		StartTime:       types.TimeString(start),
		DurationMinutes: duration,
		ClientName:      "Анна П.",
	}
}

func TestExecute_CellsMatchOccupancy(t *testing.T) {
	repo := &fakeRepo{appointments: []*domain.Appointment{appt("10:00", 60)}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday()})
	require.NoError(t, err)

	// Понедельник: 08:00–16:00, 16 ячеек
	require.Len(t, resp.Cells, 16)
	assert.Equal(t, types.TimeString("08:00"), resp.Cells[0].StartTime)
	assert.Equal(t, types.TimeString("15:30"), resp.Cells[15].StartTime)

	occupied := map[string]bool{}
	for _, cell := range resp.Cells {
		occupied[cell.StartTime.String()] = cell.Occupied
	}
	assert.True(t, occupied["10:00"])
	assert.True(t, occupied["10:30"])
	assert.False(t, occupied["09:30"])
	assert.False(t, occupied["11:00"])

	// 2 ячейки из 16
	assert.InDelta(t, 12.5, resp.CoveragePercent, 0.001)
	assert.False(t, resp.FullyBooked)

	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "a-10:00", resp.Appointments[0].ID)
	assert.Equal(t, 60, resp.Appointments[0].DurationMinutes)
}

func TestExecute_ClosedDayEmptySchedule(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewUseCase(repo, nopLogger{})

	sunday := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), &Request{Date: sunday})
	require.NoError(t, err)

	assert.True(t, resp.Rules.Closed)
	assert.Empty(t, resp.Cells)
	assert.Empty(t, resp.Appointments)
	assert.Zero(t, resp.CoveragePercent)
	assert.False(t, resp.FullyBooked)
	assert.Zero(t, repo.calls, "closed day is answered without touching storage")
}

func TestExecute_FullyBookedBySaturatedGrid(t *testing.T) {
	repo := &fakeRepo{appointments: []*domain.Appointment{
		appt("08:00", 90), appt("09:30", 90), appt("11:00", 90),
		appt("12:30", 90), appt("14:00", 90), appt("15:30", 30),
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday()})
	require.NoError(t, err)

	assert.InDelta(t, 100.0, resp.CoveragePercent, 0.001)
	assert.True(t, resp.FullyBooked)
}

func TestExecute_EffectiveDurationReported(t *testing.T) {
	// Хранимая длительность вне [30, 90] отдаётся клампнутой
	repo := &fakeRepo{appointments: []*domain.Appointment{appt("10:00", 500)}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday()})
	require.NoError(t, err)

	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, 90, resp.Appointments[0].DurationMinutes)
}

func TestExecute_MissingDate(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryErrorWrapped(t *testing.T) {
	uc := NewUseCase(&fakeRepo{getErr: assert.AnError}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: monday()})
	assert.ErrorIs(t, err, ErrInternal)
}
