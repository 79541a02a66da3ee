package create_appointment

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
	createErr    error
}

func (r *fakeRepo) GetByDate(_ context.Context, date time.Time) ([]*domain.Appointment, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	var out []*domain.Appointment
	for _, appt := range r.appointments {
		if appt.IsOnDate(date) {
			out = append(out, appt)
		}
	}
	return out, nil
}

func (r *fakeRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	created := *appt
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.appointments = append(r.appointments, &created)
	return &created, nil
}

// fakeTxManager выполняет fn без настоящей транзакции
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeRepo, txMgr *fakeTxManager) *UseCase {
	return NewUseCase(repo, txMgr, nopLogger{})
}

func validRequest(date time.Time, start string) *Request {
	return &Request{
		Date:            date,
		StartTime:       types.TimeString(start),
		DurationMinutes: 60,
		ClientName:      "Анна П.",
	}
}

func monday() time.Time {
	return time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)
}

func existing(date time.Time, start string, duration int) *domain.Appointment {
	return &domain.Appointment{
		ID:              "existing-" + start,
		Date:            date,
		StartTime:       types.TimeString(start),
		DurationMinutes: duration,
		ClientName:      "Мария К.",
	}
}

func TestExecute_CreatesAppointment(t *testing.T) {
	repo := &fakeRepo{}
	txMgr := &fakeTxManager{}
	uc := newTestUseCase(repo, txMgr)

	resp, err := uc.Execute(context.Background(), validRequest(monday(), "10:00"))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, 1, txMgr.calls, "check and insert must run inside a transaction")
	require.Len(t, repo.appointments, 1)
}

func TestExecute_ClampsDuration(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, &fakeTxManager{})

	req := validRequest(monday(), "10:00")
	req.DurationMinutes = 500

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Сохраняется уже клампнутая длительность
	assert.Equal(t, 90, resp.DurationMinutes)
	assert.Equal(t, 90, repo.appointments[0].DurationMinutes)

	req = validRequest(monday(), "13:00")
	req.DurationMinutes = 10

	resp, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 30, resp.DurationMinutes)
}

func TestExecute_SalonClosedOnSunday(t *testing.T) {
	repo := &fakeRepo{}
	txMgr := &fakeTxManager{}
	uc := newTestUseCase(repo, txMgr)

	sunday := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), validRequest(sunday, "10:00"))
	assert.ErrorIs(t, err, ErrSalonClosed)
	assert.Zero(t, txMgr.calls, "closed day is rejected before touching storage")
}

func TestExecute_SlotNotAvailable(t *testing.T) {
	repo := &fakeRepo{appointments: []*domain.Appointment{existing(monday(), "10:00", 60)}}
	uc := newTestUseCase(repo, &fakeTxManager{})

	// Пересечение с существующей записью
	_, err := uc.Execute(context.Background(), validRequest(monday(), "09:30"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// Не помещается до закрытия
	_, err = uc.Execute(context.Background(), validRequest(monday(), "15:30"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_DayFullyBookedByCount(t *testing.T) {
	saturday := time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC)

	// Суббота: лимит 3 записи, сетка при этом не заполнена
	repo := &fakeRepo{appointments: []*domain.Appointment{
		existing(saturday, "09:00", 30),
		existing(saturday, "10:00", 30),
		existing(saturday, "11:00", 30),
	}}
	uc := newTestUseCase(repo, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest(saturday, "13:00"))
	assert.ErrorIs(t, err, ErrDayFullyBooked)
}

func TestExecute_InvalidTimeSlot(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeTxManager{})

	req := validRequest(monday(), "10:15")
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeTxManager{})
	ctx := context.Background()

	req := validRequest(monday(), "10:00")
	req.ClientName = "   "
	_, err := uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest(monday(), "10:00")
	req.StartTime = ""
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest(time.Time{}, "10:00")
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryErrorWrapped(t *testing.T) {
	repo := &fakeRepo{getErr: assert.AnError}
	uc := newTestUseCase(repo, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest(monday(), "10:00"))
	assert.ErrorIs(t, err, ErrInternal)
}
