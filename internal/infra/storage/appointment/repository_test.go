package appointment

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NSS-ScheduleService/internal/domain"
	"github.com/m04kA/NSS-ScheduleService/pkg/ptr"
	"github.com/m04kA/NSS-ScheduleService/pkg/sqlbuilder"
	"github.com/m04kA/NSS-ScheduleService/pkg/types"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// Один connection, иначе каждое соединение получит свою :memory: базу
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewRepository(db, sqlbuilder.New(sqlbuilder.DialectSQLite))
	require.NoError(t, repo.Migrate(context.Background()))

	return repo
}

func testAppointment(id, dateKey, start string, duration int) *domain.Appointment {
	date, _ := time.Parse(domain.DateFormat, dateKey)
	return &domain.Appointment{
		ID:              id,
		Date:            date,
		StartTime:       types.TimeString(start),
		DurationMinutes: duration,
		ClientName:      "Анна П.",
		Notes:           ptr.Ptr("маникюр + покрытие"),
	}
}

func TestRepository_CreateAndGetByID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, testAppointment("a1", "2026-08-24", "10:00", 60))
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)
	assert.Equal(t, "2026-08-24", domain.DayKey(got.Date))
	assert.Equal(t, types.TimeString("10:00"), got.StartTime)
	assert.Equal(t, 60, got.DurationMinutes)
	assert.Equal(t, "Анна П.", got.ClientName)
	require.NotNil(t, got.Notes)
	assert.Equal(t, "маникюр + покрытие", *got.Notes)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestRepository_GetByDate_OrderedAndPartitioned(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, appt := range []*domain.Appointment{
		testAppointment("a2", "2026-08-24", "12:00", 30),
		testAppointment("a1", "2026-08-24", "09:00", 60),
		testAppointment("b1", "2026-08-25", "09:00", 60),
	} {
		_, err := repo.Create(ctx, appt)
		require.NoError(t, err)
	}

	monday, _ := time.Parse(domain.DateFormat, "2026-08-24")
	appts, err := repo.GetByDate(ctx, monday)
	require.NoError(t, err)

	// Запись от 25-го не попадает в выборку, сортировка по start_time
	require.Len(t, appts, 2)
	assert.Equal(t, "a1", appts[0].ID)
	assert.Equal(t, "a2", appts[1].ID)
}

func TestRepository_GetByDateRange(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, appt := range []*domain.Appointment{
		testAppointment("w1", "2026-08-24", "09:00", 30),
		testAppointment("w2", "2026-08-26", "10:00", 30),
		testAppointment("w3", "2026-08-30", "10:00", 30),
		testAppointment("out", "2026-09-01", "10:00", 30),
	} {
		_, err := repo.Create(ctx, appt)
		require.NoError(t, err)
	}

	from, _ := time.Parse(domain.DateFormat, "2026-08-24")
	to, _ := time.Parse(domain.DateFormat, "2026-08-30")

	appts, err := repo.GetByDateRange(ctx, from, to)
	require.NoError(t, err)

	require.Len(t, appts, 3)
	assert.Equal(t, "w1", appts[0].ID)
	assert.Equal(t, "w2", appts[1].ID)
	assert.Equal(t, "w3", appts[2].ID)
}

func TestRepository_Delete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, testAppointment("a1", "2026-08-24", "10:00", 60))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "a1"))

	_, err = repo.GetByID(ctx, "a1")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "a1"), ErrAppointmentNotFound)
}
