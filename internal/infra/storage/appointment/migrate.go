package appointment

import (
	"context"
	"fmt"
)

// Схема одинаково валидна для SQLite и PostgreSQL:
// CURRENT_TIMESTAMP и TEXT-колонки поддерживаются обоими диалектами
const schemaDDL = `
CREATE TABLE IF NOT EXISTS appointments (
	id               TEXT PRIMARY KEY,
	appointment_date TEXT NOT NULL,
	start_time       TEXT NOT NULL,
	duration_minutes INTEGER NOT NULL,
	client_name      TEXT NOT NULL,
	notes            TEXT,
	created_at       TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at       TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

const indexDDL = `
CREATE INDEX IF NOT EXISTS idx_appointments_date ON appointments (appointment_date)`

// Migrate создает таблицу записей, если её ещё нет
// Для локального SQLite-файла это единственный шаг инициализации хранилища
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schemaDDL); err != nil {
		return fmt.Errorf("%w: create table: %v", ErrMigrate, err)
	}
	if _, err := r.db.ExecContext(ctx, indexDDL); err != nil {
		return fmt.Errorf("%w: create index: %v", ErrMigrate, err)
	}
	return nil
}
