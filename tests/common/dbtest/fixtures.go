//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, name, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, strings.Split(email, "@")[0], role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestRoom(t *testing.T, db DBLike, name string, active bool) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO rooms (id, name, building, capacity, is_active) VALUES ($1, $2, 'Test Building', 10, $3) ON CONFLICT (name) DO NOTHING",
		roomID, name, active)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM rooms WHERE name = $1", name).Scan(&roomID)
	}

	return roomID
}

// InsertLegacyReservation writes a row the way older imports did: a raw status label and
// no booking windows. It lets tests exercise status normalization.
func InsertLegacyReservation(t *testing.T, db DBLike, roomID, requestedBy uuid.UUID, status string, date time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO reservations (id, room_id, requested_by, purpose, status, start_minute, end_minute, range_start, range_end)
		VALUES ($1, $2, $3, 'Legacy import', $4, 540, 600, $5, $5)`,
		id, roomID, requestedBy, status, date)
	require.NoError(t, err)

	_, err = db.Exec(ctx, "INSERT INTO reservation_dates (reservation_id, booking_date) VALUES ($1, $2)", id, date)
	require.NoError(t, err)

	return id
}

// SeedReferenceData inserts the rooms every test database starts with.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO rooms (name, building, capacity) VALUES
		    ('Meeting Room 1', 'Administration Building', 12),
		    ('Meeting Room 2', 'Administration Building', 20)
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

// resetTables lists every application table.
var resetTables = []string{
	"booking_windows",
	"reservation_dates",
	"reservations",
	"idempotency_keys",
	"notification_jobs",
	"rooms",
	"users",
}

// ResetDB truncates all application tables and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, "TRUNCATE "+strings.Join(resetTables, ", ")+" RESTART IDENTITY CASCADE"); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	return SeedReferenceData(pool)
}
