package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"meeting-room-reservation/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var ErrInvalidDateValue = errors.New("invalid date value in pgtype.Date")

func UUIDPtrFromPgtype(pu pgtype.UUID) *uuid.UUID {
	if !pu.Valid {
		return nil
	}
	id := uuid.UUID(pu.Bytes)
	return &id
}

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	t := pt.Time
	return &t
}

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

func StringToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func DateToPgtype(d reservation.Date) pgtype.Date {
	if d.IsZero() {
		return pgtype.Date{Valid: false}
	}
	return pgtype.Date{Time: d.Time(), Valid: true}
}

func DatePtrToPgtype(d *reservation.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{Valid: false}
	}
	return DateToPgtype(*d)
}

func DatesToPgtype(ds []reservation.Date) []pgtype.Date {
	out := make([]pgtype.Date, len(ds))
	for i, d := range ds {
		out[i] = DateToPgtype(d)
	}
	return out
}

// DatePtrFromPgtype returns nil for NULL. Infinite dates have no calendar
// representation and are rejected.
func DatePtrFromPgtype(pd pgtype.Date) (*reservation.Date, error) {
	if !pd.Valid {
		return nil, nil
	}
	if pd.InfinityModifier != pgtype.Finite {
		return nil, ErrInvalidDateValue
	}
	d := reservation.DateOf(pd.Time)
	return &d, nil
}

func DatesFromPgtype(pds []pgtype.Date) ([]reservation.Date, error) {
	out := make([]reservation.Date, 0, len(pds))
	for _, pd := range pds {
		d, err := DatePtrFromPgtype(pd)
		if err != nil {
			return nil, err
		}
		if d != nil {
			out = append(out, *d)
		}
	}
	return out, nil
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
