package readstore

import (
	"context"

	"meeting-room-reservation/internal/infra"
	sqlc "meeting-room-reservation/internal/infra/sqlc/generated"
	"meeting-room-reservation/internal/pkg/pgconv"
	"meeting-room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomReadQueries interface {
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	ListRooms(ctx context.Context, db sqlc.DBTX, onlyActive bool) ([]sqlc.Rooms, error)
}

type RoomReadStore struct {
	queries RoomReadQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries RoomReadQueries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row, err := r.queries.GetRoomByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}

	return toRoomView(row), nil
}

func (r *RoomReadStore) List(ctx context.Context, onlyActive bool) ([]*queries.RoomView, error) {
	rows, err := r.queries.ListRooms(ctx, r.db, onlyActive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}

	result := make([]*queries.RoomView, len(rows))
	for i, row := range rows {
		result[i] = toRoomView(row)
	}
	return result, nil
}

func toRoomView(row sqlc.Rooms) *queries.RoomView {
	return &queries.RoomView{
		ID:        row.ID,
		Name:      row.Name,
		Building:  row.Building,
		Capacity:  row.Capacity,
		IsActive:  row.IsActive,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
