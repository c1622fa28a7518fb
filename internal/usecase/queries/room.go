package queries

import (
	"context"

	"meeting-room-reservation/internal/infra"
	"meeting-room-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRoomNotFound = errs.ErrRoomNotFound

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context, onlyActive bool) ([]*RoomView, error)
}

type RoomQueries interface {
	List(ctx context.Context, includeInactive bool) ([]*RoomView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
}

type roomQueriesImpl struct {
	repo RoomReadStore
}

func NewRoomQueries(repo RoomReadStore) RoomQueries {
	return &roomQueriesImpl{repo: repo}
}

func (q *roomQueriesImpl) List(ctx context.Context, includeInactive bool) ([]*RoomView, error) {
	return q.repo.List(ctx, !includeInactive)
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	room, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}
