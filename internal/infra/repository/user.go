package repository

import (
	"context"

	"meeting-room-reservation/internal/domain/user"
	"meeting-room-reservation/internal/infra"
	sqlc "meeting-room-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (uuid.UUID, error)
}

// UserRepository mirrors directory entries pushed from the identity provider.
type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error) {
	params := sqlc.CreateUserParams{
		Email: u.Email().Value(),
		Name:  u.Name(),
		Role:  u.Role().String(),
	}

	id, err := r.queries.CreateUser(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}
