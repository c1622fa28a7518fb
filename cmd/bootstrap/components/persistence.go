package components

import (
	"meeting-room-reservation/internal/infra/readstore"
	"meeting-room-reservation/internal/infra/repository"
	sqlc "meeting-room-reservation/internal/infra/sqlc/generated"
	"meeting-room-reservation/internal/infra/uow"
	"meeting-room-reservation/internal/pkg/config"
	"meeting-room-reservation/internal/usecase/queries"
	"meeting-room-reservation/internal/usecase/shared"
	"meeting-room-reservation/internal/worker"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Room
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RoomReadQueries)),
		),
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			NewUnitOfWork,
			fx.As(new(shared.UnitOfWork)),
		),
		// Idempotency sweeping runs outside the request transaction
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.IdempotencyWriteQueries)),
		),
		fx.Annotate(
			repository.NewIdempotencyRepository,
			fx.As(new(worker.ExpiredKeyDeleter)),
		),
		// Notification outbox
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.NotificationWriteQueries)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(worker.JobStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewUnitOfWork(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config) *uow.PostgresUoW {
	return uow.NewPostgresUoW(pool, q, uow.Options{
		MaxRetries:  cfg.DB.TxMaxRetries,
		BackoffBase: cfg.DB.TxBackoffBase,
		LockTimeout: cfg.DB.LockTimeout,
	})
}
