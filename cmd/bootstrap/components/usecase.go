package components

import (
	"meeting-room-reservation/internal/domain/reservation"
	"meeting-room-reservation/internal/infra/cache"
	"meeting-room-reservation/internal/infra/metrics"
	"meeting-room-reservation/internal/pkg/clock"
	"meeting-room-reservation/internal/pkg/config"
	"meeting-room-reservation/internal/usecase"
	"meeting-room-reservation/internal/usecase/commands"
	"meeting-room-reservation/internal/usecase/queries"
	"meeting-room-reservation/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewClock,
	NewBookingValidator,
	NewRoomLocker,
	NewStatsCache,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewRoomQueries,
		NewReservationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewClock reports time in the booking zone so "today" is the campus date.
func NewClock(cfg config.Config) clock.Clock {
	return clock.NewZonedClock(cfg.Booking.Location())
}

func NewBookingValidator(clk clock.Clock, cfg config.Config) *reservation.Validator {
	return reservation.NewValidator(clk, reservation.Policy{
		RequirePurpose: cfg.Booking.RequirePurpose,
		MaxDates:       cfg.Booking.MaxDays,
		AllowPastDates: cfg.Booking.AllowPastDates,
	})
}

func NewRoomLocker(client *redis.Client, cfg config.Config) *cache.RoomLocker {
	return cache.NewRoomLocker(client, cfg.Booking.LockTTL)
}

func NewStatsCache(client *redis.Client, cfg config.Config) *cache.StatsCache {
	return cache.NewStatsCache(client, cfg.Redis.StatsTTL)
}

func NewReservationCommands(
	u shared.UnitOfWork,
	validator *reservation.Validator,
	locker *cache.RoomLocker,
	stats *cache.StatsCache,
	m *metrics.Metrics,
	clk clock.Clock,
	cfg config.Config,
) commands.ReservationCommands {
	return commands.NewReservationCommands(u, validator, locker, stats, m, clk, cfg.Booking.IdempotencyTTL)
}

func NewReservationQueries(
	repo queries.ReservationReadStore,
	rooms queries.RoomReadStore,
	stats *cache.StatsCache,
	m *metrics.Metrics,
) queries.ReservationQueries {
	return queries.NewReservationQueries(repo, rooms, stats, m)
}
