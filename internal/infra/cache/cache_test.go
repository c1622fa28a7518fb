//go:build e2e

package cache_test

import (
	"context"
	"testing"
	"time"

	"meeting-room-reservation/internal/domain/reservation"
	"meeting-room-reservation/internal/infra/cache"
	"meeting-room-reservation/internal/pkg/config"
	"meeting-room-reservation/internal/pkg/errs"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type CacheTestSuite struct {
	suite.Suite
	ctx       context.Context
	container testcontainers.Container
	client    *redis.Client
	cleanup   func()
}

func TestCacheTestSuite(t *testing.T) {
	suite.Run(t, new(CacheTestSuite))
}

func (s *CacheTestSuite) SetupSuite() {
	s.ctx = context.Background()

	ctx, cancel := context.WithTimeout(s.ctx, 60*time.Second)
	defer cancel()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	s.Require().NoError(err, "failed to start Redis container")
	s.container = container

	host, err := container.Host(ctx)
	s.Require().NoError(err)
	port, err := container.MappedPort(ctx, nat.Port("6379/tcp"))
	s.Require().NoError(err)

	client, cleanup, err := cache.Connect(config.RedisConfig{Host: host, Port: port.Port()})
	s.Require().NoError(err)
	s.client = client
	s.cleanup = cleanup
}

func (s *CacheTestSuite) TearDownSuite() {
	if s.cleanup != nil {
		s.cleanup()
	}
	if s.container != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = s.container.Terminate(ctx)
	}
}

func (s *CacheTestSuite) SetupTest() {
	s.Require().NoError(s.client.FlushDB(s.ctx).Err())
}

func (s *CacheTestSuite) TestRoomLocker() {
	locker := cache.NewRoomLocker(s.client, 5*time.Second)
	roomID := uuid.New()

	s.Run("second holder is refused until release", func() {
		release, err := locker.Acquire(s.ctx, roomID)
		s.Require().NoError(err)

		_, err = locker.Acquire(s.ctx, roomID)
		s.ErrorIs(err, errs.ErrRoomBusy)

		release()
		release()

		again, err := locker.Acquire(s.ctx, roomID)
		s.Require().NoError(err)
		again()
	})

	s.Run("locks are per room", func() {
		first, err := locker.Acquire(s.ctx, uuid.New())
		s.Require().NoError(err)
		defer first()

		second, err := locker.Acquire(s.ctx, uuid.New())
		s.Require().NoError(err)
		second()
	})

	s.Run("expired lock taken by another holder is not released", func() {
		short := cache.NewRoomLocker(s.client, 100*time.Millisecond)
		stale, err := short.Acquire(s.ctx, roomID)
		s.Require().NoError(err)

		s.Eventually(func() bool {
			n, err := s.client.Exists(s.ctx, "lock:room:"+roomID.String()).Result()
			return err == nil && n == 0
		}, 2*time.Second, 20*time.Millisecond)

		current, err := locker.Acquire(s.ctx, roomID)
		s.Require().NoError(err)
		stale()

		_, err = locker.Acquire(s.ctx, roomID)
		s.ErrorIs(err, errs.ErrRoomBusy)
		current()
	})
}

func (s *CacheTestSuite) TestStatsCache() {
	stats := cache.NewStatsCache(s.client, time.Minute)
	want := reservation.Stats{Total: 5, Pending: 2, Approved: 1, Rejected: 1, Unrecognized: 1}

	s.Run("miss then hit", func() {
		_, err := stats.Get(s.ctx, "room=all")
		s.ErrorIs(err, cache.ErrCacheMiss)

		s.Require().NoError(stats.Set(s.ctx, "room=all", want))
		got, err := stats.Get(s.ctx, "room=all")
		s.Require().NoError(err)
		s.Equal(want, got)
	})

	s.Run("invalidate drops every filter", func() {
		s.Require().NoError(stats.Set(s.ctx, "room=all", want))
		s.Require().NoError(stats.Set(s.ctx, "room=a", want))

		s.Require().NoError(stats.Invalidate(s.ctx))

		_, err := stats.Get(s.ctx, "room=all")
		s.ErrorIs(err, cache.ErrCacheMiss)
		_, err = stats.Get(s.ctx, "room=a")
		s.ErrorIs(err, cache.ErrCacheMiss)
	})

	s.Run("entries expire", func() {
		short := cache.NewStatsCache(s.client, 100*time.Millisecond)
		s.Require().NoError(short.Set(s.ctx, "room=b", want))

		s.Eventually(func() bool {
			_, err := short.Get(s.ctx, "room=b")
			return errs.Is(err, cache.ErrCacheMiss)
		}, 2*time.Second, 20*time.Millisecond)
	})
}
