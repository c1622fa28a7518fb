package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"meeting-room-reservation/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrLockNotOwned = errors.New("room lock is not owned by this holder")

// releaseScript deletes the key only while it still holds our token, so an expired
// lock re-acquired by another request is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end
`)

// RoomLocker serializes schedule writes per room across instances.
type RoomLocker struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRoomLocker(client redis.Cmdable, ttl time.Duration) *RoomLocker {
	return &RoomLocker{client: client, ttl: ttl}
}

// Acquire takes the lock for roomID. Contention returns errs.ErrRoomBusy.
// The returned release func is safe to call more than once.
func (l *RoomLocker) Acquire(ctx context.Context, roomID uuid.UUID) (func(), error) {
	key := roomLockKey(roomID)
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, errs.Wrap(err, "failed to acquire room lock")
	}
	if !ok {
		return nil, errs.ErrRoomBusy
	}

	released := false
	release := func() {
		if released {
			return
		}
		released = true
		// the request context may already be cancelled
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		if err := l.release(ctx, key, token); err != nil {
			slog.Warn("failed to release room lock", "room_id", roomID, "error", err)
		}
	}
	return release, nil
}

func (l *RoomLocker) release(ctx context.Context, key, token string) error {
	n, err := releaseScript.Run(ctx, l.client, []string{key}, token).Int()
	if err != nil {
		return errs.Wrap(err, "failed to release room lock")
	}
	if n == 0 {
		return ErrLockNotOwned
	}
	return nil
}

func roomLockKey(roomID uuid.UUID) string {
	return "lock:room:" + roomID.String()
}
