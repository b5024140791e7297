package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	"salon-queue/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	changeKeyPrefix = "queue:changed:"
	changeTTL       = 10 * time.Minute
)

// RedisChangeFeed stores the last queue change per location as unix millis. Stamps only
// move forward so a slow writer cannot hide a newer change.
type RedisChangeFeed struct {
	rdb *redis.Client
}

var touchScript = redis.NewScript(`
local cur = tonumber(redis.call("GET", KEYS[1]) or "0")
local at = tonumber(ARGV[1])
if at > cur then
  redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[2])
else
  redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return at
`)

func NewRedisChangeFeed(rdb *redis.Client) *RedisChangeFeed {
	return &RedisChangeFeed{rdb: rdb}
}

func changeKey(locationID uuid.UUID) string {
	return changeKeyPrefix + locationID.String()
}

func (f *RedisChangeFeed) Touch(ctx context.Context, locationID uuid.UUID, at time.Time) error {
	err := touchScript.Run(ctx, f.rdb, []string{changeKey(locationID)}, at.UnixMilli(), changeTTL.Milliseconds()).Err()
	if err != nil {
		return errs.Wrap(err, "touch queue change stamp")
	}
	return nil
}

func (f *RedisChangeFeed) LastChange(ctx context.Context, locationID uuid.UUID) (time.Time, bool, error) {
	v, err := f.rdb.Get(ctx, changeKey(locationID)).Result()
	if errs.Is(err, redis.Nil) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, errs.Wrap(err, "read queue change stamp")
	}
	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}, false, errs.Wrapf(err, "parse change stamp %q", v)
	}
	return time.UnixMilli(ms), true, nil
}

// MemoryChangeFeed is the single-instance fallback when Redis is not configured.
type MemoryChangeFeed struct {
	mu    sync.RWMutex
	stamp map[uuid.UUID]time.Time
}

func NewMemoryChangeFeed() *MemoryChangeFeed {
	return &MemoryChangeFeed{stamp: make(map[uuid.UUID]time.Time)}
}

func (f *MemoryChangeFeed) Touch(_ context.Context, locationID uuid.UUID, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if cur, ok := f.stamp[locationID]; !ok || at.After(cur) {
		f.stamp[locationID] = at
	}
	return nil
}

func (f *MemoryChangeFeed) LastChange(_ context.Context, locationID uuid.UUID) (time.Time, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	at, ok := f.stamp[locationID]
	return at, ok, nil
}
