package roleservice

import (
	"context"
	"ecotrack/models"
	"ecotrack/providers"
	"sync"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RoleCache holds the resolved role set of each signed-in session.
type RoleCache interface {
	// Get reports a miss with ok == false and a nil error.
	Get(ctx context.Context, sessionID string) (roles models.RoleSet, ok bool, err error)
	Set(ctx context.Context, sessionID string, userID uuid.UUID, roles models.RoleSet) error
	Delete(ctx context.Context, sessionID string) error
	// DeleteUser drops every cached session of userID.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

const (
	sessionKeyPrefix = "roles:session:"
	userKeyPrefix    = "roles:user:"
)

type cachedRoles struct {
	UserID uuid.UUID `json:"user_id"`
	Roles  []string  `json:"roles"`
}

type RedisCache struct {
	redis providers.RedisProvider
	ttl   time.Duration
}

func NewRedisCache(redis providers.RedisProvider, ttl time.Duration) *RedisCache {
	return &RedisCache{redis: redis, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, sessionID string) (models.RoleSet, bool, error) {
	raw, err := c.redis.Get(ctx, sessionKeyPrefix+sessionID)
	if errors.Is(err, redis.Nil) {
		return models.RoleSet{}, false, nil
	}
	if err != nil {
		return models.RoleSet{}, false, errors.Wrap(err, "failed to read cached roles")
	}

	var entry cachedRoles
	if err := jsoniter.UnmarshalFromString(raw, &entry); err != nil {
		return models.RoleSet{}, false, errors.Wrap(err, "failed to decode cached roles")
	}
	return models.RoleSetFromStrings(entry.Roles), true, nil
}

func (c *RedisCache) Set(ctx context.Context, sessionID string, userID uuid.UUID, roles models.RoleSet) error {
	raw, err := jsoniter.MarshalToString(cachedRoles{UserID: userID, Roles: roles.Strings()})
	if err != nil {
		return errors.Wrap(err, "failed to encode roles")
	}
	if err := c.redis.Set(ctx, sessionKeyPrefix+sessionID, raw, c.ttl); err != nil {
		return errors.Wrap(err, "failed to cache roles")
	}
	if err := c.redis.SAdd(ctx, userKeyPrefix+userID.String(), c.ttl, sessionID); err != nil {
		return errors.Wrap(err, "failed to index session")
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, sessionID string) error {
	return errors.Wrap(c.redis.Del(ctx, sessionKeyPrefix+sessionID), "failed to drop cached roles")
}

func (c *RedisCache) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	userKey := userKeyPrefix + userID.String()
	sessions, err := c.redis.SMembers(ctx, userKey)
	if err != nil {
		return errors.Wrap(err, "failed to list user sessions")
	}
	keys := make([]string, 0, len(sessions)+1)
	for _, sid := range sessions {
		keys = append(keys, sessionKeyPrefix+sid)
	}
	keys = append(keys, userKey)
	return errors.Wrap(c.redis.Del(ctx, keys...), "failed to drop cached roles")
}

type memoryEntry struct {
	userID  uuid.UUID
	roles   models.RoleSet
	expires time.Time
}

// MemoryCache is the single-process fallback used when Redis is not configured.
type MemoryCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, sessionID string) (models.RoleSet, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[sessionID]
	c.mu.RUnlock()
	if !ok {
		return models.RoleSet{}, false, nil
	}
	if c.now().After(entry.expires) {
		_ = c.Delete(context.Background(), sessionID)
		return models.RoleSet{}, false, nil
	}
	return entry.roles, true, nil
}

func (c *MemoryCache) Set(_ context.Context, sessionID string, userID uuid.UUID, roles models.RoleSet) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for sid, entry := range c.entries {
		if now.After(entry.expires) {
			delete(c.entries, sid)
		}
	}
	c.entries[sessionID] = memoryEntry{userID: userID, roles: roles, expires: now.Add(c.ttl)}
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, sessionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, sessionID)
	return nil
}

func (c *MemoryCache) DeleteUser(_ context.Context, userID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for sid, entry := range c.entries {
		if entry.userID == userID {
			delete(c.entries, sid)
		}
	}
	return nil
}
