package roleservice

import (
	"context"
	"ecotrack/models"
	"ecotrack/providers"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	userA, userB := uuid.New(), uuid.New()
	require.NoError(t, cache.Set(ctx, "a1", userA, models.NewRoleSet(models.AdminRole)))
	require.NoError(t, cache.Set(ctx, "a2", userA, models.NewRoleSet(models.AdminRole)))
	require.NoError(t, cache.Set(ctx, "b1", userB, models.NewRoleSet(models.ITStaffRole)))

	roles, ok, err := cache.Get(ctx, "a1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, roles.Has(models.AdminRole))

	require.NoError(t, cache.DeleteUser(ctx, userA))
	_, ok, _ = cache.Get(ctx, "a1")
	assert.False(t, ok)
	_, ok, _ = cache.Get(ctx, "a2")
	assert.False(t, ok)
	_, ok, _ = cache.Get(ctx, "b1")
	assert.True(t, ok)

	require.NoError(t, cache.Delete(ctx, "b1"))
	_, ok, _ = cache.Get(ctx, "b1")
	assert.False(t, ok)
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Set(ctx, "sid", uuid.New(), models.NewRoleSet(models.StudentRole)))
	now = now.Add(2 * time.Minute)

	_, ok, err := cache.Get(ctx, "sid")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCacheSweepsAbandonedSessions(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	for _, sid := range []string{"gone1", "gone2", "gone3"} {
		require.NoError(t, cache.Set(ctx, sid, uuid.New(), models.NewRoleSet(models.StudentRole)))
	}
	now = now.Add(30 * time.Second)
	require.NoError(t, cache.Set(ctx, "fresh", uuid.New(), models.NewRoleSet(models.StudentRole)))
	now = now.Add(45 * time.Second)

	// the first three expired without ever being read again
	require.NoError(t, cache.Set(ctx, "next", uuid.New(), models.NewRoleSet(models.StudentRole)))
	assert.Len(t, cache.entries, 2)
	assert.Contains(t, cache.entries, "fresh")
	assert.Contains(t, cache.entries, "next")
}

func TestMemoryCacheConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(time.Minute)
	userID := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sid := uuid.NewString()
			_ = cache.Set(ctx, sid, userID, models.NewRoleSet(models.ITStaffRole))
			_, _, _ = cache.Get(ctx, sid)
			if i%10 == 0 {
				_ = cache.DeleteUser(ctx, userID)
			}
		}(i)
	}
	wg.Wait()
}

func TestRedisCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockRedis := providers.NewMockRedisProvider(ctrl)
	cache := NewRedisCache(mockRedis, time.Hour)
	userID := uuid.New()

	t.Run("set writes session and user index", func(t *testing.T) {
		mockRedis.EXPECT().
			Set(ctx, "roles:session:sid", gomock.Any(), time.Hour).
			DoAndReturn(func(_ context.Context, _ string, value interface{}, _ time.Duration) error {
				assert.Contains(t, value.(string), `"roles":["admin","it_staff"]`)
				return nil
			})
		mockRedis.EXPECT().SAdd(ctx, "roles:user:"+userID.String(), time.Hour, "sid").Return(nil)

		err := cache.Set(ctx, "sid", userID, models.NewRoleSet(models.ITStaffRole, models.AdminRole))
		assert.NoError(t, err)
	})

	t.Run("get decodes cached set", func(t *testing.T) {
		mockRedis.EXPECT().
			Get(ctx, "roles:session:sid").
			Return(`{"user_id":"`+userID.String()+`","roles":["environmental_officer"]}`, nil)

		roles, ok, err := cache.Get(ctx, "sid")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, roles.Has(models.EnvironmentalOfficerRole))
	})

	t.Run("get miss", func(t *testing.T) {
		mockRedis.EXPECT().Get(ctx, "roles:session:other").Return("", redis.Nil)

		_, ok, err := cache.Get(ctx, "other")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("delete user drops every session", func(t *testing.T) {
		userKey := "roles:user:" + userID.String()
		mockRedis.EXPECT().SMembers(ctx, userKey).Return([]string{"s1", "s2"}, nil)
		mockRedis.EXPECT().Del(ctx, "roles:session:s1", "roles:session:s2", userKey).Return(nil)

		assert.NoError(t, cache.DeleteUser(ctx, userID))
	})
}
