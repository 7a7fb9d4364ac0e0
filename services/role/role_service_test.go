package roleservice

import (
	"context"
	"ecotrack/models"
	"ecotrack/providers"
	accessservice "ecotrack/services/access"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type registryFixture struct {
	repo    *MockRoleRepository
	cache   *MockRoleCache
	service RoleService
}

func newRegistryFixture(t *testing.T) registryFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()

	repo := NewMockRoleRepository(ctrl)
	cache := NewMockRoleCache(ctrl)
	return registryFixture{
		repo:    repo,
		cache:   cache,
		service: NewRoleService(repo, cache, accessservice.NewGate(), mockLogger),
	}
}

func TestRolesOf(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("cache hit skips database", func(t *testing.T) {
		f := newRegistryFixture(t)
		f.cache.EXPECT().Get(ctx, "sid").Return(models.NewRoleSet(models.AdminRole), true, nil)

		roles, err := f.service.RolesOf(ctx, "sid", userID)
		require.NoError(t, err)
		assert.True(t, roles.Has(models.AdminRole))
	})

	t.Run("cache miss loads and caches", func(t *testing.T) {
		f := newRegistryFixture(t)
		f.cache.EXPECT().Get(ctx, "sid").Return(models.RoleSet{}, false, nil)
		f.repo.EXPECT().RolesByUser(ctx, userID).Return([]string{"it_staff", "environmental_officer"}, nil)
		f.cache.EXPECT().Set(ctx, "sid", userID, gomock.Any()).Return(nil)

		roles, err := f.service.RolesOf(ctx, "sid", userID)
		require.NoError(t, err)
		assert.Equal(t, []string{"environmental_officer", "it_staff"}, roles.Strings())
	})

	t.Run("no rows resolves to student", func(t *testing.T) {
		f := newRegistryFixture(t)
		f.cache.EXPECT().Get(ctx, "sid").Return(models.RoleSet{}, false, nil)
		f.repo.EXPECT().RolesByUser(ctx, userID).Return([]string{}, nil)
		f.cache.EXPECT().Set(ctx, "sid", userID, gomock.Any()).Return(nil)

		staff, err := f.service.IsStaff(ctx, "sid", userID)
		require.NoError(t, err)
		assert.False(t, staff)
	})

	t.Run("cache failure falls back to database", func(t *testing.T) {
		f := newRegistryFixture(t)
		f.cache.EXPECT().Get(ctx, "sid").Return(models.RoleSet{}, false, errors.New("redis down"))
		f.repo.EXPECT().RolesByUser(ctx, userID).Return([]string{"admin"}, nil)
		f.cache.EXPECT().Set(ctx, "sid", userID, gomock.Any()).Return(errors.New("redis down"))

		ok, err := f.service.HasRole(ctx, "sid", userID, models.AdminRole)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("database failure", func(t *testing.T) {
		f := newRegistryFixture(t)
		f.cache.EXPECT().Get(ctx, "sid").Return(models.RoleSet{}, false, nil)
		f.repo.EXPECT().RolesByUser(ctx, userID).Return(nil, errors.New("db error"))

		_, err := f.service.RolesOf(ctx, "sid", userID)
		assert.Error(t, err)
	})
}

func TestForget(t *testing.T) {
	f := newRegistryFixture(t)
	ctx := context.Background()
	f.cache.EXPECT().Delete(ctx, "sid").Return(nil)

	assert.NoError(t, f.service.Forget(ctx, "sid"))
}

func TestAssignAndRevoke(t *testing.T) {
	ctx := context.Background()
	admin := models.NewActor(uuid.New(), "admin-sid", models.NewRoleSet(models.AdminRole))
	staff := models.NewActor(uuid.New(), "staff-sid", models.NewRoleSet(models.ITStaffRole))
	target := uuid.New()

	t.Run("admin assigns and invalidates sessions", func(t *testing.T) {
		f := newRegistryFixture(t)
		f.repo.EXPECT().InsertRole(ctx, target, models.ITStaffRole, admin.UserID).Return(nil)
		f.cache.EXPECT().DeleteUser(ctx, target).Return(nil)

		assert.NoError(t, f.service.Assign(ctx, admin, target, models.ITStaffRole))
	})

	t.Run("non admin is denied", func(t *testing.T) {
		f := newRegistryFixture(t)

		err := f.service.Assign(ctx, staff, target, models.AdminRole)
		var denied *models.AccessDenied
		require.True(t, errors.As(err, &denied))
		assert.Equal(t, models.ReasonAdminRequired, denied.Reason)
	})

	t.Run("unknown role", func(t *testing.T) {
		f := newRegistryFixture(t)

		err := f.service.Assign(ctx, admin, target, models.Role("janitor"))
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("revoke invalidates sessions", func(t *testing.T) {
		f := newRegistryFixture(t)
		f.repo.EXPECT().DeleteRole(ctx, target, models.AdminRole).Return(true, nil)
		f.cache.EXPECT().DeleteUser(ctx, target).Return(nil)

		assert.NoError(t, f.service.Revoke(ctx, admin, target, models.AdminRole))
	})

	t.Run("revoke role not held", func(t *testing.T) {
		f := newRegistryFixture(t)
		f.repo.EXPECT().DeleteRole(ctx, target, models.AdminRole).Return(false, nil)

		err := f.service.Revoke(ctx, admin, target, models.AdminRole)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}
