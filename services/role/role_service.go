package roleservice

import (
	"context"
	"ecotrack/models"
	"ecotrack/providers"
	accessservice "ecotrack/services/access"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type RoleService interface {
	RolesOf(ctx context.Context, sessionID string, userID uuid.UUID) (models.RoleSet, error)
	HasRole(ctx context.Context, sessionID string, userID uuid.UUID, role models.Role) (bool, error)
	IsStaff(ctx context.Context, sessionID string, userID uuid.UUID) (bool, error)
	Forget(ctx context.Context, sessionID string) error
	EnsureDefault(ctx context.Context, userID uuid.UUID) error
	Assign(ctx context.Context, actor models.Actor, userID uuid.UUID, role models.Role) error
	Revoke(ctx context.Context, actor models.Actor, userID uuid.UUID, role models.Role) error
}

// roleRegistry resolves role sets once per session and serves later checks
// from the cache.
type roleRegistry struct {
	repo   RoleRepository
	cache  RoleCache
	gate   accessservice.Gate
	logger providers.ZapLoggerProvider
}

func NewRoleService(repo RoleRepository, cache RoleCache, gate accessservice.Gate, logger providers.ZapLoggerProvider) RoleService {
	return &roleRegistry{repo: repo, cache: cache, gate: gate, logger: logger}
}

// RolesOf never returns an empty set: a user without role rows is a student.
func (s *roleRegistry) RolesOf(ctx context.Context, sessionID string, userID uuid.UUID) (models.RoleSet, error) {
	roles, ok, err := s.cache.Get(ctx, sessionID)
	if err != nil {
		s.logger.GetLogger().Warn("role cache read failed, falling back to database", zap.String("session_id", sessionID), zap.Error(err))
	}
	if ok {
		return roles.WithDefault(), nil
	}

	stored, err := s.repo.RolesByUser(ctx, userID)
	if err != nil {
		return models.RoleSet{}, err
	}
	roles = models.RoleSetFromStrings(stored).WithDefault()

	if err := s.cache.Set(ctx, sessionID, userID, roles); err != nil {
		s.logger.GetLogger().Warn("failed to cache roles", zap.String("session_id", sessionID), zap.Error(err))
	}
	return roles, nil
}

func (s *roleRegistry) HasRole(ctx context.Context, sessionID string, userID uuid.UUID, role models.Role) (bool, error) {
	roles, err := s.RolesOf(ctx, sessionID, userID)
	if err != nil {
		return false, err
	}
	return roles.Has(role), nil
}

func (s *roleRegistry) IsStaff(ctx context.Context, sessionID string, userID uuid.UUID) (bool, error) {
	roles, err := s.RolesOf(ctx, sessionID, userID)
	if err != nil {
		return false, err
	}
	return roles.IsStaff(), nil
}

// Forget is the sign-out hook.
func (s *roleRegistry) Forget(ctx context.Context, sessionID string) error {
	if err := s.cache.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.logger.GetLogger().Info("session roles dropped", zap.String("session_id", sessionID))
	return nil
}

func (s *roleRegistry) EnsureDefault(ctx context.Context, userID uuid.UUID) error {
	return s.repo.InsertDefaultRole(ctx, userID)
}

func (s *roleRegistry) Assign(ctx context.Context, actor models.Actor, userID uuid.UUID, role models.Role) error {
	if err := s.gate.Authorize(actor, models.ActionManageRoles, models.Resource{}); err != nil {
		return err
	}
	if _, err := models.ParseRole(string(role)); err != nil {
		return err
	}
	if err := s.repo.InsertRole(ctx, userID, role, actor.UserID); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	s.logger.GetLogger().Info("role assigned",
		zap.String("user_id", userID.String()),
		zap.String("role", string(role)),
		zap.String("by", actor.UserID.String()))
	return nil
}

func (s *roleRegistry) Revoke(ctx context.Context, actor models.Actor, userID uuid.UUID, role models.Role) error {
	if err := s.gate.Authorize(actor, models.ActionManageRoles, models.Resource{}); err != nil {
		return err
	}
	if _, err := models.ParseRole(string(role)); err != nil {
		return err
	}
	removed, err := s.repo.DeleteRole(ctx, userID, role)
	if err != nil {
		return err
	}
	if !removed {
		return errors.Wrapf(models.ErrNotFound, "user does not hold role %s", role)
	}
	s.invalidate(ctx, userID)
	s.logger.GetLogger().Info("role revoked",
		zap.String("user_id", userID.String()),
		zap.String("role", string(role)),
		zap.String("by", actor.UserID.String()))
	return nil
}

// invalidate makes every open session of userID re-read its roles.
func (s *roleRegistry) invalidate(ctx context.Context, userID uuid.UUID) {
	if err := s.cache.DeleteUser(ctx, userID); err != nil {
		s.logger.GetLogger().Error("failed to invalidate cached roles", zap.String("user_id", userID.String()), zap.Error(err))
	}
}
