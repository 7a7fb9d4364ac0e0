package profileservice

import (
	"context"
	"ecotrack/models"
	"ecotrack/providers"
	accessservice "ecotrack/services/access"
	"strings"

	"go.uber.org/zap"
)

type ProfileService interface {
	UpsertOnLogin(ctx context.Context, identity models.Identity) (models.Profile, error)
	Get(ctx context.Context, actor models.Actor) (models.Profile, error)
	Update(ctx context.Context, actor models.Actor, patch models.ProfilePatch) (models.Profile, error)
}

type profileServiceStruct struct {
	repo   ProfileRepository
	gate   accessservice.Gate
	logger providers.ZapLoggerProvider
}

func NewProfileService(repo ProfileRepository, gate accessservice.Gate, logger providers.ZapLoggerProvider) ProfileService {
	return &profileServiceStruct{repo: repo, gate: gate, logger: logger}
}

func (s *profileServiceStruct) UpsertOnLogin(ctx context.Context, identity models.Identity) (models.Profile, error) {
	identity.Subject = strings.TrimSpace(identity.Subject)
	if identity.Subject == "" {
		return models.Profile{}, models.NewValidationError("subject", "is required")
	}
	identity.Email = strings.TrimSpace(strings.ToLower(identity.Email))

	p, err := s.repo.Upsert(ctx, identity)
	if err != nil {
		return models.Profile{}, err
	}
	s.logger.GetLogger().Debug("profile upserted", zap.String("user_id", p.ID.String()))
	return p, nil
}

func (s *profileServiceStruct) Get(ctx context.Context, actor models.Actor) (models.Profile, error) {
	if err := s.gate.Authorize(actor, models.ActionEditProfile, models.OwnedBy(actor.UserID)); err != nil {
		return models.Profile{}, err
	}
	return s.repo.Get(ctx, actor.UserID)
}

// Update only ever touches the caller's own profile.
func (s *profileServiceStruct) Update(ctx context.Context, actor models.Actor, patch models.ProfilePatch) (models.Profile, error) {
	if err := s.gate.Authorize(actor, models.ActionEditProfile, models.OwnedBy(actor.UserID)); err != nil {
		return models.Profile{}, err
	}

	fields := []struct {
		name  string
		value **string
	}{
		{"first_name", &patch.FirstName},
		{"last_name", &patch.LastName},
		{"department", &patch.Department},
	}
	empty := true
	for _, f := range fields {
		if *f.value == nil {
			continue
		}
		trimmed := strings.TrimSpace(**f.value)
		if trimmed == "" {
			return models.Profile{}, models.NewValidationError(f.name, "must not be blank")
		}
		*f.value = &trimmed
		empty = false
	}
	if empty {
		return models.Profile{}, models.NewValidationError("", "nothing to update")
	}

	return s.repo.Update(ctx, actor.UserID, patch)
}
