package sessionservice

import (
	"context"
	"ecotrack/models"
	"ecotrack/providers"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrIdentityRejected means the identity provider did not vouch for the token.
var ErrIdentityRejected = errors.New("identity token rejected")

// ProfileUpserter creates the profile on first sign-in.
type ProfileUpserter interface {
	UpsertOnLogin(ctx context.Context, identity models.Identity) (models.Profile, error)
}

// SessionRoles seeds, resolves and forgets the roles bound to a session.
type SessionRoles interface {
	EnsureDefault(ctx context.Context, userID uuid.UUID) error
	RolesOf(ctx context.Context, sessionID string, userID uuid.UUID) (models.RoleSet, error)
	Forget(ctx context.Context, sessionID string) error
}

type Session struct {
	UserID       uuid.UUID      `json:"user_id"`
	SessionID    string         `json:"session_id"`
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	Roles        []string       `json:"roles"`
	Profile      models.Profile `json:"profile"`
}

type SessionService interface {
	Login(ctx context.Context, idToken string) (Session, error)
	Logout(ctx context.Context, actor models.Actor) error
}

type sessionServiceStruct struct {
	identity providers.FirebaseProvider
	profiles ProfileUpserter
	roles    SessionRoles
	tokens   providers.AuthMiddlewareService
	logger   providers.ZapLoggerProvider
}

func NewSessionService(identity providers.FirebaseProvider, profiles ProfileUpserter, roles SessionRoles, tokens providers.AuthMiddlewareService, logger providers.ZapLoggerProvider) SessionService {
	return &sessionServiceStruct{
		identity: identity,
		profiles: profiles,
		roles:    roles,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login exchanges an identity-provider token for a new session. Every login
// gets a fresh session id, so its role set is resolved from the database.
func (s *sessionServiceStruct) Login(ctx context.Context, idToken string) (Session, error) {
	idToken = strings.TrimSpace(idToken)
	if idToken == "" {
		return Session{}, errors.Wrap(ErrIdentityRejected, "missing token")
	}

	identity, err := s.identity.VerifyIDToken(ctx, idToken)
	if err != nil {
		s.logger.GetLogger().Info("identity token rejected", zap.Error(err))
		return Session{}, errors.Wrap(ErrIdentityRejected, err.Error())
	}

	profile, err := s.profiles.UpsertOnLogin(ctx, identity)
	if err != nil {
		return Session{}, err
	}
	if err := s.roles.EnsureDefault(ctx, profile.ID); err != nil {
		return Session{}, err
	}

	sessionID := uuid.NewString()
	roles, err := s.roles.RolesOf(ctx, sessionID, profile.ID)
	if err != nil {
		return Session{}, err
	}

	accessToken, refreshToken, err := s.tokens.GenerateSessionTokens(profile.ID.String(), sessionID)
	if err != nil {
		return Session{}, err
	}

	s.logger.GetLogger().Info("session started",
		zap.String("user_id", profile.ID.String()),
		zap.String("session_id", sessionID),
		zap.Strings("roles", roles.Strings()))
	return Session{
		UserID:       profile.ID,
		SessionID:    sessionID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Roles:        roles.Strings(),
		Profile:      profile,
	}, nil
}

func (s *sessionServiceStruct) Logout(ctx context.Context, actor models.Actor) error {
	if !actor.Authenticated() {
		return models.Deny("logout", models.ReasonNotAuthenticated)
	}
	if err := s.roles.Forget(ctx, actor.SessionID); err != nil {
		return err
	}
	s.logger.GetLogger().Info("session ended", zap.String("session_id", actor.SessionID))
	return nil
}
