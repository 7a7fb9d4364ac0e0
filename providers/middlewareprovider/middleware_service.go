package middlewareprovider

import (
	"context"
	"ecotrack/models"
	"ecotrack/providers"
	"ecotrack/utils"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type contextKey string

const actorContextKey contextKey = "actor_key"

// RoleResolver yields the role set of a signed-in session.
type RoleResolver interface {
	RolesOf(ctx context.Context, sessionID string, userID uuid.UUID) (models.RoleSet, error)
}

type DefaultAuthMiddleware struct {
	tokens *TokenIssuer
	roles  RoleResolver
	logger providers.ZapLoggerProvider
}

func NewAuthMiddlewareService(tokens *TokenIssuer, roles RoleResolver, logger providers.ZapLoggerProvider) providers.AuthMiddlewareService {
	return &DefaultAuthMiddleware{
		tokens: tokens,
		roles:  roles,
		logger: logger,
	}
}

func (a *DefaultAuthMiddleware) JWTAuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accessToken := bearer(r.Header.Get("Authorization"))

			if accessToken == "" {
				utils.RespondError(w, http.StatusUnauthorized, errors.New("missing access token"), "missing access token")
				return
			}

			userID, sessionID, err := a.tokens.ParseJWT(accessToken)
			if errors.Is(err, ErrInvalidToken) {
				refreshToken := r.Header.Get("Refresh_token")
				if refreshToken == "" {
					utils.RespondError(w, http.StatusUnauthorized, err, "access token expired, and refresh token missing")
					return
				}
				userID, sessionID, err = a.tokens.ParseRefreshToken(refreshToken)
				if err != nil {
					utils.RespondError(w, http.StatusUnauthorized, err, "invalid or expired refresh token")
					return
				}

				newAccessToken, newRefreshToken, err := a.GenerateSessionTokens(userID, sessionID)
				if err != nil {
					utils.RespondError(w, http.StatusInternalServerError, err, "failed to generate session tokens")
					return
				}
				w.Header().Set("Authorization", newAccessToken)
				w.Header().Set("Refresh_token", newRefreshToken)
			} else if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
				return
			}

			userUUID, err := uuid.Parse(userID)
			if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, err, "invalid user id")
				return
			}

			roles, err := a.roles.RolesOf(r.Context(), sessionID, userUUID)
			if err != nil {
				a.logger.GetLogger().Error("failed to resolve roles", zap.String("user_id", userID), zap.Error(err))
				utils.RespondError(w, http.StatusInternalServerError, err, "failed to fetch roles")
				return
			}

			actor := models.NewActor(userUUID, sessionID, roles)
			ctx := context.WithValue(r.Context(), actorContextKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole admits the request when the actor holds any of allowedRoles.
func (a *DefaultAuthMiddleware) RequireRole(allowedRoles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := a.GetActorFromContext(r)
			if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
				return
			}
			if !actor.Roles.HasAny(allowedRoles...) {
				utils.RespondError(w, http.StatusForbidden, errors.New("forbidden"), "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (a *DefaultAuthMiddleware) GetActorFromContext(r *http.Request) (models.Actor, error) {
	actor, ok := r.Context().Value(actorContextKey).(models.Actor)
	if !ok {
		return models.Actor{}, errors.New("actor not found in context")
	}
	return actor, nil
}

func (a *DefaultAuthMiddleware) GenerateSessionTokens(userID, sessionID string) (string, string, error) {
	accessToken, err := a.tokens.GenerateJWT(userID, sessionID)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate access token")
	}
	refreshToken, err := a.tokens.GenerateRefreshToken(userID, sessionID)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate refresh token")
	}
	return accessToken, refreshToken, nil
}

// WithActor stores actor on ctx the same way the auth middleware does.
func WithActor(ctx context.Context, actor models.Actor) context.Context {
	return context.WithValue(ctx, actorContextKey, actor)
}

func bearer(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}
