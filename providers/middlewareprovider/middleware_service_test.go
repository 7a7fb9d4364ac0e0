package middlewareprovider

import (
	"context"
	"ecotrack/models"
	"ecotrack/providers"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type roleResolverFunc func(ctx context.Context, sessionID string, userID uuid.UUID) (models.RoleSet, error)

func (f roleResolverFunc) RolesOf(ctx context.Context, sessionID string, userID uuid.UUID) (models.RoleSet, error) {
	return f(ctx, sessionID, userID)
}

func newTestIssuer(now time.Time) *TokenIssuer {
	issuer := NewTokenIssuer("access-secret", "refresh-secret", 15*time.Minute, time.Hour)
	issuer.now = func() time.Time { return now }
	return issuer
}

func TestTokenIssuer(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	issuer := newTestIssuer(now)
	userID := uuid.NewString()

	t.Run("round trip", func(t *testing.T) {
		token, err := issuer.GenerateJWT(userID, "sid-1")
		require.NoError(t, err)

		sub, sid, err := issuer.ParseJWT(token)
		require.NoError(t, err)
		assert.Equal(t, userID, sub)
		assert.Equal(t, "sid-1", sid)
	})

	t.Run("expired access token", func(t *testing.T) {
		token, err := issuer.GenerateJWT(userID, "sid-1")
		require.NoError(t, err)

		later := newTestIssuer(now.Add(time.Hour))
		_, _, err = later.ParseJWT(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		refresh, err := issuer.GenerateRefreshToken(userID, "sid-1")
		require.NoError(t, err)

		_, _, err = issuer.ParseJWT(refresh)
		assert.Error(t, err)

		sub, _, err := issuer.ParseRefreshToken(refresh)
		require.NoError(t, err)
		assert.Equal(t, userID, sub)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenIssuer("other", "other", time.Minute, time.Minute)
		other.now = issuer.now
		token, err := other.GenerateJWT(userID, "sid-1")
		require.NoError(t, err)

		_, _, err = issuer.ParseJWT(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestJWTAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	issuer := newTestIssuer(now)
	userID := uuid.New()

	roles := roleResolverFunc(func(ctx context.Context, sessionID string, id uuid.UUID) (models.RoleSet, error) {
		if sessionID == "broken" {
			return models.RoleSet{}, errors.New("redis down")
		}
		return models.NewRoleSet(models.ITStaffRole), nil
	})

	auth := NewAuthMiddlewareService(issuer, roles, mockLogger)

	access, err := issuer.GenerateJWT(userID.String(), "sid-1")
	require.NoError(t, err)
	refresh, err := issuer.GenerateRefreshToken(userID.String(), "sid-1")
	require.NoError(t, err)
	expired, err := newTestIssuer(now.Add(-time.Hour)).GenerateJWT(userID.String(), "sid-1")
	require.NoError(t, err)
	brokenSession, err := issuer.GenerateJWT(userID.String(), "broken")
	require.NoError(t, err)

	testCases := []struct {
		name            string
		authorization   string
		refreshToken    string
		expectedStatus  int
		expectReissued  bool
		expectNextCalls bool
	}{
		{
			name:            "valid bearer token",
			authorization:   "Bearer " + access,
			expectedStatus:  http.StatusOK,
			expectNextCalls: true,
		},
		{
			name:           "missing token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired without refresh token",
			authorization:  "Bearer " + expired,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:            "expired with refresh token reissues",
			authorization:   "Bearer " + expired,
			refreshToken:    refresh,
			expectedStatus:  http.StatusOK,
			expectReissued:  true,
			expectNextCalls: true,
		},
		{
			name:           "role lookup failure",
			authorization:  brokenSession,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got models.Actor
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				actor, ctxErr := auth.GetActorFromContext(r)
				require.NoError(t, ctxErr)
				got = actor
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/devices", nil)
			if tc.authorization != "" {
				req.Header.Set("Authorization", tc.authorization)
			}
			if tc.refreshToken != "" {
				req.Header.Set("Refresh_token", tc.refreshToken)
			}
			rec := httptest.NewRecorder()

			auth.JWTAuthMiddleware()(next).ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			assert.Equal(t, tc.expectNextCalls, called)
			if tc.expectNextCalls {
				assert.Equal(t, userID, got.UserID)
				assert.Equal(t, "sid-1", got.SessionID)
				assert.True(t, got.IsStaff())
			}
			if tc.expectReissued {
				assert.NotEmpty(t, rec.Header().Get("Authorization"))
				assert.NotEmpty(t, rec.Header().Get("Refresh_token"))
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	auth := &DefaultAuthMiddleware{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	guarded := auth.RequireRole(models.AdminRole)(next)

	t.Run("no actor", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("student is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		actor := models.NewActor(uuid.New(), "sid", models.NewRoleSet())
		req = req.WithContext(WithActor(req.Context(), actor))
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		actor := models.NewActor(uuid.New(), "sid", models.NewRoleSet(models.AdminRole))
		req = req.WithContext(WithActor(req.Context(), actor))
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
