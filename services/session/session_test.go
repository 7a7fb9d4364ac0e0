package sessionservice

import (
	"context"
	"ecotrack/models"
	"ecotrack/providers"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sessionFixture struct {
	service  SessionService
	identity *providers.MockFirebaseProvider
	profiles *MockProfileUpserter
	roles    *MockSessionRoles
	tokens   *providers.MockAuthMiddlewareService
}

func newSessionFixture(t *testing.T) *sessionFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()

	f := &sessionFixture{
		identity: providers.NewMockFirebaseProvider(ctrl),
		profiles: NewMockProfileUpserter(ctrl),
		roles:    NewMockSessionRoles(ctrl),
		tokens:   providers.NewMockAuthMiddlewareService(ctrl),
	}
	f.service = NewSessionService(f.identity, f.profiles, f.roles, f.tokens, mockLogger)
	return f
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	identity := models.Identity{Subject: "fb-9", Email: "lee@uni.edu"}
	profile := models.Profile{ID: uuid.New(), AuthSubject: "fb-9"}

	t.Run("first login seeds student role", func(t *testing.T) {
		f := newSessionFixture(t)
		var sessionID string
		gomock.InOrder(
			f.identity.EXPECT().VerifyIDToken(ctx, "id-token").Return(identity, nil),
			f.profiles.EXPECT().UpsertOnLogin(ctx, identity).Return(profile, nil),
			f.roles.EXPECT().EnsureDefault(ctx, profile.ID).Return(nil),
			f.roles.EXPECT().RolesOf(ctx, gomock.Any(), profile.ID).
				DoAndReturn(func(_ context.Context, sid string, _ uuid.UUID) (models.RoleSet, error) {
					sessionID = sid
					return models.NewRoleSet(models.StudentRole), nil
				}),
			f.tokens.EXPECT().GenerateSessionTokens(profile.ID.String(), gomock.Any()).Return("access", "refresh", nil),
		)

		session, err := f.service.Login(ctx, " id-token ")
		require.NoError(t, err)
		assert.Equal(t, profile.ID, session.UserID)
		assert.Equal(t, sessionID, session.SessionID)
		assert.Equal(t, []string{"student"}, session.Roles)
		assert.Equal(t, "access", session.AccessToken)
	})

	t.Run("rejected token", func(t *testing.T) {
		f := newSessionFixture(t)
		f.identity.EXPECT().VerifyIDToken(ctx, "forged").Return(models.Identity{}, errors.New("signature invalid"))

		_, err := f.service.Login(ctx, "forged")
		assert.ErrorIs(t, err, ErrIdentityRejected)
	})

	t.Run("role seeding failure aborts login", func(t *testing.T) {
		f := newSessionFixture(t)
		f.identity.EXPECT().VerifyIDToken(ctx, "id-token").Return(identity, nil)
		f.profiles.EXPECT().UpsertOnLogin(ctx, identity).Return(profile, nil)
		f.roles.EXPECT().EnsureDefault(ctx, profile.ID).Return(errors.New("db down"))

		_, err := f.service.Login(ctx, "id-token")
		assert.Error(t, err)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	f := newSessionFixture(t)
	actor := models.NewActor(uuid.New(), "sid-1", models.NewRoleSet(models.AdminRole))

	f.roles.EXPECT().Forget(ctx, "sid-1").Return(nil)
	assert.NoError(t, f.service.Logout(ctx, actor))

	assert.ErrorIs(t, f.service.Logout(ctx, models.Actor{}), models.ErrUnauthorized)
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockSessionService(ctrl)
	handler := NewSessionHandler(mockService, providers.NewMockAuthMiddlewareService(ctrl))

	t.Run("missing bearer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/session", nil)
		rec := httptest.NewRecorder()

		handler.Login(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejected identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/session", nil)
		req.Header.Set("Authorization", "Bearer forged")
		rec := httptest.NewRecorder()
		mockService.EXPECT().Login(gomock.Any(), "forged").Return(Session{}, errors.Wrap(ErrIdentityRejected, "bad"))

		handler.Login(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("session issued", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/session", nil)
		req.Header.Set("Authorization", "Bearer good")
		rec := httptest.NewRecorder()
		userID := uuid.New()
		mockService.EXPECT().Login(gomock.Any(), "good").
			Return(Session{UserID: userID, AccessToken: "a", RefreshToken: "r", Roles: []string{"student"}}, nil)

		handler.Login(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]interface{}
		require.NoError(t, jsoniter.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, userID.String(), body["user_id"])
		assert.Equal(t, "a", body["access_token"])
	})
}
