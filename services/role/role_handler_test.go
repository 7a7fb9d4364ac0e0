package roleservice

import (
	"bytes"
	"ecotrack/models"
	"ecotrack/providers"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestAssignRoleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockRoleService(ctrl)
	mockAuth := providers.NewMockAuthMiddlewareService(ctrl)
	handler := NewRoleHandler(mockService, mockAuth)

	admin := models.NewActor(uuid.New(), "sid", models.NewRoleSet(models.AdminRole))
	target := uuid.New()

	testCases := []struct {
		name               string
		body               string
		authErr            error
		expectServiceCall  bool
		serviceErr         error
		expectedStatusCode int
	}{
		{
			name:               "success",
			body:               `{"user_id":"` + target.String() + `","role":"it_staff"}`,
			expectServiceCall:  true,
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "unauthorized",
			authErr:            errors.New("no actor"),
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "invalid role",
			body:               `{"user_id":"` + target.String() + `","role":"janitor"}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "invalid user id",
			body:               `{"user_id":"nope","role":"admin"}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "gate denies",
			body:               `{"user_id":"` + target.String() + `","role":"admin"}`,
			expectServiceCall:  true,
			serviceErr:         models.Deny(models.ActionManageRoles, models.ReasonAdminRequired),
			expectedStatusCode: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/admin/roles", bytes.NewBufferString(tc.body))
			rec := httptest.NewRecorder()

			if tc.authErr != nil {
				mockAuth.EXPECT().GetActorFromContext(req).Return(models.Actor{}, tc.authErr)
			} else {
				mockAuth.EXPECT().GetActorFromContext(req).Return(admin, nil)
			}
			if tc.expectServiceCall {
				mockService.EXPECT().
					Assign(gomock.Any(), admin, target, gomock.Any()).
					Return(tc.serviceErr)
			}

			handler.AssignRole(rec, req)
			assert.Equal(t, tc.expectedStatusCode, rec.Code)
		})
	}
}

func TestRevokeRoleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockRoleService(ctrl)
	mockAuth := providers.NewMockAuthMiddlewareService(ctrl)
	handler := NewRoleHandler(mockService, mockAuth)

	admin := models.NewActor(uuid.New(), "sid", models.NewRoleSet(models.AdminRole))
	target := uuid.New()

	t.Run("success", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/admin/roles?user_id="+target.String()+"&role=admin", nil)
		rec := httptest.NewRecorder()
		mockAuth.EXPECT().GetActorFromContext(req).Return(admin, nil)
		mockService.EXPECT().Revoke(gomock.Any(), admin, target, models.AdminRole).Return(nil)

		handler.RevokeRole(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("role not held", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/admin/roles?user_id="+target.String()+"&role=admin", nil)
		rec := httptest.NewRecorder()
		mockAuth.EXPECT().GetActorFromContext(req).Return(admin, nil)
		mockService.EXPECT().Revoke(gomock.Any(), admin, target, models.AdminRole).Return(errors.Wrap(models.ErrNotFound, "role"))

		handler.RevokeRole(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad role", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/admin/roles?user_id="+target.String()+"&role=root", nil)
		rec := httptest.NewRecorder()
		mockAuth.EXPECT().GetActorFromContext(req).Return(admin, nil)

		handler.RevokeRole(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
