package disposalservice

import (
	"bytes"
	"context"
	"ecotrack/models"
	"ecotrack/providers"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateDisposalHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockDisposalService(ctrl)
	mockAuth := providers.NewMockAuthMiddlewareService(ctrl)
	handler := NewDisposalHandler(mockService, mockAuth)
	deviceID := uuid.New()

	testCases := []struct {
		name               string
		body               string
		expectServiceCall  bool
		serviceErr         error
		expectedStatusCode int
	}{
		{
			name:               "created",
			body:               `{"device_id":"` + deviceID.String() + `","reason":"battery swollen","priority":"high"}`,
			expectServiceCall:  true,
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:               "missing reason",
			body:               `{"device_id":"` + deviceID.String() + `"}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "bad device id",
			body:               `{"device_id":"abc","reason":"x"}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "open request exists",
			body:               `{"device_id":"` + deviceID.String() + `","reason":"again"}`,
			expectServiceCall:  true,
			serviceErr:         errors.Wrap(models.ErrConflictingRequest, "open"),
			expectedStatusCode: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/disposal-requests", bytes.NewBufferString(tc.body))
			rec := httptest.NewRecorder()
			mockAuth.EXPECT().GetActorFromContext(req).Return(studentActor, nil)

			if tc.expectServiceCall {
				mockService.EXPECT().
					Create(gomock.Any(), studentActor, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ models.Actor, draft models.DisposalDraft) (models.DisposalRequest, error) {
						assert.Equal(t, deviceID, draft.DeviceID)
						if tc.serviceErr != nil {
							return models.DisposalRequest{}, tc.serviceErr
						}
						return models.DisposalRequest{ID: uuid.New(), DeviceID: deviceID, Priority: draft.Priority, Status: models.DisposalPending}, nil
					})
			}

			handler.CreateDisposal(rec, req)
			assert.Equal(t, tc.expectedStatusCode, rec.Code)
		})
	}
}

func TestReviewDisposalHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockDisposalService(ctrl)
	mockAuth := providers.NewMockAuthMiddlewareService(ctrl)
	handler := NewDisposalHandler(mockService, mockAuth)
	id := uuid.New()

	t.Run("approve without body", func(t *testing.T) {
		req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/disposal-requests/"+id.String()+"/approve", nil), "id", id.String())
		rec := httptest.NewRecorder()
		mockAuth.EXPECT().GetActorFromContext(req).Return(staffActor, nil)
		mockService.EXPECT().Approve(gomock.Any(), staffActor, id, nil).
			Return(models.DisposalRequest{ID: id, Status: models.DisposalApproved}, nil)

		handler.ApproveDisposal(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("self approval is forbidden", func(t *testing.T) {
		req := withURLParam(httptest.NewRequest(http.MethodPost, "/x", bytes.NewBufferString(`{"notes":"mine"}`)), "id", id.String())
		rec := httptest.NewRecorder()
		mockAuth.EXPECT().GetActorFromContext(req).Return(staffActor, nil)
		mockService.EXPECT().Approve(gomock.Any(), staffActor, id, gomock.Any()).
			Return(models.DisposalRequest{}, models.Deny(models.ActionReviewDisposal, models.ReasonSelfApproval))

		handler.ApproveDisposal(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		var body map[string]string
		require.NoError(t, jsoniter.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "self_approval", body["reason"])
	})

	t.Run("reject terminal request", func(t *testing.T) {
		req := withURLParam(httptest.NewRequest(http.MethodPost, "/x", nil), "id", id.String())
		rec := httptest.NewRecorder()
		mockAuth.EXPECT().GetActorFromContext(req).Return(staffActor, nil)
		mockService.EXPECT().Reject(gomock.Any(), staffActor, id, nil).
			Return(models.DisposalRequest{}, models.DisposalCompleted.CheckTransition(models.DisposalRejected))

		handler.RejectDisposal(rec, req)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestCompleteDisposalHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockDisposalService(ctrl)
	mockAuth := providers.NewMockAuthMiddlewareService(ctrl)
	handler := NewDisposalHandler(mockService, mockAuth)
	id := uuid.New()

	t.Run("metrics are passed through", func(t *testing.T) {
		body := `{"metrics":{"weight_kg":12.5,"co2_saved_kg":8,"materials_recovered":["aluminum"]}}`
		req := withURLParam(httptest.NewRequest(http.MethodPost, "/x", bytes.NewBufferString(body)), "id", id.String())
		rec := httptest.NewRecorder()
		mockAuth.EXPECT().GetActorFromContext(req).Return(officerActor, nil)
		mockService.EXPECT().Complete(gomock.Any(), officerActor, id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ models.Actor, _ uuid.UUID, m *models.RecyclingMetrics) (models.DisposalRequest, *models.RecyclingRecord, error) {
				require.NotNil(t, m)
				assert.Equal(t, 12.5, m.WeightKg)
				return models.DisposalRequest{ID: id, Status: models.DisposalCompleted}, &models.RecyclingRecord{WeightKg: m.WeightKg}, nil
			})

		handler.CompleteDisposal(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("negative weight", func(t *testing.T) {
		body := `{"metrics":{"weight_kg":-3}}`
		req := withURLParam(httptest.NewRequest(http.MethodPost, "/x", bytes.NewBufferString(body)), "id", id.String())
		rec := httptest.NewRecorder()
		mockAuth.EXPECT().GetActorFromContext(req).Return(officerActor, nil)

		handler.CompleteDisposal(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListDisposalsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockDisposalService(ctrl)
	mockAuth := providers.NewMockAuthMiddlewareService(ctrl)
	handler := NewDisposalHandler(mockService, mockAuth)

	req := httptest.NewRequest(http.MethodGet, "/api/disposal-requests?status=pending&priority=high", nil)
	rec := httptest.NewRecorder()
	mockAuth.EXPECT().GetActorFromContext(req).Return(staffActor, nil)
	mockService.EXPECT().List(gomock.Any(), staffActor, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Actor, f models.DisposalFilter) ([]models.DisposalRequest, error) {
			assert.Equal(t, []models.DisposalStatus{models.DisposalPending}, f.Statuses)
			assert.Equal(t, "high", f.Priority)
			return []models.DisposalRequest{}, nil
		})

	handler.ListDisposals(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
