package disposalservice

import (
	"context"
	"ecotrack/models"
	"ecotrack/providers"
	recyclingservice "ecotrack/services/recycling"
	"ecotrack/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type DisposalHandler struct {
	Service        DisposalService
	AuthMiddleware providers.AuthMiddlewareService
}

func NewDisposalHandler(service DisposalService, auth providers.AuthMiddlewareService) *DisposalHandler {
	return &DisposalHandler{
		Service:        service,
		AuthMiddleware: auth,
	}
}

type CreateDisposalReq struct {
	DeviceID string  `json:"device_id" validate:"required,uuid"`
	Reason   string  `json:"reason" validate:"required"`
	Priority string  `json:"priority" validate:"omitempty,oneof=low medium high"`
	Notes    *string `json:"notes"`
}

type ReviewDisposalReq struct {
	Notes *string `json:"notes"`
}

// CompleteDisposalReq carries optional metrics; omitting them leaves the
// device at disposed.
type CompleteDisposalReq struct {
	Metrics *recyclingservice.MetricsReq `json:"metrics"`
}

func (h *DisposalHandler) CreateDisposal(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetActorFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	var req CreateDisposalReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondServiceError(w, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondServiceError(w, err)
		return
	}

	created, err := h.Service.Create(r.Context(), actor, models.DisposalDraft{
		DeviceID: uuid.MustParse(req.DeviceID),
		Reason:   req.Reason,
		Priority: models.Priority(req.Priority),
		Notes:    req.Notes,
	})
	if err != nil {
		utils.RespondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{"disposal_request": created})
}

func (h *DisposalHandler) ApproveDisposal(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.Service.Approve)
}

func (h *DisposalHandler) RejectDisposal(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.Service.Reject)
}

type reviewFunc func(ctx context.Context, actor models.Actor, id uuid.UUID, notes *string) (models.DisposalRequest, error)

func (h *DisposalHandler) review(w http.ResponseWriter, r *http.Request, fn reviewFunc) {
	actor, err := h.AuthMiddleware.GetActorFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	id, err := utils.ParseUUID("id", chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondServiceError(w, err)
		return
	}

	var req ReviewDisposalReq
	if r.ContentLength != 0 {
		if err := utils.ParseJSONBody(r, &req); err != nil {
			utils.RespondServiceError(w, err)
			return
		}
	}

	updated, err := fn(r.Context(), actor, id, req.Notes)
	if err != nil {
		utils.RespondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"disposal_request": updated})
}

// CompleteDisposal closes an approved request. With a "metrics" body the
// recycling record is written and the device ends recycled; without one the
// device stays disposed until POST /api/recycling records the outcome.
func (h *DisposalHandler) CompleteDisposal(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetActorFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	id, err := utils.ParseUUID("id", chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondServiceError(w, err)
		return
	}

	var req CompleteDisposalReq
	if r.ContentLength != 0 {
		if err := utils.ParseJSONBody(r, &req); err != nil {
			utils.RespondServiceError(w, err)
			return
		}
	}

	var metrics *models.RecyclingMetrics
	if req.Metrics != nil {
		if err := utils.ValidateStruct(req.Metrics); err != nil {
			utils.RespondServiceError(w, err)
			return
		}
		m := req.Metrics.ToModel()
		metrics = &m
	}

	updated, record, err := h.Service.Complete(r.Context(), actor, id, metrics)
	if err != nil {
		utils.RespondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"disposal_request": updated,
		"recycling_record": record,
	})
}

func (h *DisposalHandler) GetDisposal(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetActorFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	id, err := utils.ParseUUID("id", chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondServiceError(w, err)
		return
	}

	req, err := h.Service.Get(r.Context(), actor, id)
	if err != nil {
		utils.RespondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"disposal_request": req})
}

func (h *DisposalHandler) ListDisposals(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetActorFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	query := r.URL.Query()
	filter := models.DisposalFilter{}
	for _, s := range utils.SplitQuery(query.Get("status")) {
		status, err := models.ParseDisposalStatus(s)
		if err != nil {
			utils.RespondServiceError(w, err)
			return
		}
		filter.Statuses = append(filter.Statuses, status)
	}
	if p := query.Get("priority"); p != "" {
		priority, err := models.ParsePriority(p)
		if err != nil {
			utils.RespondServiceError(w, err)
			return
		}
		filter.Priority = string(priority)
	}
	if d := query.Get("device_id"); d != "" {
		deviceID, err := utils.ParseUUID("device_id", d)
		if err != nil {
			utils.RespondServiceError(w, err)
			return
		}
		filter.DeviceID = &deviceID
	}
	filter.Limit, filter.Offset = utils.GetPageLimitAndOffset(r)

	requests, err := h.Service.List(r.Context(), actor, filter)
	if err != nil {
		utils.RespondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"disposal_requests": requests})
}
