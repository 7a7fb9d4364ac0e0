package recyclingservice

import (
	"ecotrack/models"
	"ecotrack/providers"
	"ecotrack/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type RecyclingHandler struct {
	Service        RecyclingService
	AuthMiddleware providers.AuthMiddlewareService
}

func NewRecyclingHandler(service RecyclingService, auth providers.AuthMiddlewareService) *RecyclingHandler {
	return &RecyclingHandler{
		Service:        service,
		AuthMiddleware: auth,
	}
}

// MetricsReq is the wire form of an environmental outcome.
type MetricsReq struct {
	RecyclingPartner   *string    `json:"recycling_partner"`
	WeightKg           float64    `json:"weight_kg" validate:"gte=0"`
	Co2SavedKg         float64    `json:"co2_saved_kg" validate:"gte=0"`
	MaterialsRecovered []string   `json:"materials_recovered"`
	CertificateNumber  *string    `json:"certificate_number"`
	RecycledAt         *time.Time `json:"recycled_at"`
}

func (m MetricsReq) ToModel() models.RecyclingMetrics {
	return models.RecyclingMetrics{
		RecyclingPartner:   m.RecyclingPartner,
		WeightKg:           m.WeightKg,
		Co2SavedKg:         m.Co2SavedKg,
		MaterialsRecovered: m.MaterialsRecovered,
		CertificateNumber:  m.CertificateNumber,
		RecycledAt:         m.RecycledAt,
	}
}

type RecordOutcomeReq struct {
	DisposalRequestID string `json:"disposal_request_id" validate:"required,uuid"`
	MetricsReq
}

func (h *RecyclingHandler) RecordOutcome(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetActorFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	var req RecordOutcomeReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondServiceError(w, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondServiceError(w, err)
		return
	}

	rec, err := h.Service.RecordForRequest(r.Context(), actor, uuid.MustParse(req.DisposalRequestID), req.ToModel())
	if err != nil {
		utils.RespondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{"recycling_record": rec})
}

func (h *RecyclingHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
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

	rec, err := h.Service.Get(r.Context(), actor, id)
	if err != nil {
		utils.RespondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"recycling_record": rec})
}

func (h *RecyclingHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetActorFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	filter := models.RecyclingFilter{}
	if d := r.URL.Query().Get("device_id"); d != "" {
		deviceID, err := utils.ParseUUID("device_id", d)
		if err != nil {
			utils.RespondServiceError(w, err)
			return
		}
		filter.DeviceID = &deviceID
	}
	filter.Limit, filter.Offset = utils.GetPageLimitAndOffset(r)

	records, err := h.Service.List(r.Context(), actor, filter)
	if err != nil {
		utils.RespondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"recycling_records": records})
}

func (h *RecyclingHandler) ImpactSummary(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetActorFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	summary, err := h.Service.ImpactSummary(r.Context(), actor)
	if err != nil {
		utils.RespondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"impact": summary})
}
