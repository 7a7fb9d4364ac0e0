package deviceservice

import (
	"ecotrack/models"
	"ecotrack/providers"
	"ecotrack/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

type DeviceHandler struct {
	Service        DeviceService
	AuthMiddleware providers.AuthMiddlewareService
}

func NewDeviceHandler(service DeviceService, auth providers.AuthMiddlewareService) *DeviceHandler {
	return &DeviceHandler{
		Service:        service,
		AuthMiddleware: auth,
	}
}

type RegisterDeviceReq struct {
	Name            string  `json:"name" validate:"required"`
	Type            string  `json:"type" validate:"required"`
	Condition       *string `json:"condition" validate:"omitempty,oneof=working repairable non_functional hazardous"`
	Location        *string `json:"location"`
	SerialNumber    *string `json:"serial_number"`
	AcquisitionDate *string `json:"acquisition_date" validate:"omitempty,datetime=2006-01-02"`
	Notes           *string `json:"notes"`
}

// UpdateDeviceReq has no status field; status moves only through the
// disposal workflow.
type UpdateDeviceReq struct {
	Name            *string `json:"name"`
	Type            *string `json:"type"`
	Condition       *string `json:"condition" validate:"omitempty,oneof=working repairable non_functional hazardous"`
	Location        *string `json:"location"`
	SerialNumber    *string `json:"serial_number"`
	AcquisitionDate *string `json:"acquisition_date" validate:"omitempty,datetime=2006-01-02"`
	Notes           *string `json:"notes"`
}

func (h *DeviceHandler) RegisterDevice(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetActorFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	var req RegisterDeviceReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondServiceError(w, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondServiceError(w, err)
		return
	}

	draft := models.DeviceDraft{
		Name:            req.Name,
		Type:            req.Type,
		Condition:       parseCondition(req.Condition),
		Location:        req.Location,
		SerialNumber:    req.SerialNumber,
		AcquisitionDate: parseDate(req.AcquisitionDate),
		Notes:           req.Notes,
	}

	device, err := h.Service.Register(r.Context(), actor, draft)
	if err != nil {
		utils.RespondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{"device": device})
}

func (h *DeviceHandler) UpdateDevice(w http.ResponseWriter, r *http.Request) {
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

	var req UpdateDeviceReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondServiceError(w, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondServiceError(w, err)
		return
	}

	patch := models.DevicePatch{
		Name:            req.Name,
		Type:            req.Type,
		Condition:       parseCondition(req.Condition),
		Location:        req.Location,
		SerialNumber:    req.SerialNumber,
		AcquisitionDate: parseDate(req.AcquisitionDate),
		Notes:           req.Notes,
	}

	device, err := h.Service.UpdateFields(r.Context(), actor, id, patch)
	if err != nil {
		utils.RespondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"device": device})
}

func (h *DeviceHandler) GetDevice(w http.ResponseWriter, r *http.Request) {
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

	device, err := h.Service.Get(r.Context(), actor, id)
	if err != nil {
		utils.RespondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"device": device})
}

func (h *DeviceHandler) ListDevices(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetActorFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	filter := models.DeviceFilter{
		Type:       r.URL.Query().Get("type"),
		SearchText: r.URL.Query().Get("search"),
	}
	for _, s := range utils.SplitQuery(r.URL.Query().Get("status")) {
		status, err := models.ParseDeviceStatus(s)
		if err != nil {
			utils.RespondServiceError(w, err)
			return
		}
		filter.Statuses = append(filter.Statuses, status)
	}
	filter.Limit, filter.Offset = utils.GetPageLimitAndOffset(r)

	devices, err := h.Service.List(r.Context(), actor, filter)
	if err != nil {
		utils.RespondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"devices": devices})
}

func (h *DeviceHandler) DeleteDevice(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Service.Delete(r.Context(), actor, id); err != nil {
		utils.RespondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "device deleted successfully"})
}

func (h *DeviceHandler) StatusSummary(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetActorFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	counts, err := h.Service.StatusSummary(r.Context(), actor)
	if err != nil {
		utils.RespondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"summary": counts})
}

// parseCondition and parseDate run after ValidateStruct, so the inputs are known good.
func parseCondition(s *string) *models.DeviceCondition {
	if s == nil {
		return nil
	}
	c := models.DeviceCondition(*s)
	return &c
}

func parseDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}
