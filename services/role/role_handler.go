package roleservice

import (
	"ecotrack/models"
	"ecotrack/providers"
	"ecotrack/utils"
	"net/http"

	"github.com/google/uuid"
)

type RoleHandler struct {
	Service        RoleService
	AuthMiddleware providers.AuthMiddlewareService
}

func NewRoleHandler(service RoleService, auth providers.AuthMiddlewareService) *RoleHandler {
	return &RoleHandler{
		Service:        service,
		AuthMiddleware: auth,
	}
}

type RoleAssignmentReq struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Role   string `json:"role" validate:"required,oneof=student it_staff environmental_officer admin"`
}

func (h *RoleHandler) AssignRole(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetActorFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	var req RoleAssignmentReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondServiceError(w, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondServiceError(w, err)
		return
	}

	userID := uuid.MustParse(req.UserID)
	if err := h.Service.Assign(r.Context(), actor, userID, models.Role(req.Role)); err != nil {
		utils.RespondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "role assigned successfully"})
}

func (h *RoleHandler) RevokeRole(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetActorFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	userID, err := utils.ParseUUID("user_id", r.URL.Query().Get("user_id"))
	if err != nil {
		utils.RespondServiceError(w, err)
		return
	}
	role, err := models.ParseRole(r.URL.Query().Get("role"))
	if err != nil {
		utils.RespondServiceError(w, err)
		return
	}

	if err := h.Service.Revoke(r.Context(), actor, userID, role); err != nil {
		utils.RespondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "role revoked successfully"})
}
