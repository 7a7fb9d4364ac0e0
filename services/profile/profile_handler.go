package profileservice

import (
	"ecotrack/models"
	"ecotrack/providers"
	"ecotrack/utils"
	"net/http"
)

type ProfileHandler struct {
	Service        ProfileService
	AuthMiddleware providers.AuthMiddlewareService
}

func NewProfileHandler(service ProfileService, auth providers.AuthMiddlewareService) *ProfileHandler {
	return &ProfileHandler{
		Service:        service,
		AuthMiddleware: auth,
	}
}

type UpdateProfileReq struct {
	FirstName  *string `json:"first_name" validate:"omitempty,max=100"`
	LastName   *string `json:"last_name" validate:"omitempty,max=100"`
	Department *string `json:"department" validate:"omitempty,max=100"`
}

func (h *ProfileHandler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetActorFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	profile, err := h.Service.Get(r.Context(), actor)
	if err != nil {
		utils.RespondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"profile": profile,
		"roles":   actor.Roles.Strings(),
	})
}

func (h *ProfileHandler) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetActorFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	var req UpdateProfileReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondServiceError(w, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondServiceError(w, err)
		return
	}

	profile, err := h.Service.Update(r.Context(), actor, models.ProfilePatch{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Department: req.Department,
	})
	if err != nil {
		utils.RespondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"profile": profile})
}
