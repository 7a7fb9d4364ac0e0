package sessionservice

import (
	"ecotrack/providers"
	"ecotrack/utils"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

type SessionHandler struct {
	Service        SessionService
	AuthMiddleware providers.AuthMiddlewareService
}

func NewSessionHandler(service SessionService, auth providers.AuthMiddlewareService) *SessionHandler {
	return &SessionHandler{
		Service:        service,
		AuthMiddleware: auth,
	}
}

// Login expects the identity-provider ID token as a bearer credential.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		utils.RespondError(w, http.StatusUnauthorized, errors.New("missing identity token"), "missing identity token")
		return
	}

	session, err := h.Service.Login(r.Context(), header[7:])
	if errors.Is(err, ErrIdentityRejected) {
		utils.RespondError(w, http.StatusUnauthorized, err, "invalid identity token")
		return
	}
	if err != nil {
		utils.RespondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, session)
}

func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetActorFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	if err := h.Service.Logout(r.Context(), actor); err != nil {
		utils.RespondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"message": "signed out"})
}
