package utils

import (
	"ecotrack/models"
	"math"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

func ParseJSONBody(r *http.Request, dst interface{}) error {
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return models.NewValidationError("", "invalid request body: "+err.Error())
	}
	return nil
}

func RespondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	response, err := jsoniter.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to serialize JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(response)
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
	Field   string `json:"field,omitempty"`
}

// RespondError writes a plain error body; the cause is logged, never sent.
func RespondError(w http.ResponseWriter, statusCode int, err error, message string) {
	if err != nil {
		zap.L().Warn(message, zap.Int("status", statusCode), zap.Error(err))
	}
	RespondJSON(w, statusCode, errorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}

// RespondServiceError maps a domain failure to its HTTP status and a stable
// error code so the UI can render an actionable message.
func RespondServiceError(w http.ResponseWriter, err error) {
	status := StatusFromError(err)
	body := errorResponse{Error: models.ErrorCode(err), Message: err.Error()}

	var denied *models.AccessDenied
	if errors.As(err, &denied) {
		body.Reason = string(denied.Reason)
	}
	var invalid *models.ValidationError
	if errors.As(err, &invalid) {
		body.Field = invalid.Field
		body.Message = invalid.Message
	}

	if status == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err))
		body.Message = "internal server error"
	}
	RespondJSON(w, status, body)
}

func StatusFromError(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidTransition),
		errors.Is(err, models.ErrConflictingRequest),
		errors.Is(err, models.ErrStaleState),
		errors.Is(err, models.ErrDuplicateRecord):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// GetPageLimitAndOffset reads ?limit= and ?page= (1-based).
func GetPageLimitAndOffset(r *http.Request) (int, int) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page <= 0 {
		page = 1
	}
	// keep the offset representable; pages that far out are empty anyway
	if maxPage := math.MaxInt32/limit + 1; page > maxPage {
		page = maxPage
	}
	return limit, (page - 1) * limit
}
