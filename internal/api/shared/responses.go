package shared

import (
	"encoding/json"
	"net/http"

	"github.com/phrazzld/clean-api/internal/domain"
	"github.com/phrazzld/clean-api/internal/platform/logger"
)

// SuccessResponse is the envelope for every successful API response.
// Data is always serialized, so a nil value is rendered as null.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Success bool                `json:"success"`
	Error   string              `json:"error"`
	Message string              `json:"message"`
	Details []domain.FieldError `json:"details,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response",
			"error", err)
	}
}

// RespondWithSuccess wraps data in a SuccessResponse. An empty message is omitted.
func RespondWithSuccess(w http.ResponseWriter, r *http.Request, status int, data any, message string) {
	RespondWithJSON(w, r, status, SuccessResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// RespondWithError writes an ErrorResponse. Logging is the caller's responsibility.
func RespondWithError(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	errorTitle, message string,
	details ...domain.FieldError,
) {
	RespondWithJSON(w, r, status, ErrorResponse{
		Success: false,
		Error:   errorTitle,
		Message: message,
		Details: details,
	})
}
