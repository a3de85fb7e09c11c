package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/clean-api/internal/api/shared"
	"github.com/phrazzld/clean-api/internal/domain"
	"github.com/phrazzld/clean-api/internal/platform/logger"
	"github.com/phrazzld/clean-api/internal/redact"
)

// Error titles used in response envelopes.
const (
	TitleValidation      = "Validation Error"
	TitleInvalidBody     = "Invalid request body"
	TitlePayloadTooLarge = "Payload Too Large"
	TitleInternal        = "Internal Server Error"
	TitleNotFound        = "Not Found"

	msgInvalidInput    = "Invalid input data"
	msgSomethingFailed = "Something went wrong"
)

// apiError is the resolved HTTP form of an error.
type apiError struct {
	status  int
	title   string
	message string
	details []domain.FieldError
}

// resolveError maps err onto a status code and envelope fields. The raw
// message of an unclassified error is exposed only when development is true.
func resolveError(err error, development bool) apiError {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return apiError{
			status:  http.StatusRequestEntityTooLarge,
			title:   TitlePayloadTooLarge,
			message: fmt.Sprintf("Request body exceeds %d bytes", maxErr.Limit),
		}
	}

	if errors.Is(err, shared.ErrInvalidBody) {
		return apiError{status: http.StatusBadRequest, title: TitleInvalidBody, message: TitleInvalidBody}
	}

	if de, ok := domain.AsError(err); ok {
		switch de.Kind {
		case domain.KindValidation:
			if len(de.Details) > 0 {
				return apiError{
					status:  http.StatusBadRequest,
					title:   TitleValidation,
					message: msgInvalidInput,
					details: de.Details,
				}
			}
			return apiError{status: http.StatusBadRequest, title: de.Message, message: de.Message}
		case domain.KindConflict:
			return apiError{status: http.StatusBadRequest, title: de.Message, message: de.Message}
		case domain.KindNotFound:
			return apiError{status: http.StatusNotFound, title: de.Message, message: de.Message}
		case domain.KindInfrastructure:
			return apiError{status: http.StatusInternalServerError, title: de.Message, message: de.Message}
		}
	}

	message := msgSomethingFailed
	if development && err != nil {
		message = err.Error()
	}
	return apiError{status: http.StatusInternalServerError, title: TitleInternal, message: message}
}

// HandleAPIError writes the error envelope for err and logs it with the
// request-scoped logger: Error level for 5xx responses and Debug otherwise.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, development bool) {
	resolved := resolveError(err, development)

	level := slog.LevelDebug
	if resolved.status >= http.StatusInternalServerError {
		level = slog.LevelError
	}

	attrs := []slog.Attr{
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status_code", resolved.status),
		slog.String("trace_id", shared.GetTraceID(r.Context())),
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}
	logger.FromContext(r.Context()).LogAttrs(r.Context(), level, "API error response", attrs...)

	shared.RespondWithError(w, r, resolved.status, resolved.title, resolved.message, resolved.details...)
}

// NotFoundHandler answers unmatched routes and methods with the 404 envelope.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, TitleNotFound,
		fmt.Sprintf("Route %s %s not found", r.Method, r.URL.Path))
}
