package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/clean-api/internal/api/shared"
	"github.com/phrazzld/clean-api/internal/domain"
)

// getPathID extracts an integer id from the URL path parameters.
// invalidMsg is returned as a validation error when the parameter is not a base-10 integer.
func getPathID(r *http.Request, paramName, invalidMsg string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, paramName), 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(invalidMsg)
	}
	return id, nil
}

// decodeAndValidate decodes the request body into req and applies its struct tags.
func decodeAndValidate(r *http.Request, req any) error {
	if err := shared.DecodeJSON(r, req); err != nil {
		return err
	}
	return shared.ValidateRequest(req)
}
