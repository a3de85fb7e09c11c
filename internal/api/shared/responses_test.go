package shared

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/clean-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	RespondWithSuccess(w, r, http.StatusCreated, map[string]int{"id": 1}, "created")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"data":{"id":1},"message":"created"}`, w.Body.String())
}

func TestRespondWithSuccess_NullDataNoMessage(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	RespondWithSuccess(w, r, http.StatusOK, nil, "")

	assert.JSONEq(t, `{"success":true,"data":null}`, w.Body.String())
}

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	RespondWithError(w, r, http.StatusBadRequest, "Validation Error", "Invalid input data",
		domain.FieldError{Field: "name", Message: "Name is required"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Validation Error", body.Error)
	assert.Len(t, body.Details, 1)

	w = httptest.NewRecorder()
	RespondWithError(w, r, http.StatusNotFound, "User not found", "User not found")
	assert.NotContains(t, w.Body.String(), "details")
}

func TestTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx))

	id := NewTraceID()
	assert.Len(t, id, 36)
	assert.NotEqual(t, id, NewTraceID())
	assert.Equal(t, id, GetTraceID(WithTraceID(ctx, id)))
}
