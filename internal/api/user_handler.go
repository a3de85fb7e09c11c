package api

import (
	"net/http"

	"github.com/phrazzld/clean-api/internal/api/shared"
	"github.com/phrazzld/clean-api/internal/service"
)

const msgInvalidUserID = "Invalid user ID"

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService service.UserService
	development bool
}

// NewUserHandler creates a new UserHandler. When development is true, messages
// of unclassified errors are returned to clients.
func NewUserHandler(userService service.UserService, development bool) *UserHandler {
	return &UserHandler{userService: userService, development: development}
}

// CreateUser handles POST /api/users requests
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := decodeAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, err, h.development)
		return
	}

	user, err := h.userService.CreateUser(r.Context(), req.toInput())
	if err != nil {
		HandleAPIError(w, r, err, h.development)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusCreated, user, "User created successfully")
}

// GetAllUsers handles GET /api/users requests
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.GetAllUsers(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, h.development)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, users, "")
}

// GetUserByID handles GET /api/users/{id} requests
func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id", msgInvalidUserID)
	if err != nil {
		HandleAPIError(w, r, err, h.development)
		return
	}

	user, err := h.userService.GetUserByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, h.development)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, user, "")
}

// UpdateUser handles PATCH /api/users/{id} requests
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id", msgInvalidUserID)
	if err != nil {
		HandleAPIError(w, r, err, h.development)
		return
	}

	var req UpdateUserRequest
	if err := decodeAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, err, h.development)
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), id, req.toPatch())
	if err != nil {
		HandleAPIError(w, r, err, h.development)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, user, "User updated successfully")
}

// DeleteUser handles DELETE /api/users/{id} requests
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id", msgInvalidUserID)
	if err != nil {
		HandleAPIError(w, r, err, h.development)
		return
	}

	if err := h.userService.DeleteUser(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, h.development)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, nil, "User deleted successfully")
}
