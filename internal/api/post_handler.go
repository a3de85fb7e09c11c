package api

import (
	"net/http"

	"github.com/phrazzld/clean-api/internal/api/shared"
	"github.com/phrazzld/clean-api/internal/service"
)

const msgInvalidPostID = "Invalid post ID"

// PostHandler handles post-related HTTP requests
type PostHandler struct {
	postService service.PostService
	development bool
}

// NewPostHandler creates a new PostHandler. When development is true, messages
// of unclassified errors are returned to clients.
func NewPostHandler(postService service.PostService, development bool) *PostHandler {
	return &PostHandler{postService: postService, development: development}
}

// CreatePost handles POST /api/posts requests
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := decodeAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, err, h.development)
		return
	}

	post, err := h.postService.CreatePost(r.Context(), req.toInput())
	if err != nil {
		HandleAPIError(w, r, err, h.development)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusCreated, post, "Post created successfully")
}

// GetAllPosts handles GET /api/posts requests
func (h *PostHandler) GetAllPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.GetAllPosts(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, h.development)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, posts, "")
}

// GetPostByID handles GET /api/posts/{id} requests
func (h *PostHandler) GetPostByID(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id", msgInvalidPostID)
	if err != nil {
		HandleAPIError(w, r, err, h.development)
		return
	}

	post, err := h.postService.GetPostByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, h.development)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, post, "")
}

// UpdatePost handles PATCH /api/posts/{id} requests
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id", msgInvalidPostID)
	if err != nil {
		HandleAPIError(w, r, err, h.development)
		return
	}

	var req UpdatePostRequest
	if err := decodeAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, err, h.development)
		return
	}

	post, err := h.postService.UpdatePost(r.Context(), id, req.toPatch())
	if err != nil {
		HandleAPIError(w, r, err, h.development)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, post, "Post updated successfully")
}

// DeletePost handles DELETE /api/posts/{id} requests
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id", msgInvalidPostID)
	if err != nil {
		HandleAPIError(w, r, err, h.development)
		return
	}

	if err := h.postService.DeletePost(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, h.development)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, nil, "Post deleted successfully")
}
