package api

import "github.com/phrazzld/clean-api/internal/domain"

// CreateUserRequest defines the payload for POST /api/users.
type CreateUserRequest struct {
	Name  string `json:"name"  validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email,max=255"`
}

func (req CreateUserRequest) toInput() domain.UserInput {
	return domain.UserInput{Name: req.Name, Email: req.Email}
}

// UpdateUserRequest defines the payload for PATCH /api/users/{id}.
// Omitted fields are nil and left unchanged.
type UpdateUserRequest struct {
	Name  *string `json:"name"  validate:"omitnil,min=1,max=100"`
	Email *string `json:"email" validate:"omitnil,email,max=255"`
}

func (req UpdateUserRequest) toPatch() domain.UserPatch {
	return domain.UserPatch{Name: req.Name, Email: req.Email}
}

// CreatePostRequest defines the payload for POST /api/posts.
type CreatePostRequest struct {
	Title   string `json:"title"   validate:"required,min=1,max=200"`
	Content string `json:"content" validate:"required,min=1,max=5000"`
}

func (req CreatePostRequest) toInput() domain.PostInput {
	return domain.PostInput{Title: req.Title, Content: req.Content}
}

// UpdatePostRequest defines the payload for PATCH /api/posts/{id}.
type UpdatePostRequest struct {
	Title   *string `json:"title"   validate:"omitnil,min=1,max=200"`
	Content *string `json:"content" validate:"omitnil,min=1,max=5000"`
}

func (req UpdatePostRequest) toPatch() domain.PostPatch {
	return domain.PostPatch{Title: req.Title, Content: req.Content}
}

// HealthResponse is the body returned by GET /health.
type HealthResponse struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}
