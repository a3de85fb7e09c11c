package store

import (
	"context"

	"github.com/phrazzld/clean-api/internal/domain"
)

// PostStore defines the interface for post data persistence.
type PostStore interface {
	// Create inserts a new post and returns it with the store-assigned ID and timestamps.
	Create(ctx context.Context, input domain.PostInput) (*domain.Post, error)

	// FindAll returns every post. The slice is empty, never nil, when there are none.
	FindAll(ctx context.Context) ([]*domain.Post, error)

	// FindByID returns the post with the given ID, or nil, nil if none exists.
	FindByID(ctx context.Context, id int64) (*domain.Post, error)

	// Update merges the non-nil patch fields into the post and refreshes UpdatedAt.
	// Returns nil, nil if the post does not exist.
	Update(ctx context.Context, id int64, patch domain.PostPatch) (*domain.Post, error)

	// Delete removes the post and reports whether a row was removed.
	Delete(ctx context.Context, id int64) (bool, error)
}
