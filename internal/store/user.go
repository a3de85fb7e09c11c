package store

import (
	"context"

	"github.com/phrazzld/clean-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
// Every method is a single round trip to the backing store.
type UserStore interface {
	// Create inserts a new user and returns it with the store-assigned ID and
	// timestamps. Returns a domain.KindConflict error if the email is taken.
	Create(ctx context.Context, input domain.UserInput) (*domain.User, error)

	// FindAll returns every user. The slice is empty, never nil, when there are none.
	FindAll(ctx context.Context) ([]*domain.User, error)

	// FindByID returns the user with the given ID, or nil, nil if none exists.
	FindByID(ctx context.Context, id int64) (*domain.User, error)

	// FindByEmail returns the user with the given (normalized) email, or nil, nil.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update merges the non-nil patch fields into the user and refreshes UpdatedAt.
	// Returns nil, nil if the user does not exist.
	// Returns a domain.KindConflict error if the new email is taken.
	Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error)

	// Delete removes the user and reports whether a row was removed.
	Delete(ctx context.Context, id int64) (bool, error)
}
