package store

import (
	"fmt"

	"github.com/phrazzld/clean-api/internal/domain"
)

// Entity names used in store error messages.
const (
	EntityUser = "user"
	EntityPost = "post"
)

// Operation names used in store error messages.
const (
	OpCreate = "create"
	OpFetch  = "fetch"
	OpUpdate = "update"
	OpDelete = "delete"
)

// MsgEmailExists is the client-facing message for a duplicate user email.
const MsgEmailExists = "Email already exists"

// NewStoreError wraps a raw store failure as a DatabaseError. The message is
// derived from the operation and entity (e.g. "Failed to create user") so no
// driver detail reaches the client; err is kept for logging.
func NewStoreError(entity, operation string, err error) *domain.Error {
	return domain.NewDatabaseError(fmt.Sprintf("Failed to %s %s", operation, entity), err)
}

// NewEmailExistsError reports a unique-constraint violation on the user email.
func NewEmailExistsError(err error) *domain.Error {
	return domain.NewConflictError(MsgEmailExists, err)
}
