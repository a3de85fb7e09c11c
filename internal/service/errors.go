package service

import (
	"errors"

	"github.com/phrazzld/clean-api/internal/domain"
	"github.com/phrazzld/clean-api/internal/store"
)

// Messages returned to clients by the use cases.
const (
	MsgUserNotFound = "User not found"
	MsgPostNotFound = "Post not found"
)

// ErrNilDependency is returned by constructors when a required dependency is nil.
var ErrNilDependency = errors.New("service dependency cannot be nil")

func newEmailTakenError() *domain.Error {
	return domain.NewValidationError(store.MsgEmailExists)
}
