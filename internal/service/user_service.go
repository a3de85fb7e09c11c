package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/clean-api/internal/domain"
	"github.com/phrazzld/clean-api/internal/platform/logger"
	"github.com/phrazzld/clean-api/internal/redact"
	"github.com/phrazzld/clean-api/internal/store"
)

// UserService provides the user use cases.
type UserService interface {
	// CreateUser creates a user after checking that the email is not taken.
	CreateUser(ctx context.Context, input domain.UserInput) (*domain.User, error)

	// GetAllUsers returns every user ordered by id.
	GetAllUsers(ctx context.Context) ([]*domain.User, error)

	// GetUserByID returns the user or a NotFound error.
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)

	// UpdateUser applies a partial update to an existing user.
	UpdateUser(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error)

	// DeleteUser removes a user or returns a NotFound error.
	DeleteUser(ctx context.Context, id int64) error
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	logger    *slog.Logger
}

var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a new UserService.
// It returns an error if userStore is nil. A nil logger falls back to slog.Default().
func NewUserService(userStore store.UserStore, logger *slog.Logger) (UserService, error) {
	if userStore == nil {
		return nil, fmt.Errorf("%w: userStore", ErrNilDependency)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserServiceImpl{
		userStore: userStore,
		logger:    logger.With(slog.String("component", "user_service")),
	}, nil
}

// CreateUser checks for an existing account before inserting. Two concurrent
// requests can both pass the check; the loser gets the store's Conflict error.
func (s *UserServiceImpl) CreateUser(ctx context.Context, input domain.UserInput) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	input = input.Normalize()
	if err := input.Validate(); err != nil {
		log.Debug("invalid user input", slog.String("error", err.Error()))
		return nil, err
	}

	existing, err := s.userStore.FindByEmail(ctx, input.Email)
	if err != nil {
		log.Error("failed to check for existing user",
			slog.String("error", redact.Error(err)))
		return nil, err
	}
	if existing != nil {
		log.Debug("attempted to create user with existing email",
			slog.Int64("existing_user_id", existing.ID))
		return nil, newEmailTakenError()
	}

	user, err := s.userStore.Create(ctx, input)
	if err != nil {
		if domain.IsKind(err, domain.KindConflict) {
			log.Debug("email taken by concurrent create")
		} else {
			log.Error("failed to create user", slog.String("error", redact.Error(err)))
		}
		return nil, err
	}

	log.Info("user created", slog.Int64("user_id", user.ID))
	return user, nil
}

// GetAllUsers returns every user ordered by id.
func (s *UserServiceImpl) GetAllUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userStore.FindAll(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list users",
			slog.String("error", redact.Error(err)))
		return nil, err
	}
	return users, nil
}

// GetUserByID returns the user or a NotFound error.
func (s *UserServiceImpl) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.FindByID(ctx, id)
	if err != nil {
		log.Error("failed to retrieve user",
			slog.String("error", redact.Error(err)),
			slog.Int64("user_id", id))
		return nil, err
	}
	if user == nil {
		log.Debug("user not found", slog.Int64("user_id", id))
		return nil, domain.NewNotFoundError(MsgUserNotFound)
	}
	return user, nil
}

// UpdateUser applies a partial update. An email change is rejected when
// another user already owns the new address.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	patch = patch.Normalize()
	if err := patch.Validate(); err != nil {
		log.Debug("invalid user patch", slog.String("error", err.Error()))
		return nil, err
	}

	current, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil && *patch.Email != current.Email {
		owner, err := s.userStore.FindByEmail(ctx, *patch.Email)
		if err != nil {
			log.Error("failed to check email availability",
				slog.String("error", redact.Error(err)),
				slog.Int64("user_id", id))
			return nil, err
		}
		if owner != nil {
			log.Debug("attempted to change email to one in use",
				slog.Int64("user_id", id),
				slog.Int64("owner_id", owner.ID))
			return nil, newEmailTakenError()
		}
	}

	updated, err := s.userStore.Update(ctx, id, patch)
	if err != nil {
		if !domain.IsKind(err, domain.KindConflict) {
			log.Error("failed to update user",
				slog.String("error", redact.Error(err)),
				slog.Int64("user_id", id))
		}
		return nil, err
	}
	if updated == nil {
		log.Debug("user removed before update", slog.Int64("user_id", id))
		return nil, domain.NewNotFoundError(MsgUserNotFound)
	}

	log.Info("user updated", slog.Int64("user_id", id))
	return updated, nil
}

// DeleteUser removes a user or returns a NotFound error.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	removed, err := s.userStore.Delete(ctx, id)
	if err != nil {
		log.Error("failed to delete user",
			slog.String("error", redact.Error(err)),
			slog.Int64("user_id", id))
		return err
	}
	if !removed {
		log.Debug("user not found for delete", slog.Int64("user_id", id))
		return domain.NewNotFoundError(MsgUserNotFound)
	}

	log.Info("user deleted", slog.Int64("user_id", id))
	return nil
}
