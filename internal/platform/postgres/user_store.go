package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/clean-api/internal/domain"
	"github.com/phrazzld/clean-api/internal/platform/logger"
	"github.com/phrazzld/clean-api/internal/store"
)

const userColumns = `id, name, email, created_at, updated_at`

// UserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type UserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewUserStore(db store.DBTX, logger *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create implements store.UserStore.Create.
// Both timestamps come from the column defaults so they are equal on insert.
func (s *UserStore) Create(ctx context.Context, input domain.UserInput) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO users (name, email)
		VALUES ($1, $2)
		RETURNING ` + userColumns

	user, err := scanUser(s.db.QueryRowContext(ctx, query, input.Name, input.Email))
	if err != nil {
		if IsEmailUniqueViolation(err) {
			log.Debug("unique violation during user creation",
				slog.String("error", err.Error()))
			return nil, store.NewEmailExistsError(err)
		}
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("sqlstate", errorCode(err)))
		return nil, store.NewStoreError(store.EntityUser, store.OpCreate, err)
	}

	log.Info("user created successfully", slog.Int64("user_id", user.ID))
	return user, nil
}

// FindAll implements store.UserStore.FindAll
func (s *UserStore) FindAll(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query users", slog.String("error", err.Error()))
		return nil, store.NewStoreError(store.EntityUser+"s", store.OpFetch, err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Error("failed to scan user row", slog.String("error", err.Error()))
			return nil, store.NewStoreError(store.EntityUser+"s", store.OpFetch, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating user rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError(store.EntityUser+"s", store.OpFetch, err)
	}

	log.Debug("users retrieved", slog.Int("count", len(users)))
	return users, nil
}

// FindByID implements store.UserStore.FindByID
func (s *UserStore) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.Int64("user_id", id))
			return nil, nil
		}
		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return nil, store.NewStoreError(store.EntityUser, store.OpFetch, err)
	}

	return user, nil
}

// FindByEmail implements store.UserStore.FindByEmail
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Error("failed to get user by email", slog.String("error", err.Error()))
		return nil, store.NewStoreError(store.EntityUser+" by email", store.OpFetch, err)
	}

	return user, nil
}

// Update implements store.UserStore.Update.
// clock_timestamp() is used rather than NOW() so updated_at advances even
// when the row was created earlier in the same transaction.
func (s *UserStore) Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE users
		SET name = COALESCE($1, name),
			email = COALESCE($2, email),
			updated_at = clock_timestamp()
		WHERE id = $3
		RETURNING ` + userColumns

	user, err := scanUser(s.db.QueryRowContext(ctx, query, patch.Name, patch.Email, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found for update", slog.Int64("user_id", id))
			return nil, nil
		}
		if IsEmailUniqueViolation(err) {
			log.Debug("unique violation during user update", slog.Int64("user_id", id))
			return nil, store.NewEmailExistsError(err)
		}
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.String("sqlstate", errorCode(err)),
			slog.Int64("user_id", id))
		return nil, store.NewStoreError(store.EntityUser, store.OpUpdate, err)
	}

	log.Info("user updated successfully", slog.Int64("user_id", id))
	return user, nil
}

// Delete implements store.UserStore.Delete
func (s *UserStore) Delete(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return false, store.NewStoreError(store.EntityUser, store.OpDelete, err)
	}

	removed, err := rowsRemoved(result)
	if err != nil {
		log.Error("failed to get rows affected", slog.String("error", err.Error()))
		return false, store.NewStoreError(store.EntityUser, store.OpDelete, err)
	}

	log.Debug("user delete executed",
		slog.Int64("user_id", id),
		slog.Bool("removed", removed))
	return removed, nil
}

// rowsRemoved reports whether a DELETE affected at least one row.
func rowsRemoved(result sql.Result) (bool, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
