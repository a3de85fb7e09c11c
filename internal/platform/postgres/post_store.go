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

const postColumns = `id, title, content, created_at, updated_at`

// PostStore implements the store.PostStore interface
// using a PostgreSQL database as the storage backend.
type PostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostStore creates a new PostgreSQL implementation of the PostStore interface.
// If logger is nil, a default logger will be used.
func NewPostStore(db store.DBTX, logger *slog.Logger) *PostStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostStore{
		db:     db,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

var _ store.PostStore = (*PostStore)(nil)

func scanPost(row rowScanner) (*domain.Post, error) {
	var p domain.Post
	if err := row.Scan(&p.ID, &p.Title, &p.Content, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create implements store.PostStore.Create
func (s *PostStore) Create(ctx context.Context, input domain.PostInput) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO posts (title, content)
		VALUES ($1, $2)
		RETURNING ` + postColumns

	post, err := scanPost(s.db.QueryRowContext(ctx, query, input.Title, input.Content))
	if err != nil {
		log.Error("failed to create post",
			slog.String("error", err.Error()),
			slog.String("sqlstate", errorCode(err)))
		return nil, store.NewStoreError(store.EntityPost, store.OpCreate, err)
	}

	log.Info("post created successfully", slog.Int64("post_id", post.ID))
	return post, nil
}

// FindAll implements store.PostStore.FindAll
func (s *PostStore) FindAll(ctx context.Context) ([]*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT `+postColumns+` FROM posts ORDER BY id`)
	if err != nil {
		log.Error("failed to query posts", slog.String("error", err.Error()))
		return nil, store.NewStoreError(store.EntityPost+"s", store.OpFetch, err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			log.Error("failed to scan post row", slog.String("error", err.Error()))
			return nil, store.NewStoreError(store.EntityPost+"s", store.OpFetch, err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating post rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError(store.EntityPost+"s", store.OpFetch, err)
	}

	return posts, nil
}

// FindByID implements store.PostStore.FindByID
func (s *PostStore) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	post, err := scanPost(s.db.QueryRowContext(ctx,
		`SELECT `+postColumns+` FROM posts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("post not found", slog.Int64("post_id", id))
			return nil, nil
		}
		log.Error("failed to get post by ID",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return nil, store.NewStoreError(store.EntityPost, store.OpFetch, err)
	}

	return post, nil
}

// Update implements store.PostStore.Update
func (s *PostStore) Update(ctx context.Context, id int64, patch domain.PostPatch) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE posts
		SET title = COALESCE($1, title),
			content = COALESCE($2, content),
			updated_at = clock_timestamp()
		WHERE id = $3
		RETURNING ` + postColumns

	post, err := scanPost(s.db.QueryRowContext(ctx, query, patch.Title, patch.Content, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("post not found for update", slog.Int64("post_id", id))
			return nil, nil
		}
		log.Error("failed to update post",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return nil, store.NewStoreError(store.EntityPost, store.OpUpdate, err)
	}

	log.Info("post updated successfully", slog.Int64("post_id", id))
	return post, nil
}

// Delete implements store.PostStore.Delete
func (s *PostStore) Delete(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete post",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return false, store.NewStoreError(store.EntityPost, store.OpDelete, err)
	}

	removed, err := rowsRemoved(result)
	if err != nil {
		return false, store.NewStoreError(store.EntityPost, store.OpDelete, err)
	}
	return removed, nil
}
