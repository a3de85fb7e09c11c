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

// PostService provides the post use cases.
type PostService interface {
	CreatePost(ctx context.Context, input domain.PostInput) (*domain.Post, error)
	GetAllPosts(ctx context.Context) ([]*domain.Post, error)
	GetPostByID(ctx context.Context, id int64) (*domain.Post, error)
	UpdatePost(ctx context.Context, id int64, patch domain.PostPatch) (*domain.Post, error)
	DeletePost(ctx context.Context, id int64) error
}

// PostServiceImpl implements the PostService interface
type PostServiceImpl struct {
	postStore store.PostStore
	logger    *slog.Logger
}

var _ PostService = (*PostServiceImpl)(nil)

// NewPostService creates a new PostService.
func NewPostService(postStore store.PostStore, logger *slog.Logger) (PostService, error) {
	if postStore == nil {
		return nil, fmt.Errorf("%w: postStore", ErrNilDependency)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostServiceImpl{
		postStore: postStore,
		logger:    logger.With(slog.String("component", "post_service")),
	}, nil
}

func (s *PostServiceImpl) CreatePost(ctx context.Context, input domain.PostInput) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	input = input.Normalize()
	if err := input.Validate(); err != nil {
		log.Debug("invalid post input", slog.String("error", err.Error()))
		return nil, err
	}

	post, err := s.postStore.Create(ctx, input)
	if err != nil {
		log.Error("failed to create post", slog.String("error", redact.Error(err)))
		return nil, err
	}

	log.Info("post created", slog.Int64("post_id", post.ID))
	return post, nil
}

func (s *PostServiceImpl) GetAllPosts(ctx context.Context) ([]*domain.Post, error) {
	posts, err := s.postStore.FindAll(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list posts",
			slog.String("error", redact.Error(err)))
		return nil, err
	}
	return posts, nil
}

func (s *PostServiceImpl) GetPostByID(ctx context.Context, id int64) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	post, err := s.postStore.FindByID(ctx, id)
	if err != nil {
		log.Error("failed to retrieve post",
			slog.String("error", redact.Error(err)),
			slog.Int64("post_id", id))
		return nil, err
	}
	if post == nil {
		log.Debug("post not found", slog.Int64("post_id", id))
		return nil, domain.NewNotFoundError(MsgPostNotFound)
	}
	return post, nil
}

func (s *PostServiceImpl) UpdatePost(ctx context.Context, id int64, patch domain.PostPatch) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	patch = patch.Normalize()
	if err := patch.Validate(); err != nil {
		log.Debug("invalid post patch", slog.String("error", err.Error()))
		return nil, err
	}

	if _, err := s.GetPostByID(ctx, id); err != nil {
		return nil, err
	}

	updated, err := s.postStore.Update(ctx, id, patch)
	if err != nil {
		log.Error("failed to update post",
			slog.String("error", redact.Error(err)),
			slog.Int64("post_id", id))
		return nil, err
	}
	if updated == nil {
		return nil, domain.NewNotFoundError(MsgPostNotFound)
	}

	log.Info("post updated", slog.Int64("post_id", id))
	return updated, nil
}

func (s *PostServiceImpl) DeletePost(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	removed, err := s.postStore.Delete(ctx, id)
	if err != nil {
		log.Error("failed to delete post",
			slog.String("error", redact.Error(err)),
			slog.Int64("post_id", id))
		return err
	}
	if !removed {
		log.Debug("post not found for delete", slog.Int64("post_id", id))
		return domain.NewNotFoundError(MsgPostNotFound)
	}

	log.Info("post deleted", slog.Int64("post_id", id))
	return nil
}
