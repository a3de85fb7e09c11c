package mocks

import (
	"context"

	"github.com/phrazzld/clean-api/internal/domain"
	"github.com/phrazzld/clean-api/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockPostService is a testify mock of service.PostService used by handler tests.
type MockPostService struct {
	mock.Mock
}

var _ service.PostService = (*MockPostService)(nil)

func (m *MockPostService) CreatePost(ctx context.Context, input domain.PostInput) (*domain.Post, error) {
	args := m.Called(ctx, input)
	if post, ok := args.Get(0).(*domain.Post); ok {
		return post, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostService) GetAllPosts(ctx context.Context) ([]*domain.Post, error) {
	args := m.Called(ctx)
	if posts, ok := args.Get(0).([]*domain.Post); ok {
		return posts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostService) GetPostByID(ctx context.Context, id int64) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if post, ok := args.Get(0).(*domain.Post); ok {
		return post, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, id int64, patch domain.PostPatch) (*domain.Post, error) {
	args := m.Called(ctx, id, patch)
	if post, ok := args.Get(0).(*domain.Post); ok {
		return post, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
