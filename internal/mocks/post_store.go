package mocks

import (
	"context"

	"github.com/phrazzld/clean-api/internal/domain"
	"github.com/phrazzld/clean-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockPostStore is a mock of store.PostStore interface for use with testify/mock
type TestifyMockPostStore struct {
	mock.Mock
}

var _ store.PostStore = (*TestifyMockPostStore)(nil)

func (m *TestifyMockPostStore) Create(ctx context.Context, input domain.PostInput) (*domain.Post, error) {
	args := m.Called(ctx, input)
	if post, ok := args.Get(0).(*domain.Post); ok {
		return post, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TestifyMockPostStore) FindAll(ctx context.Context) ([]*domain.Post, error) {
	args := m.Called(ctx)
	if posts, ok := args.Get(0).([]*domain.Post); ok {
		return posts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TestifyMockPostStore) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if post, ok := args.Get(0).(*domain.Post); ok {
		return post, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TestifyMockPostStore) Update(ctx context.Context, id int64, patch domain.PostPatch) (*domain.Post, error) {
	args := m.Called(ctx, id, patch)
	if post, ok := args.Get(0).(*domain.Post); ok {
		return post, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TestifyMockPostStore) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
