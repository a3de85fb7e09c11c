package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/phrazzld/clean-api/internal/domain"
	"github.com/phrazzld/clean-api/internal/store"
)

// PostStore is an in-memory implementation of store.PostStore.
// It is safe for concurrent use.
type PostStore struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]domain.Post
	now    Clock
}

var _ store.PostStore = (*PostStore)(nil)

func NewPostStore(opts ...Option) *PostStore {
	o := buildOptions(opts)
	return &PostStore{
		byID: make(map[int64]domain.Post),
		now:  o.now,
	}
}

func (s *PostStore) Create(_ context.Context, input domain.PostInput) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	now := s.now()
	p := domain.Post{
		ID:        s.nextID,
		Title:     input.Title,
		Content:   input.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.byID[p.ID] = p
	return &p, nil
}

func (s *PostStore) FindAll(_ context.Context) ([]*domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Post, 0, len(s.byID))
	for _, p := range s.byID {
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *PostStore) FindByID(_ context.Context, id int64) (*domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *PostStore) Update(_ context.Context, id int64, patch domain.PostPatch) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	updated := patch.Apply(current)
	updated.UpdatedAt = s.now()
	s.byID[id] = updated
	return &updated, nil
}

func (s *PostStore) Delete(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return false, nil
	}
	delete(s.byID, id)
	return true, nil
}
