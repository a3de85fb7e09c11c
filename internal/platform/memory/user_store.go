package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/phrazzld/clean-api/internal/domain"
	"github.com/phrazzld/clean-api/internal/store"
)

// UserStore is an in-memory implementation of store.UserStore.
// It is safe for concurrent use.
type UserStore struct {
	mu      sync.RWMutex
	nextID  int64
	byID    map[int64]domain.User
	byEmail map[string]int64
	now     Clock
}

var _ store.UserStore = (*UserStore)(nil)

func NewUserStore(opts ...Option) *UserStore {
	o := buildOptions(opts)
	return &UserStore{
		byID:    make(map[int64]domain.User),
		byEmail: make(map[string]int64),
		now:     o.now,
	}
}

func (s *UserStore) Create(_ context.Context, input domain.UserInput) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[input.Email]; ok {
		return nil, store.NewEmailExistsError(nil)
	}

	s.nextID++
	now := s.now()
	u := domain.User{
		ID:        s.nextID,
		Name:      input.Name,
		Email:     input.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.byID[u.ID] = u
	s.byEmail[u.Email] = u.ID
	return &u, nil
}

func (s *UserStore) FindAll(_ context.Context) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.User, 0, len(s.byID))
	for _, u := range s.byID {
		u := u
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *UserStore) FindByID(_ context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, nil
	}
	u := s.byID[id]
	return &u, nil
}

func (s *UserStore) Update(_ context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.byID[id]
	if !ok {
		return nil, nil
	}

	if patch.Email != nil && *patch.Email != current.Email {
		if _, taken := s.byEmail[*patch.Email]; taken {
			return nil, store.NewEmailExistsError(nil)
		}
	}

	updated := patch.Apply(current)
	updated.UpdatedAt = s.now()

	delete(s.byEmail, current.Email)
	s.byEmail[updated.Email] = id
	s.byID[id] = updated
	return &updated, nil
}

func (s *UserStore) Delete(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return false, nil
	}
	delete(s.byID, id)
	delete(s.byEmail, u.Email)
	return true, nil
}
