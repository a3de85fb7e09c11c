package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/phrazzld/clean-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

type tickingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func TestUserStore(t *testing.T) {
	t.Parallel()

	clock := &tickingClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := NewUserStore(WithClock(clock.Now))
	ctx := context.Background()

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	ann, err := s.Create(ctx, domain.UserInput{Name: "Ann", Email: "ann@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), ann.ID)
	assert.Equal(t, ann.CreatedAt, ann.UpdatedAt)

	bob, err := s.Create(ctx, domain.UserInput{Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), bob.ID)

	_, err = s.Create(ctx, domain.UserInput{Name: "Other", Email: "ann@example.com"})
	assert.True(t, domain.IsKind(err, domain.KindConflict))

	got, err := s.FindByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, bob.ID, got.ID)

	// Mutating a returned value must not leak into the store.
	got.Name = "mutated"
	again, err := s.FindByID(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", again.Name)

	_, err = s.Update(ctx, ann.ID, domain.UserPatch{Email: strPtr("bob@example.com")})
	assert.True(t, domain.IsKind(err, domain.KindConflict))

	updated, err := s.Update(ctx, ann.ID, domain.UserPatch{Email: strPtr("annie@example.com")})
	require.NoError(t, err)
	assert.Equal(t, "Ann", updated.Name)
	assert.True(t, updated.UpdatedAt.After(ann.UpdatedAt))
	assert.Equal(t, ann.CreatedAt, updated.CreatedAt)

	// The old email is released once changed.
	old, err := s.FindByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Nil(t, old)

	same, err := s.Update(ctx, ann.ID, domain.UserPatch{Email: strPtr("annie@example.com")})
	require.NoError(t, err)
	assert.Equal(t, "annie@example.com", same.Email)

	missing, err := s.Update(ctx, 42, domain.UserPatch{Name: strPtr("x")})
	require.NoError(t, err)
	assert.Nil(t, missing)

	all, err = s.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, ann.ID, all[0].ID)
	assert.Equal(t, bob.ID, all[1].ID)

	removed, err := s.Delete(ctx, ann.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = s.Delete(ctx, ann.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	// Ids are never reused after a delete.
	carl, err := s.Create(ctx, domain.UserInput{Name: "Carl", Email: "annie@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), carl.ID)
}

func TestPostStore(t *testing.T) {
	t.Parallel()

	s := NewPostStore()
	ctx := context.Background()

	p, err := s.Create(ctx, domain.PostInput{Title: "Hello", Content: "World"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)

	got, err := s.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "World", got.Content)

	none, err := s.FindByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, none)

	updated, err := s.Update(ctx, p.ID, domain.PostPatch{Title: strPtr("Hi")})
	require.NoError(t, err)
	assert.Equal(t, "Hi", updated.Title)
	assert.Equal(t, "World", updated.Content)

	removed, err := s.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUserStore_ConcurrentCreate(t *testing.T) {
	t.Parallel()

	s := NewUserStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.Create(ctx, domain.UserInput{Name: "u", Email: fmt.Sprintf("u%d@example.com", i)})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 50)
	for i, u := range all {
		assert.Equal(t, int64(i+1), u.ID)
	}
}
