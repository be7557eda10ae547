package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DebuggingNinjas/GeoAssist/internal/domain/repository"
)

type memorySubscribersRepo struct {
	emails map[string]struct{}
}

func newMemorySubscribersRepo() *memorySubscribersRepo {
	return &memorySubscribersRepo{emails: make(map[string]struct{})}
}

func (m *memorySubscribersRepo) Subscribe(ctx context.Context, email string) error {
	if _, ok := m.emails[email]; ok {
		return repository.ErrAlreadySubscribed
	}
	m.emails[email] = struct{}{}
	return nil
}

func TestNewsletterService_Subscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a valid address lowercased", func(t *testing.T) {
		repo := newMemorySubscribersRepo()
		svc := NewNewsletterService(repo)

		require.NoError(t, svc.Subscribe(ctx, "  Traveler@Example.com "))
		_, ok := repo.emails["traveler@example.com"]
		assert.True(t, ok)
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		svc := NewNewsletterService(newMemorySubscribersRepo())
		assert.ErrorIs(t, svc.Subscribe(ctx, "not-an-email"), ErrInvalidEmail)
		assert.ErrorIs(t, svc.Subscribe(ctx, ""), ErrInvalidEmail)
		assert.ErrorIs(t, svc.Subscribe(ctx, "Display Name <a@b.com>"), ErrInvalidEmail)
	})

	t.Run("surfaces duplicates", func(t *testing.T) {
		repo := newMemorySubscribersRepo()
		svc := NewNewsletterService(repo)

		require.NoError(t, svc.Subscribe(ctx, "traveler@example.com"))
		assert.ErrorIs(t, svc.Subscribe(ctx, "TRAVELER@example.com"), repository.ErrAlreadySubscribed)
	})
}
