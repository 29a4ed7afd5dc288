package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvdgp9/gema8-go/internal/model"
)

func TestProfileCache(t *testing.T) {
	ctx := context.Background()

	t.Run("serves from cache within the window", func(t *testing.T) {
		store := newFakeProfileStore(&model.Profile{UserID: 1, Role: model.RoleWhisper, Credits: 10})
		cache := NewProfileCache(store)

		_, err := cache.Get(ctx, 1)
		require.NoError(t, err)
		_, err = cache.Get(ctx, 1)
		require.NoError(t, err)

		assert.Equal(t, 1, store.findCalls)
	})

	t.Run("reloads after the window expires", func(t *testing.T) {
		store := newFakeProfileStore(&model.Profile{UserID: 1, Role: model.RoleWhisper, Credits: 10})
		cache := NewProfileCache(store)

		current := time.Now()
		cache.now = func() time.Time { return current }

		_, err := cache.Get(ctx, 1)
		require.NoError(t, err)

		current = current.Add(profileCacheTTL - time.Second)
		_, err = cache.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, store.findCalls, "still fresh")

		current = current.Add(2 * time.Second)
		_, err = cache.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, store.findCalls, "stale entry reloaded")
	})

	t.Run("invalidate forces a reload", func(t *testing.T) {
		store := newFakeProfileStore(&model.Profile{UserID: 1, Role: model.RoleWhisper, Credits: 10})
		cache := NewProfileCache(store)

		_, err := cache.Get(ctx, 1)
		require.NoError(t, err)
		cache.Invalidate(1)
		_, err = cache.Get(ctx, 1)
		require.NoError(t, err)

		assert.Equal(t, 2, store.findCalls)
	})

	t.Run("refresh picks up a changed balance", func(t *testing.T) {
		store := newFakeProfileStore(&model.Profile{UserID: 1, Role: model.RoleWhisper, Credits: 10})
		cache := NewProfileCache(store)

		_, err := cache.Get(ctx, 1)
		require.NoError(t, err)

		store.profiles[1].Credits = 3
		profile, err := cache.Refresh(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 3, profile.Credits)

		profile, err = cache.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 3, profile.Credits)
	})

	t.Run("unknown user is not cached", func(t *testing.T) {
		store := newFakeProfileStore()
		cache := NewProfileCache(store)

		profile, err := cache.Get(ctx, 7)
		require.NoError(t, err)
		assert.Nil(t, profile)

		_, err = cache.Get(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, 2, store.findCalls)
	})
}
