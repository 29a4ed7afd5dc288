package service

import (
	"context"
	"sync"
	"time"

	"github.com/dvdgp9/gema8-go/internal/model"
)

const profileCacheTTL = 5 * time.Minute

type cachedProfile struct {
	profile  *model.Profile
	cachedAt time.Time
}

// ProfileCache is a read-through per-user profile cache with a five-minute
// freshness window. Every mutation path (credit deduct/add/set, language
// update, role change) must call Invalidate or Refresh so stale balances
// never linger past the window.
type ProfileCache struct {
	store ProfileStore
	now   func() time.Time

	mu      sync.Mutex
	entries map[int64]cachedProfile
}

func NewProfileCache(store ProfileStore) *ProfileCache {
	return &ProfileCache{
		store:   store,
		now:     time.Now,
		entries: make(map[int64]cachedProfile),
	}
}

// Get returns the cached profile when fresh, loading from the store
// otherwise. A nil profile (unknown user) is not cached.
func (c *ProfileCache) Get(ctx context.Context, userID int64) (*model.Profile, error) {
	c.mu.Lock()
	entry, ok := c.entries[userID]
	c.mu.Unlock()

	if ok && c.now().Sub(entry.cachedAt) < profileCacheTTL {
		return entry.profile, nil
	}

	return c.Refresh(ctx, userID)
}

// Refresh forces a reload and restamps the freshness timestamp.
func (c *ProfileCache) Refresh(ctx context.Context, userID int64) (*model.Profile, error) {
	profile, err := c.store.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		c.Invalidate(userID)
		return nil, nil
	}

	c.mu.Lock()
	c.entries[userID] = cachedProfile{profile: profile, cachedAt: c.now()}
	c.mu.Unlock()

	return profile, nil
}

func (c *ProfileCache) Invalidate(userID int64) {
	c.mu.Lock()
	delete(c.entries, userID)
	c.mu.Unlock()
}
