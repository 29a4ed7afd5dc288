package service

import (
	"context"

	"github.com/dvdgp9/gema8-go/internal/model"
)

// Ledger is the single place credit accounting happens. The Oracle
// unlimited-credit bypass lives here and nowhere else; callers never branch
// on role themselves.
type Ledger struct {
	profiles ProfileStore
	cache    *ProfileCache
}

func NewLedger(profiles ProfileStore, cache *ProfileCache) *Ledger {
	return &Ledger{profiles: profiles, cache: cache}
}

// HasCredits is the cheap pre-check before a paid operation. It reads
// through the profile cache, so a concurrent deduction elsewhere can make
// it optimistic; Deduct is the authoritative gate.
func (l *Ledger) HasCredits(ctx context.Context, userID int64, amount int) (bool, error) {
	profile, err := l.cache.Get(ctx, userID)
	if err != nil {
		return false, err
	}
	if profile == nil {
		return false, nil
	}
	return profile.HasCredits(amount), nil
}

// Deduct charges amount against the balance. Oracles succeed without
// touching storage. For everyone else the decrement is a single conditional
// update; if the balance moved below amount since the pre-check, the update
// affects no rows and ErrInsufficientCredits comes back.
func (l *Ledger) Deduct(ctx context.Context, userID int64, amount int) error {
	profile, err := l.cache.Get(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrInsufficientCredits
	}
	if profile.Role.Unlimited() {
		return nil
	}

	ok, err := l.profiles.DecrementCredits(ctx, userID, amount)
	if err != nil {
		return persistenceErr(err)
	}
	l.cache.Invalidate(userID)
	if !ok {
		return ErrInsufficientCredits
	}
	return nil
}

// Add grants credits unconditionally. Admin-console operation.
func (l *Ledger) Add(ctx context.Context, userID int64, amount int) error {
	if amount <= 0 {
		return validationErr("amount must be positive")
	}
	if err := l.profiles.AddCredits(ctx, userID, amount); err != nil {
		return persistenceErr(err)
	}
	l.cache.Invalidate(userID)
	return nil
}

// Set overwrites the balance. Admin-console operation; negative balances
// are rejected, there is no upper bound.
func (l *Ledger) Set(ctx context.Context, userID int64, amount int) error {
	if amount < 0 {
		return validationErr("credits cannot be negative")
	}
	if err := l.profiles.SetCredits(ctx, userID, amount); err != nil {
		return persistenceErr(err)
	}
	l.cache.Invalidate(userID)
	return nil
}

// SetRole changes the user's role. Admin-console operation; the cache entry
// is dropped because the Oracle bypass depends on it.
func (l *Ledger) SetRole(ctx context.Context, userID int64, role model.Role) error {
	if !role.Valid() {
		return validationErr("invalid role %q", role)
	}
	if err := l.profiles.UpdateRole(ctx, userID, role); err != nil {
		return persistenceErr(err)
	}
	l.cache.Invalidate(userID)
	return nil
}
