package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvdgp9/gema8-go/internal/model"
)

func TestLedgerDeduct(t *testing.T) {
	ctx := context.Background()

	t.Run("charges the balance", func(t *testing.T) {
		store := newFakeProfileStore(&model.Profile{UserID: 1, Role: model.RoleWhisper, Credits: 10})
		ledger, _ := newTestLedger(store)

		require.NoError(t, ledger.Deduct(ctx, 1, 3))
		assert.Equal(t, 7, store.profiles[1].Credits)
	})

	t.Run("insufficient balance leaves credits untouched", func(t *testing.T) {
		store := newFakeProfileStore(&model.Profile{UserID: 1, Role: model.RoleWhisper, Credits: 2})
		ledger, _ := newTestLedger(store)

		err := ledger.Deduct(ctx, 1, 5)
		require.ErrorIs(t, err, ErrInsufficientCredits)
		assert.Equal(t, 2, store.profiles[1].Credits)
	})

	t.Run("exact balance reaches zero then rejects", func(t *testing.T) {
		store := newFakeProfileStore(&model.Profile{UserID: 1, Role: model.RoleWhisper, Credits: 1})
		ledger, _ := newTestLedger(store)

		require.NoError(t, ledger.Deduct(ctx, 1, 1))
		assert.Equal(t, 0, store.profiles[1].Credits)

		err := ledger.Deduct(ctx, 1, 1)
		require.ErrorIs(t, err, ErrInsufficientCredits)
	})

	t.Run("oracle never touches storage", func(t *testing.T) {
		store := newFakeProfileStore(&model.Profile{UserID: 9, Role: model.RoleOracle, Credits: 0})
		ledger, _ := newTestLedger(store)

		for i := 0; i < 5; i++ {
			require.NoError(t, ledger.Deduct(ctx, 9, 100))
		}
		assert.Zero(t, store.decrementCalls)
		assert.Equal(t, 0, store.profiles[9].Credits)
	})

	t.Run("unknown user is treated as broke", func(t *testing.T) {
		store := newFakeProfileStore()
		ledger, _ := newTestLedger(store)

		err := ledger.Deduct(ctx, 42, 1)
		require.ErrorIs(t, err, ErrInsufficientCredits)
	})
}

func TestLedgerHasCredits(t *testing.T) {
	ctx := context.Background()

	t.Run("oracle with zero balance passes", func(t *testing.T) {
		store := newFakeProfileStore(&model.Profile{UserID: 1, Role: model.RoleOracle, Credits: 0})
		ledger, _ := newTestLedger(store)

		ok, err := ledger.HasCredits(ctx, 1, 1000)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("regular user below cost fails", func(t *testing.T) {
		store := newFakeProfileStore(&model.Profile{UserID: 1, Role: model.RoleVoice, Credits: 0})
		ledger, _ := newTestLedger(store)

		ok, err := ledger.HasCredits(ctx, 1, 1)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestLedgerDeductInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	store := newFakeProfileStore(&model.Profile{UserID: 1, Role: model.RoleWhisper, Credits: 5})
	ledger, cache := newTestLedger(store)

	// Warm the cache, charge, then verify the next read reloads.
	_, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	loads := store.findCalls

	require.NoError(t, ledger.Deduct(ctx, 1, 1))

	profile, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, profile.Credits)
	assert.Greater(t, store.findCalls, loads)
}

func TestLedgerAdminOperations(t *testing.T) {
	ctx := context.Background()

	t.Run("set rejects negative", func(t *testing.T) {
		store := newFakeProfileStore(&model.Profile{UserID: 1, Role: model.RoleWhisper, Credits: 5})
		ledger, _ := newTestLedger(store)

		err := ledger.Set(ctx, 1, -1)
		require.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, 5, store.profiles[1].Credits)
	})

	t.Run("set allows zero", func(t *testing.T) {
		store := newFakeProfileStore(&model.Profile{UserID: 1, Role: model.RoleWhisper, Credits: 5})
		ledger, _ := newTestLedger(store)

		require.NoError(t, ledger.Set(ctx, 1, 0))
		assert.Equal(t, 0, store.profiles[1].Credits)
	})

	t.Run("add rejects non-positive", func(t *testing.T) {
		store := newFakeProfileStore(&model.Profile{UserID: 1, Role: model.RoleWhisper, Credits: 5})
		ledger, _ := newTestLedger(store)

		require.ErrorIs(t, ledger.Add(ctx, 1, 0), ErrValidation)
		require.NoError(t, ledger.Add(ctx, 1, 10))
		assert.Equal(t, 15, store.profiles[1].Credits)
	})

	t.Run("set role validates", func(t *testing.T) {
		store := newFakeProfileStore(&model.Profile{UserID: 1, Role: model.RoleWhisper, Credits: 5})
		ledger, _ := newTestLedger(store)

		require.ErrorIs(t, ledger.SetRole(ctx, 1, model.Role("Wizard")), ErrValidation)
		require.NoError(t, ledger.SetRole(ctx, 1, model.RoleOracle))
		assert.Equal(t, model.RoleOracle, store.profiles[1].Role)
	})
}
