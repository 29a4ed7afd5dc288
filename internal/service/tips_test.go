package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvdgp9/gema8-go/internal/model"
)

func newTestTipService(store *fakeProfileStore, tips *fakeTipStore, gateway *fakeGateway) *TipService {
	cache := NewProfileCache(store)
	ledger := NewLedger(store, cache)
	return NewTipService(tips, store, cache, ledger, gateway, 1)
}

func TestDailyTip(t *testing.T) {
	ctx := context.Background()

	t.Run("first call of the day generates and charges", func(t *testing.T) {
		store := newFakeProfileStore(&model.Profile{UserID: 1, Role: model.RoleWhisper, Credits: 5})
		tips := newFakeTipStore()
		gateway := &fakeGateway{tipResult: "Use 'lah' for emphasis. It softens commands."}
		svc := newTestTipService(store, tips, gateway)

		resp, err := svc.DailyTip(ctx, 1, model.DailyTipRequest{Language: "indonesian"})
		require.NoError(t, err)
		assert.False(t, resp.Cached)
		assert.Equal(t, "Use 'lah' for emphasis. It softens commands.", resp.Tip)
		assert.Equal(t, 1, resp.DaysActive)
		assert.Equal(t, 4, store.profiles[1].Credits)

		require.Len(t, tips.stored, 1)
		assert.Equal(t, "Use 'lah' for emphasis.", tips.stored[0].BriefSummary)
	})

	t.Run("second call same day is free and cached", func(t *testing.T) {
		store := newFakeProfileStore(&model.Profile{UserID: 1, Role: model.RoleWhisper, Credits: 5})
		tips := newFakeTipStore()
		gateway := &fakeGateway{tipResult: "Tip of the day."}
		svc := newTestTipService(store, tips, gateway)

		_, err := svc.DailyTip(ctx, 1, model.DailyTipRequest{Language: "indonesian"})
		require.NoError(t, err)

		resp, err := svc.DailyTip(ctx, 1, model.DailyTipRequest{Language: "indonesian"})
		require.NoError(t, err)
		assert.True(t, resp.Cached)
		assert.Equal(t, "Tip of the day.", resp.Tip)
		assert.Equal(t, 1, gateway.calls, "cached day must not call the gateway")
		assert.Equal(t, 4, store.profiles[1].Credits, "cached day must not charge")
	})

	t.Run("languages are cached independently", func(t *testing.T) {
		store := newFakeProfileStore(&model.Profile{UserID: 1, Role: model.RoleWhisper, Credits: 5})
		tips := newFakeTipStore()
		gateway := &fakeGateway{tipResult: "A tip."}
		svc := newTestTipService(store, tips, gateway)

		_, err := svc.DailyTip(ctx, 1, model.DailyTipRequest{Language: "indonesian"})
		require.NoError(t, err)
		resp, err := svc.DailyTip(ctx, 1, model.DailyTipRequest{Language: "japanese"})
		require.NoError(t, err)

		assert.False(t, resp.Cached)
		assert.Equal(t, 2, gateway.calls)
		assert.Equal(t, 3, store.profiles[1].Credits)
	})

	t.Run("recent summaries reach the prompt", func(t *testing.T) {
		store := newFakeProfileStore(&model.Profile{UserID: 1, Role: model.RoleWhisper, Credits: 5})
		tips := newFakeTipStore()
		tips.summaries = []string{"Use 'lah' for emphasis.", "Word order is flexible."}
		gateway := &fakeGateway{tipResult: "Something new."}
		svc := newTestTipService(store, tips, gateway)

		_, err := svc.DailyTip(ctx, 1, model.DailyTipRequest{Language: "indonesian"})
		require.NoError(t, err)
		assert.Equal(t, tips.summaries, gateway.lastTopics)
	})

	t.Run("days active reported from the advanced streak", func(t *testing.T) {
		progress := model.LanguageProgress{
			"indonesian": {DaysActive: 22, LastActive: "2020-01-01"},
		}
		store := newFakeProfileStore(&model.Profile{
			UserID: 1, Role: model.RoleWhisper, Credits: 5,
			LanguageProgress: progress,
		})
		tips := newFakeTipStore()
		gateway := &fakeGateway{tipResult: "Advanced tip."}
		svc := newTestTipService(store, tips, gateway)

		resp, err := svc.DailyTip(ctx, 1, model.DailyTipRequest{Language: "indonesian"})
		require.NoError(t, err)
		assert.Equal(t, 23, resp.DaysActive, "a new day advances the streak before generating")
		assert.Equal(t, 23, gateway.lastDaysActive)
	})

	t.Run("streak does not advance twice in one day", func(t *testing.T) {
		today := time.Now().Format("2006-01-02")
		progress := model.LanguageProgress{
			"indonesian": {DaysActive: 3, LastActive: today},
		}
		store := newFakeProfileStore(&model.Profile{
			UserID: 1, Role: model.RoleWhisper, Credits: 5,
			LanguageProgress: progress,
		})
		tips := newFakeTipStore()
		gateway := &fakeGateway{tipResult: "A tip."}
		svc := newTestTipService(store, tips, gateway)

		resp, err := svc.DailyTip(ctx, 1, model.DailyTipRequest{Language: "indonesian"})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.DaysActive)
	})

	t.Run("insufficient credits rejected before generation", func(t *testing.T) {
		store := newFakeProfileStore(&model.Profile{UserID: 1, Role: model.RoleWhisper, Credits: 0})
		tips := newFakeTipStore()
		gateway := &fakeGateway{tipResult: "x"}
		svc := newTestTipService(store, tips, gateway)

		_, err := svc.DailyTip(ctx, 1, model.DailyTipRequest{Language: "indonesian"})
		require.ErrorIs(t, err, ErrInsufficientCredits)
		assert.Zero(t, gateway.calls)
	})

	t.Run("store failure still returns the tip", func(t *testing.T) {
		store := newFakeProfileStore(&model.Profile{UserID: 1, Role: model.RoleWhisper, Credits: 5})
		tips := newFakeTipStore()
		tips.storeErr = errors.New("disk full")
		gateway := &fakeGateway{tipResult: "A tip."}
		svc := newTestTipService(store, tips, gateway)

		resp, err := svc.DailyTip(ctx, 1, model.DailyTipRequest{Language: "indonesian"})
		require.NoError(t, err)
		assert.Equal(t, "A tip.", resp.Tip)
		assert.Equal(t, 4, store.profiles[1].Credits)
	})

	t.Run("invalid language rejected", func(t *testing.T) {
		store := newFakeProfileStore(&model.Profile{UserID: 1, Role: model.RoleWhisper, Credits: 5})
		svc := newTestTipService(store, newFakeTipStore(), &fakeGateway{})

		_, err := svc.DailyTip(ctx, 1, model.DailyTipRequest{Language: "klingon"})
		require.ErrorIs(t, err, ErrValidation)
		_, err = svc.DailyTip(ctx, 1, model.DailyTipRequest{})
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestBriefSummary(t *testing.T) {
	tests := []struct {
		name string
		tip  string
		want string
	}{
		{"first sentence", "Use 'lah' for emphasis. It softens commands.", "Use 'lah' for emphasis."},
		{"single sentence", "Just one sentence.", "Just one sentence."},
		{"no period", "No terminator here", "No terminator here."},
		{"leading period", ". odd", "."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BriefSummary(tt.tip))
		})
	}
}
