package service

import (
	"context"
	"strings"

	"github.com/dvdgp9/gema8-go/internal/ai"
	"github.com/dvdgp9/gema8-go/internal/language"
	"github.com/dvdgp9/gema8-go/internal/logger"
	"github.com/dvdgp9/gema8-go/internal/model"
)

const recentSummaryDays = 30

// TipService generates one daily tip per user per language. The per-day
// cache is a query over stored tips, not a uniqueness constraint; a cached
// day returns the stored tip without touching credits or the gateway.
type TipService struct {
	tips     TipStore
	profiles ProfileStore
	cache    *ProfileCache
	ledger   *Ledger
	gateway  ai.Gateway
	cost     int
}

func NewTipService(tips TipStore, profiles ProfileStore, cache *ProfileCache, ledger *Ledger, gateway ai.Gateway, cost int) *TipService {
	return &TipService{
		tips:     tips,
		profiles: profiles,
		cache:    cache,
		ledger:   ledger,
		gateway:  gateway,
		cost:     cost,
	}
}

func (s *TipService) DailyTip(ctx context.Context, userID int64, req model.DailyTipRequest) (*model.DailyTipResponse, error) {
	if req.Language == "" || !language.IsValid(req.Language) {
		return nil, validationErr("invalid language")
	}

	existing, err := s.tips.TodaysTip(ctx, userID, req.Language)
	if err != nil {
		return nil, persistenceErr(err)
	}
	if existing != nil {
		return &model.DailyTipResponse{
			Tip:      existing.TipContent,
			Language: req.Language,
			Cached:   true,
		}, nil
	}

	ok, err := s.ledger.HasCredits(ctx, userID, s.cost)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInsufficientCredits
	}

	// Generating a tip counts as activity: advance the streak first so the
	// difficulty tier reflects today.
	streak, err := s.profiles.UpdateLanguage(ctx, userID, req.Language)
	if err != nil {
		return nil, persistenceErr(err)
	}
	if _, err := s.cache.Refresh(ctx, userID); err != nil {
		return nil, err
	}

	daysActive := 1
	if streak != nil && streak.DaysActive > 0 {
		daysActive = streak.DaysActive
	}

	recentTopics, err := s.tips.RecentSummaries(ctx, userID, req.Language, recentSummaryDays)
	if err != nil {
		return nil, persistenceErr(err)
	}

	tip, err := s.gateway.GenerateDailyTip(ctx, req.Language, daysActive, recentTopics)
	if err != nil {
		return nil, upstreamErr(err)
	}

	if err := s.ledger.Deduct(ctx, userID, s.cost); err != nil {
		return nil, err
	}

	if err := s.tips.Store(ctx, userID, req.Language, tip, BriefSummary(tip)); err != nil {
		// Already charged; the tip still goes back to the user. The only
		// casualty is tomorrow's anti-repetition hint.
		logger.Error("failed to store tip", "user_id", userID, "error", err)
	}

	return &model.DailyTipResponse{
		Tip:        tip,
		Language:   req.Language,
		DaysActive: daysActive,
		Cached:     false,
	}, nil
}

// BriefSummary extracts text up to and including the first period. Crude on
// purpose: stored summaries from the old implementation used exactly this
// truncation, and the anti-repetition prompt compares against them.
func BriefSummary(tip string) string {
	idx := strings.Index(tip, ".")
	if idx < 0 {
		return tip + "."
	}
	return tip[:idx+1]
}
