package service

import (
	"context"
	"strings"

	"github.com/dvdgp9/gema8-go/internal/ai"
	"github.com/dvdgp9/gema8-go/internal/language"
	"github.com/dvdgp9/gema8-go/internal/logger"
	"github.com/dvdgp9/gema8-go/internal/model"
)

// WhisperService generates situational phrase sets.
type WhisperService struct {
	whispers WhisperStore
	ledger   *Ledger
	gateway  ai.Gateway
	cost     int
}

func NewWhisperService(whispers WhisperStore, ledger *Ledger, gateway ai.Gateway, cost int) *WhisperService {
	return &WhisperService{
		whispers: whispers,
		ledger:   ledger,
		gateway:  gateway,
		cost:     cost,
	}
}

func (s *WhisperService) Generate(ctx context.Context, userID int64, req model.GenerateWhisperRequest) (*model.Whisper, error) {
	situation := strings.TrimSpace(req.Situation)
	if situation == "" {
		return nil, validationErr("situation description is required")
	}
	lang := req.TargetLanguage
	if lang == "" {
		lang = "indonesian"
	}
	if !language.IsValid(lang) {
		return nil, validationErr("invalid target language")
	}

	ok, err := s.ledger.HasCredits(ctx, userID, s.cost)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInsufficientCredits
	}

	result, err := s.gateway.GenerateWhisper(ctx, situation, lang)
	if err != nil {
		return nil, upstreamErr(err)
	}

	if err := s.ledger.Deduct(ctx, userID, s.cost); err != nil {
		return nil, err
	}

	whisper, err := s.whispers.Create(ctx, userID, result.Title, situation, lang, result.Phrases)
	if err != nil {
		// Paid and generated; hand the phrases back unsaved rather than
		// return nothing for money spent.
		logger.Error("failed to persist whisper", "user_id", userID, "error", err)
		return &model.Whisper{
			UserID:           userID,
			Title:            result.Title,
			SituationContext: situation,
			TargetLanguage:   lang,
			Phrases:          result.Phrases,
			PhraseCount:      len(result.Phrases),
		}, nil
	}

	return whisper, nil
}
