package service

import (
	"context"

	"github.com/dvdgp9/gema8-go/internal/model"
)

// Storage interfaces consumed by the services. The sqlx repositories in
// internal/storage satisfy them; tests substitute in-memory fakes.

type ProfileStore interface {
	FindByUserID(ctx context.Context, userID int64) (*model.Profile, error)
	DecrementCredits(ctx context.Context, userID int64, amount int) (bool, error)
	AddCredits(ctx context.Context, userID int64, amount int) error
	SetCredits(ctx context.Context, userID int64, credits int) error
	UpdateRole(ctx context.Context, userID int64, role model.Role) error
	UpdateLanguage(ctx context.Context, userID int64, lang string) (*model.LanguageStreak, error)
}

type TranslationStore interface {
	FindExisting(ctx context.Context, userID int64, normalizedText, sourceLang, targetLang string) (*model.Translation, error)
	SaveOrUpdate(ctx context.Context, userID int64, originalText, translatedText, sourceLang, targetLang string) (*model.Translation, error)
}

type TipStore interface {
	TodaysTip(ctx context.Context, userID int64, lang string) (*model.Tip, error)
	Store(ctx context.Context, userID int64, lang, tipContent, briefSummary string) error
	RecentSummaries(ctx context.Context, userID int64, lang string, days int) ([]string, error)
}

type WhisperStore interface {
	Create(ctx context.Context, userID int64, title, situation, targetLang string, phrases model.PhraseList) (*model.Whisper, error)
}
