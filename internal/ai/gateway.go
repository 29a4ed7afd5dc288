// Package ai talks to the external language model. Everything here is an
// opaque, fallible call: text in, text or structured result out.
package ai

import (
	"context"

	"github.com/dvdgp9/gema8-go/internal/model"
)

// WhisperResult is the structured output of a phrase-set generation.
type WhisperResult struct {
	Title   string         `json:"title"`
	Phrases []model.Phrase `json:"phrases"`
}

// Gateway is the paid AI surface. Implementations must treat timeouts,
// non-2xx statuses, and unparseable responses as hard failures.
type Gateway interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
	AskQuestion(ctx context.Context, question, lang string) (string, error)
	GenerateWhisper(ctx context.Context, situation, targetLang string) (*WhisperResult, error)
	GenerateDailyTip(ctx context.Context, lang string, daysActive int, recentTopics []string) (string, error)
}
