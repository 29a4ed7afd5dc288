package service

import (
	"context"
	"strings"

	"github.com/dvdgp9/gema8-go/internal/ai"
	"github.com/dvdgp9/gema8-go/internal/language"
	"github.com/dvdgp9/gema8-go/internal/logger"
	"github.com/dvdgp9/gema8-go/internal/model"
)

// Translator runs the paid translate and ask flows. Ordering for paid
// operations is: validate, pre-check credits, cache lookup or gateway call,
// deduct, persist. The call-then-charge order means a deduct that loses a
// concurrent race happens after the gateway already produced a result; that
// fail-open window is intentional and matches the product's behavior.
type Translator struct {
	translations  TranslationStore
	ledger        *Ledger
	gateway       ai.Gateway
	translateCost int
	askCost       int
}

func NewTranslator(translations TranslationStore, ledger *Ledger, gateway ai.Gateway, translateCost, askCost int) *Translator {
	return &Translator{
		translations:  translations,
		ledger:        ledger,
		gateway:       gateway,
		translateCost: translateCost,
		askCost:       askCost,
	}
}

func (t *Translator) Translate(ctx context.Context, userID int64, req model.TranslateRequest) (*model.TranslateResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, validationErr("text is required")
	}
	sourceLang := req.SourceLanguage
	if sourceLang == "" {
		sourceLang = "english"
	}
	if !language.IsValid(sourceLang) || !language.IsValid(req.TargetLanguage) {
		return nil, validationErr("invalid source or target language")
	}

	ok, err := t.ledger.HasCredits(ctx, userID, t.translateCost)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInsufficientCredits
	}

	// Ephemeral requests skip the cache on both read and write; they still
	// cost credits and still hit the gateway.
	if !req.Ephemeral {
		normalized := language.Normalize(text)
		existing, err := t.translations.FindExisting(ctx, userID, normalized, sourceLang, req.TargetLanguage)
		if err != nil {
			return nil, persistenceErr(err)
		}
		if existing != nil {
			if err := t.ledger.Deduct(ctx, userID, t.translateCost); err != nil {
				return nil, err
			}
			bumped, err := t.translations.SaveOrUpdate(ctx, userID, existing.OriginalText, existing.TranslatedText, sourceLang, req.TargetLanguage)
			if err != nil {
				return nil, persistenceErr(err)
			}
			return &model.TranslateResponse{
				OriginalText:   bumped.OriginalText,
				TranslatedText: bumped.TranslatedText,
				SourceLanguage: sourceLang,
				TargetLanguage: req.TargetLanguage,
				UseCount:       bumped.UseCount,
				Cached:         true,
			}, nil
		}
	}

	translated, err := t.gateway.Translate(ctx, text, sourceLang, req.TargetLanguage)
	if err != nil {
		return nil, upstreamErr(err)
	}

	if err := t.ledger.Deduct(ctx, userID, t.translateCost); err != nil {
		return nil, err
	}

	resp := &model.TranslateResponse{
		OriginalText:   text,
		TranslatedText: translated,
		SourceLanguage: sourceLang,
		TargetLanguage: req.TargetLanguage,
		UseCount:       1,
		Cached:         false,
		Ephemeral:      req.Ephemeral,
	}

	if !req.Ephemeral {
		saved, err := t.translations.SaveOrUpdate(ctx, userID, text, translated, sourceLang, req.TargetLanguage)
		if err != nil {
			// The user already paid; an uncached result beats no result.
			logger.Error("failed to persist translation", "user_id", userID, "error", err)
			return resp, nil
		}
		resp.UseCount = saved.UseCount
	}

	return resp, nil
}

func (t *Translator) Ask(ctx context.Context, userID int64, req model.AskRequest) (*model.AskResponse, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, validationErr("question is required")
	}
	lang := req.Language
	if lang == "" {
		lang = "indonesian"
	}
	if !language.IsValid(lang) {
		return nil, validationErr("invalid language")
	}

	ok, err := t.ledger.HasCredits(ctx, userID, t.askCost)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInsufficientCredits
	}

	answer, err := t.gateway.AskQuestion(ctx, question, lang)
	if err != nil {
		return nil, upstreamErr(err)
	}

	if err := t.ledger.Deduct(ctx, userID, t.askCost); err != nil {
		return nil, err
	}

	return &model.AskResponse{Answer: answer}, nil
}
