package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dvdgp9/gema8-go/internal/language"
	"github.com/dvdgp9/gema8-go/internal/model"
)

type TranslationRepository struct {
	db *Database
}

func NewTranslationRepository(db *Database) *TranslationRepository {
	return &TranslationRepository{db: db}
}

const translationColumns = `id, user_id, original_text, normalized_text, translated_text,
	source_language, target_language, use_count, created_at, updated_at`

// FindExisting looks up the cache entry for the dedup key. Both language
// codes must match exactly; the same text toward a different language is a
// different entry.
func (r *TranslationRepository) FindExisting(ctx context.Context, userID int64, normalizedText, sourceLang, targetLang string) (*model.Translation, error) {
	var t model.Translation
	query := `SELECT ` + translationColumns + ` FROM translations
		WHERE user_id = $1 AND normalized_text = $2 AND source_language = $3 AND target_language = $4`
	err := r.db.GetContext(ctx, &t, query, userID, normalizedText, sourceLang, targetLang)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find translation: %w", err)
	}
	return &t, nil
}

// SaveOrUpdate persists a translation, deduplicating on the normalized
// original. On a hit the use counter is bumped and the stored row returned
// as-is: the freshly computed translatedText is deliberately not written
// back, so the first translation a user ever got for a text stays stable.
func (r *TranslationRepository) SaveOrUpdate(ctx context.Context, userID int64, originalText, translatedText, sourceLang, targetLang string) (*model.Translation, error) {
	normalized := language.Normalize(originalText)

	existing, err := r.FindExisting(ctx, userID, normalized, sourceLang, targetLang)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		var updated model.Translation
		err := r.db.QueryRowxContext(ctx,
			`UPDATE translations SET use_count = use_count + 1, updated_at = NOW()
			 WHERE id = $1
			 RETURNING `+translationColumns,
			existing.ID).StructScan(&updated)
		if err != nil {
			return nil, fmt.Errorf("failed to bump use count: %w", err)
		}
		return &updated, nil
	}

	var created model.Translation
	err = r.db.QueryRowxContext(ctx,
		`INSERT INTO translations
		 (user_id, original_text, normalized_text, translated_text, source_language, target_language, use_count)
		 VALUES ($1, $2, $3, $4, $5, $6, 1)
		 RETURNING `+translationColumns,
		userID, originalText, normalized, translatedText, sourceLang, targetLang).StructScan(&created)
	if err != nil {
		return nil, fmt.Errorf("failed to create translation: %w", err)
	}
	return &created, nil
}

func (r *TranslationRepository) History(ctx context.Context, userID int64, targetLang string, limit, offset int) ([]model.Translation, error) {
	translations := []model.Translation{}
	query := `SELECT ` + translationColumns + ` FROM translations
		WHERE user_id = $1 AND ($2 = '' OR target_language = $2)
		ORDER BY updated_at DESC
		LIMIT $3 OFFSET $4`
	if err := r.db.SelectContext(ctx, &translations, query, userID, targetLang, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return translations, nil
}

func (r *TranslationRepository) CountForUser(ctx context.Context, userID int64) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM translations WHERE user_id = $1`, userID); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *TranslationRepository) Search(ctx context.Context, userID int64, term string, limit int) ([]model.Translation, error) {
	translations := []model.Translation{}
	query := `SELECT ` + translationColumns + ` FROM translations
		WHERE user_id = $1 AND (original_text ILIKE '%' || $2 || '%' OR translated_text ILIKE '%' || $2 || '%')
		ORDER BY updated_at DESC
		LIMIT $3`
	if err := r.db.SelectContext(ctx, &translations, query, userID, term, limit); err != nil {
		return nil, fmt.Errorf("failed to search translations: %w", err)
	}
	return translations, nil
}

// Delete removes one entry, scoped to the owner.
func (r *TranslationRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM translations WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete translation: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *TranslationRepository) DeleteAllForUser(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM translations WHERE user_id = $1`, userID)
	return err
}
