package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dvdgp9/gema8-go/internal/model"
)

type WhisperRepository struct {
	db *Database
}

func NewWhisperRepository(db *Database) *WhisperRepository {
	return &WhisperRepository{db: db}
}

const whisperColumns = `id, user_id, title, situation_context, target_language, phrases, phrase_count, created_at`

func (r *WhisperRepository) Create(ctx context.Context, userID int64, title, situation, targetLang string, phrases model.PhraseList) (*model.Whisper, error) {
	var whisper model.Whisper
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO whispers (user_id, title, situation_context, target_language, phrases, phrase_count)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+whisperColumns,
		userID, title, situation, targetLang, phrases, len(phrases)).StructScan(&whisper)
	if err != nil {
		return nil, fmt.Errorf("failed to create whisper: %w", err)
	}
	return &whisper, nil
}

func (r *WhisperRepository) FindForUser(ctx context.Context, id, userID int64) (*model.Whisper, error) {
	var whisper model.Whisper
	query := `SELECT ` + whisperColumns + ` FROM whispers WHERE id = $1 AND user_id = $2`
	err := r.db.GetContext(ctx, &whisper, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find whisper: %w", err)
	}
	return &whisper, nil
}

func (r *WhisperRepository) ListForUser(ctx context.Context, userID int64, targetLang string, limit, offset int) ([]model.Whisper, error) {
	whispers := []model.Whisper{}
	query := `SELECT ` + whisperColumns + ` FROM whispers
		WHERE user_id = $1 AND ($2 = '' OR target_language = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`
	if err := r.db.SelectContext(ctx, &whispers, query, userID, targetLang, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list whispers: %w", err)
	}
	return whispers, nil
}

func (r *WhisperRepository) CountForUser(ctx context.Context, userID int64) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM whispers WHERE user_id = $1`, userID); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *WhisperRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM whispers WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete whisper: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *WhisperRepository) DeleteAllForUser(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM whispers WHERE user_id = $1`, userID)
	return err
}
