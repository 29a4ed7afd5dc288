package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dvdgp9/gema8-go/internal/model"
)

type TipRepository struct {
	db *Database
}

func NewTipRepository(db *Database) *TipRepository {
	return &TipRepository{db: db}
}

// TodaysTip returns the most recent tip created on the server's current
// calendar date for the user+language, or nil if none exists yet.
func (r *TipRepository) TodaysTip(ctx context.Context, userID int64, lang string) (*model.Tip, error) {
	var tip model.Tip
	query := `SELECT id, user_id, language, tip_content, brief_summary, created_at
		FROM user_tips
		WHERE user_id = $1 AND language = $2 AND created_at::date = CURRENT_DATE
		ORDER BY created_at DESC
		LIMIT 1`
	err := r.db.GetContext(ctx, &tip, query, userID, lang)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load today's tip: %w", err)
	}
	return &tip, nil
}

func (r *TipRepository) Store(ctx context.Context, userID int64, lang, tipContent, briefSummary string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_tips (user_id, language, tip_content, brief_summary) VALUES ($1, $2, $3, $4)`,
		userID, lang, tipContent, briefSummary)
	if err != nil {
		return fmt.Errorf("failed to store tip: %w", err)
	}
	return nil
}

// RecentSummaries returns brief summaries from the rolling window, most
// recent first. They bias the generator away from repeated topics; the
// exclusion is advisory, not enforced.
func (r *TipRepository) RecentSummaries(ctx context.Context, userID int64, lang string, days int) ([]string, error) {
	summaries := []string{}
	query := `SELECT brief_summary FROM user_tips
		WHERE user_id = $1 AND language = $2 AND created_at > NOW() - make_interval(days => $3)
		ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &summaries, query, userID, lang, days); err != nil {
		return nil, fmt.Errorf("failed to load recent summaries: %w", err)
	}
	return summaries, nil
}

func (r *TipRepository) History(ctx context.Context, userID int64, lang string, limit int) ([]model.Tip, error) {
	tips := []model.Tip{}
	query := `SELECT id, user_id, language, tip_content, brief_summary, created_at
		FROM user_tips
		WHERE user_id = $1 AND ($2 = '' OR language = $2)
		ORDER BY created_at DESC
		LIMIT $3`
	if err := r.db.SelectContext(ctx, &tips, query, userID, lang, limit); err != nil {
		return nil, fmt.Errorf("failed to load tip history: %w", err)
	}
	return tips, nil
}

// CleanupOld drops tips older than the retention window.
func (r *TipRepository) CleanupOld(ctx context.Context, daysToKeep int) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM user_tips WHERE created_at < NOW() - make_interval(days => $1)`,
		daysToKeep)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up old tips: %w", err)
	}
	return res.RowsAffected()
}
