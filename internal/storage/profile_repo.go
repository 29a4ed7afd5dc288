package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dvdgp9/gema8-go/internal/model"
)

type ProfileRepository struct {
	db *Database
}

func NewProfileRepository(db *Database) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID int64) (*model.Profile, error) {
	var profile model.Profile
	query := `SELECT user_id, role, credits, current_language, language_progress, created_at, updated_at
		FROM profiles WHERE user_id = $1`
	err := r.db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return &profile, nil
}

// DecrementCredits performs the conditional deduction. The balance guard
// lives in the WHERE clause so two concurrent paid requests racing on the
// same balance cannot both succeed past zero. Returns false when the
// balance was insufficient at the moment of the update.
func (r *ProfileRepository) DecrementCredits(ctx context.Context, userID int64, amount int) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET credits = credits - $1, updated_at = NOW()
		 WHERE user_id = $2 AND credits >= $1`,
		amount, userID)
	if err != nil {
		return false, fmt.Errorf("failed to decrement credits: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *ProfileRepository) AddCredits(ctx context.Context, userID int64, amount int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET credits = credits + $1, updated_at = NOW() WHERE user_id = $2`,
		amount, userID)
	if err != nil {
		return fmt.Errorf("failed to add credits: %w", err)
	}
	return nil
}

func (r *ProfileRepository) SetCredits(ctx context.Context, userID int64, credits int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET credits = $1, updated_at = NOW() WHERE user_id = $2`,
		credits, userID)
	if err != nil {
		return fmt.Errorf("failed to set credits: %w", err)
	}
	return nil
}

func (r *ProfileRepository) UpdateRole(ctx context.Context, userID int64, role model.Role) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET role = $1, updated_at = NOW() WHERE user_id = $2`,
		role, userID)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	return nil
}

// UpdateLanguage switches the current language and advances the streak for
// it. The progress blob is written back whole; only the credit counter
// needs storage-level atomicity.
func (r *ProfileRepository) UpdateLanguage(ctx context.Context, userID int64, lang string) (*model.LanguageStreak, error) {
	profile, err := r.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, sql.ErrNoRows
	}

	if profile.LanguageProgress == nil {
		profile.LanguageProgress = model.LanguageProgress{}
	}
	today := time.Now().Format("2006-01-02")
	streak := profile.LanguageProgress.Touch(lang, today)

	_, err = r.db.ExecContext(ctx,
		`UPDATE profiles SET current_language = $1, language_progress = $2, updated_at = NOW()
		 WHERE user_id = $3`,
		lang, profile.LanguageProgress, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to update language: %w", err)
	}

	return &streak, nil
}

func (r *ProfileRepository) LanguageStreak(ctx context.Context, userID int64, lang string) (model.LanguageStreak, error) {
	profile, err := r.FindByUserID(ctx, userID)
	if err != nil {
		return model.LanguageStreak{}, err
	}
	if profile == nil {
		return model.LanguageStreak{}, nil
	}
	return profile.LanguageProgress[lang], nil
}

func (r *ProfileRepository) Stats(ctx context.Context) (*model.AdminStats, error) {
	stats := &model.AdminStats{ByRole: map[string]int{}}

	if err := r.db.GetContext(ctx, &stats.TotalUsers, `SELECT COUNT(*) FROM users`); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	rows, err := r.db.QueryxContext(ctx, `SELECT role, COUNT(*) FROM profiles GROUP BY role`)
	if err != nil {
		return nil, fmt.Errorf("failed to count roles: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var role string
		var count int
		if err := rows.Scan(&role, &count); err != nil {
			return nil, err
		}
		stats.ByRole[role] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.db.GetContext(ctx, &stats.TotalCredits,
		`SELECT COALESCE(SUM(credits), 0) FROM profiles`); err != nil {
		return nil, fmt.Errorf("failed to sum credits: %w", err)
	}
	if err := r.db.GetContext(ctx, &stats.NewToday,
		`SELECT COUNT(*) FROM users WHERE created_at >= CURRENT_DATE`); err != nil {
		return nil, err
	}
	if err := r.db.GetContext(ctx, &stats.NewThisWeek,
		`SELECT COUNT(*) FROM users WHERE created_at >= CURRENT_DATE - INTERVAL '7 days'`); err != nil {
		return nil, err
	}

	return stats, nil
}
