package storage

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dvdgp9/gema8-go/internal/model"
)

const (
	resetTokenTTL    = time.Hour
	rememberTokenTTL = 30 * 24 * time.Hour
)

type UserRepository struct {
	db             *Database
	defaultCredits int
}

func NewUserRepository(db *Database, defaultCredits int) *UserRepository {
	return &UserRepository{db: db, defaultCredits: defaultCredits}
}

// Create inserts the user and its profile in one transaction so an account
// never exists without a credit balance.
func (r *UserRepository) Create(ctx context.Context, email, password string) (*model.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var user model.User
	err = tx.QueryRowxContext(ctx,
		`INSERT INTO users (email, password_hash)
		 VALUES ($1, $2)
		 RETURNING id, email, password_hash, reset_token, reset_expires, created_at, updated_at`,
		email, string(hashedPassword)).StructScan(&user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO profiles (user_id, role, credits, current_language, language_progress)
		 VALUES ($1, $2, $3, 'indonesian', '{}')`,
		user.ID, model.RoleWhisper, r.defaultCredits)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit user creation: %w", err)
	}

	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	query := `SELECT id, email, password_hash, reset_token, reset_expires, created_at, updated_at FROM users WHERE id = $1`
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	query := `SELECT id, email, password_hash, reset_token, reset_expires, created_at, updated_at FROM users WHERE email = $1`
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) ValidatePassword(user *model.User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	return err == nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID int64, newPassword string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	query := `UPDATE users SET password_hash = $1, reset_token = NULL, reset_expires = NULL, updated_at = NOW() WHERE id = $2`
	_, err = r.db.ExecContext(ctx, query, string(hashedPassword), userID)
	return err
}

// CreateResetToken issues a password-reset token valid for one hour.
// Returns the raw token, or empty string when the email is unknown.
func (r *UserRepository) CreateResetToken(ctx context.Context, email string) (string, error) {
	user, err := r.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", nil
	}

	token, err := generateToken()
	if err != nil {
		return "", err
	}

	query := `UPDATE users SET reset_token = $1, reset_expires = $2 WHERE id = $3`
	if _, err := r.db.ExecContext(ctx, query, token, time.Now().Add(resetTokenTTL), user.ID); err != nil {
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}

	return token, nil
}

func (r *UserRepository) FindByResetToken(ctx context.Context, token string) (*model.User, error) {
	var user model.User
	query := `SELECT id, email, password_hash, reset_token, reset_expires, created_at, updated_at
		FROM users WHERE reset_token = $1 AND reset_expires > NOW()`
	err := r.db.GetContext(ctx, &user, query, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by reset token: %w", err)
	}
	return &user, nil
}

// CreateRememberToken issues a persistent-session token. The raw token is
// returned to the caller; only its hash is stored.
func (r *UserRepository) CreateRememberToken(ctx context.Context, userID int64) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}

	query := `INSERT INTO remember_tokens (user_id, token_hash, expires_at) VALUES ($1, $2, $3)`
	if _, err := r.db.ExecContext(ctx, query, userID, hashToken(token), time.Now().Add(rememberTokenTTL)); err != nil {
		return "", fmt.Errorf("failed to store remember token: %w", err)
	}

	return token, nil
}

// ConsumeRememberToken validates a raw remember token and rotates it: the
// matched row is deleted and a fresh token issued in the same transaction.
// Returns the user ID and the replacement token.
func (r *UserRepository) ConsumeRememberToken(ctx context.Context, rawToken string) (int64, string, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var stored model.RememberToken
	err = tx.GetContext(ctx, &stored,
		`DELETE FROM remember_tokens WHERE token_hash = $1 AND expires_at > NOW()
		 RETURNING id, user_id, token_hash, expires_at, created_at`,
		hashToken(rawToken))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, "", nil
		}
		return 0, "", fmt.Errorf("failed to consume remember token: %w", err)
	}

	// Constant-time recheck; the index lookup already matched but the
	// comparison belongs on this side too.
	if subtle.ConstantTimeCompare([]byte(stored.TokenHash), []byte(hashToken(rawToken))) != 1 {
		return 0, "", nil
	}

	next, err := generateToken()
	if err != nil {
		return 0, "", err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO remember_tokens (user_id, token_hash, expires_at) VALUES ($1, $2, $3)`,
		stored.UserID, hashToken(next), time.Now().Add(rememberTokenTTL))
	if err != nil {
		return 0, "", fmt.Errorf("failed to rotate remember token: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, "", fmt.Errorf("failed to commit token rotation: %w", err)
	}

	return stored.UserID, next, nil
}

func (r *UserRepository) DeleteRememberTokens(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM remember_tokens WHERE user_id = $1`, userID)
	return err
}

func (r *UserRepository) DeleteExpiredTokens(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM remember_tokens WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, err
	}
	if _, err := r.db.ExecContext(ctx,
		`UPDATE users SET reset_token = NULL, reset_expires = NULL WHERE reset_expires IS NOT NULL AND reset_expires <= NOW()`); err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes the account. Profile, translations, whispers, tips, and
// remember tokens go with it via ON DELETE CASCADE.
func (r *UserRepository) Delete(ctx context.Context, userID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *UserRepository) ListWithProfiles(ctx context.Context, limit, offset int, search string) ([]model.UserWithProfile, error) {
	users := []model.UserWithProfile{}
	query := `SELECT u.id, u.email, u.created_at, p.role, p.credits, p.current_language
		FROM users u JOIN profiles p ON p.user_id = u.id
		WHERE ($3 = '' OR u.email ILIKE '%' || $3 || '%')
		ORDER BY u.created_at DESC
		LIMIT $1 OFFSET $2`
	if err := r.db.SelectContext(ctx, &users, query, limit, offset, search); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) Count(ctx context.Context, search string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM users WHERE ($1 = '' OR email ILIKE '%' || $1 || '%')`
	if err := r.db.GetContext(ctx, &count, query, search); err != nil {
		return 0, err
	}
	return count, nil
}

func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
