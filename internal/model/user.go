package model

import (
	"database/sql"
	"time"
)

type User struct {
	ID           int64          `json:"id" db:"id"`
	Email        string         `json:"email" db:"email"`
	PasswordHash string         `json:"-" db:"password_hash"`
	ResetToken   sql.NullString `json:"-" db:"reset_token"`
	ResetExpires sql.NullTime   `json:"-" db:"reset_expires"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
}

// RememberToken is a long-lived login token. Only the SHA-256 hash of the
// raw token is stored; the raw value lives in the client.
type RememberToken struct {
	ID        int64     `json:"-" db:"id"`
	UserID    int64     `json:"-" db:"user_id"`
	TokenHash string    `json:"-" db:"token_hash"`
	ExpiresAt time.Time `json:"-" db:"expires_at"`
	CreatedAt time.Time `json:"-" db:"created_at"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

type LoginResponse struct {
	Token         string   `json:"token"`
	ExpiresAt     int64    `json:"expires_at"`
	RememberToken string   `json:"remember_token,omitempty"`
	User          *User    `json:"user"`
	Profile       *Profile `json:"profile,omitempty"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RememberToken string `json:"remember_token"`
}

type TokenClaims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}
