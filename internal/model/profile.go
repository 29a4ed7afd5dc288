package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Role gates access to paid operations and the admin panel.
type Role string

const (
	RoleWhisper Role = "Whisper" // basic user
	RoleVoice   Role = "Voice"   // premium user
	RoleOracle  Role = "Oracle"  // admin, unlimited credits
)

func (r Role) Valid() bool {
	switch r {
	case RoleWhisper, RoleVoice, RoleOracle:
		return true
	}
	return false
}

// Unlimited reports whether the role is exempt from credit accounting.
// Every credit check in the codebase goes through this single predicate.
func (r Role) Unlimited() bool {
	return r == RoleOracle
}

// LanguageStreak tracks activity for one language. LastActive is a
// calendar-date string ("2006-01-02") in server-local time.
type LanguageStreak struct {
	DaysActive int    `json:"days_active"`
	LastActive string `json:"last_active"`
}

// LanguageProgress is stored as a JSONB blob inside the profile row.
type LanguageProgress map[string]LanguageStreak

// Touch records activity for language on the given calendar day and returns
// the resulting streak. A new language seeds {1, day}; a repeat on the same
// day leaves the counter untouched, so switching back and forth within one
// day never double-counts.
func (p LanguageProgress) Touch(lang, day string) LanguageStreak {
	streak, ok := p[lang]
	if !ok {
		streak = LanguageStreak{DaysActive: 1, LastActive: day}
		p[lang] = streak
		return streak
	}
	if streak.LastActive != day {
		streak.DaysActive++
		streak.LastActive = day
		p[lang] = streak
	}
	return streak
}

func (p LanguageProgress) Value() (driver.Value, error) {
	if p == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(p)
}

func (p *LanguageProgress) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*p = LanguageProgress{}
		return nil
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	}
	return fmt.Errorf("cannot scan %T into LanguageProgress", src)
}

type Profile struct {
	UserID           int64            `json:"user_id" db:"user_id"`
	Role             Role             `json:"role" db:"role"`
	Credits          int              `json:"credits" db:"credits"`
	CurrentLanguage  string           `json:"current_language" db:"current_language"`
	LanguageProgress LanguageProgress `json:"language_progress" db:"language_progress"`
	CreatedAt        time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at" db:"updated_at"`
}

// HasCredits reports whether the profile can afford amount. Oracles always
// can.
func (p *Profile) HasCredits(amount int) bool {
	if p.Role.Unlimited() {
		return true
	}
	return p.Credits >= amount
}

type UpdateLanguageRequest struct {
	Language string `json:"language"`
}

// AdminUpdateUserRequest carries the fields an Oracle may change on another
// account. Nil means leave unchanged.
type AdminUpdateUserRequest struct {
	Credits *int  `json:"credits,omitempty"`
	Role    *Role `json:"role,omitempty"`
}

// UserWithProfile is the admin list row.
type UserWithProfile struct {
	ID              int64     `json:"id" db:"id"`
	Email           string    `json:"email" db:"email"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	Role            Role      `json:"role" db:"role"`
	Credits         int       `json:"credits" db:"credits"`
	CurrentLanguage string    `json:"current_language" db:"current_language"`
}

type AdminStats struct {
	TotalUsers   int            `json:"total_users"`
	ByRole       map[string]int `json:"by_role"`
	TotalCredits int            `json:"total_credits"`
	NewToday     int            `json:"new_today"`
	NewThisWeek  int            `json:"new_this_week"`
}
