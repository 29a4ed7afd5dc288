package model

import "time"

// Tip is a generated daily learning tip. "One per user per language per
// day" is enforced by query, not by a uniqueness constraint; the most
// recent row of the day wins.
type Tip struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"-" db:"user_id"`
	Language     string    `json:"language" db:"language"`
	TipContent   string    `json:"tip_content" db:"tip_content"`
	BriefSummary string    `json:"brief_summary" db:"brief_summary"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type DailyTipRequest struct {
	Language string `json:"language"`
}

type DailyTipResponse struct {
	Tip        string `json:"tip"`
	Language   string `json:"language"`
	DaysActive int    `json:"days_active,omitempty"`
	Cached     bool   `json:"cached"`
}
