package model

import "time"

// Translation is a persisted translation history entry (an "echo" in
// product terms). The dedup key is (user_id, normalized_text,
// source_language, target_language).
type Translation struct {
	ID             int64     `json:"id" db:"id"`
	UserID         int64     `json:"-" db:"user_id"`
	OriginalText   string    `json:"original_text" db:"original_text"`
	NormalizedText string    `json:"-" db:"normalized_text"`
	TranslatedText string    `json:"translated_text" db:"translated_text"`
	SourceLanguage string    `json:"source_language" db:"source_language"`
	TargetLanguage string    `json:"target_language" db:"target_language"`
	UseCount       int       `json:"use_count" db:"use_count"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

type TranslateRequest struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
	Ephemeral      bool   `json:"ephemeral"`
}

type TranslateResponse struct {
	OriginalText   string `json:"original_text"`
	TranslatedText string `json:"translated_text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
	UseCount       int    `json:"use_count,omitempty"`
	Cached         bool   `json:"cached"`
	Ephemeral      bool   `json:"ephemeral,omitempty"`
}

type AskRequest struct {
	Question string `json:"question"`
	Language string `json:"language"`
}

type AskResponse struct {
	Answer string `json:"answer"`
}

type TTSRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}
