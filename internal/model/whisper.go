package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Phrase is a single situational phrase inside a whisper.
type Phrase struct {
	TargetSentence string `json:"target_sentence"`
	Translation    string `json:"translation"`
	Pronunciation  string `json:"pronunciation"`
}

// PhraseList is stored as a JSONB array on the whisper row.
type PhraseList []Phrase

func (l PhraseList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

func (l *PhraseList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = PhraseList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("cannot scan %T into PhraseList", src)
}

// Whisper is a generated set of situational phrases. Immutable after
// creation except deletion.
type Whisper struct {
	ID               int64      `json:"id" db:"id"`
	UserID           int64      `json:"-" db:"user_id"`
	Title            string     `json:"title" db:"title"`
	SituationContext string     `json:"situation_context" db:"situation_context"`
	TargetLanguage   string     `json:"target_language" db:"target_language"`
	Phrases          PhraseList `json:"phrases" db:"phrases"`
	PhraseCount      int        `json:"phrase_count" db:"phrase_count"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
}

type GenerateWhisperRequest struct {
	Situation      string `json:"situation"`
	TargetLanguage string `json:"target_language"`
}
