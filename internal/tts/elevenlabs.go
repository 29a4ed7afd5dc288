// Package tts synthesizes speech through the ElevenLabs API.
package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dvdgp9/gema8-go/internal/config"
)

const defaultVoiceID = "jBpfSCl2yc00pNpWFLS3" // Rachel, multilingual

// voiceMap picks a voice per language; anything unmapped falls back to the
// multilingual default.
var voiceMap = map[string]string{
	"english":    "21m00Tcm4lJCpau8mzDM",
	"spanish":    "EXAVITQu4vr4xnSDxMaL",
	"french":     "AZnzlk1XhkDUDem6IWV1",
	"german":     "MF3mGyEYCl7XYW7LpNJj",
	"italian":    "ErXw9S1Qo94P36sVv8sX",
	"portuguese": "onwK4e9ZLuTAKqWW03F9",
}

type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type synthesisRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type errorResponse struct {
	Detail struct {
		Message string `json:"message"`
	} `json:"detail"`
}

func NewClient(cfg config.TTSConfig) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Synthesize returns raw MP3 audio for the text.
func (c *Client) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	voiceID, ok := voiceMap[lang]
	if !ok {
		voiceID = defaultVoiceID
	}

	reqBody := synthesisRequest{
		Text:    text,
		ModelID: "eleven_multilingual_v2",
		VoiceSettings: voiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.75,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/text-to-speech/%s", c.baseURL, voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail.Message != "" {
			return nil, fmt.Errorf("ElevenLabs API error (HTTP %d): %s", resp.StatusCode, errResp.Detail.Message)
		}
		return nil, fmt.Errorf("ElevenLabs API error: HTTP %d", resp.StatusCode)
	}

	return body, nil
}
