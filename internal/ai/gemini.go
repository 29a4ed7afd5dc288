package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dvdgp9/gema8-go/internal/config"
	"github.com/dvdgp9/gema8-go/internal/language"
)

const daysActiveBasicThreshold = 21

type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

func NewGeminiClient(cfg config.GeminiConfig) *GeminiClient {
	return &GeminiClient{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *GeminiClient) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	prompt := fmt.Sprintf(
		"Translate the following text from %s to %s. "+
			"Only provide the translation, nothing else. "+
			"If the text is already in the target language, just return it as is.\n\n"+
			"Text to translate: %s",
		language.Name(sourceLang), language.Name(targetLang), text)

	result, err := c.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}

func (c *GeminiClient) AskQuestion(ctx context.Context, question, lang string) (string, error) {
	prompt := fmt.Sprintf(
		"You are an expert language teacher specializing in %[1]s. "+
			"Answer the following question about the %[1]s language in a clear, "+
			"concise, and educational way. Include examples when helpful. "+
			"Keep your response under 300 words.\n\n"+
			"Question: %[2]s",
		language.Name(lang), question)

	return c.generate(ctx, prompt)
}

func (c *GeminiClient) GenerateWhisper(ctx context.Context, situation, targetLang string) (*WhisperResult, error) {
	name := language.Name(targetLang)
	prompt := fmt.Sprintf(
		"Generate practical phrases for learning %[1]s in this situation: %[2]q\n\n"+
			"IMPORTANT: Respond with ONLY valid JSON, no other text. Use this exact structure:\n"+
			`{"title":"Short Title Here","phrases":[{"target_sentence":"phrase in %[1]s","translation":"English meaning","pronunciation":"phonetic guide"}]}`+
			"\n\nGenerate 8-10 phrases. Keep them simple and practical.",
		name, situation)

	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	result, err := parseWhisperJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse whisper response: %w", err)
	}
	return result, nil
}

func (c *GeminiClient) GenerateDailyTip(ctx context.Context, lang string, daysActive int, recentTopics []string) (string, error) {
	focusArea := "cultural nuances, idioms, regional variations, social etiquette, or advanced grammar"
	if daysActive <= daysActiveBasicThreshold {
		focusArea = "basic fundamentals like grammar basics, common phrases, pronunciation, or essential vocabulary"
	}

	name := language.Name(lang)
	prompt := fmt.Sprintf(
		"Generate a brief but interesting daily tip about %[1]s or the %[1]s language "+
			"that would be helpful for someone learning the language. Focus on %[2]s. "+
			"Make it concise (50-100 words), educational and easy to understand. "+
			"The tip should be in English.",
		name, focusArea)

	if len(recentTopics) > 0 {
		prompt += "\n\nAvoid these recent topics covered in the last 30 days: " + strings.Join(recentTopics, ", ")
	}

	return c.generate(ctx, prompt)
}

func (c *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 2048,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var result geminiResponse
		if err := json.Unmarshal(body, &result); err == nil && result.Error != nil {
			return "", fmt.Errorf("Gemini API error (HTTP %d): %s", resp.StatusCode, result.Error.Message)
		}
		return "", fmt.Errorf("Gemini API error: HTTP %d", resp.StatusCode)
	}

	var result geminiResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if result.Error != nil {
		return "", fmt.Errorf("Gemini API error: %s", result.Error.Message)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}

// parseWhisperJSON tolerates the model wrapping its JSON in markdown code
// fences or prose. Direct parse first, then the outermost JSON object.
func parseWhisperJSON(raw string) (*WhisperResult, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var result WhisperResult
	if err := json.Unmarshal([]byte(cleaned), &result); err == nil && result.Title != "" && len(result.Phrases) > 0 {
		return &result, nil
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(cleaned[start:end+1]), &result); err == nil && result.Title != "" && len(result.Phrases) > 0 {
			return &result, nil
		}
	}

	return nil, fmt.Errorf("no usable JSON object in response")
}
