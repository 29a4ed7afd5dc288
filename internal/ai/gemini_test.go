package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvdgp9/gema8-go/internal/config"
)

func newGeminiTestServer(t *testing.T, reply string, capture *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Contents)
		require.NotEmpty(t, req.Contents[0].Parts)
		if capture != nil {
			*capture = req.Contents[0].Parts[0].Text
		}

		assert.Equal(t, 0.7, req.GenerationConfig.Temperature)
		assert.Equal(t, 40, req.GenerationConfig.TopK)
		assert.Equal(t, 2048, req.GenerationConfig.MaxOutputTokens)

		fmt.Fprintf(w, `{"candidates":[{"content":{"parts":[{"text":%q}]},"finishReason":"STOP"}]}`, reply)
	}))
}

func newTestClient(baseURL string) *GeminiClient {
	return NewGeminiClient(config.GeminiConfig{
		APIKey:  "test-key",
		Model:   "gemini-2.0-flash",
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
	})
}

func TestGeminiTranslate(t *testing.T) {
	var prompt string
	srv := newGeminiTestServer(t, "  selamat pagi \n", &prompt)
	defer srv.Close()

	client := newTestClient(srv.URL)
	got, err := client.Translate(context.Background(), "good morning", "english", "indonesian")
	require.NoError(t, err)
	assert.Equal(t, "selamat pagi", got, "surrounding whitespace trimmed")
	assert.Contains(t, prompt, "from English to Indonesian")
	assert.Contains(t, prompt, "good morning")
}

func TestGeminiDailyTipTiers(t *testing.T) {
	t.Run("basic up to day 21", func(t *testing.T) {
		var prompt string
		srv := newGeminiTestServer(t, "A tip.", &prompt)
		defer srv.Close()

		client := newTestClient(srv.URL)
		_, err := client.GenerateDailyTip(context.Background(), "indonesian", 21, nil)
		require.NoError(t, err)
		assert.Contains(t, prompt, "basic fundamentals")
	})

	t.Run("advanced from day 22", func(t *testing.T) {
		var prompt string
		srv := newGeminiTestServer(t, "A tip.", &prompt)
		defer srv.Close()

		client := newTestClient(srv.URL)
		_, err := client.GenerateDailyTip(context.Background(), "indonesian", 22, nil)
		require.NoError(t, err)
		assert.Contains(t, prompt, "cultural nuances")
		assert.NotContains(t, prompt, "basic fundamentals")
	})

	t.Run("recent topics listed for avoidance", func(t *testing.T) {
		var prompt string
		srv := newGeminiTestServer(t, "A tip.", &prompt)
		defer srv.Close()

		client := newTestClient(srv.URL)
		_, err := client.GenerateDailyTip(context.Background(), "indonesian", 3,
			[]string{"Use 'lah' for emphasis.", "Word order is flexible."})
		require.NoError(t, err)
		assert.Contains(t, prompt, "Avoid these recent topics")
		assert.Contains(t, prompt, "Use 'lah' for emphasis.")
	})
}

func TestGeminiErrors(t *testing.T) {
	t.Run("non-200 with error body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprint(w, `{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`)
		}))
		defer srv.Close()

		client := newTestClient(srv.URL)
		_, err := client.Translate(context.Background(), "hi", "english", "indonesian")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quota exceeded")
	})

	t.Run("empty candidates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"candidates":[]}`)
		}))
		defer srv.Close()

		client := newTestClient(srv.URL)
		_, err := client.Translate(context.Background(), "hi", "english", "indonesian")
		require.Error(t, err)
	})
}

func TestGenerateWhisperParsesFencedJSON(t *testing.T) {
	reply := "```json\n{\"title\":\"At the Cafe\",\"phrases\":[{\"target_sentence\":\"Kopi satu\",\"translation\":\"One coffee\",\"pronunciation\":\"KOH-pee SAH-too\"}]}\n```"
	srv := newGeminiTestServer(t, reply, nil)
	defer srv.Close()

	client := newTestClient(srv.URL)
	result, err := client.GenerateWhisper(context.Background(), "ordering coffee", "indonesian")
	require.NoError(t, err)
	assert.Equal(t, "At the Cafe", result.Title)
	require.Len(t, result.Phrases, 1)
	assert.Equal(t, "Kopi satu", result.Phrases[0].TargetSentence)
}

func TestParseWhisperJSON(t *testing.T) {
	valid := `{"title":"T","phrases":[{"target_sentence":"a","translation":"b","pronunciation":"c"}]}`

	t.Run("bare json", func(t *testing.T) {
		result, err := parseWhisperJSON(valid)
		require.NoError(t, err)
		assert.Equal(t, "T", result.Title)
	})

	t.Run("json embedded in prose", func(t *testing.T) {
		result, err := parseWhisperJSON("Here you go:\n" + valid + "\nHope that helps!")
		require.NoError(t, err)
		assert.Equal(t, "T", result.Title)
	})

	t.Run("plain code fence", func(t *testing.T) {
		result, err := parseWhisperJSON("```\n" + valid + "\n```")
		require.NoError(t, err)
		assert.Equal(t, "T", result.Title)
	})

	t.Run("missing phrases rejected", func(t *testing.T) {
		_, err := parseWhisperJSON(`{"title":"T","phrases":[]}`)
		require.Error(t, err)
	})

	t.Run("not json at all", func(t *testing.T) {
		_, err := parseWhisperJSON("I cannot help with that.")
		require.Error(t, err)
	})
}
