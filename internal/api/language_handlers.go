package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/dvdgp9/gema8-go/internal/language"
	"github.com/dvdgp9/gema8-go/internal/middleware"
	"github.com/dvdgp9/gema8-go/internal/model"
)

// Translate godoc
// @Summary Translate text
// @Description Paid operation; repeated texts are served from the per-user translation cache
// @Tags Language
// @Accept json
// @Produce json
// @Param request body model.TranslateRequest true "Text and language pair"
// @Success 200 {object} model.TranslateResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 402 {object} map[string]string "Insufficient credits"
// @Failure 502 {object} map[string]string "Upstream failure"
// @Security BearerAuth
// @Router /translate [post]
func (h *Handler) Translate(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req model.TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.translator.Translate(r.Context(), claims.UserID, req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// Ask godoc
// @Summary Ask a language question
// @Description Paid operation; the answer is not persisted
// @Tags Language
// @Accept json
// @Produce json
// @Param request body model.AskRequest true "Question and language"
// @Success 200 {object} model.AskResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 402 {object} map[string]string "Insufficient credits"
// @Failure 502 {object} map[string]string "Upstream failure"
// @Security BearerAuth
// @Router /ask [post]
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req model.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.translator.Ask(r.Context(), claims.UserID, req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// GenerateWhisper godoc
// @Summary Generate situational phrases
// @Description Paid operation; the generated whisper is persisted for later browsing
// @Tags Whispers
// @Accept json
// @Produce json
// @Param request body model.GenerateWhisperRequest true "Situation and target language"
// @Success 201 {object} model.Whisper
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 402 {object} map[string]string "Insufficient credits"
// @Failure 502 {object} map[string]string "Upstream failure"
// @Security BearerAuth
// @Router /whispers [post]
func (h *Handler) GenerateWhisper(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req model.GenerateWhisperRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	whisper, err := h.whisperService.Generate(r.Context(), claims.UserID, req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, whisper)
}

// ListWhispers godoc
// @Summary List the user's whispers
// @Tags Whispers
// @Produce json
// @Param language query string false "Filter by target language"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} model.Whisper
// @Security BearerAuth
// @Router /whispers [get]
func (h *Handler) ListWhispers(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit, offset := pagination(r, 20)
	whispers, err := h.whisperRepo.ListForUser(r.Context(), claims.UserID, r.URL.Query().Get("language"), limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list whispers")
		return
	}

	respondJSON(w, http.StatusOK, whispers)
}

// GetWhisper godoc
// @Summary Get one whisper
// @Tags Whispers
// @Produce json
// @Param id path int true "Whisper ID"
// @Success 200 {object} model.Whisper
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /whispers/{id} [get]
func (h *Handler) GetWhisper(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid whisper ID")
		return
	}

	whisper, err := h.whisperRepo.FindForUser(r.Context(), id, claims.UserID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load whisper")
		return
	}
	if whisper == nil {
		respondError(w, http.StatusNotFound, "whisper not found")
		return
	}

	respondJSON(w, http.StatusOK, whisper)
}

// DeleteWhisper godoc
// @Summary Delete a whisper
// @Tags Whispers
// @Param id path int true "Whisper ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /whispers/{id} [delete]
func (h *Handler) DeleteWhisper(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid whisper ID")
		return
	}

	deleted, err := h.whisperRepo.Delete(r.Context(), id, claims.UserID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete whisper")
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "whisper not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DailyTip godoc
// @Summary Get or generate the daily tip
// @Description First call of the day generates and charges; subsequent calls return the cached tip for free
// @Tags Tips
// @Accept json
// @Produce json
// @Param request body model.DailyTipRequest true "Language"
// @Success 200 {object} model.DailyTipResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 402 {object} map[string]string "Insufficient credits"
// @Failure 502 {object} map[string]string "Upstream failure"
// @Security BearerAuth
// @Router /tips/daily [post]
func (h *Handler) DailyTip(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req model.DailyTipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.tipService.DailyTip(r.Context(), claims.UserID, req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// TipHistory godoc
// @Summary List past tips
// @Tags Tips
// @Produce json
// @Param language query string false "Filter by language"
// @Param limit query int false "Page size" default(20)
// @Success 200 {array} model.Tip
// @Security BearerAuth
// @Router /tips/history [get]
func (h *Handler) TipHistory(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit, _ := pagination(r, 20)
	tips, err := h.tipRepo.History(r.Context(), claims.UserID, r.URL.Query().Get("language"), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load tip history")
		return
	}

	respondJSON(w, http.StatusOK, tips)
}

// History godoc
// @Summary Translation history (echoes)
// @Tags History
// @Produce json
// @Param language query string false "Filter by target language"
// @Param search query string false "Search original and translated text"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} model.Translation
// @Security BearerAuth
// @Router /history [get]
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit, offset := pagination(r, 50)

	if term := strings.TrimSpace(r.URL.Query().Get("search")); term != "" {
		results, err := h.translationRepo.Search(r.Context(), claims.UserID, term, limit)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to search history")
			return
		}
		respondJSON(w, http.StatusOK, results)
		return
	}

	translations, err := h.translationRepo.History(r.Context(), claims.UserID, r.URL.Query().Get("language"), limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load history")
		return
	}

	respondJSON(w, http.StatusOK, translations)
}

// DeleteTranslation godoc
// @Summary Delete one history entry
// @Tags History
// @Param id path int true "Translation ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /history/{id} [delete]
func (h *Handler) DeleteTranslation(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid translation ID")
		return
	}

	deleted, err := h.translationRepo.Delete(r.Context(), id, claims.UserID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete translation")
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "translation not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ClearHistory godoc
// @Summary Delete all history entries
// @Tags History
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /history [delete]
func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.translationRepo.DeleteAllForUser(r.Context(), claims.UserID); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to clear history")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// TextToSpeech godoc
// @Summary Synthesize speech
// @Description Paid operation; returns MP3 audio
// @Tags Language
// @Accept json
// @Produce audio/mpeg
// @Param request body model.TTSRequest true "Text and language"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 402 {object} map[string]string "Insufficient credits"
// @Failure 502 {object} map[string]string "Upstream failure"
// @Security BearerAuth
// @Router /tts [post]
func (h *Handler) TextToSpeech(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req model.TTSRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		respondError(w, http.StatusBadRequest, "text is required")
		return
	}
	lang := req.Language
	if lang == "" {
		lang = "english"
	}
	if !language.IsValid(lang) {
		respondError(w, http.StatusBadRequest, "invalid language")
		return
	}

	ok, err := h.ledger.HasCredits(r.Context(), claims.UserID, h.ttsCost)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to check credits")
		return
	}
	if !ok {
		respondError(w, http.StatusPaymentRequired, "insufficient credits")
		return
	}

	audio, err := h.ttsClient.Synthesize(r.Context(), strings.TrimSpace(req.Text), lang)
	if err != nil {
		respondError(w, http.StatusBadGateway, "speech synthesis failed")
		return
	}

	if err := h.ledger.Deduct(r.Context(), claims.UserID, h.ttsCost); err != nil {
		respondServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	w.Write(audio)
}

func pagination(r *http.Request, defaultLimit int) (limit, offset int) {
	limit = defaultLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}
