package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"

	"github.com/dvdgp9/gema8-go/internal/language"
	"github.com/dvdgp9/gema8-go/internal/middleware"
	"github.com/dvdgp9/gema8-go/internal/model"
	"github.com/dvdgp9/gema8-go/internal/service"
	"github.com/dvdgp9/gema8-go/internal/storage"
	"github.com/dvdgp9/gema8-go/internal/tts"
)

// Handler contains all API handlers
type Handler struct {
	userRepo        *storage.UserRepository
	profileRepo     *storage.ProfileRepository
	translationRepo *storage.TranslationRepository
	whisperRepo     *storage.WhisperRepository
	tipRepo         *storage.TipRepository
	profileCache    *service.ProfileCache
	ledger          *service.Ledger
	translator      *service.Translator
	tipService      *service.TipService
	whisperService  *service.WhisperService
	ttsClient       *tts.Client
	ttsCost         int
	auth            *middleware.AuthMiddleware
}

// NewHandler creates a new API handler
func NewHandler(
	userRepo *storage.UserRepository,
	profileRepo *storage.ProfileRepository,
	translationRepo *storage.TranslationRepository,
	whisperRepo *storage.WhisperRepository,
	tipRepo *storage.TipRepository,
	profileCache *service.ProfileCache,
	ledger *service.Ledger,
	translator *service.Translator,
	tipService *service.TipService,
	whisperService *service.WhisperService,
	ttsClient *tts.Client,
	ttsCost int,
	auth *middleware.AuthMiddleware,
) *Handler {
	return &Handler{
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		translationRepo: translationRepo,
		whisperRepo:     whisperRepo,
		tipRepo:         tipRepo,
		profileCache:    profileCache,
		ledger:          ledger,
		translator:      translator,
		tipService:      tipService,
		whisperService:  whisperService,
		ttsClient:       ttsClient,
		ttsCost:         ttsCost,
		auth:            auth,
	}
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInsufficientCredits):
		respondError(w, http.StatusPaymentRequired, "insufficient credits")
	case errors.Is(err, service.ErrUpstream):
		respondError(w, http.StatusBadGateway, "upstream AI request failed")
	case errors.Is(err, service.ErrNotFound):
		respondError(w, http.StatusNotFound, "not found")
	default:
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Register godoc
// @Summary Register a new user
// @Description Create a new account; the profile with default credits is created in the same transaction
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Registration details"
// @Success 201 {object} model.LoginResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 409 {object} map[string]string "Email already registered"
// @Failure 500 {object} map[string]string "Server error"
// @Router /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}
	if !isValidEmail(req.Email) {
		respondError(w, http.StatusBadRequest, "invalid email format")
		return
	}
	if len(req.Password) < 8 {
		respondError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	existing, _ := h.userRepo.FindByEmail(r.Context(), req.Email)
	if existing != nil {
		respondError(w, http.StatusConflict, "email already registered")
		return
	}

	user, err := h.userRepo.Create(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	h.respondWithSession(w, r, http.StatusCreated, user, req.Remember)
}

// Login godoc
// @Summary User login
// @Description Authenticate user and return a JWT, optionally with a remember token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login credentials"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Server error"
// @Router /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.userRepo.FindByEmail(r.Context(), req.Email)
	if err != nil || user == nil {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if !h.userRepo.ValidatePassword(user, req.Password) {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	h.respondWithSession(w, r, http.StatusOK, user, req.Remember)
}

// Refresh godoc
// @Summary Refresh a session from a remember token
// @Description Validates and rotates a remember token, returning a fresh JWT and replacement token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body model.RefreshRequest true "Remember token"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} map[string]string "Invalid or expired token"
// @Router /auth/refresh [post]
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req model.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RememberToken == "" {
		respondError(w, http.StatusBadRequest, "remember_token is required")
		return
	}

	userID, nextToken, err := h.userRepo.ConsumeRememberToken(r.Context(), req.RememberToken)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to validate token")
		return
	}
	if userID == 0 {
		respondError(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	user, err := h.userRepo.FindByID(r.Context(), userID)
	if err != nil || user == nil {
		respondError(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	profile, _ := h.profileCache.Get(r.Context(), user.ID)
	role := model.RoleWhisper
	if profile != nil {
		role = profile.Role
	}

	token, expiresAt, err := h.auth.GenerateToken(user.ID, user.Email, role)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	respondJSON(w, http.StatusOK, model.LoginResponse{
		Token:         token,
		ExpiresAt:     expiresAt,
		RememberToken: nextToken,
		User:          user,
		Profile:       profile,
	})
}

// ForgotPassword godoc
// @Summary Request a password reset token
// @Description Issues a reset token valid for one hour; always responds 200 to avoid leaking registered emails
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body model.ForgotPasswordRequest true "Account email"
// @Success 200 {object} map[string]string
// @Router /auth/forgot-password [post]
func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req model.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		respondError(w, http.StatusBadRequest, "email is required")
		return
	}

	// Token delivery (email) is out of band; the response never reveals
	// whether the address exists.
	if _, err := h.userRepo.CreateResetToken(r.Context(), req.Email); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create reset token")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "if the email exists, a reset link has been sent"})
}

// ResetPassword godoc
// @Summary Reset password with a token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body model.ResetPasswordRequest true "Token and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid token or password"
// @Router /auth/reset-password [post]
func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req model.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Token == "" || len(req.Password) < 8 {
		respondError(w, http.StatusBadRequest, "token and a password of at least 8 characters are required")
		return
	}

	user, err := h.userRepo.FindByResetToken(r.Context(), req.Token)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to validate token")
		return
	}
	if user == nil {
		respondError(w, http.StatusBadRequest, "invalid or expired token")
		return
	}

	if err := h.userRepo.UpdatePassword(r.Context(), user.ID, req.Password); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update password")
		return
	}

	// Force re-login everywhere after a password change.
	_ = h.userRepo.DeleteRememberTokens(r.Context(), user.ID)

	respondJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}

// Me godoc
// @Summary Current user and profile
// @Tags Account
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.userRepo.FindByID(r.Context(), claims.UserID)
	if err != nil || user == nil {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}

	profile, err := h.profileCache.Get(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"user":    user,
		"profile": profile,
	})
}

// UpdateLanguage godoc
// @Summary Switch the current learning language
// @Description Updates the selected language and advances the days-active streak at most once per calendar day
// @Tags Account
// @Accept json
// @Produce json
// @Param request body model.UpdateLanguageRequest true "Language"
// @Success 200 {object} model.Profile
// @Failure 400 {object} map[string]string "Invalid language"
// @Security BearerAuth
// @Router /auth/language [put]
func (h *Handler) UpdateLanguage(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req model.UpdateLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Language == "" || !language.IsValid(req.Language) {
		respondError(w, http.StatusBadRequest, "invalid language")
		return
	}

	if _, err := h.profileRepo.UpdateLanguage(r.Context(), claims.UserID, req.Language); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update language")
		return
	}

	profile, err := h.profileCache.Refresh(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// DeleteAccount godoc
// @Summary Delete the current account
// @Description Removes the user; profile, translations, whispers, and tips cascade
// @Tags Account
// @Success 204 "Deleted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /auth/account [delete]
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.userRepo.Delete(r.Context(), claims.UserID); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete account")
		return
	}
	h.profileCache.Invalidate(claims.UserID)

	w.WriteHeader(http.StatusNoContent)
}

// Health godoc
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) respondWithSession(w http.ResponseWriter, r *http.Request, status int, user *model.User, remember bool) {
	profile, _ := h.profileCache.Refresh(r.Context(), user.ID)
	role := model.RoleWhisper
	if profile != nil {
		role = profile.Role
	}

	token, expiresAt, err := h.auth.GenerateToken(user.ID, user.Email, role)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	resp := model.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
		Profile:   profile,
	}

	if remember {
		rememberToken, err := h.userRepo.CreateRememberToken(r.Context(), user.ID)
		if err == nil {
			resp.RememberToken = rememberToken
		}
	}

	respondJSON(w, status, resp)
}
