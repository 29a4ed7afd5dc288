package api

import (
	"net/http"

	"github.com/dvdgp9/gema8-go/internal/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates a new HTTP router with all routes
func NewRouter(h *Handler, auth *middleware.AuthMiddleware) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// Public routes, rate limited per client IP
	limited := middleware.RateLimit(1, 5)
	mux.Handle("POST /api/v1/auth/register", limited(http.HandlerFunc(h.Register)))
	mux.Handle("POST /api/v1/auth/login", limited(http.HandlerFunc(h.Login)))
	mux.Handle("POST /api/v1/auth/refresh", limited(http.HandlerFunc(h.Refresh)))
	mux.Handle("POST /api/v1/auth/forgot-password", limited(http.HandlerFunc(h.ForgotPassword)))
	mux.Handle("POST /api/v1/auth/reset-password", limited(http.HandlerFunc(h.ResetPassword)))
	mux.HandleFunc("GET /api/v1/health", h.Health)

	// Account routes
	mux.Handle("GET /api/v1/auth/me", auth.Authenticate(http.HandlerFunc(h.Me)))
	mux.Handle("PUT /api/v1/auth/language", auth.Authenticate(http.HandlerFunc(h.UpdateLanguage)))
	mux.Handle("DELETE /api/v1/auth/account", auth.Authenticate(http.HandlerFunc(h.DeleteAccount)))

	// Language routes
	mux.Handle("POST /api/v1/translate", auth.Authenticate(http.HandlerFunc(h.Translate)))
	mux.Handle("POST /api/v1/ask", auth.Authenticate(http.HandlerFunc(h.Ask)))
	mux.Handle("POST /api/v1/tts", auth.Authenticate(http.HandlerFunc(h.TextToSpeech)))

	// Whisper routes
	mux.Handle("POST /api/v1/whispers", auth.Authenticate(http.HandlerFunc(h.GenerateWhisper)))
	mux.Handle("GET /api/v1/whispers", auth.Authenticate(http.HandlerFunc(h.ListWhispers)))
	mux.Handle("GET /api/v1/whispers/{id}", auth.Authenticate(http.HandlerFunc(h.GetWhisper)))
	mux.Handle("DELETE /api/v1/whispers/{id}", auth.Authenticate(http.HandlerFunc(h.DeleteWhisper)))

	// Tip routes
	mux.Handle("POST /api/v1/tips/daily", auth.Authenticate(http.HandlerFunc(h.DailyTip)))
	mux.Handle("GET /api/v1/tips/history", auth.Authenticate(http.HandlerFunc(h.TipHistory)))

	// History routes
	mux.Handle("GET /api/v1/history", auth.Authenticate(http.HandlerFunc(h.History)))
	mux.Handle("DELETE /api/v1/history", auth.Authenticate(http.HandlerFunc(h.ClearHistory)))
	mux.Handle("DELETE /api/v1/history/{id}", auth.Authenticate(http.HandlerFunc(h.DeleteTranslation)))

	// Admin routes, Oracle role only
	mux.Handle("GET /api/v1/admin/stats", auth.Authenticate(auth.RequireOracle(http.HandlerFunc(h.AdminStats))))
	mux.Handle("GET /api/v1/admin/users", auth.Authenticate(auth.RequireOracle(http.HandlerFunc(h.AdminListUsers))))
	mux.Handle("PATCH /api/v1/admin/users/{id}", auth.Authenticate(auth.RequireOracle(http.HandlerFunc(h.AdminUpdateUser))))
	mux.Handle("DELETE /api/v1/admin/users/{id}", auth.Authenticate(auth.RequireOracle(http.HandlerFunc(h.AdminDeleteUser))))

	// Apply global middleware
	handler := middleware.CORS(middleware.RequestID(middleware.Logger(mux)))

	return handler
}
