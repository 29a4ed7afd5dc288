package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dvdgp9/gema8-go/internal/ai"
	"github.com/dvdgp9/gema8-go/internal/api"
	"github.com/dvdgp9/gema8-go/internal/config"
	"github.com/dvdgp9/gema8-go/internal/logger"
	"github.com/dvdgp9/gema8-go/internal/maintenance"
	"github.com/dvdgp9/gema8-go/internal/middleware"
	"github.com/dvdgp9/gema8-go/internal/model"
	"github.com/dvdgp9/gema8-go/internal/service"
	"github.com/dvdgp9/gema8-go/internal/storage"
	"github.com/dvdgp9/gema8-go/internal/tts"

	_ "github.com/dvdgp9/gema8-go/docs" // swagger docs
)

// @title Gema8 API
// @version 1.0
// @description Credit-gated language learning backend: translations, situational phrases, daily tips and speech synthesis powered by Gemini and ElevenLabs.

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your JWT token with the `Bearer ` prefix, e.g. "Bearer eyJhbGci..."

func main() {
	// Load configuration
	cfg := config.Load()

	if err := logger.Configure(logger.Options{Level: cfg.Logging.Level, File: cfg.Logging.File}); err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}

	// Connect to database
	logger.Info("connecting to database", "host", cfg.Database.Host, "database", cfg.Database.Database)
	db, err := storage.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	userRepo := storage.NewUserRepository(db, cfg.Credits.Default)
	profileRepo := storage.NewProfileRepository(db)
	translationRepo := storage.NewTranslationRepository(db)
	whisperRepo := storage.NewWhisperRepository(db)
	tipRepo := storage.NewTipRepository(db)

	// Create default Oracle account if configured and not present
	ctx := context.Background()
	if email, password := os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD"); email != "" && password != "" {
		if err := seedOracle(ctx, userRepo, profileRepo, email, password); err != nil {
			logger.Warn("failed to seed admin account", "error", err)
		}
	}

	// Upstream clients
	gateway := ai.NewGeminiClient(cfg.Gemini)
	ttsClient := tts.NewClient(cfg.TTS)

	// Services
	profileCache := service.NewProfileCache(profileRepo)
	ledger := service.NewLedger(profileRepo, profileCache)
	translator := service.NewTranslator(translationRepo, ledger, gateway, cfg.Credits.TranslateCost, cfg.Credits.AskCost)
	tipService := service.NewTipService(tipRepo, profileRepo, profileCache, ledger, gateway, cfg.Credits.TipCost)
	whisperService := service.NewWhisperService(whisperRepo, ledger, gateway, cfg.Credits.WhisperCost)

	// Background cleanup
	janitor := maintenance.NewJanitor(tipRepo, userRepo)
	if err := janitor.Start(ctx); err != nil {
		log.Fatalf("Failed to start maintenance jobs: %v", err)
	}

	// Initialize auth middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT)

	// Initialize API handlers
	handler := api.NewHandler(
		userRepo,
		profileRepo,
		translationRepo,
		whisperRepo,
		tipRepo,
		profileCache,
		ledger,
		translator,
		tipService,
		whisperService,
		ttsClient,
		cfg.Credits.TTSCost,
		authMiddleware,
	)

	// Setup router
	router := api.NewRouter(handler, authMiddleware)

	// Create HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("server starting", "host", cfg.Server.Host, "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	janitor.Stop()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	logger.Info("server stopped")
}

// seedOracle makes sure an Oracle account exists for the configured admin
// credentials. An existing account keeps its password but is promoted.
func seedOracle(ctx context.Context, users *storage.UserRepository, profiles *storage.ProfileRepository, email, password string) error {
	user, err := users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		user, err = users.Create(ctx, email, password)
		if err != nil {
			return err
		}
	}

	if err := profiles.UpdateRole(ctx, user.ID, model.RoleOracle); err != nil {
		return err
	}

	logger.Info("admin account ready", "email", email)
	return nil
}
