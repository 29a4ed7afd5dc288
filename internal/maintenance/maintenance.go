package maintenance

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dvdgp9/gema8-go/internal/logger"
	"github.com/dvdgp9/gema8-go/internal/storage"
)

const tipRetentionDays = 90

// Janitor runs the periodic cleanup jobs: old daily tips and expired
// reset/remember tokens.
type Janitor struct {
	cron     *cron.Cron
	tipRepo  *storage.TipRepository
	userRepo *storage.UserRepository
	mu       sync.Mutex
	running  bool
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewJanitor creates a janitor with its jobs not yet scheduled.
func NewJanitor(tipRepo *storage.TipRepository, userRepo *storage.UserRepository) *Janitor {
	return &Janitor{
		cron:     cron.New(),
		tipRepo:  tipRepo,
		userRepo: userRepo,
	}
}

// Start schedules the cleanup jobs and starts the cron loop.
func (j *Janitor) Start(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.running {
		return nil
	}

	j.ctx, j.cancel = context.WithCancel(ctx)

	// Daily at 03:00, prune tips older than the retention window
	if _, err := j.cron.AddFunc("0 3 * * *", j.cleanupTips); err != nil {
		return err
	}

	// Hourly, drop expired remember and reset tokens
	if _, err := j.cron.AddFunc("@hourly", j.cleanupTokens); err != nil {
		return err
	}

	j.cron.Start()
	j.running = true

	logger.Info("maintenance jobs scheduled", "tip_retention_days", tipRetentionDays)
	return nil
}

// Stop stops the cron loop and waits for running jobs to finish.
func (j *Janitor) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.running {
		return
	}

	j.cancel()
	ctx := j.cron.Stop()
	<-ctx.Done()

	j.running = false
	logger.Info("maintenance jobs stopped")
}

func (j *Janitor) cleanupTips() {
	ctx, cancel := context.WithTimeout(j.ctx, 30*time.Second)
	defer cancel()

	removed, err := j.tipRepo.CleanupOld(ctx, tipRetentionDays)
	if err != nil {
		logger.Error("tip cleanup failed", "error", err)
		return
	}
	if removed > 0 {
		logger.Info("old tips removed", "count", removed)
	}
}

func (j *Janitor) cleanupTokens() {
	ctx, cancel := context.WithTimeout(j.ctx, 30*time.Second)
	defer cancel()

	removed, err := j.userRepo.DeleteExpiredTokens(ctx)
	if err != nil {
		logger.Error("token cleanup failed", "error", err)
		return
	}
	if removed > 0 {
		logger.Info("expired tokens removed", "count", removed)
	}
}
