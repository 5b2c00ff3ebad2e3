package cleanup

import (
	"context"
	"log"
	"time"

	"github.com/iamasit07/connect4-ai/internal/service/game"
)

type Worker struct {
	SessionManager *game.SessionManager
	Interval       time.Duration
	SessionTTL     time.Duration
}

func NewWorker(sm *game.SessionManager, interval, ttl time.Duration) *Worker {
	return &Worker{SessionManager: sm, Interval: interval, SessionTTL: ttl}
}

// Start runs the cleanup on a ticker until ctx is cancelled. It blocks.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()
	log.Println("[CLEANUP] Background worker started")

	for {
		select {
		case <-ctx.Done():
			log.Println("[CLEANUP] Background worker stopped")
			return
		case now := <-ticker.C:
			w.RunOnce(now)
		}
	}
}

// RunOnce evicts idle sessions and reports how many went.
func (w *Worker) RunOnce(now time.Time) int {
	removed := w.SessionManager.CleanupIdleSessions(w.SessionTTL, now)
	if removed > 0 {
		log.Printf("[CLEANUP] Removed %d idle sessions, %d remain", removed, w.SessionManager.Count())
	}
	return removed
}
