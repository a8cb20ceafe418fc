// Package cleanup prunes idle sessions in the background.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/ufal/maskit-web/pkg/config"
)

// SessionStore is the part of the session manager the cleanup loop needs.
type SessionStore interface {
	PruneIdle(maxIdle time.Duration) int
	Count() int
}

// Gauge receives the number of live sessions after each sweep.
type Gauge interface {
	SetActiveSessions(n int)
}

// Service periodically drops sessions idle for longer than the session TTL.
// Sessions with a submission in flight are never dropped.
type Service struct {
	config   *config.ServerConfig
	sessions SessionStore
	gauge    Gauge

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service. gauge may be nil.
func NewService(cfg *config.ServerConfig, sessions SessionStore, gauge Gauge) *Service {
	return &Service{
		config:   cfg,
		sessions: sessions,
		gauge:    gauge,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"session_ttl", s.config.SessionTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel = nil
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.sweep()

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Service) sweep() {
	if count := s.sessions.PruneIdle(s.config.SessionTTL); count > 0 {
		slog.Info("Cleanup: pruned idle sessions", "count", count)
	}
	if s.gauge != nil {
		s.gauge.SetActiveSessions(s.sessions.Count())
	}
}
