package sessions

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// SessionCleanupBackgroundService closes viewer sessions whose page went away
// without deleting them.
type SessionCleanupBackgroundService struct {
	sessionService *SessionService
	logger         *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

const idleSessionsCleanupInterval = 1 * time.Minute

func NewSessionCleanupBackgroundService(
	sessionService *SessionService,
	logger *slog.Logger,
) *SessionCleanupBackgroundService {
	return &SessionCleanupBackgroundService{
		sessionService: sessionService,
		logger:         logger,
	}
}

func (s *SessionCleanupBackgroundService) StartWorkers() {
	s.ctx, s.cancel = context.WithCancel(context.Background())

	s.logger.Info("Starting session cleanup worker",
		slog.Duration("interval", idleSessionsCleanupInterval),
		slog.Duration("idleTTL", s.sessionService.settings.IdleTTL))

	s.wg.Add(1)
	go s.idleSessionsWorker()
}

// StopWorkers stops the cleanup worker and closes every remaining session.
func (s *SessionCleanupBackgroundService) StopWorkers() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()

	s.sessionService.CloseAllSessions()
	s.logger.Info("Session cleanup worker stopped")
}

func (s *SessionCleanupBackgroundService) ExecuteAllTasksForTest() int {
	return s.closeIdleSessions()
}

func (s *SessionCleanupBackgroundService) idleSessionsWorker() {
	defer s.wg.Done()

	ticker := time.NewTicker(idleSessionsCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			s.logger.Info("Session cleanup worker shutting down")
			return

		case <-ticker.C:
			s.closeIdleSessions()
		}
	}
}

func (s *SessionCleanupBackgroundService) closeIdleSessions() int {
	closed := s.sessionService.CloseIdleSessions()
	if closed > 0 {
		s.logger.Info("Closed idle sessions",
			slog.Int("closed", closed),
			slog.Int("active", s.sessionService.ActiveSessionsCount()))
	}

	return closed
}
