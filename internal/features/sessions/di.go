package sessions

import (
	"sync"

	"logquery/internal/config"
	logs_core "logquery/internal/features/logs/core"
	"logquery/internal/util/logger"
	"logquery/internal/util/rate_limit"
)

var (
	sessionService                  *SessionService
	sessionController               *SessionController
	sessionCleanupBackgroundService *SessionCleanupBackgroundService
	sessionsOnce                    sync.Once
)

func initSessions() {
	sessionsOnce.Do(func() {
		env := config.GetEnv()

		sessionService = NewSessionService(
			logs_core.GetLogServiceRepository(),
			rate_limit.NewRateLimiter(env.FilterChangesPerSecond, env.FilterChangesBurst),
			logger.GetLogger(),
			SessionSettings{
				FetchTimeout: env.LogServiceTimeout,
				IdleTTL:      env.SessionIdleTTL,
				Location:     env.DateLocation(),
			},
		)

		sessionController = &SessionController{sessionService}

		sessionCleanupBackgroundService = NewSessionCleanupBackgroundService(
			sessionService,
			logger.GetLogger(),
		)
	})
}

func GetSessionService() *SessionService {
	initSessions()
	return sessionService
}

func GetSessionController() *SessionController {
	initSessions()
	return sessionController
}

func GetSessionCleanupBackgroundService() *SessionCleanupBackgroundService {
	initSessions()
	return sessionCleanupBackgroundService
}
