package system_healthcheck

import (
	"sync"

	"logquery/internal/downdetect"
	"logquery/internal/features/sessions"
	"logquery/internal/util/logger"
)

var (
	healthcheckService    *HealthcheckService
	healthcheckController *HealthcheckController
	healthcheckOnce       sync.Once
)

func GetHealthcheckController() *HealthcheckController {
	healthcheckOnce.Do(func() {
		healthcheckService = NewHealthcheckService(
			downdetect.GetDowndetectService(),
			sessions.GetSessionService(),
			logger.GetLogger(),
		)
		healthcheckController = &HealthcheckController{healthcheckService}
	})

	return healthcheckController
}
