package logs_core

import (
	"sync"

	"logquery/internal/config"
	"logquery/internal/util/logger"
)

var (
	logServiceRepository     *LogServiceRepository
	logServiceRepositoryOnce sync.Once
)

func GetLogServiceRepository() *LogServiceRepository {
	logServiceRepositoryOnce.Do(func() {
		env := config.GetEnv()
		logServiceRepository = NewLogServiceRepository(
			env.LogServiceURL,
			env.LogServiceTimeout,
			logger.GetLogger(),
		)
	})

	return logServiceRepository
}
