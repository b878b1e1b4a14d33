package sessions

import (
	logs_querying "logquery/internal/features/logs/querying"
)

type LogServiceClient interface {
	logs_querying.LogFetcher
	LogsURL(params map[string]string) string
}
