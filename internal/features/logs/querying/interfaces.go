package logs_querying

import (
	"context"

	logs_core "logquery/internal/features/logs/core"
)

type LogFetcher interface {
	FetchLogs(ctx context.Context, params map[string]string) ([]logs_core.LogRecord, error)
}
