package logs_core

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	logsEndpoint     = "/logs"
	maxResponseBytes = 64 << 20
)

// LogServiceRepository talks to the remote log store over HTTP.
type LogServiceRepository struct {
	client  *http.Client
	baseURL string
	logger  *slog.Logger
}

func NewLogServiceRepository(baseURL string, timeout time.Duration, logger *slog.Logger) *LogServiceRepository {
	return &LogServiceRepository{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				MaxConnsPerHost:     50,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

func (repository *LogServiceRepository) BaseURL() string {
	return repository.baseURL
}

// LogsURL builds GET <base>/logs?<params>. Keys are sorted, dotted keys stay
// literal and values are URL-encoded.
func (repository *LogServiceRepository) LogsURL(params map[string]string) string {
	endpoint := repository.baseURL + logsEndpoint
	if len(params) == 0 {
		return endpoint
	}

	query := url.Values{}
	for key, value := range params {
		query.Set(key, value)
	}

	return endpoint + "?" + query.Encode()
}

// FetchLogs performs a single query. Every failure is a *FetchError.
func (repository *LogServiceRepository) FetchLogs(
	ctx context.Context,
	params map[string]string,
) ([]LogRecord, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, repository.LogsURL(params), nil)
	if err != nil {
		return nil, newNetworkFailure("failed to create logs request", err)
	}
	request.Header.Set("Accept", "application/json")

	response, err := repository.client.Do(request)
	if err != nil {
		return nil, newNetworkFailure("failed to execute logs request", err)
	}
	defer func() {
		if closeErr := response.Body.Close(); closeErr != nil {
			repository.logger.Error("failed to close logs response body", "error", closeErr)
		}
	}()

	responseBody, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return nil, newNetworkFailure("failed to read logs response body", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, &FetchError{
			Kind:       FetchFailureNetwork,
			StatusCode: response.StatusCode,
			Message:    fmt.Sprintf("log service returned error status: %s", truncate(string(responseBody), 200)),
		}
	}

	trimmedBody := bytes.TrimSpace(responseBody)
	if len(trimmedBody) == 0 || trimmedBody[0] != '[' {
		return nil, newMalformedResponse("log service response is not a JSON array", nil)
	}

	var records []LogRecord
	if err := json.Unmarshal(trimmedBody, &records); err != nil {
		return nil, newMalformedResponse("failed to parse logs response", err)
	}

	if records == nil {
		records = []LogRecord{}
	}

	return records, nil
}

// Ping reports whether the log service answers HTTP at all.
func (repository *LogServiceRepository) Ping(ctx context.Context) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, repository.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("failed to create ping request: %w", err)
	}

	response, err := repository.client.Do(request)
	if err != nil {
		return fmt.Errorf("log service is unreachable: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, response.Body)
		if closeErr := response.Body.Close(); closeErr != nil {
			repository.logger.Error("failed to close ping response body", "error", closeErr)
		}
	}()

	if response.StatusCode >= 500 {
		return fmt.Errorf("log service returned status %d", response.StatusCode)
	}

	return nil
}

func truncate(value string, limit int) string {
	if len(value) <= limit {
		return value
	}

	return value[:limit] + "..."
}
