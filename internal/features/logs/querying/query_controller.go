package logs_querying

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"logquery/internal/features/filters"
	logs_core "logquery/internal/features/logs/core"
	"logquery/internal/metrics"

	"github.com/google/uuid"
)

// QueryController turns filter state transitions into log service fetches
// and publishes the record list of the latest one.
//
// Every notification issues exactly one fetch tagged with a monotonic
// sequence number. Only the response carrying the latest issued number is
// applied; older responses are dropped whatever order they arrive in. A
// failed fetch keeps the previous records.
type QueryController struct {
	fetcher      LogFetcher
	logger       *slog.Logger
	fetchTimeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	mu              sync.Mutex
	settled         *sync.Cond
	inFlight        int
	records         []logs_core.LogRecord
	appliedParams   QueryParams
	issuedSequence  uint64
	appliedSequence uint64
	lastError       *logs_core.FetchError
	updatedAt       *time.Time
	unsubscribe     func()
}

const DefaultFetchTimeout = 30 * time.Second

// NewQueryController builds a controller. A non-positive fetchTimeout falls
// back to DefaultFetchTimeout.
func NewQueryController(fetcher LogFetcher, logger *slog.Logger, fetchTimeout time.Duration) *QueryController {
	if fetchTimeout <= 0 {
		fetchTimeout = DefaultFetchTimeout
	}

	ctx, cancel := context.WithCancel(context.Background())

	controller := &QueryController{
		fetcher:       fetcher,
		logger:        logger,
		fetchTimeout:  fetchTimeout,
		ctx:           ctx,
		cancel:        cancel,
		records:       []logs_core.LogRecord{},
		appliedParams: QueryParams{},
	}
	controller.settled = sync.NewCond(&controller.mu)

	return controller
}

// Attach subscribes to state and issues the initial fetch for its current
// values.
func (c *QueryController) Attach(state *filters.FilterState) {
	c.mu.Lock()
	c.unsubscribe = state.Subscribe(c.OnFilterChange)
	c.mu.Unlock()

	c.OnFilterChange(state.Snapshot())
}

// OnFilterChange issues one fetch for snapshot without waiting for it.
func (c *QueryController) OnFilterChange(snapshot filters.Snapshot) {
	params := DeriveParams(snapshot)

	c.mu.Lock()
	if c.ctx.Err() != nil {
		c.mu.Unlock()
		return
	}
	c.issuedSequence++
	sequence := c.issuedSequence
	c.inFlight++
	c.mu.Unlock()

	go c.fetch(sequence, params)
}

func (c *QueryController) View() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return ViewState{
		Records:         logs_core.CloneRecords(c.records),
		Params:          c.appliedParams.clone(),
		IssuedSequence:  c.issuedSequence,
		AppliedSequence: c.appliedSequence,
		IsPending:       c.appliedSequence != c.issuedSequence,
		LastError:       c.lastError,
		UpdatedAt:       c.updatedAt,
	}
}

func (c *QueryController) Records() []logs_core.LogRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	return logs_core.CloneRecords(c.records)
}

// Wait blocks until no fetch is in flight. Fetches issued while waiting are
// waited for too.
func (c *QueryController) Wait() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for c.inFlight > 0 {
		c.settled.Wait()
	}
}

// Close detaches from the filter state and cancels in-flight fetches.
func (c *QueryController) Close() {
	c.mu.Lock()
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.cancel()
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}

	c.Wait()
}

func (c *QueryController) fetch(sequence uint64, params QueryParams) {
	defer c.finishFetch()

	fetchID := uuid.New().String()
	ctx, cancel := context.WithTimeout(c.ctx, c.fetchTimeout)
	defer cancel()

	startedAt := time.Now()
	records, err := c.fetcher.FetchLogs(ctx, params)
	metrics.LogFetchDuration.Observe(time.Since(startedAt).Seconds())

	if err != nil && c.ctx.Err() != nil && errors.Is(err, context.Canceled) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if sequence != c.issuedSequence {
		metrics.LogFetchesTotal.WithLabelValues(metrics.OutcomeStale).Inc()
		c.logger.Debug("Discarding stale log fetch result",
			slog.String("fetchId", fetchID),
			slog.Uint64("sequence", sequence),
			slog.Uint64("latestSequence", c.issuedSequence))
		return
	}

	now := time.Now().UTC()
	c.appliedSequence = sequence
	c.updatedAt = &now

	if err != nil {
		fetchErr := asFetchError(err)
		c.lastError = fetchErr

		outcome := metrics.OutcomeNetworkFailure
		if fetchErr.Kind == logs_core.FetchFailureMalformedResponse {
			outcome = metrics.OutcomeMalformedResponse
		}
		metrics.LogFetchesTotal.WithLabelValues(outcome).Inc()

		c.logger.Error("Failed to fetch logs, keeping previous records",
			slog.String("fetchId", fetchID),
			slog.Uint64("sequence", sequence),
			slog.String("query", params.Encode()),
			slog.String("error", err.Error()))
		return
	}

	if records == nil {
		records = []logs_core.LogRecord{}
	}

	c.records = records
	c.appliedParams = params
	c.lastError = nil

	metrics.LogFetchesTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	metrics.LogFetchRecords.Observe(float64(len(records)))
}

func (c *QueryController) finishFetch() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.inFlight--
	if c.inFlight == 0 {
		c.settled.Broadcast()
	}
}

func asFetchError(err error) *logs_core.FetchError {
	var fetchErr *logs_core.FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr
	}

	return &logs_core.FetchError{
		Kind:    logs_core.FetchFailureNetwork,
		Message: err.Error(),
		Err:     err,
	}
}
