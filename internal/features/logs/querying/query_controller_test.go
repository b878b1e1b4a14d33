package logs_querying

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"logquery/internal/features/filters"
	logs_core "logquery/internal/features/logs/core"
	"logquery/internal/util/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fetchResult struct {
	records []logs_core.LogRecord
	err     error
}

type pendingFetch struct {
	params  map[string]string
	respond chan fetchResult
}

// gatedFetcher blocks every fetch until the test responds to it.
type gatedFetcher struct {
	fetches chan *pendingFetch
}

func newGatedFetcher() *gatedFetcher {
	return &gatedFetcher{fetches: make(chan *pendingFetch, 16)}
}

func (f *gatedFetcher) FetchLogs(ctx context.Context, params map[string]string) ([]logs_core.LogRecord, error) {
	fetch := &pendingFetch{params: params, respond: make(chan fetchResult, 1)}
	f.fetches <- fetch

	select {
	case result := <-fetch.respond:
		return result.records, result.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (f *gatedFetcher) next(t *testing.T) *pendingFetch {
	t.Helper()

	select {
	case fetch := <-f.fetches:
		return fetch
	case <-time.After(2 * time.Second):
		t.Fatal("expected a fetch to be issued")
		return nil
	}
}

func (f *gatedFetcher) assertNoFetch(t *testing.T) {
	t.Helper()

	select {
	case fetch := <-f.fetches:
		t.Fatalf("unexpected fetch with params %v", fetch.params)
	case <-time.After(50 * time.Millisecond):
	}
}

// recordingFetcher answers immediately and records every call.
type recordingFetcher struct {
	mu      sync.Mutex
	calls   []map[string]string
	respond func(params map[string]string) ([]logs_core.LogRecord, error)
}

func (f *recordingFetcher) FetchLogs(_ context.Context, params map[string]string) ([]logs_core.LogRecord, error) {
	f.mu.Lock()
	f.calls = append(f.calls, params)
	f.mu.Unlock()

	if f.respond == nil {
		return []logs_core.LogRecord{}, nil
	}

	return f.respond(params)
}

func (f *recordingFetcher) Calls() []map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]map[string]string(nil), f.calls...)
}

func Test_Attach_WithInitialState_FetchesWithoutParamsAndPublishesEmptyList(t *testing.T) {
	fetcher := &recordingFetcher{}
	controller := createController(fetcher)
	state := filters.NewFilterState()

	controller.Attach(state)
	controller.Wait()

	calls := fetcher.Calls()
	require.Len(t, calls, 1)
	assert.Empty(t, calls[0])

	view := controller.View()
	assert.Empty(t, view.Records)
	assert.NotNil(t, view.Records)
	assert.False(t, view.IsPending)
	assert.Nil(t, view.LastError)
	assert.Equal(t, uint64(1), view.AppliedSequence)
}

func Test_OnFilterChange_EachTransition_IssuesExactlyOneFetchWithMatchingParams(t *testing.T) {
	fetcher := &recordingFetcher{}
	controller := createController(fetcher)
	state := filters.NewFilterState()
	controller.Attach(state)

	require.NoError(t, state.SetField(filters.FieldLevel, "error", filters.InputKindText))
	controller.Wait()
	require.NoError(t, state.SetField(filters.FieldTraceID, "abc123", filters.InputKindText))
	controller.Wait()
	state.Reset()
	controller.Wait()
	state.Reset()
	controller.Wait()

	calls := fetcher.Calls()
	require.Len(t, calls, 5)
	assert.Empty(t, calls[0])
	assert.Equal(t, map[string]string{"level": "error"}, calls[1])
	assert.Equal(t, map[string]string{"level": "error", "traceId": "abc123"}, calls[2])
	assert.Empty(t, calls[3])
	assert.Empty(t, calls[4])
}

func Test_OnFilterChange_WithRejectedInput_DoesNotFetch(t *testing.T) {
	fetcher := newGatedFetcher()
	controller := createController(fetcher)
	state := filters.NewFilterState()
	controller.Attach(state)
	fetcher.next(t).respond <- fetchResult{records: []logs_core.LogRecord{}}

	err := state.SetField(filters.FieldStartDate, "not-a-date", filters.InputKindDate)

	assert.Error(t, err)
	fetcher.assertNoFetch(t)
	controller.Wait()
	assert.Equal(t, uint64(1), controller.View().IssuedSequence)
}

func Test_Fetch_WhenFailing_KeepsPreviousRecordsAndExposesError(t *testing.T) {
	fetcher := newGatedFetcher()
	controller := createController(fetcher)
	state := filters.NewFilterState()
	controller.Attach(state)
	initialRecords := []logs_core.LogRecord{{ID: "1", Level: "info"}, {ID: "2", Level: "error"}}
	fetcher.next(t).respond <- fetchResult{records: initialRecords}
	controller.Wait()

	require.NoError(t, state.SetField(filters.FieldLevel, "error", filters.InputKindText))
	fetcher.next(t).respond <- fetchResult{err: &logs_core.FetchError{
		Kind:       logs_core.FetchFailureNetwork,
		StatusCode: 500,
		Message:    "log service returned error status",
	}}
	controller.Wait()

	view := controller.View()
	assert.Equal(t, initialRecords, view.Records)
	assert.Equal(t, QueryParams{}, view.Params)
	require.NotNil(t, view.LastError)
	assert.Equal(t, logs_core.FetchFailureNetwork, view.LastError.Kind)
	assert.False(t, view.IsPending)
}

func Test_Fetch_WithMalformedResponseOrPlainError_KeepsPreviousRecords(t *testing.T) {
	failures := []struct {
		name         string
		err          error
		expectedKind logs_core.FetchFailureKind
	}{
		{
			name:         "malformed response",
			err:          &logs_core.FetchError{Kind: logs_core.FetchFailureMalformedResponse, Message: "not an array"},
			expectedKind: logs_core.FetchFailureMalformedResponse,
		},
		{
			name:         "plain error",
			err:          errors.New("connection reset by peer"),
			expectedKind: logs_core.FetchFailureNetwork,
		},
	}

	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			previous := []logs_core.LogRecord{{ID: "kept"}}
			fetcher := &recordingFetcher{
				respond: func(params map[string]string) ([]logs_core.LogRecord, error) {
					if len(params) == 0 {
						return previous, nil
					}
					return nil, tt.err
				},
			}
			controller := createController(fetcher)
			state := filters.NewFilterState()
			controller.Attach(state)
			controller.Wait()

			require.NoError(t, state.SetField(filters.FieldCommit, "5e5342f", filters.InputKindText))
			controller.Wait()

			view := controller.View()
			assert.Equal(t, previous, view.Records)
			require.NotNil(t, view.LastError)
			assert.Equal(t, tt.expectedKind, view.LastError.Kind)
		})
	}
}

func Test_Fetch_AfterFailureThenSuccess_ClearsLastError(t *testing.T) {
	fail := true
	fetcher := &recordingFetcher{
		respond: func(params map[string]string) ([]logs_core.LogRecord, error) {
			if fail {
				return nil, errors.New("timeout")
			}
			return []logs_core.LogRecord{{ID: "fresh"}}, nil
		},
	}
	controller := createController(fetcher)
	state := filters.NewFilterState()
	controller.Attach(state)
	controller.Wait()
	require.NotNil(t, controller.View().LastError)

	fail = false
	state.Reset()
	controller.Wait()

	view := controller.View()
	assert.Nil(t, view.LastError)
	assert.Equal(t, []logs_core.LogRecord{{ID: "fresh"}}, view.Records)
}

func Test_Fetch_WhenResponsesArriveOutOfOrder_AppliesOnlyLatest(t *testing.T) {
	fetcher := newGatedFetcher()
	controller := createController(fetcher)
	state := filters.NewFilterState()
	controller.Attach(state)
	fetcher.next(t).respond <- fetchResult{records: []logs_core.LogRecord{}}
	controller.Wait()

	require.NoError(t, state.SetField(filters.FieldLevel, "warn", filters.InputKindText))
	olderFetch := fetcher.next(t)
	require.NoError(t, state.SetField(filters.FieldLevel, "error", filters.InputKindText))
	newerFetch := fetcher.next(t)
	assert.Equal(t, map[string]string{"level": "warn"}, olderFetch.params)
	assert.Equal(t, map[string]string{"level": "error"}, newerFetch.params)

	newerFetch.respond <- fetchResult{records: []logs_core.LogRecord{{ID: "error-1", Level: "error"}}}
	require.Eventually(t, func() bool {
		return !controller.View().IsPending
	}, 2*time.Second, 10*time.Millisecond)

	olderFetch.respond <- fetchResult{records: []logs_core.LogRecord{{ID: "warn-1", Level: "warn"}}}
	controller.Wait()

	view := controller.View()
	assert.Equal(t, []logs_core.LogRecord{{ID: "error-1", Level: "error"}}, view.Records)
	assert.Equal(t, QueryParams{"level": "error"}, view.Params)
	assert.Equal(t, uint64(3), view.AppliedSequence)
}

func Test_Fetch_WhenStaleRequestFails_DoesNotRecordError(t *testing.T) {
	fetcher := newGatedFetcher()
	controller := createController(fetcher)
	state := filters.NewFilterState()
	controller.Attach(state)
	staleFetch := fetcher.next(t)

	require.NoError(t, state.SetField(filters.FieldSpanID, "span-456", filters.InputKindText))
	latestFetch := fetcher.next(t)
	latestFetch.respond <- fetchResult{records: []logs_core.LogRecord{{ID: "span"}}}
	staleFetch.respond <- fetchResult{err: errors.New("connection refused")}
	controller.Wait()

	view := controller.View()
	assert.Nil(t, view.LastError)
	assert.Equal(t, []logs_core.LogRecord{{ID: "span"}}, view.Records)
}

func Test_View_WhileFetchInFlight_ReportsPending(t *testing.T) {
	fetcher := newGatedFetcher()
	controller := createController(fetcher)
	state := filters.NewFilterState()

	controller.Attach(state)
	fetch := fetcher.next(t)

	assert.True(t, controller.View().IsPending)

	fetch.respond <- fetchResult{records: []logs_core.LogRecord{}}
	controller.Wait()
	assert.False(t, controller.View().IsPending)
}

func Test_Records_ModifyingReturnedSlice_DoesNotAffectPublishedList(t *testing.T) {
	fetcher := &recordingFetcher{
		respond: func(map[string]string) ([]logs_core.LogRecord, error) {
			return []logs_core.LogRecord{{ID: "1", Message: "original"}}, nil
		},
	}
	controller := createController(fetcher)
	controller.Attach(filters.NewFilterState())
	controller.Wait()

	records := controller.Records()
	records[0].Message = "changed"

	assert.Equal(t, "original", controller.Records()[0].Message)
}

func Test_Close_WithFetchInFlight_CancelsAndStopsFurtherFetches(t *testing.T) {
	fetcher := newGatedFetcher()
	controller := createController(fetcher)
	state := filters.NewFilterState()
	controller.Attach(state)
	fetcher.next(t)

	controller.Close()
	state.Reset()

	fetcher.assertNoFetch(t)
	assert.Equal(t, uint64(1), controller.View().IssuedSequence)
	assert.Nil(t, controller.View().LastError)
}

func Test_NewQueryController_WithNonPositiveTimeout_UsesDefaultAndFetchSucceeds(t *testing.T) {
	fetcher := &recordingFetcher{
		respond: func(map[string]string) ([]logs_core.LogRecord, error) {
			return []logs_core.LogRecord{{ID: "1"}}, nil
		},
	}

	for _, timeout := range []time.Duration{0, -time.Second} {
		controller := NewQueryController(fetcher, logger.GetLogger(), timeout)
		controller.Attach(filters.NewFilterState())
		controller.Wait()

		assert.Equal(t, DefaultFetchTimeout, controller.fetchTimeout)
		assert.Nil(t, controller.View().LastError)
		assert.Len(t, controller.Records(), 1)
		controller.Close()
	}
}

func Test_Wait_WhileFiltersKeepChanging_ReturnsOnceAllFetchesSettle(t *testing.T) {
	fetcher := &recordingFetcher{}
	controller := createController(fetcher)
	state := filters.NewFilterState()
	controller.Attach(state)
	defer controller.Close()

	const changes = 200
	var writers sync.WaitGroup
	writers.Add(1)
	go func() {
		defer writers.Done()
		for i := range changes {
			_ = state.SetField(filters.FieldMessage, strconv.Itoa(i), filters.InputKindText)
		}
	}()

	waiters := sync.WaitGroup{}
	for range 4 {
		waiters.Add(1)
		go func() {
			defer waiters.Done()
			for range 20 {
				controller.Wait()
			}
		}()
	}

	writers.Wait()
	waiters.Wait()
	controller.Wait()

	view := controller.View()
	assert.Len(t, fetcher.Calls(), changes+1)
	assert.False(t, view.IsPending)
	assert.Equal(t, uint64(changes+1), view.AppliedSequence)
	assert.Equal(t, QueryParams{"message": strconv.Itoa(changes - 1)}, view.Params)
}

func createController(fetcher LogFetcher) *QueryController {
	return NewQueryController(fetcher, logger.GetLogger(), 5*time.Second)
}
