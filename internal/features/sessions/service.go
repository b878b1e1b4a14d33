package sessions

import (
	"log/slog"
	"sync"
	"time"

	"logquery/internal/features/filters"
	logs_querying "logquery/internal/features/logs/querying"
	logs_rendering "logquery/internal/features/logs/rendering"
	"logquery/internal/metrics"
	"logquery/internal/util/rate_limit"

	"github.com/google/uuid"
)

type SessionSettings struct {
	FetchTimeout time.Duration
	IdleTTL      time.Duration
	Location     *time.Location
}

type SessionService struct {
	logServiceClient LogServiceClient
	rateLimiter      *rate_limit.RateLimiter
	logger           *slog.Logger
	settings         SessionSettings
	now              func() time.Time

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewSessionService(
	logServiceClient LogServiceClient,
	rateLimiter *rate_limit.RateLimiter,
	logger *slog.Logger,
	settings SessionSettings,
) *SessionService {
	if settings.Location == nil {
		settings.Location = time.Local
	}

	return &SessionService{
		logServiceClient: logServiceClient,
		rateLimiter:      rateLimiter,
		logger:           logger,
		settings:         settings,
		now:              time.Now,
		sessions:         make(map[uuid.UUID]*Session),
	}
}

// CreateSession starts a viewer with empty filters and issues its initial
// fetch.
func (s *SessionService) CreateSession() *Session {
	now := s.now().UTC()
	sessionID := uuid.New()

	filterState := filters.NewFilterState(filters.WithLocation(s.settings.Location))
	queryController := logs_querying.NewQueryController(
		s.logServiceClient,
		s.logger.With(slog.String("sessionId", sessionID.String())),
		s.settings.FetchTimeout,
	)

	session := &Session{
		ID:              sessionID,
		CreatedAt:       now,
		FilterState:     filterState,
		QueryController: queryController,
		lastSeenAt:      now,
	}

	queryController.Attach(filterState)

	s.mu.Lock()
	s.sessions[sessionID] = session
	s.mu.Unlock()

	metrics.ActiveSessions.Inc()
	s.logger.Info("Viewer session created", slog.String("sessionId", sessionID.String()))

	return session
}

func (s *SessionService) GetSession(sessionID uuid.UUID) (*Session, error) {
	s.mu.RLock()
	session, exists := s.sessions[sessionID]
	s.mu.RUnlock()

	if !exists {
		return nil, newSessionNotFoundError()
	}

	session.touch(s.now().UTC())
	return session, nil
}

func (s *SessionService) CloseSession(sessionID uuid.UUID) error {
	s.mu.Lock()
	session, exists := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if !exists {
		return newSessionNotFoundError()
	}

	s.closeSession(session, "closed")
	return nil
}

func (s *SessionService) GetFilters(sessionID uuid.UUID) (*FiltersResponseDTO, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	return &FiltersResponseDTO{Filters: session.FilterState.Get()}, nil
}

// SetFilter applies one field change. An empty input kind falls back to the
// kind of the field's control.
func (s *SessionService) SetFilter(sessionID uuid.UUID, request *SetFilterRequestDTO) (*FiltersResponseDTO, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	inputKind := request.InputKind
	if inputKind == "" {
		inputKind = filters.InputKindText
		if request.Field.IsDate() {
			inputKind = filters.InputKindDate
		}
	}

	// only accepted changes are charged to the rate limiter
	if err := session.FilterState.Validate(request.Field, request.Value, inputKind); err != nil {
		return nil, err
	}

	if err := s.checkRateLimit(sessionID); err != nil {
		return nil, err
	}

	if err := session.FilterState.SetField(request.Field, request.Value, inputKind); err != nil {
		return nil, err
	}

	metrics.FilterChangesTotal.WithLabelValues("set").Inc()
	return &FiltersResponseDTO{Filters: session.FilterState.Get()}, nil
}

func (s *SessionService) ResetFilters(sessionID uuid.UUID) (*FiltersResponseDTO, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.checkRateLimit(sessionID); err != nil {
		return nil, err
	}

	session.FilterState.Reset()

	metrics.FilterChangesTotal.WithLabelValues("reset").Inc()
	return &FiltersResponseDTO{Filters: session.FilterState.Get()}, nil
}

// GetParams derives the params for the current filter values.
func (s *SessionService) GetParams(sessionID uuid.UUID) (*ParamsResponseDTO, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	params := logs_querying.DeriveParams(session.FilterState.Snapshot())

	return &ParamsResponseDTO{
		Params:      params,
		QueryString: params.Encode(),
		URL:         s.logServiceClient.LogsURL(params),
	}, nil
}

func (s *SessionService) GetView(sessionID uuid.UUID) (*logs_querying.ViewState, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	view := session.QueryController.View()
	return &view, nil
}

func (s *SessionService) GetTable(sessionID uuid.UUID) (*logs_rendering.TableResponseDTO, error) {
	view, err := s.GetView(sessionID)
	if err != nil {
		return nil, err
	}

	table := logs_rendering.BuildTable(*view, s.settings.Location)
	return &table, nil
}

// CloseIdleSessions closes sessions not seen within the idle TTL.
func (s *SessionService) CloseIdleSessions() int {
	cutoff := s.now().UTC().Add(-s.settings.IdleTTL)

	s.mu.Lock()
	var idle []*Session
	for sessionID, session := range s.sessions {
		if session.LastSeenAt().Before(cutoff) {
			idle = append(idle, session)
			delete(s.sessions, sessionID)
		}
	}
	s.mu.Unlock()

	for _, session := range idle {
		s.closeSession(session, "expired")
	}

	return len(idle)
}

func (s *SessionService) CloseAllSessions() {
	s.mu.Lock()
	all := make([]*Session, 0, len(s.sessions))
	for sessionID, session := range s.sessions {
		all = append(all, session)
		delete(s.sessions, sessionID)
	}
	s.mu.Unlock()

	for _, session := range all {
		s.closeSession(session, "shutdown")
	}
}

func (s *SessionService) ActiveSessionsCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}

func (s *SessionService) checkRateLimit(sessionID uuid.UUID) error {
	result := s.rateLimiter.CheckRateLimit(sessionID)
	if result.Allowed {
		return nil
	}

	return &ValidationError{
		Code:          ErrorRateLimitExceeded,
		Message:       "too many filter changes, slow down",
		RetryAfterSec: result.RetryAfterSec,
	}
}

func (s *SessionService) closeSession(session *Session, reason string) {
	session.close()
	s.rateLimiter.ResetRateLimit(session.ID)
	metrics.ActiveSessions.Dec()

	s.logger.Info("Viewer session closed",
		slog.String("sessionId", session.ID.String()),
		slog.String("reason", reason))
}
