package sessions

import (
	"sync"
	"time"

	"logquery/internal/features/filters"
	logs_querying "logquery/internal/features/logs/querying"

	"github.com/google/uuid"
)

// Session is one viewer: a filter state and the controller fetching for it.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	FilterState     *filters.FilterState
	QueryController *logs_querying.QueryController

	mu         sync.Mutex
	lastSeenAt time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeenAt = now
}

func (s *Session) LastSeenAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastSeenAt
}

func (s *Session) close() {
	s.QueryController.Close()
}
