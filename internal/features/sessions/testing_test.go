package sessions

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	logs_core "logquery/internal/features/logs/core"
	"logquery/internal/util/logger"
	"logquery/internal/util/rate_limit"

	"github.com/gin-gonic/gin"
)

const fakeLogsBody = `[
	{"_id":"a1","level":"ERROR","message":"Disk full","resourceId":"server-1","timestamp":"2024-01-15T10:30:00Z","traceId":"t1","spanId":"s1","commit":"abc","metadata":{"parentResourceId":"cluster-1"},"prediction":"anomaly"},
	{"_id":"a2","level":"INFO","message":"Started","resourceId":"server-2","traceId":"t2","spanId":"s2","commit":"def","prediction":"normal"}
]`

// fakeLogService records every query it receives.
type fakeLogService struct {
	server *httptest.Server

	mu      sync.Mutex
	queries []string
}

func newFakeLogService(t *testing.T) *fakeLogService {
	t.Helper()

	service := &fakeLogService{}
	service.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		service.mu.Lock()
		service.queries = append(service.queries, r.URL.RawQuery)
		service.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(fakeLogsBody))
	}))
	t.Cleanup(service.server.Close)

	return service
}

func (s *fakeLogService) Queries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.queries...)
}

func createSessionService(t *testing.T, logService *fakeLogService, rateLimiter *rate_limit.RateLimiter) *SessionService {
	t.Helper()

	if rateLimiter == nil {
		rateLimiter = rate_limit.NewRateLimiter(100, 100)
	}

	service := NewSessionService(
		logs_core.NewLogServiceRepository(logService.server.URL, 2*time.Second, logger.GetLogger()),
		rateLimiter,
		logger.GetLogger(),
		SessionSettings{
			FetchTimeout: 2 * time.Second,
			IdleTTL:      30 * time.Minute,
			Location:     time.UTC,
		},
	)
	t.Cleanup(service.CloseAllSessions)

	return service
}

func createRouter(service *SessionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	controller := &SessionController{service}
	controller.RegisterRoutes(router.Group("/api/v1"))

	return router
}
