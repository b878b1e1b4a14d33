package system_healthcheck

import (
	"context"
	"log/slog"

	"github.com/shirou/gopsutil/v4/mem"
)

type AvailabilityChecker interface {
	IsAvailable(ctx context.Context) error
}

type ActiveSessionsCounter interface {
	ActiveSessionsCount() int
}

type HealthcheckService struct {
	availabilityChecker   AvailabilityChecker
	activeSessionsCounter ActiveSessionsCounter
	logger                *slog.Logger
	readMemory            func(ctx context.Context) (*mem.VirtualMemoryStat, error)
}

const bytesInMB = 1024 * 1024

func NewHealthcheckService(
	availabilityChecker AvailabilityChecker,
	activeSessionsCounter ActiveSessionsCounter,
	logger *slog.Logger,
) *HealthcheckService {
	return &HealthcheckService{
		availabilityChecker:   availabilityChecker,
		activeSessionsCounter: activeSessionsCounter,
		logger:                logger,
		readMemory:            mem.VirtualMemoryWithContext,
	}
}

func (s *HealthcheckService) Check(ctx context.Context) *HealthcheckResponseDTO {
	response := &HealthcheckResponseDTO{
		Status:              HealthStatusOK,
		LogServiceAvailable: true,
		ActiveSessions:      s.activeSessionsCounter.ActiveSessionsCount(),
	}

	if err := s.availabilityChecker.IsAvailable(ctx); err != nil {
		response.Status = HealthStatusDegraded
		response.LogServiceAvailable = false
		response.LogServiceError = err.Error()
	}

	memory, err := s.readMemory(ctx)
	if err != nil {
		s.logger.Warn("Failed to read memory stats", slog.String("error", err.Error()))
		return response
	}

	response.Memory = &MemoryDTO{
		TotalMB:     memory.Total / bytesInMB,
		AvailableMB: memory.Available / bytesInMB,
		UsedPercent: memory.UsedPercent,
	}

	return response
}
