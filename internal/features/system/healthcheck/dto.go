package system_healthcheck

type HealthStatus string

const (
	HealthStatusOK       HealthStatus = "ok"
	HealthStatusDegraded HealthStatus = "degraded"
)

type MemoryDTO struct {
	TotalMB     uint64  `json:"totalMb"`
	AvailableMB uint64  `json:"availableMb"`
	UsedPercent float64 `json:"usedPercent"`
}

type HealthcheckResponseDTO struct {
	Status              HealthStatus `json:"status"`
	LogServiceAvailable bool         `json:"logServiceAvailable"`
	LogServiceError     string       `json:"logServiceError,omitempty"`
	ActiveSessions      int          `json:"activeSessions"`
	Memory              *MemoryDTO   `json:"memory,omitempty"`
}
