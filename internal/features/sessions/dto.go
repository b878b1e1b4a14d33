package sessions

import (
	"time"

	"logquery/internal/features/filters"
	logs_querying "logquery/internal/features/logs/querying"

	"github.com/google/uuid"
)

type SessionResponseDTO struct {
	ID        uuid.UUID                      `json:"id"`
	CreatedAt time.Time                      `json:"createdAt"`
	Filters   map[filters.FilterField]string `json:"filters"`
}

type SetFilterRequestDTO struct {
	Field     filters.FilterField `json:"field"     binding:"required"`
	Value     string              `json:"value"`
	InputKind filters.InputKind   `json:"inputKind"`
}

type FiltersResponseDTO struct {
	Filters map[filters.FilterField]string `json:"filters"`
}

type ParamsResponseDTO struct {
	Params      logs_querying.QueryParams `json:"params"`
	QueryString string                    `json:"queryString"`
	URL         string                    `json:"url"`
}
