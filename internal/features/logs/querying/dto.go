package logs_querying

import (
	"time"

	logs_core "logquery/internal/features/logs/core"
)

// ViewState is the published result of the most recent settled fetch.
type ViewState struct {
	Records         []logs_core.LogRecord `json:"records"`
	Params          QueryParams           `json:"params"`
	IssuedSequence  uint64                `json:"issuedSequence"`
	AppliedSequence uint64                `json:"appliedSequence"`
	IsPending       bool                  `json:"isPending"`
	LastError       *logs_core.FetchError `json:"lastError,omitempty"`
	UpdatedAt       *time.Time            `json:"updatedAt,omitempty"`
}
