package logs_rendering

import (
	"time"

	logs_core "logquery/internal/features/logs/core"
	logs_querying "logquery/internal/features/logs/querying"
)

const (
	timestampLayout  = "2006-01-02 15:04:05"
	missingCellValue = "-"
)

var TableColumns = []string{
	"Level",
	"Message",
	"Resource ID",
	"Timestamp",
	"Trace ID",
	"Span ID",
	"Commit",
	"Parent Resource ID",
	"Prediction",
}

type TableRow struct {
	Key              string `json:"key"`
	Level            string `json:"level"`
	Message          string `json:"message"`
	ResourceID       string `json:"resourceId"`
	Timestamp        string `json:"timestamp"`
	TraceID          string `json:"traceId"`
	SpanID           string `json:"spanId"`
	Commit           string `json:"commit"`
	ParentResourceID string `json:"parentResourceId"`
	Prediction       string `json:"prediction"`
	PredictionClass  string `json:"predictionClass"`
}

type TableResponseDTO struct {
	Columns   []string              `json:"columns"`
	Rows      []TableRow            `json:"rows"`
	IsPending bool                  `json:"isPending"`
	LastError *logs_core.FetchError `json:"lastError,omitempty"`
	UpdatedAt *time.Time            `json:"updatedAt,omitempty"`
}

// BuildTable projects a published view into table rows. Timestamps are shown
// in location.
func BuildTable(view logs_querying.ViewState, location *time.Location) TableResponseDTO {
	return TableResponseDTO{
		Columns:   TableColumns,
		Rows:      BuildRows(view.Records, location),
		IsPending: view.IsPending,
		LastError: view.LastError,
		UpdatedAt: view.UpdatedAt,
	}
}

func BuildRows(records []logs_core.LogRecord, location *time.Location) []TableRow {
	if location == nil {
		location = time.Local
	}

	rows := make([]TableRow, 0, len(records))
	for i := range records {
		record := &records[i]

		rows = append(rows, TableRow{
			Key:              record.ID,
			Level:            record.Level,
			Message:          record.Message,
			ResourceID:       record.ResourceID,
			Timestamp:        formatTimestamp(record, location),
			TraceID:          record.TraceID,
			SpanID:           record.SpanID,
			Commit:           record.Commit,
			ParentResourceID: record.ParentResourceID(),
			Prediction:       string(record.Prediction),
			PredictionClass:  predictionClass(record.Prediction),
		})
	}

	return rows
}

func formatTimestamp(record *logs_core.LogRecord, location *time.Location) string {
	timestamp, ok := record.ParsedTimestamp()
	if !ok {
		return missingCellValue
	}

	return timestamp.In(location).Format(timestampLayout)
}

func predictionClass(prediction logs_core.Prediction) string {
	if prediction.IsKnown() {
		return "prediction " + string(prediction)
	}

	return "prediction"
}
