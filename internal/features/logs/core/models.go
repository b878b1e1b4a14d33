package logs_core

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	time_parser "logquery/internal/util/time"
)

// LogRecord is one entry returned by the log service. It is never mutated
// after decoding. The log service stores whatever was ingested, so display
// fields of any JSON type are decoded as text.
type LogRecord struct {
	ID         string       `json:"_id"`
	Level      string       `json:"level"`
	Message    string       `json:"message"`
	ResourceID string       `json:"resourceId"`
	Timestamp  string       `json:"timestamp,omitempty"`
	TraceID    string       `json:"traceId"`
	SpanID     string       `json:"spanId"`
	Commit     string       `json:"commit"`
	Metadata   *LogMetadata `json:"metadata,omitempty"`
	Prediction Prediction   `json:"prediction"`
}

type LogMetadata struct {
	ParentResourceID string `json:"parentResourceId,omitempty"`
}

var errNotAnObject = errors.New("log record is not a JSON object")

type logRecordWire struct {
	ID         displayString   `json:"_id"`
	Level      displayString   `json:"level"`
	Message    displayString   `json:"message"`
	ResourceID displayString   `json:"resourceId"`
	Timestamp  displayString   `json:"timestamp"`
	TraceID    displayString   `json:"traceId"`
	SpanID     displayString   `json:"spanId"`
	Commit     displayString   `json:"commit"`
	Metadata   json.RawMessage `json:"metadata"`
	Prediction displayString   `json:"prediction"`
}

type logMetadataWire struct {
	ParentResourceID displayString `json:"parentResourceId"`
}

// UnmarshalJSON fails only when data is not a JSON object. A metadata value
// that is not an object is treated as absent.
func (r *LogRecord) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '{' {
		return errNotAnObject
	}

	var wire logRecordWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	*r = LogRecord{
		ID:         string(wire.ID),
		Level:      string(wire.Level),
		Message:    string(wire.Message),
		ResourceID: string(wire.ResourceID),
		Timestamp:  string(wire.Timestamp),
		TraceID:    string(wire.TraceID),
		SpanID:     string(wire.SpanID),
		Commit:     string(wire.Commit),
		Prediction: Prediction(wire.Prediction),
	}

	metadata := bytes.TrimSpace(wire.Metadata)
	if len(metadata) > 0 && metadata[0] == '{' {
		var metadataWire logMetadataWire
		if err := json.Unmarshal(metadata, &metadataWire); err != nil {
			return err
		}
		r.Metadata = &LogMetadata{ParentResourceID: string(metadataWire.ParentResourceID)}
	}

	return nil
}

// displayString accepts any JSON value. Strings are unquoted, null is empty
// and other values keep their compact JSON text.
type displayString string

func (s *displayString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*s = ""
	case data[0] == '"':
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*s = displayString(value)
	case data[0] == '{' || data[0] == '[':
		var compacted bytes.Buffer
		if err := json.Compact(&compacted, data); err != nil {
			return err
		}
		*s = displayString(compacted.String())
	default:
		*s = displayString(data)
	}

	return nil
}

func (r *LogRecord) ParentResourceID() string {
	if r.Metadata == nil {
		return ""
	}

	return r.Metadata.ParentResourceID
}

// ParsedTimestamp reports false when the timestamp is absent or unparseable.
func (r *LogRecord) ParsedTimestamp() (time.Time, bool) {
	return time_parser.ParseTimestamp(r.Timestamp)
}

// CloneRecords copies the slice and the metadata pointers it holds.
func CloneRecords(records []LogRecord) []LogRecord {
	cloned := make([]LogRecord, len(records))
	copy(cloned, records)

	for i := range cloned {
		if cloned[i].Metadata != nil {
			metadata := *cloned[i].Metadata
			cloned[i].Metadata = &metadata
		}
	}

	return cloned
}
