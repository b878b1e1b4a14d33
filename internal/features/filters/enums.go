package filters

// FilterField is the wire name of one filter constraint.
type FilterField string

const (
	FieldLevel            FilterField = "level"
	FieldMessage          FilterField = "message"
	FieldResourceID       FilterField = "resourceId"
	FieldStartDate        FilterField = "startDate"
	FieldEndDate          FilterField = "endDate"
	FieldTraceID          FilterField = "traceId"
	FieldSpanID           FilterField = "spanId"
	FieldCommit           FilterField = "commit"
	FieldParentResourceID FilterField = "metadata.parentResourceId"
	FieldPrediction       FilterField = "prediction"
)

// AllFilterFields lists every field in display order.
var AllFilterFields = [fieldCount]FilterField{
	FieldLevel,
	FieldMessage,
	FieldResourceID,
	FieldStartDate,
	FieldEndDate,
	FieldTraceID,
	FieldSpanID,
	FieldCommit,
	FieldParentResourceID,
	FieldPrediction,
}

const fieldCount = 10

func (f FilterField) IsValid() bool {
	return f.index() >= 0
}

func (f FilterField) IsDate() bool {
	return f == FieldStartDate || f == FieldEndDate
}

func (f FilterField) index() int {
	for i, field := range AllFilterFields {
		if field == f {
			return i
		}
	}

	return -1
}

// InputKind describes the control a raw value came from.
type InputKind string

const (
	InputKindText InputKind = "text"
	InputKindDate InputKind = "date"
)

func (k InputKind) IsValid() bool {
	switch k {
	case InputKindText, InputKindDate:
		return true
	default:
		return false
	}
}
