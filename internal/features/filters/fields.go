package filters

// FieldDescriptor describes the input control bound to a field.
type FieldDescriptor struct {
	Name        FilterField `json:"name"`
	Label       string      `json:"label"`
	Placeholder string      `json:"placeholder"`
	InputKind   InputKind   `json:"inputKind"`
}

var FieldDescriptors = []FieldDescriptor{
	{Name: FieldLevel, Label: "Level", Placeholder: "Level (e.g., error)", InputKind: InputKindText},
	{Name: FieldMessage, Label: "Message", Placeholder: "Message text search", InputKind: InputKindText},
	{Name: FieldResourceID, Label: "Resource ID", Placeholder: "Resource ID", InputKind: InputKindText},
	{Name: FieldStartDate, Label: "Start Date", Placeholder: "Start Date", InputKind: InputKindDate},
	{Name: FieldEndDate, Label: "End Date", Placeholder: "End Date", InputKind: InputKindDate},
	{Name: FieldTraceID, Label: "Trace ID", Placeholder: "Trace ID", InputKind: InputKindText},
	{Name: FieldSpanID, Label: "Span ID", Placeholder: "Span ID", InputKind: InputKindText},
	{Name: FieldCommit, Label: "Commit", Placeholder: "Commit hash", InputKind: InputKindText},
	{
		Name:        FieldParentResourceID,
		Label:       "Parent Resource ID",
		Placeholder: "Parent Resource ID",
		InputKind:   InputKindText,
	},
	{Name: FieldPrediction, Label: "Prediction", Placeholder: "Prediction (anomaly/normal)", InputKind: InputKindText},
}
