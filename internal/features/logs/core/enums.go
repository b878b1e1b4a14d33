package logs_core

// Prediction is the label an upstream classifier attaches to a record.
type Prediction string

const (
	PredictionAnomaly Prediction = "anomaly"
	PredictionNormal  Prediction = "normal"
)

func (p Prediction) IsKnown() bool {
	switch p {
	case PredictionAnomaly, PredictionNormal:
		return true
	default:
		return false
	}
}

type FetchFailureKind string

const (
	FetchFailureNetwork           FetchFailureKind = "NETWORK_FAILURE"
	FetchFailureMalformedResponse FetchFailureKind = "MALFORMED_RESPONSE"
)
