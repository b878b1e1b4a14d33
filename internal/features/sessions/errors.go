package sessions

type ValidationError struct {
	Code          string `json:"code"`
	Message       string `json:"message"`
	RetryAfterSec int    `json:"retryAfterSec,omitempty"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

const (
	ErrorSessionNotFound   = "SESSION_NOT_FOUND"
	ErrorRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
)

func newSessionNotFoundError() *ValidationError {
	return &ValidationError{
		Code:    ErrorSessionNotFound,
		Message: "session not found or expired",
	}
}
