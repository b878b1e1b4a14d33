package filters

import (
	"errors"
	"fmt"
)

const (
	ErrorInvalidDate      = "INVALID_DATE"
	ErrorUnknownField     = "UNKNOWN_FIELD"
	ErrorUnknownInputKind = "UNKNOWN_INPUT_KIND"
)

var (
	ErrUnknownField     = errors.New("unknown filter field")
	ErrUnknownInputKind = errors.New("unknown input kind")
)

// InvalidDateError is returned when a date input is not a calendar date.
// The filter state is left untouched.
type InvalidDateError struct {
	Field FilterField
	Value string
	Err   error
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q for field %s: expected YYYY-MM-DD", e.Value, e.Field)
}

func (e *InvalidDateError) Unwrap() error {
	return e.Err
}

// ErrorCode maps filter errors to API error codes.
func ErrorCode(err error) string {
	var invalidDateErr *InvalidDateError
	switch {
	case errors.As(err, &invalidDateErr):
		return ErrorInvalidDate
	case errors.Is(err, ErrUnknownField):
		return ErrorUnknownField
	case errors.Is(err, ErrUnknownInputKind):
		return ErrorUnknownInputKind
	default:
		return ""
	}
}
