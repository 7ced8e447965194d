package timezone

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnrecognizedTimeZone is matched by every resolution failure.
var ErrUnrecognizedTimeZone = errors.New("timezone: unrecognized time zone")

// UnrecognizedTimeZoneError reports an expression that did not produce a rule.
// Input holds the original value; Err holds the database cause when a lookup
// was attempted.
type UnrecognizedTimeZoneError struct {
	Input any
	Err   error
}

func (e *UnrecognizedTimeZoneError) Error() string {
	msg := "timezone: could not recognize time zone " + describeInput(e.Input)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UnrecognizedTimeZoneError) Unwrap() error { return e.Err }

func (e *UnrecognizedTimeZoneError) Is(target error) bool {
	return target == ErrUnrecognizedTimeZone
}

func describeInput(input any) string {
	switch v := input.(type) {
	case nil:
		return "<nil>"
	case string:
		return fmt.Sprintf("%q", v)
	case time.Duration:
		return v.String()
	case *time.Location:
		if v == nil {
			return "<nil location>"
		}
		return fmt.Sprintf("location %q", v.String())
	case TimeZone:
		return v.GoString()
	default:
		return fmt.Sprintf("%T(%v)", input, input)
	}
}
