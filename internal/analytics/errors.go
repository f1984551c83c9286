package analytics

import "fmt"

// ParseError indicates the raw holdings batch is structurally invalid
// (not a JSON array). Individually malformed records never cause a
// ParseError; they degrade to zeroed fields with a warning instead.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("raw holdings batch is not a valid record sequence: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// InvalidInputError indicates an out-of-domain savings parameter. Field
// names the offending input so the caller can render an actionable message.
type InvalidInputError struct {
	Field string
	Value float64
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s must be positive, got %g", e.Field, e.Value)
}
