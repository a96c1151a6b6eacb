// README: Typed errors for the quote flow (validation vs leg resolution).
package quote

import "fmt"

// ValidationError reports a missing required request field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "missing required field: " + e.Field
}

// LegError wraps a resolver failure with the stop pair it belongs to.
// The first leg failure aborts the whole itinerary; no partial quotes.
type LegError struct {
	From string
	To   string
	Err  error
}

func (e *LegError) Error() string {
	return fmt.Sprintf("calculating leg %q -> %q: %v", e.From, e.To, e.Err)
}

func (e *LegError) Unwrap() error { return e.Err }
