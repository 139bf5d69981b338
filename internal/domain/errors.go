package domain

import "fmt"

// InsufficientSignalError reports that the evidence did not reach the
// minimum message count. Callers distinguish it from other failures to
// decide whether to request more input from the user.
type InsufficientSignalError struct {
	Observed int
	Required int
}

func (e *InsufficientSignalError) Error() string {
	return fmt.Sprintf("insufficient signal: %d messages observed, %d required", e.Observed, e.Required)
}
