package resume

import "fmt"

// MalformedOutputError indicates the sanitized oracle response was not
// valid JSON. The raw sanitized text is carried for diagnosis.
type MalformedOutputError struct {
	Raw   string
	Cause error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed oracle output: %v", e.Cause)
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Cause
}
