package llm

import "fmt"

// OracleError represents a failed call to the text-generation oracle,
// including exhausted retries and blocked or empty responses.
type OracleError struct {
	Message string
	Cause   error
}

func (e *OracleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("oracle call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("oracle call failed: %s", e.Message)
}

func (e *OracleError) Unwrap() error {
	return e.Cause
}
