package document

import "fmt"

// ExtractionError describes a failure to obtain text from an uploaded
// document.
type ExtractionError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("document extraction: %s (%s)", e.Message, e.Path)
	}
	return fmt.Sprintf("document extraction: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
