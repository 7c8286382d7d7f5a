package server

import (
	"fmt"
	"net/http"
)

// ErrMissingFile indicates the multipart request carried no file in the
// expected field.
type ErrMissingFile struct {
	Field string
}

func (e *ErrMissingFile) Error() string {
	return fmt.Sprintf("no file provided in field %q", e.Field)
}

// ErrNoFileSelected indicates an upload with an empty filename.
type ErrNoFileSelected struct{}

func (e *ErrNoFileSelected) Error() string {
	return "no file selected"
}

// ErrNotPDF indicates an upload with a non-PDF filename.
type ErrNotPDF struct {
	Filename string
}

func (e *ErrNotPDF) Error() string {
	return fmt.Sprintf("invalid file type for %q: only PDF files are allowed", e.Filename)
}

// ErrUploadTooLarge indicates the upload exceeded the configured size cap.
type ErrUploadTooLarge struct {
	Limit int64
}

func (e *ErrUploadTooLarge) Error() string {
	return fmt.Sprintf("uploaded file exceeds the %d byte limit", e.Limit)
}

// HTTPStatus returns the response status for an upload error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrMissingFile, *ErrNoFileSelected, *ErrNotPDF:
		return http.StatusBadRequest
	case *ErrUploadTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
