package document

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFile_MissingFile(t *testing.T) {
	extractor, err := NewExtractor(context.Background())
	require.NoError(t, err)

	_, _, err = extractor.ExtractFile(context.Background(), "/nonexistent/resume.pdf")
	require.Error(t, err)

	var extraction *ExtractionError
	require.ErrorAs(t, err, &extraction)
	assert.Equal(t, "/nonexistent/resume.pdf", extraction.Path)
	assert.Contains(t, extraction.Error(), "failed to read document")
}

func TestExtractText_CorruptDocument(t *testing.T) {
	extractor, err := NewExtractor(context.Background())
	require.NoError(t, err)

	_, err = extractor.ExtractText(context.Background(), bytes.NewReader([]byte("not a pdf")), "upload.pdf")
	require.Error(t, err)

	var extraction *ExtractionError
	require.ErrorAs(t, err, &extraction)
	assert.Equal(t, "upload.pdf", extraction.Path)
}

func TestExtractionError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &ExtractionError{Message: "failed", Cause: cause}

	assert.ErrorIs(t, err, cause)
}
