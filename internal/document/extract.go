// Package document turns uploaded PDF files into the raw inputs the
// pipelines consume: the full text of the document and the hyperlinks
// embedded in its link annotations.
package document

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoparser "github.com/cloudwego/eino/components/document/parser"
)

// Extractor extracts text from PDF documents. It is safe for concurrent
// use; the underlying parser holds no per-call state.
type Extractor struct {
	parser *pdf.PDFParser
}

// NewExtractor builds a PDF text extractor. ToPages is disabled so the
// whole document comes back as one continuous string.
func NewExtractor(ctx context.Context) (*Extractor, error) {
	parser, err := pdf.NewPDFParser(ctx, &pdf.Config{ToPages: false})
	if err != nil {
		return nil, &ExtractionError{Message: "failed to initialize PDF parser", Cause: err}
	}
	return &Extractor{parser: parser}, nil
}

// ExtractFile reads the PDF at path and returns its text plus the
// hyperlinks found in its annotations. Link extraction is best-effort: a
// document whose annotations cannot be read still yields its text with an
// empty link list.
func (e *Extractor) ExtractFile(ctx context.Context, path string) (string, []string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", nil, &ExtractionError{Path: path, Message: "failed to read document", Cause: err}
	}

	text, err := e.ExtractText(ctx, bytes.NewReader(raw), path)
	if err != nil {
		return "", nil, err
	}

	return text, ExtractLinks(raw), nil
}

// ExtractText parses PDF content from reader and returns its full text.
// The uri is diagnostic only (typically the upload's file name or path).
func (e *Extractor) ExtractText(ctx context.Context, reader io.Reader, uri string) (string, error) {
	docs, err := e.parser.Parse(ctx, reader, einoparser.WithURI(uri))
	if err != nil {
		return "", &ExtractionError{Path: uri, Message: "failed to parse document", Cause: err}
	}

	var builder strings.Builder
	for _, doc := range docs {
		builder.WriteString(doc.Content)
	}

	text := builder.String()
	if strings.TrimSpace(text) == "" {
		return "", &ExtractionError{Path: uri, Message: "document has no extractable text"}
	}
	return text, nil
}
