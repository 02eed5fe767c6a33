// Package extract turns stored document bytes into plain text.
package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tutorapi/internal/model"
)

// ErrUnsupportedType is returned when no extractor is registered for a type tag.
var ErrUnsupportedType = errors.New("unsupported document type")

// Extractor converts the raw bytes of one document format to text.
type Extractor interface {
	Extract(ctx context.Context, content []byte) (string, error)
}

// ExtractorFunc adapts a plain function to Extractor.
type ExtractorFunc func(ctx context.Context, content []byte) (string, error)

func (f ExtractorFunc) Extract(ctx context.Context, content []byte) (string, error) {
	return f(ctx, content)
}

// Registry dispatches extraction by document type tag.
type Registry struct {
	extractors map[string]Extractor
}

// NewRegistry returns a registry with the pdf, docx, csv and txt extractors.
func NewRegistry() *Registry {
	r := &Registry{extractors: make(map[string]Extractor)}
	r.Register(model.TypePDF, ExtractorFunc(PDF))
	r.Register(model.TypeDOCX, ExtractorFunc(DOCX))
	r.Register(model.TypeCSV, ExtractorFunc(CSV))
	r.Register(model.TypeTXT, ExtractorFunc(Text))
	return r
}

// Register installs e for docType, replacing any previous one.
func (r *Registry) Register(docType string, e Extractor) {
	r.extractors[strings.ToLower(docType)] = e
}

// Extract runs the extractor registered for docType.
func (r *Registry) Extract(ctx context.Context, docType string, content []byte) (string, error) {
	e, ok := r.extractors[strings.ToLower(docType)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, docType)
	}
	return e.Extract(ctx, content)
}

// Text decodes plain text, replacing invalid UTF-8 sequences.
func Text(_ context.Context, content []byte) (string, error) {
	return strings.ToValidUTF8(string(content), "�"), nil
}
