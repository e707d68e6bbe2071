package service

import (
	"bytes"
	"context"
	"fmt"

	"pdf-extract-server/internal/domain"

	"github.com/ledongthuc/pdf"
)

// LedongthucExtractor extracts page text with the pure-Go ledongthuc/pdf reader.
// It needs no native libraries.
type LedongthucExtractor struct {
	logger domain.Logger
}

// NewLedongthucExtractor creates a new pure-Go extractor
func NewLedongthucExtractor(logger domain.Logger) *LedongthucExtractor {
	return &LedongthucExtractor{
		logger: logger,
	}
}

// Name returns the backend name
func (e *LedongthucExtractor) Name() string {
	return domain.BackendLedongthuc
}

// ExtractPages returns the plain text of every page in order. Pages without a
// content stream are reported as empty.
func (e *LedongthucExtractor) ExtractPages(ctx context.Context, data []byte) ([]string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)

	// ledongthuc pages are 1-indexed
	for pageNum := 1; pageNum <= numPages; pageNum++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e.logger.Debug("PDF processing page", "backend", e.Name(), "page", pageNum, "total", numPages)

		page := reader.Page(pageNum)
		if page.V.IsNull() || page.V.Key("Contents").IsNull() {
			pages = append(pages, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d: %w", pageNum, err)
		}
		pages = append(pages, text)
	}

	return pages, nil
}
