package service

import (
	"context"
	"fmt"

	"pdf-extract-server/internal/domain"

	"github.com/gen2brain/go-fitz"
)

// FitzExtractor extracts page text with MuPDF through go-fitz
type FitzExtractor struct {
	logger domain.Logger
}

// NewFitzExtractor creates a new MuPDF-backed extractor
func NewFitzExtractor(logger domain.Logger) *FitzExtractor {
	return &FitzExtractor{
		logger: logger,
	}
}

// Name returns the backend name
func (e *FitzExtractor) Name() string {
	return domain.BackendFitz
}

// ExtractPages opens the PDF from memory and returns the text of every page in order.
func (e *FitzExtractor) ExtractPages(ctx context.Context, data []byte) ([]string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	pages := make([]string, 0, numPages)

	for pageNum := 0; pageNum < numPages; pageNum++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e.logger.Debug("PDF processing page", "backend", e.Name(), "page", pageNum+1, "total", numPages)

		text, err := doc.Text(pageNum)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d: %w", pageNum+1, err)
		}
		pages = append(pages, text)
	}

	return pages, nil
}
