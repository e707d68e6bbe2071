package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"pdf-extract-server/internal/domain"
	apperrors "pdf-extract-server/pkg/errors"
)

// ExtractionService validates an upload, runs it through a TextExtractor and
// joins the page texts.
type ExtractionService struct {
	extractor domain.TextExtractor
	logger    domain.Logger
}

// NewExtractionService creates a new extraction service
func NewExtractionService(extractor domain.TextExtractor, logger domain.Logger) *ExtractionService {
	return &ExtractionService{
		extractor: extractor,
		logger:    logger,
	}
}

// Extract returns the document text or an *apperrors.AppError:
// validation errors for a bad upload, processing errors for everything else.
func (s *ExtractionService) Extract(ctx context.Context, upload *domain.Upload) (*domain.ExtractedText, error) {
	if upload == nil || upload.Reader == nil {
		return nil, apperrors.NewValidationError(domain.ErrNoFile.Error())
	}
	if !upload.HasPDFName() {
		return nil, apperrors.NewValidationError(domain.ErrNotPDF.Error(), upload.Filename)
	}

	data, err := io.ReadAll(upload.Reader)
	if err != nil {
		return nil, apperrors.NewProcessingError("", fmt.Errorf("failed to read upload: %w", err))
	}
	if len(data) == 0 && upload.RejectEmpty {
		return nil, apperrors.NewValidationError(domain.ErrEmptyUpload.Error(), upload.Filename)
	}

	pages, err := s.extractPages(ctx, data)
	if err != nil {
		s.logger.Warn("PDF extraction failed", "filename", upload.Filename, "backend", s.extractor.Name(), "error", err)
		return nil, apperrors.NewProcessingError("", err)
	}

	text := JoinPages(pages)
	s.logger.Debug("PDF extracted",
		"filename", upload.Filename,
		"backend", s.extractor.Name(),
		"pages", len(pages),
		"chars", len(text),
	)

	return &domain.ExtractedText{
		Text:      text,
		Pages:     pages,
		PageCount: len(pages),
		Backend:   s.extractor.Name(),
	}, nil
}

// extractPages reports a backend panic as an error.
func (s *ExtractionService) extractPages(ctx context.Context, data []byte) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("%s backend failed: %v", s.extractor.Name(), r)
		}
	}()
	return s.extractor.ExtractPages(ctx, data)
}

// JoinPages joins page texts with a single newline. Pages that are empty after
// cleaning are skipped and only the joined result is trimmed.
func JoinPages(pages []string) string {
	var sb strings.Builder
	for _, page := range pages {
		page = cleanPageText(page)
		if page == "" {
			continue
		}
		sb.WriteString(page)
		sb.WriteByte('\n')
	}
	return strings.TrimSpace(sb.String())
}

// cleanPageText drops NUL bytes and invalid UTF-8, normalizes line breaks and
// removes trailing line breaks. Other whitespace is kept.
func cleanPageText(text string) string {
	text = strings.ToValidUTF8(text, "")
	text = strings.ReplaceAll(text, "\x00", "")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.TrimRight(text, "\n")
}
