package service

import (
	"fmt"
	"strings"

	"pdf-extract-server/internal/domain"
)

// NewTextExtractor returns the backend registered under name
func NewTextExtractor(name string, logger domain.Logger) (domain.TextExtractor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case domain.BackendFitz:
		return NewFitzExtractor(logger), nil
	case domain.BackendLedongthuc:
		return NewLedongthucExtractor(logger), nil
	default:
		return nil, fmt.Errorf("%w: %q (expected %q or %q)", domain.ErrUnknownBackend, name, domain.BackendFitz, domain.BackendLedongthuc)
	}
}
