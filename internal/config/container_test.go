package config

import (
	"errors"
	"testing"

	"pdf-extract-server/internal/domain"
)

func TestNewContainerWithConfig_Backends(t *testing.T) {
	for _, backend := range []string{domain.BackendFitz, domain.BackendLedongthuc} {
		t.Run(backend, func(t *testing.T) {
			cfg := &AppConfig{LogLevel: "error", LogFormat: "text", PDFBackend: backend}

			container, err := NewContainerWithConfig(cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if container.Extractor.Name() != backend {
				t.Fatalf("expected backend %s, got %s", backend, container.Extractor.Name())
			}
			if container.GetExtractionService() == nil {
				t.Fatalf("expected extraction service to be wired")
			}
			if container.GetLogger() == nil || container.GetConfig() != cfg {
				t.Fatalf("expected logger and config to be wired")
			}
		})
	}
}

func TestNewContainerWithConfig_UnknownBackend(t *testing.T) {
	cfg := &AppConfig{LogLevel: "error", PDFBackend: "pdfplumber"}

	_, err := NewContainerWithConfig(cfg)
	if !errors.Is(err, domain.ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}
}
