package config

import (
	"pdf-extract-server/internal/domain"
	"pdf-extract-server/internal/service"
	"pdf-extract-server/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config            domain.Config
	Logger            domain.Logger
	Extractor         domain.TextExtractor
	ExtractionService domain.ExtractionService
}

// NewContainer creates a new dependency injection container from the environment
func NewContainer() (*Container, error) {
	return NewContainerWithConfig(NewConfig())
}

// NewContainerWithConfig wires the container around cfg. It fails when the
// configured PDF backend is unknown.
func NewContainerWithConfig(cfg domain.Config) (*Container, error) {
	appLogger := logger.NewLogger(cfg.GetLogLevel(), cfg.GetLogFormat())

	extractor, err := service.NewTextExtractor(cfg.GetPDFBackend(), appLogger)
	if err != nil {
		return nil, err
	}

	extractionService := service.NewExtractionService(extractor, appLogger)

	return &Container{
		Config:            cfg,
		Logger:            appLogger,
		Extractor:         extractor,
		ExtractionService: extractionService,
	}, nil
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetExtractionService returns the extraction service instance
func (c *Container) GetExtractionService() domain.ExtractionService {
	return c.ExtractionService
}
