package domain

import (
	"context"
	"time"
)

// TextExtractor is the PDF library boundary. ExtractPages returns one entry
// per page in document order; pages without a text layer yield "".
type TextExtractor interface {
	ExtractPages(ctx context.Context, data []byte) ([]string, error)
	Name() string
}

// ExtractionService turns an upload into extracted text
type ExtractionService interface {
	Extract(ctx context.Context, upload *Upload) (*ExtractedText, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetLogFormat() string
	GetPDFBackend() string
	GetMultipartMaxMemory() int64
	GetShutdownTimeout() time.Duration
	IsDebug() bool
}
