package domain

import "errors"

// Domain errors. The text of the upload errors is returned to clients verbatim.
var (
	ErrNoFile         = errors.New("No file uploaded")
	ErrNotPDF         = errors.New("Only PDF files allowed")
	ErrEmptyUpload    = errors.New("Empty file buffer received")
	ErrUnknownBackend = errors.New("unknown pdf backend")
)
