package domain

import (
	"io"
	"strings"
)

// PDFExtension is the only filename suffix accepted for upload
const PDFExtension = ".pdf"

// Backend names accepted by PDF_BACKEND
const (
	BackendFitz       = "fitz"
	BackendLedongthuc = "ledongthuc"
)

// Upload is a single uploaded file, valid for one request
type Upload struct {
	Filename string
	Size     int64
	Reader   io.Reader
	// RejectEmpty fails a zero-byte upload as a client error instead of
	// handing it to the PDF library.
	RejectEmpty bool
}

// HasPDFName reports whether the declared filename ends with ".pdf".
// The check is a plain, case-sensitive suffix match.
func (u *Upload) HasPDFName() bool {
	return strings.HasSuffix(u.Filename, PDFExtension)
}

// ExtractedText is the result of extracting one document
type ExtractedText struct {
	Text      string   `json:"text"`
	Pages     []string `json:"-"`
	PageCount int      `json:"-"`
	Backend   string   `json:"-"`
}

// ExtractResponse is the success body of POST /extract
type ExtractResponse struct {
	Text string `json:"text"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}
