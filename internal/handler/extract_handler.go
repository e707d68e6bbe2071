// Package handler provides HTTP handlers for the API.
package handler

import (
	"net/http"

	"pdf-extract-server/internal/domain"
	apperrors "pdf-extract-server/pkg/errors"
)

const uploadField = "file"

// ExtractHandler handles PDF text extraction requests
type ExtractHandler struct {
	extractionService domain.ExtractionService
	logger            domain.Logger
	maxMemory         int64
	debug             bool
}

// NewExtractHandler creates a new extract handler. maxMemory is the part of a
// multipart body held in memory; the rest spills to temporary files.
func NewExtractHandler(extractionService domain.ExtractionService, logger domain.Logger, maxMemory int64, debug bool) *ExtractHandler {
	return &ExtractHandler{
		extractionService: extractionService,
		logger:            logger,
		maxMemory:         maxMemory,
		debug:             debug,
	}
}

// Extract handles POST /extract. Every upload with a .pdf name goes to the
// PDF library, empty ones included.
func (h *ExtractHandler) Extract(w http.ResponseWriter, r *http.Request) {
	h.extract(w, r, false)
}

// ExtractAPI handles POST /api/extract, which rejects empty uploads with 400.
func (h *ExtractHandler) ExtractAPI(w http.ResponseWriter, r *http.Request) {
	h.extract(w, r, true)
}

func (h *ExtractHandler) extract(w http.ResponseWriter, r *http.Request, rejectEmpty bool) {
	// A parse failure leaves no form; FormFile then reports the file as missing.
	_ = r.ParseMultipartForm(h.maxMemory)
	if r.MultipartForm != nil {
		defer func() { _ = r.MultipartForm.RemoveAll() }()
	}

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		h.logger.Debug("Upload rejected", "reason", err.Error())
		writeError(w, http.StatusBadRequest, domain.ErrNoFile.Error())
		return
	}
	defer file.Close()

	upload := &domain.Upload{
		Filename:    header.Filename,
		Size:        header.Size,
		Reader:      file,
		RejectEmpty: rejectEmpty,
	}

	result, err := h.extractionService.Extract(r.Context(), upload)
	if err != nil {
		h.writeExtractError(w, r, upload, err)
		return
	}

	writeJSON(w, http.StatusOK, domain.ExtractResponse{Text: result.Text})
}

func (h *ExtractHandler) writeExtractError(w http.ResponseWriter, r *http.Request, upload *domain.Upload, err error) {
	status := apperrors.GetStatusCode(err)
	message := apperrors.PublicMessage(err)
	if message == "" {
		message = http.StatusText(status)
	}

	requestID, _ := GetRequestIDFromContext(r)
	fields := []interface{}{"filename", upload.Filename, "size", upload.Size, "request_id", requestID}

	switch {
	case status >= http.StatusInternalServerError:
		h.logger.Error("PDF extraction failed", err, fields...)
	case h.debug:
		h.logger.Warn("Upload rejected", append(fields, "reason", message)...)
	default:
		h.logger.Debug("Upload rejected", append(fields, "reason", message)...)
	}

	writeError(w, status, message)
}
