package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("Only PDF files allowed", "report.docx")

	if err.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, err.StatusCode)
	}
	if err.Error() != "validation: Only PDF files allowed (report.docx)" {
		t.Fatalf("unexpected error string: %s", err.Error())
	}
	if !IsType(err, ErrorTypeValidation) {
		t.Fatalf("expected validation type")
	}
}

func TestNewProcessingError_UsesCauseText(t *testing.T) {
	cause := stderrors.New("not a PDF file: invalid header")
	err := NewProcessingError("", cause)

	if err.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, err.StatusCode)
	}
	if err.Message != cause.Error() {
		t.Fatalf("expected message %q, got %q", cause.Error(), err.Message)
	}
	if !stderrors.Is(err, cause) {
		t.Fatalf("expected cause to be unwrappable")
	}
}

func TestGetStatusCode_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewValidationError("No file uploaded"))

	if got := GetStatusCode(wrapped); got != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, got)
	}
	if got := PublicMessage(wrapped); got != "No file uploaded" {
		t.Fatalf("expected public message, got %q", got)
	}
	if !IsType(wrapped, ErrorTypeValidation) {
		t.Fatalf("expected wrapped validation error to match type")
	}
}

func TestGetStatusCode_PlainError(t *testing.T) {
	err := stderrors.New("boom")

	if got := GetStatusCode(err); got != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, got)
	}
	if got := PublicMessage(err); got != "boom" {
		t.Fatalf("expected plain message, got %q", got)
	}
	if IsType(err, ErrorTypeProcessing) {
		t.Fatalf("plain error should not match any type")
	}
}
