package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pdf-extract-server/internal/domain"
)

func TestNewRouter_Health(t *testing.T) {
	router := newTestRouter(&MockExtractionService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestNewRouter_ExtractAlias(t *testing.T) {
	svc := &MockExtractionService{result: &domain.ExtractedText{Text: "hi"}}
	router := newTestRouter(svc)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, newMultipartRequest(t, "/api/extract", "file", "doc.pdf", []byte("x")))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if svc.calls != 1 {
		t.Fatalf("expected the alias to reach the extract handler")
	}
}

func TestNewRouter_JSONRoutingErrors(t *testing.T) {
	router := newTestRouter(&MockExtractionService{})

	tests := []struct {
		method string
		path   string
		status int
		body   string
	}{
		{http.MethodGet, "/extract", http.StatusMethodNotAllowed, `{"error":"Method not allowed"}`},
		{http.MethodGet, "/nope", http.StatusNotFound, `{"error":"Not found"}`},
	}

	for _, tt := range tests {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

		if rr.Code != tt.status {
			t.Fatalf("%s %s: expected status %d, got %d", tt.method, tt.path, tt.status, rr.Code)
		}
		if strings.TrimSpace(rr.Body.String()) != tt.body {
			t.Fatalf("%s %s: unexpected response body: %s", tt.method, tt.path, rr.Body.String())
		}
	}
}

func TestNewRouter_CORSAllowsAnyOrigin(t *testing.T) {
	router := newTestRouter(&MockExtractionService{result: &domain.ExtractedText{Text: "hi"}})

	preflight := httptest.NewRequest(http.MethodOptions, "/extract", nil)
	preflight.Header.Set("Origin", "https://somewhere.example")
	preflight.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, preflight)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected preflight to allow any origin, got %q", got)
	}

	req := newMultipartRequest(t, "/extract", "file", "doc.pdf", []byte("x"))
	req.Header.Set("Origin", "http://localhost:1234")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected response to allow any origin, got %q", got)
	}
}
