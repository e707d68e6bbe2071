package handler

import (
	"net/http"

	apperrors "pdf-extract-server/pkg/errors"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(extractHandler *ExtractHandler, middlewares ...mux.MiddlewareFunc) http.Handler {
	router := mux.NewRouter()

	// Every response carries a JSON body, including routing failures.
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appErr := apperrors.NewNotFoundError("Not found")
		writeError(w, appErr.StatusCode, appErr.Message)
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appErr := apperrors.NewMethodNotAllowedError("Method not allowed")
		writeError(w, appErr.StatusCode, appErr.Message)
	})

	router.Use(middlewares...)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "pdf-extract-server"})
	}).Methods(http.MethodGet)

	router.HandleFunc("/extract", extractHandler.Extract).Methods(http.MethodPost)
	// Path used by the browser front-end
	router.HandleFunc("/api/extract", extractHandler.ExtractAPI).Methods(http.MethodPost)

	// Any origin may call the API directly from a browser.
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	})

	return c.Handler(router)
}
