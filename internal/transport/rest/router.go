package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"formforge/internal/service"
	"formforge/internal/storage"
	"formforge/internal/transport/rest/handler"
)

// Container holds all dependencies for the router
type Container struct {
	FormService     *service.FormService
	ResponseService *service.ResponseService
	Uploads         *storage.Disk
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	formHandler := handler.NewFormHandler(c.FormService)
	questionHandler := handler.NewQuestionHandler(c.FormService)
	responseHandler := handler.NewResponseHandler(c.ResponseService)
	uploadHandler := handler.NewUploadHandler(c.Uploads)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Forms
	api.HandleFunc("/forms", formHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/forms", formHandler.Create).Methods("POST", "OPTIONS")
	api.HandleFunc("/forms/{id}", formHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/forms/{id}", formHandler.Update).Methods("PUT", "OPTIONS")
	api.HandleFunc("/forms/{id}", formHandler.Delete).Methods("DELETE", "OPTIONS")
	api.HandleFunc("/forms/{id}/validate", formHandler.Validate).Methods("POST", "OPTIONS")
	api.HandleFunc("/forms/{id}/view", formHandler.View).Methods("GET", "OPTIONS")

	// Editor transitions
	api.HandleFunc("/forms/{id}/questions", questionHandler.Add).Methods("POST", "OPTIONS")
	api.HandleFunc("/forms/{id}/questions/reorder", questionHandler.Reorder).Methods("POST", "OPTIONS")
	api.HandleFunc("/forms/{id}/questions/{qid}", questionHandler.PatchFields).Methods("PATCH", "OPTIONS")
	api.HandleFunc("/forms/{id}/questions/{qid}", questionHandler.Remove).Methods("DELETE", "OPTIONS")
	api.HandleFunc("/forms/{id}/questions/{qid}/settings", questionHandler.PatchSettings).Methods("PATCH", "OPTIONS")
	api.HandleFunc("/forms/{id}/questions/{qid}/type", questionHandler.ChangeType).Methods("PUT", "OPTIONS")
	api.HandleFunc("/forms/{id}/questions/{qid}/entries", questionHandler.EntryOp).Methods("POST", "OPTIONS")

	// Responses
	api.HandleFunc("/responses", responseHandler.Submit).Methods("POST", "OPTIONS")
	api.HandleFunc("/responses/form/{id}", responseHandler.ListByForm).Methods("GET", "OPTIONS")

	// Uploads
	api.HandleFunc("/upload", uploadHandler.Upload).Methods("POST", "OPTIONS")
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(c.Uploads.Dir))))

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
