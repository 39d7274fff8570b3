package handler

import (
	"net/http"

	"mdshare/internal/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	// Health check endpoint (no auth required)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"mdshare"}`))
	}).Methods("GET")

	documentHandler := NewDocumentHandler(container.DocumentService, container.Logger)
	authMiddleware := NewAuthMiddleware(container.IdentityResolver, container.Logger, container.Config.IsOffline())

	// API prefix
	api := router.PathPrefix("/api").Subrouter()

	// Public read endpoint (no auth required)
	api.HandleFunc("/documents/{slug}", documentHandler.GetPublicDocument).Methods("GET")

	// Owner endpoints (require authentication)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(authMiddleware.Middleware)

	protected.HandleFunc("/docs", documentHandler.ListDocuments).Methods("GET")
	protected.HandleFunc("/docs", documentHandler.CreateDocument).Methods("POST")
	protected.HandleFunc("/docs/{slug}", documentHandler.GetDocument).Methods("GET")
	protected.HandleFunc("/docs/{slug}", documentHandler.UpdateDocument).Methods("PUT")
	protected.HandleFunc("/docs/{slug}", documentHandler.DeleteDocument).Methods("DELETE")

	c := cors.New(cors.Options{
		AllowedOrigins: container.Config.GetAllowedOrigins(),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			localUserHeader,
		},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
