package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fortuna/scorebook/internal/service"
	"github.com/fortuna/scorebook/internal/store"
	"github.com/gorilla/mux"
)

// Server represents the REST API server
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server
func NewServer(port string, db *store.Database, generationSvc *service.GenerationService) *Server {
	handler := NewHandler(db, generationSvc)

	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	// Season documents
	api.HandleFunc("/stats/batting", handler.GetDocument("batting")).Methods("GET")
	api.HandleFunc("/stats/pitching", handler.GetDocument("pitching")).Methods("GET")
	api.HandleFunc("/stats/fielding", handler.GetDocument("fielding")).Methods("GET")
	api.HandleFunc("/standings", handler.GetDocument("standings")).Methods("GET")
	api.HandleFunc("/schedule", handler.GetDocument("schedule")).Methods("GET")
	api.HandleFunc("/players", handler.GetDocument("players_combined")).Methods("GET")

	// Per-entity views
	api.HandleFunc("/boxscores/{gameID}", handler.GetBoxscore).Methods("GET")
	api.HandleFunc("/players/{playerID}", handler.GetPlayer).Methods("GET")
	api.HandleFunc("/teams", handler.GetTeams).Methods("GET")
	api.HandleFunc("/teams/{teamID}/stats", handler.GetTeamStats).Methods("GET")

	// Regeneration
	api.HandleFunc("/generate", handler.Generate).Methods("POST")

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
