package rest

import (
	"encoding/json"
	"net/http"

	"github.com/fortuna/scorebook/internal/engine"
	"github.com/fortuna/scorebook/internal/service"
	"github.com/fortuna/scorebook/internal/store"
	"github.com/fortuna/scorebook/internal/store/repository"
	"github.com/gorilla/mux"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	db            *store.Database
	generationSvc *service.GenerationService
	teamRepo      *repository.TeamRepository
	onGenerated   func(*engine.Output)
}

// NewHandler creates a new handler
func NewHandler(db *store.Database, generationSvc *service.GenerationService) *Handler {
	return &Handler{
		db:            db,
		generationSvc: generationSvc,
		teamRepo:      repository.NewTeamRepository(db),
	}
}

// OnGenerated registers a callback invoked after each successful generation
// run, e.g. to broadcast the refresh to websocket clients.
func (s *Server) OnGenerated(fn func(*engine.Output)) {
	s.handler.onGenerated = fn
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "scorebook",
		"version": "1.0.0",
	})
}

// GetDocument returns a handler serving one named season document as stored
func (h *Handler) GetDocument(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := h.generationSvc.Document(r.Context(), name)
		if err != nil {
			respondError(w, http.StatusNotFound, "Document not available", err)
			return
		}
		respondRaw(w, http.StatusOK, payload)
	}
}

// GetBoxscore returns one game's boxscore from the boxscores document
func (h *Handler) GetBoxscore(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := vars["gameID"]

	payload, err := h.generationSvc.Document(r.Context(), "boxscores")
	if err != nil {
		respondError(w, http.StatusNotFound, "Boxscores not available", err)
		return
	}

	var games map[string]json.RawMessage
	if err := json.Unmarshal(payload, &games); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to decode boxscores", err)
		return
	}

	game, ok := games[gameID]
	if !ok {
		respondError(w, http.StatusNotFound, "Boxscore not found", nil)
		return
	}

	respondRaw(w, http.StatusOK, game)
}

// GetPlayer returns one player's combined summary
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	playerID := vars["playerID"]

	payload, err := h.generationSvc.Document(r.Context(), "players_combined")
	if err != nil {
		respondError(w, http.StatusNotFound, "Players not available", err)
		return
	}

	var players []json.RawMessage
	if err := json.Unmarshal(payload, &players); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to decode players", err)
		return
	}

	for _, raw := range players {
		var ident struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(raw, &ident); err != nil {
			continue
		}
		if ident.ID == playerID {
			respondRaw(w, http.StatusOK, raw)
			return
		}
	}

	respondError(w, http.StatusNotFound, "Player not found", nil)
}

// GetTeams returns all teams
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamRepo.GetAll(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch teams", err)
		return
	}

	respondJSON(w, http.StatusOK, teams)
}

// GetTeamStats returns one team's stats document
func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	teamID := vars["teamID"]

	payload, err := h.generationSvc.Document(r.Context(), "teams")
	if err != nil {
		respondError(w, http.StatusNotFound, "Team stats not available", err)
		return
	}

	var docs []json.RawMessage
	if err := json.Unmarshal(payload, &docs); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to decode team stats", err)
		return
	}

	for _, raw := range docs {
		var ident struct {
			Team string `json:"team"`
		}
		if err := json.Unmarshal(raw, &ident); err != nil {
			continue
		}
		if ident.Team == teamID {
			respondRaw(w, http.StatusOK, raw)
			return
		}
	}

	respondError(w, http.StatusNotFound, "Team not found", nil)
}

// Generate triggers a full stats regeneration
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	out, err := h.generationSvc.Generate(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Generation failed", err)
		return
	}

	if h.onGenerated != nil {
		h.onGenerated(out)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":   "Generation complete",
		"documents": service.DocumentNames,
		"games":     len(out.Boxscores),
		"players":   len(out.Players),
	})
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondRaw writes an already-encoded JSON payload
func respondRaw(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}
