package narrative

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pulse-assessments/backend/internal/auth"
	"github.com/pulse-assessments/backend/internal/models"
	"github.com/pulse-assessments/backend/internal/session"
)

type Handler struct {
	sessions *session.Service
	service  *Service
}

func NewHandler(sessions *session.Service, service *Service) *Handler {
	return &Handler{sessions: sessions, service: service}
}

// RegisterRoutes registers the narrative endpoint on the protected subrouter.
func (h *Handler) RegisterRoutes(protected *mux.Router) {
	protected.HandleFunc("/runs/{id}/narrative", h.GetNarrative).Methods("GET")
}

func (h *Handler) GetNarrative(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	resp, err := h.sessions.GetResult(r.Context(), userID, mux.Vars(r)["id"])
	switch {
	case errors.Is(err, session.ErrRunNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Run not found"})
		return
	case errors.Is(err, session.ErrNotOwner):
		writeJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "Run belongs to another user"})
		return
	case errors.Is(err, session.ErrResultNotReady):
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "Run has not reached results"})
		return
	case err != nil:
		log.Printf("[narrative] handler error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load result"})
		return
	}

	summary := h.service.Summarize(r.Context(), resp.Result)
	writeJSON(w, http.StatusOK, summary)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
