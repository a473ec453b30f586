package session

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pulse-assessments/backend/internal/auth"
	"github.com/pulse-assessments/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers run endpoints on the protected subrouter.
func (h *Handler) RegisterRoutes(protected *mux.Router) {
	protected.HandleFunc("/runs", h.StartRun).Methods("POST")
	protected.HandleFunc("/runs/{id}", h.GetRun).Methods("GET")
	protected.HandleFunc("/runs/{id}", h.AbandonRun).Methods("DELETE")
	protected.HandleFunc("/runs/{id}/responses", h.SubmitResponse).Methods("POST")
	protected.HandleFunc("/runs/{id}/simulations", h.SubmitSimulation).Methods("POST")
	protected.HandleFunc("/runs/{id}/adaptations", h.SubmitAdaptation).Methods("POST")
	protected.HandleFunc("/runs/{id}/phase", h.AdvancePhase).Methods("POST")
	protected.HandleFunc("/runs/{id}/result", h.GetResult).Methods("GET")
}

// getUserID extracts the authenticated user ID from the request context.
func getUserID(r *http.Request) (int64, bool) {
	return auth.UserIDFromContext(r.Context())
}

func (h *Handler) StartRun(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.StartRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if !models.ValidAssessmentTypes[req.AssessmentType] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid assessment_type"})
		return
	}

	run, err := h.service.StartRun(r.Context(), userID, req.AssessmentType)
	if err != nil {
		h.writeServiceError(w, err, "Failed to start run")
		return
	}
	writeJSON(w, http.StatusCreated, run)
}

func (h *Handler) GetRun(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	run, err := h.service.GetRun(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		h.writeServiceError(w, err, "Failed to get run")
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func (h *Handler) AbandonRun(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	if err := h.service.AbandonRun(r.Context(), userID, mux.Vars(r)["id"]); err != nil {
		h.writeServiceError(w, err, "Failed to abandon run")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.SubmitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.QuestionID == "" || req.Category == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "question_id and category are required"})
		return
	}
	if req.Position < 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "position must be non-negative"})
		return
	}

	if err := h.service.SubmitResponse(r.Context(), userID, mux.Vars(r)["id"], req); err != nil {
		h.writeServiceError(w, err, "Failed to record response")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SubmitSimulation(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.SubmitSimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.QuestionID == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "question_id is required"})
		return
	}
	if req.Position < 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "position must be non-negative"})
		return
	}

	if err := h.service.SubmitSimulation(r.Context(), userID, mux.Vars(r)["id"], req); err != nil {
		h.writeServiceError(w, err, "Failed to record simulation outcome")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SubmitAdaptation(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.SubmitAdaptationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.Original == "" || req.Rewritten == "" || req.TargetContext == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "original, rewritten, and target_context are required"})
		return
	}

	analysis, err := h.service.SubmitAdaptation(r.Context(), userID, mux.Vars(r)["id"], req)
	if err != nil {
		h.writeServiceError(w, err, "Failed to record adaptation")
		return
	}
	writeJSON(w, http.StatusCreated, analysis)
}

func (h *Handler) AdvancePhase(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.AdvancePhaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp, err := h.service.AdvancePhase(r.Context(), userID, mux.Vars(r)["id"], req.Phase)
	if err != nil {
		h.writeServiceError(w, err, "Failed to advance phase")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetResult(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	resp, err := h.service.GetResult(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		h.writeServiceError(w, err, "Failed to get result")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrRunNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Run not found"})
	case errors.Is(err, ErrNotOwner):
		writeJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "Run belongs to another user"})
	case errors.Is(err, ErrRunFinished):
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "Run is no longer in progress"})
	case errors.Is(err, ErrUnknownType):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Unknown assessment type"})
	case errors.Is(err, ErrBadTransition):
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrNotCultural):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrUnknownSimulation):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrResultNotReady):
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "Run has not reached results"})
	default:
		log.Printf("[session] handler error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: fallback})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
