package assessments

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/gorilla/mux"
	"github.com/pulse-assessments/backend/internal/models"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes registers the catalog endpoints on the protected subrouter.
func (h *Handler) RegisterRoutes(protected *mux.Router) {
	protected.HandleFunc("/assessments", h.ListTypes).Methods("GET")
	protected.HandleFunc("/assessments/{type}", h.GetType).Methods("GET")
}

func (h *Handler) ListTypes(w http.ResponseWriter, r *http.Request) {
	defs := All()
	infos := make([]models.AssessmentTypeInfo, 0, len(defs))
	for _, def := range defs {
		infos = append(infos, typeInfo(def))
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Type < infos[j].Type })
	writeJSON(w, http.StatusOK, map[string]interface{}{"assessments": infos})
}

func (h *Handler) GetType(w http.ResponseWriter, r *http.Request) {
	def, ok := Get(models.AssessmentType(mux.Vars(r)["type"]))
	if !ok {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Unknown assessment type"})
		return
	}
	writeJSON(w, http.StatusOK, typeInfo(def))
}

func typeInfo(def Definition) models.AssessmentTypeInfo {
	categories := def.Categories()
	sort.Strings(categories)
	return models.AssessmentTypeInfo{
		Type:       def.Type,
		Name:       def.Name,
		Categories: categories,
		Phases:     def.Phases,
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
