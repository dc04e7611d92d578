package recommendation

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/symptor-ai/symptor/pkg/common/logger"
	"github.com/symptor-ai/symptor/pkg/common/models"
)

type HTTPHandler struct {
	service *Service
	maxBody int64
}

func NewHTTPHandler(service *Service, maxBody int64) *HTTPHandler {
	return &HTTPHandler{service: service, maxBody: maxBody}
}

func (h *HTTPHandler) Register(router *mux.Router) {
	router.HandleFunc("/recommendations", h.handleList).Methods(http.MethodGet)
	router.HandleFunc("/recommendations/match", h.handleMatch).Methods(http.MethodPost)
}

func (h *HTTPHandler) handleList(w http.ResponseWriter, r *http.Request) {
	recs, err := h.service.List(r.Context())
	if err != nil {
		logger.Log.WithError(err).Error("failed to list recommendations")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(recs)
}

func (h *HTTPHandler) handleMatch(w http.ResponseWriter, r *http.Request) {
	if h.maxBody > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	}

	var req struct {
		Symptoms []string        `json:"symptoms"`
		Severity models.Severity `json:"severity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.WithError(err).Warn("invalid recommendation payload")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Symptoms == nil {
		http.Error(w, "symptoms array is required", http.StatusBadRequest)
		return
	}

	result, err := h.service.Match(r.Context(), req.Symptoms, req.Severity)
	if err != nil {
		logger.Log.WithError(err).Error("failed to match recommendations")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
