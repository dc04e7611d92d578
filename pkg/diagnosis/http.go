package diagnosis

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/symptor-ai/symptor/pkg/common/logger"
	"github.com/symptor-ai/symptor/pkg/gateway/middleware"
)

type HTTPHandler struct {
	service *Service
	maxBody int64
}

func NewHTTPHandler(service *Service, maxBody int64) *HTTPHandler {
	return &HTTPHandler{service: service, maxBody: maxBody}
}

func (h *HTTPHandler) Register(router *mux.Router) {
	router.HandleFunc("/diagnosis", h.handleDiagnose).Methods(http.MethodPost)
	router.HandleFunc("/symptoms", h.handleSymptoms).Methods(http.MethodGet)
	router.Handle("/diagnosis/history",
		middleware.RequireIdentity(http.HandlerFunc(h.handleHistory))).Methods(http.MethodGet)
}

func (h *HTTPHandler) handleDiagnose(w http.ResponseWriter, r *http.Request) {
	if h.maxBody > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	}

	var req struct {
		Symptoms []string `json:"symptoms"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.WithError(err).Warn("invalid diagnosis payload")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Diagnose(r.Context(), middleware.UserID(r.Context()), req.Symptoms)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logger.Log.WithError(err).Error("failed to run diagnosis")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (h *HTTPHandler) handleSymptoms(w http.ResponseWriter, r *http.Request) {
	symptoms, err := h.service.Symptoms(r.Context())
	if err != nil {
		logger.Log.WithError(err).Error("failed to list symptoms")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(symptoms)
}

func (h *HTTPHandler) handleHistory(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.History(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		logger.Log.WithError(err).Error("failed to fetch diagnosis history")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}
