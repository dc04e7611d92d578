package dialogue

import (
	"encoding/json"
	"net/http"
	"strings"

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
	router.Handle("/chat/message",
		middleware.RequireIdentity(http.HandlerFunc(h.handleMessage))).Methods(http.MethodPost)
	router.Handle("/chat/history",
		middleware.RequireIdentity(http.HandlerFunc(h.handleHistory))).Methods(http.MethodGet)
}

func (h *HTTPHandler) handleMessage(w http.ResponseWriter, r *http.Request) {
	if h.maxBody > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	}

	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.WithError(err).Warn("invalid chat payload")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	sess, reply, err := h.service.HandleMessage(r.Context(), middleware.UserID(r.Context()), req.Message)
	if err != nil {
		logger.Log.WithError(err).Error("failed to process chat turn")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := struct {
		Messages []Message `json:"messages"`
		Reply    string    `json:"reply"`
	}{Messages: sess.Messages, Reply: reply}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *HTTPHandler) handleHistory(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.History(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		logger.Log.WithError(err).Error("failed to fetch chat history")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messages)
}
