package chat

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/healthplus-lab/lab-chatbot-backend/pkg/logging"
)

// Handler handles HTTP requests for chat
type Handler struct {
	svc    *Service
	logger *logging.Logger
}

// NewHandler creates a chat handler.
func NewHandler(svc *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{svc: svc, logger: logger}
}

// ChatRequest is the request body for POST /api/chat.
type ChatRequest struct {
	User    string `json:"user"`
	Message string `json:"message"`
	Lang    string `json:"lang"`
}

// ChatResponse is the response for POST /api/chat.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// HandleChat handles POST /api/chat requests
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode chat request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	reply := h.svc.Reply(r.Context(), req.User, req.Message, req.Lang)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ChatResponse{Reply: reply})
}
