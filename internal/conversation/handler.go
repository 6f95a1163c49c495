package conversation

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/nztours/travel-ai-platform/pkg/logging"
)

// Handler wires HTTP requests to the conversation service.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a conversation handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if service == nil {
		panic("conversation: service cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// MessageRequest is the body of POST /chat/message.
type MessageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// MessageResponse is the reply to POST /chat/message. Rejected input comes
// back with the rejection reason as the text so clients can display it
// directly.
type MessageResponse struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
	Intent    string `json:"intent,omitempty"`
	Rejected  bool   `json:"rejected,omitempty"`
}

// Message handles POST /chat/message.
func (h *Handler) Message(w http.ResponseWriter, r *http.Request) {
	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode message request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	reply, err := h.service.ProcessMessage(r.Context(), sessionID, req.Message)
	if err != nil && reply.Text == "" {
		h.logger.Error("failed to process message", "error", err)
		http.Error(w, "Failed to process message", http.StatusInternalServerError)
		return
	}

	resp := MessageResponse{
		SessionID: sessionID,
		Text:      reply.Text,
		Intent:    string(reply.Intent),
		Rejected:  reply.Rejected,
	}
	if reply.Rejected {
		resp.Text = reply.RejectReason
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// HistoryResponse is the reply to GET /chat/history.
type HistoryResponse struct {
	SessionID string     `json:"session_id"`
	Turns     []ChatTurn `json:"turns"`
}

// History handles GET /chat/history?session_id=...&n=...
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	sessionID := strings.TrimSpace(r.URL.Query().Get("session_id"))
	if sessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}

	n := 0
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "n must be a non-negative integer", http.StatusBadRequest)
			return
		}
		n = parsed
	}

	turns, err := h.service.History(r.Context(), sessionID, n)
	if err != nil {
		h.logger.Error("failed to load history", "session_id", sessionID, "error", err)
		http.Error(w, "Failed to load history", http.StatusInternalServerError)
		return
	}
	if turns == nil {
		turns = []ChatTurn{}
	}
	h.writeJSON(w, http.StatusOK, HistoryResponse{SessionID: sessionID, Turns: turns})
}

// ClearRequest is the body of POST /chat/clear.
type ClearRequest struct {
	SessionID string `json:"session_id"`
}

// Clear handles POST /chat/clear.
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	var req ClearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode clear request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.SessionID) == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}

	if err := h.service.ClearHistory(r.Context(), req.SessionID); err != nil {
		h.logger.Error("failed to clear history", "session_id", req.SessionID, "error", err)
		http.Error(w, "Failed to clear history", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// SearchResponse is the reply to GET /search.
type SearchResponse struct {
	Query   string           `json:"query"`
	Results []ScoredDocument `json:"results"`
}

// Search handles GET /search?q=...&k=... It queries the knowledge index
// directly, without classification or generation.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		http.Error(w, "q is required", http.StatusBadRequest)
		return
	}

	topK := 0
	if raw := r.URL.Query().Get("k"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "k must be a positive integer", http.StatusBadRequest)
			return
		}
		topK = parsed
	}

	docs, err := h.service.Search(r.Context(), query, topK)
	if err != nil {
		var rejected *InputRejectedError
		if errors.As(err, &rejected) {
			http.Error(w, rejected.Reason, http.StatusBadRequest)
			return
		}
		h.logger.Error("search failed", "error", err)
		http.Error(w, "Search failed", http.StatusInternalServerError)
		return
	}
	if docs == nil {
		docs = []ScoredDocument{}
	}
	h.writeJSON(w, http.StatusOK, SearchResponse{Query: query, Results: docs})
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", "error", err)
	}
}
