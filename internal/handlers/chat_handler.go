package handlers

import (
	"encoding/json"
	"net/http"

	"practicego/internal/ai"
	"practicego/internal/service"
)

// ChatHandler handles tutoring chat HTTP requests
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Chat handles POST /api/chat. The client keeps the conversation
// history and replays it with each turn; sessionId scopes the
// corrected-word tracking.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID         string           `json:"sessionId"`
		SystemInstruction string           `json:"systemInstruction,omitempty"`
		History           []ai.ChatMessage `json:"history,omitempty"`
		Message           string           `json:"message"`
		Scenario          bool             `json:"scenario,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}
	if req.Message == "" {
		respondWithError(w, http.StatusBadRequest, "Message must not be empty", "", nil)
		return
	}

	turn, err := h.chatService.SendMessage(r.Context(), service.ChatRequest{
		SessionID:         req.SessionID,
		SystemInstruction: req.SystemInstruction,
		History:           req.History,
		Message:           req.Message,
		Scenario:          req.Scenario,
	})
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "Chat is unavailable right now", "Error running chat turn", err)
		return
	}

	respondWithJSON(w, http.StatusOK, turn)
}
