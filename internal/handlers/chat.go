package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"healthpulse-backend/internal/models"
)

const (
	maxChatBodyBytes = 1 << 20

	msgInvalidBody      = "Invalid request body"
	msgMessagesRequired = "Messages are required"
	msgInternalError    = "Internal server error"
)

type chatRelay interface {
	HandleChat(ctx context.Context, conversation []models.ChatMessage) (string, error)
}

type ChatHandler struct {
	relay chatRelay
}

func NewChatHandler(relay chatRelay) *ChatHandler {
	return &ChatHandler{relay: relay}
}

func (h *ChatHandler) HealthChat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxChatBodyBytes)

	req, err := decodeChatRequest(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp(msgInvalidBody))
		return
	}

	conversation, msg := validateConversation(req.Messages)
	if msg != "" {
		writeJSON(w, http.StatusBadRequest, errorResp(msg))
		return
	}

	// A client disconnect must not abort the remote call.
	reply, err := h.relay.HandleChat(context.WithoutCancel(r.Context()), conversation)
	if err != nil {
		handleRelayError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Reply: reply})
}

// decodeChatRequest reads exactly one JSON object; trailing data is an error.
func decodeChatRequest(body io.Reader) (models.ChatRequest, error) {
	var req models.ChatRequest
	dec := json.NewDecoder(body)
	if err := dec.Decode(&req); err != nil {
		return req, err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return req, fmt.Errorf("unexpected data after request body")
	}
	return req, nil
}

// validateConversation returns the normalized conversation, or a client
// facing message describing the first problem found.
func validateConversation(messages []models.ChatMessage) ([]models.ChatMessage, string) {
	if len(messages) == 0 {
		return nil, msgMessagesRequired
	}

	conversation := make([]models.ChatMessage, len(messages))
	for i, m := range messages {
		role := strings.ToLower(strings.TrimSpace(m.Role))
		switch role {
		case models.RoleUser, models.RoleAssistant, models.RoleModel:
		default:
			return nil, fmt.Sprintf("messages[%d].role must be one of user, assistant, model", i)
		}
		if strings.TrimSpace(m.Content) == "" {
			return nil, fmt.Sprintf("messages[%d].content is required", i)
		}
		conversation[i] = models.ChatMessage{Role: role, Content: m.Content}
	}
	return conversation, ""
}
