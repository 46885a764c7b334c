package models

// Accepted message roles. "assistant" and "model" both mean a reply turn.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleModel     = "model"
)

// ChatMessage represents a single turn in a conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the healthChat endpoint.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

// ChatResponse is the reply from the AI chat.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ErrorResponse is the error envelope for every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
