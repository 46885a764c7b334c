package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"healthpulse-backend/internal/models"
)

// PromptMode selects how a conversation is handed to the model.
type PromptMode string

const (
	// PromptModeSession seeds a chat session with all but the last message
	// and sends the last message as the live turn.
	PromptModeSession PromptMode = "session"
	// PromptModeTranscript flattens the conversation into one prompt.
	PromptModeTranscript PromptMode = "transcript"
)

// TranscriptCue is appended to every flattened transcript.
const TranscriptCue = "Health Assistant:"

var (
	ErrEmptyConversation = errors.New("conversation is empty")
	ErrEmptyReply        = errors.New("model returned no text")
)

// GenerationError wraps any failure while asking the model for a reply.
type GenerationError struct {
	Mode PromptMode
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate reply (%s): %v", e.Mode, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Generator is the remote generation capability. Implementations must be
// safe for concurrent use.
type Generator interface {
	// Generate answers a single flattened prompt.
	Generate(ctx context.Context, prompt string) (string, error)
	// Chat answers message after replaying history as prior turns.
	Chat(ctx context.Context, history []models.ChatMessage, message string) (string, error)
}

// ChatRelay turns a conversation into exactly one model call.
type ChatRelay struct {
	gen  Generator
	mode PromptMode
}

func NewChatRelay(gen Generator, mode PromptMode) *ChatRelay {
	return &ChatRelay{gen: gen, mode: mode}
}

func (r *ChatRelay) Mode() PromptMode {
	return r.mode
}

// HandleChat encodes the conversation for the configured mode, calls the
// model once and returns the trimmed reply.
func (r *ChatRelay) HandleChat(ctx context.Context, conversation []models.ChatMessage) (string, error) {
	if len(conversation) == 0 {
		return "", ErrEmptyConversation
	}

	var (
		raw string
		err error
	)
	switch r.mode {
	case PromptModeTranscript:
		raw, err = r.gen.Generate(ctx, BuildTranscript(conversation))
	default:
		last := len(conversation) - 1
		raw, err = r.gen.Chat(ctx, conversation[:last], conversation[last].Content)
	}
	if err != nil {
		return "", &GenerationError{Mode: r.mode, Err: err}
	}

	reply := strings.TrimSpace(raw)
	if reply == "" {
		return "", &GenerationError{Mode: r.mode, Err: ErrEmptyReply}
	}
	return reply, nil
}

// BuildTranscript renders "role: content" lines in order, followed by the
// assistant cue on its own line.
func BuildTranscript(conversation []models.ChatMessage) string {
	var b strings.Builder
	for _, m := range conversation {
		b.WriteString(m.Role)
		b.WriteString(": ")
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	b.WriteString(TranscriptCue)
	return b.String()
}

// ParsePromptMode reports whether s names a known mode.
func ParsePromptMode(s string) (PromptMode, bool) {
	switch PromptMode(strings.ToLower(strings.TrimSpace(s))) {
	case PromptModeSession:
		return PromptModeSession, true
	case PromptModeTranscript:
		return PromptModeTranscript, true
	}
	return PromptModeSession, false
}
