// Package healthpulse exposes the chat relay as a Cloud Functions HTTP
// trigger named "healthChat".
package healthpulse

import (
	"context"
	"log"
	"net/http"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"healthpulse-backend/internal/config"
	"healthpulse-backend/internal/handlers"
	"healthpulse-backend/internal/router"
	"healthpulse-backend/internal/services"
)

func init() {
	functions.HTTP("healthChat", HealthChat)
}

var (
	setupOnce sync.Once
	handler   http.Handler
	setupErr  error
)

// HealthChat lazily builds the relay on the first request of an instance
// and reuses it for the instance's lifetime.
func HealthChat(w http.ResponseWriter, r *http.Request) {
	setupOnce.Do(setup)
	if setupErr != nil {
		log.Printf("✗ healthChat unavailable: %v", setupErr)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Internal server error"}`))
		return
	}
	handler.ServeHTTP(w, r)
}

func setup() {
	cfg, err := config.Read()
	if err != nil {
		setupErr = err
		return
	}

	mode, ok := services.ParsePromptMode(cfg.PromptMode)
	if !ok {
		log.Printf("⚠ Unknown PROMPT_MODE %q, using %s", cfg.PromptMode, mode)
	}

	geminiService, err := services.NewGeminiService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		setupErr = err
		return
	}

	chatHandler := handlers.NewChatHandler(services.NewChatRelay(geminiService, mode))
	handler = router.NewFunction(chatHandler, cfg.CORSOrigin)
	log.Printf("✓ healthChat ready (model=%s, prompt_mode=%s)", cfg.GeminiModel, mode)
}
