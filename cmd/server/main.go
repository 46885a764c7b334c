package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthpulse-backend/internal/config"
	"healthpulse-backend/internal/database"
	"healthpulse-backend/internal/handlers"
	"healthpulse-backend/internal/middleware"
	"healthpulse-backend/internal/router"
	"healthpulse-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting HealthPulse Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	mode, ok := services.ParsePromptMode(cfg.PromptMode)
	if !ok {
		log.Printf("⚠ Unknown PROMPT_MODE %q, using %s", cfg.PromptMode, mode)
	}

	// ──── Step 2: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	log.Printf("✓ Gemini client initialized (model=%s, prompt_mode=%s)", cfg.GeminiModel, mode)

	// ──── Step 3: Initialize Rate Limiter ────
	var limiter middleware.Limiter
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		defer redisClient.Close()
		limiter = middleware.NewRedisRateLimiter(redisClient, cfg.ChatRateLimit, time.Minute)
		log.Printf("✓ Redis rate limiter ready (%d req/min per IP)", cfg.ChatRateLimit)
	} else {
		memLimiter := middleware.NewRateLimiter(cfg.ChatRateLimit, time.Minute)
		defer memLimiter.Close()
		limiter = memLimiter
		log.Printf("✓ In-memory rate limiter ready (%d req/min per IP)", cfg.ChatRateLimit)
	}

	// ──── Step 4: Start HTTP Server ────
	chatHandler := handlers.NewChatHandler(services.NewChatRelay(geminiService, mode))
	r := router.New(chatHandler, limiter, cfg.CORSOrigin)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Graceful shutdown
	idle := make(chan struct{})
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
		close(idle)
	}()

	log.Printf("✅ HealthPulse Gemini backend running at http://localhost:%s", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
	<-idle
}
