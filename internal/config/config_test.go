package config

import (
	"os"
	"strings"
	"testing"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				t.Setenv(tc.key, tc.envValue)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "TEST_INT_1", "42", 10, 42},
		{"uses default for empty", "TEST_INT_2", "", 10, 10},
		{"uses default for non-numeric", "TEST_INT_3", "abc", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				t.Setenv(tc.key, tc.envValue)
			}

			result := getEnvAsIntOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestRequireEnv_Missing(t *testing.T) {
	os.Unsetenv("NONEXISTENT_REQUIRED_VAR")
	if _, err := requireEnv("NONEXISTENT_REQUIRED_VAR"); err == nil {
		t.Error("Expected error for missing required env var")
	}
}

func TestRequireEnv_ReturnsValue(t *testing.T) {
	t.Setenv("TEST_REQUIRED", "value123")

	result, err := requireEnv("TEST_REQUIRED")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result != "value123" {
		t.Errorf("Expected 'value123', got %q", result)
	}
}

func TestLoad_PanicsWithoutAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when GEMINI_API_KEY is unset")
		}
	}()

	Load()
}

func TestRead_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	for _, key := range []string{"PORT", "GEMINI_MODEL", "PROMPT_MODE", "CORS_ORIGIN", "CHAT_RATE_LIMIT", "REDIS_URL"} {
		t.Setenv(key, "")
	}

	cfg, err := Read()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Port != "3000" {
		t.Errorf("Expected port 3000, got %q", cfg.Port)
	}
	if cfg.GeminiModel != "gemini-2.0-flash" {
		t.Errorf("Expected default model, got %q", cfg.GeminiModel)
	}
	if cfg.PromptMode != "session" {
		t.Errorf("Expected session prompt mode, got %q", cfg.PromptMode)
	}
	if cfg.CORSOrigin != "*" {
		t.Errorf("Expected CORS origin '*', got %q", cfg.CORSOrigin)
	}
	if cfg.ChatRateLimit != 30 {
		t.Errorf("Expected rate limit 30, got %d", cfg.ChatRateLimit)
	}
	if cfg.RedisURL != "" {
		t.Errorf("Expected empty redis URL, got %q", cfg.RedisURL)
	}
}

func TestRead_NonPositiveRateLimitFallsBack(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("CHAT_RATE_LIMIT", "-5")

	cfg, err := Read()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.ChatRateLimit != 30 {
		t.Errorf("Expected rate limit 30, got %d", cfg.ChatRateLimit)
	}
}

func TestRead_DomainOverrides(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		wantMode  string
		wantLimit int
		wantModel string
	}{
		{"transcript mode", map[string]string{"PROMPT_MODE": "transcript"}, "transcript", 30, "gemini-2.0-flash"},
		{"custom rate limit", map[string]string{"CHAT_RATE_LIMIT": "120"}, "session", 120, "gemini-2.0-flash"},
		{"non-numeric rate limit", map[string]string{"CHAT_RATE_LIMIT": "lots"}, "session", 30, "gemini-2.0-flash"},
		{"zero rate limit", map[string]string{"CHAT_RATE_LIMIT": "0"}, "session", 30, "gemini-2.0-flash"},
		{"model override", map[string]string{"GEMINI_MODEL": "gemini-1.5-pro"}, "session", 30, "gemini-1.5-pro"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("GEMINI_API_KEY", "test-key")
			for _, key := range []string{"PROMPT_MODE", "CHAT_RATE_LIMIT", "GEMINI_MODEL"} {
				t.Setenv(key, "")
			}
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := Read()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if cfg.PromptMode != tc.wantMode {
				t.Errorf("Expected prompt mode %q, got %q", tc.wantMode, cfg.PromptMode)
			}
			if cfg.ChatRateLimit != tc.wantLimit {
				t.Errorf("Expected rate limit %d, got %d", tc.wantLimit, cfg.ChatRateLimit)
			}
			if cfg.GeminiModel != tc.wantModel {
				t.Errorf("Expected model %q, got %q", tc.wantModel, cfg.GeminiModel)
			}
		})
	}
}

func TestRead_MissingAPIKeyNamesVariable(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := Read()
	if err == nil {
		t.Fatal("Expected error when GEMINI_API_KEY is unset")
	}
	if !strings.Contains(err.Error(), "GEMINI_API_KEY") {
		t.Errorf("Expected error to name GEMINI_API_KEY, got %q", err.Error())
	}
}
