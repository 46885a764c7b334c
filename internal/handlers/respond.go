package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"healthpulse-backend/internal/models"
	"healthpulse-backend/internal/services"
)

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(message string) models.ErrorResponse {
	return models.ErrorResponse{Error: message}
}

// handleRelayError logs the real cause and answers with an opaque body.
func handleRelayError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := r.Header.Get("X-Request-ID")

	switch {
	case errors.Is(err, services.ErrEmptyConversation):
		writeJSON(w, http.StatusBadRequest, errorResp(msgMessagesRequired))
	default:
		log.Printf("🔥 healthChat failed [request_id=%s]: %v", requestID, err)
		writeJSON(w, http.StatusInternalServerError, errorResp(msgInternalError))
	}
}
