package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/clinscribe/transcript-correction/backend/internal/domain/entities"
	"github.com/clinscribe/transcript-correction/backend/internal/infrastructure/observability"
)

const maxTranscriptRunes = 100000

// CorrectionService defines the correction operations used by the handler.
type CorrectionService interface {
	CorrectTranscript(ctx context.Context, text string) *entities.CorrectionResult
}

// CorrectionHandler handles transcript correction requests.
type CorrectionHandler struct {
	service CorrectionService
}

// NewCorrectionHandler creates a new correction handler.
func NewCorrectionHandler(service CorrectionService) *CorrectionHandler {
	return &CorrectionHandler{service: service}
}

type correctionRequest struct {
	Text string `json:"text"`
}

// CorrectTranscript handles POST /api/correct
func (h *CorrectionHandler) CorrectTranscript(w http.ResponseWriter, r *http.Request) {
	logger := observability.LoggerFromContext(r.Context())

	var payload correctionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Debug().Err(err).Msg("rejected malformed correction request")
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if strings.TrimSpace(payload.Text) == "" {
		respondWithError(w, http.StatusBadRequest, "text is required")
		return
	}
	if utf8.RuneCountInString(payload.Text) > maxTranscriptRunes {
		respondWithError(w, http.StatusBadRequest, "text is too long")
		return
	}

	result := h.service.CorrectTranscript(r.Context(), payload.Text)
	respondWithJSON(w, http.StatusOK, result)
}

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}
