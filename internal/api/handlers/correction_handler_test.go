package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinscribe/transcript-correction/backend/internal/domain/entities"
)

type stubCorrectionService struct {
	lastText string
	result   *entities.CorrectionResult
}

func (s *stubCorrectionService) CorrectTranscript(ctx context.Context, text string) *entities.CorrectionResult {
	s.lastText = text
	if s.result != nil {
		return s.result
	}
	return &entities.CorrectionResult{Original: text, Corrected: text}
}

func postCorrect(t *testing.T, handler *CorrectionHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/correct", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.CorrectTranscript(rec, req)
	return rec
}

func TestCorrectTranscript_ReturnsResult(t *testing.T) {
	service := &stubCorrectionService{
		result: &entities.CorrectionResult{
			Original:  "take paracitamol500mg",
			Corrected: "take Paracetamol 500mg",
		},
	}
	handler := NewCorrectionHandler(service)

	rec := postCorrect(t, handler, `{"text": "take paracitamol500mg"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "take paracitamol500mg", service.lastText)

	var payload entities.CorrectionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "take paracitamol500mg", payload.Original)
	assert.Equal(t, "take Paracetamol 500mg", payload.Corrected)
}

func TestCorrectTranscript_InvalidJSON(t *testing.T) {
	handler := NewCorrectionHandler(&stubCorrectionService{})

	rec := postCorrect(t, handler, `{"text": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCorrectTranscript_EmptyText(t *testing.T) {
	handler := NewCorrectionHandler(&stubCorrectionService{})

	rec := postCorrect(t, handler, `{"text": "   "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCorrectTranscript_MissingTextField(t *testing.T) {
	handler := NewCorrectionHandler(&stubCorrectionService{})

	rec := postCorrect(t, handler, `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCorrectTranscript_TextTooLong(t *testing.T) {
	handler := NewCorrectionHandler(&stubCorrectionService{})

	body, err := json.Marshal(map[string]string{"text": strings.Repeat("a", maxTranscriptRunes+1)})
	require.NoError(t, err)

	rec := postCorrect(t, handler, string(body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
