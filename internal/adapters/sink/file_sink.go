package sink

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"sync"

	"github.com/clinscribe/transcript-correction/backend/internal/domain/providers"
	apperrors "github.com/clinscribe/transcript-correction/backend/pkg/errors"
)

// FileSink records unknown words as a JSON array on disk. It is the fallback
// when Redis is not configured. A mutex serialises the read-modify-write
// cycle within the process.
type FileSink struct {
	mu   sync.Mutex
	path string
}

// NewFileSink creates a file-backed unknown word sink.
func NewFileSink(path string) providers.UnknownWordSink {
	return &FileSink{path: path}
}

// RecordIfAbsent appends the lowercased word to the file unless it is already
// present.
func (s *FileSink) RecordIfAbsent(ctx context.Context, word string) error {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	words, err := s.read()
	if err != nil {
		return err
	}

	for _, existing := range words {
		if existing == word {
			return nil
		}
	}

	words = append(words, word)
	payload, err := json.MarshalIndent(words, "", "  ")
	if err != nil {
		return apperrors.NewInternalError("failed to encode unknown words", err)
	}
	if err := os.WriteFile(s.path, payload, 0644); err != nil {
		return apperrors.NewInternalError("failed to write unknown words file", err)
	}
	return nil
}

func (s *FileSink) read() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, apperrors.NewInternalError("failed to read unknown words file", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, apperrors.NewInternalError("failed to decode unknown words file", err)
	}
	return words, nil
}
