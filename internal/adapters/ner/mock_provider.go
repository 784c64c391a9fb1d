package ner

import (
	"context"
	"strings"
	"unicode"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/clinscribe/transcript-correction/backend/internal/domain/providers"
)

// MockProvider is a heuristic entity extractor for local development and
// tests. It treats capitalised words that are not sentence-initial as likely
// proper nouns, which is a rough stand-in for a real NER model.
type MockProvider struct{}

// NewMockProvider creates a heuristic entity extractor.
func NewMockProvider() providers.EntityExtractor {
	return &MockProvider{}
}

// Extract returns the lowercased capitalised words of the text, skipping the
// first word of each sentence.
func (p *MockProvider) Extract(ctx context.Context, text string) (mapset.Set[string], error) {
	entities := mapset.NewSet[string]()

	sentenceStart := true
	for _, word := range strings.Fields(text) {
		trimmed := strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if trimmed == "" {
			continue
		}

		first := []rune(trimmed)[0]
		if !sentenceStart && unicode.IsUpper(first) {
			entities.Add(strings.ToLower(trimmed))
		}

		sentenceStart = strings.HasSuffix(word, ".") || strings.HasSuffix(word, "!") || strings.HasSuffix(word, "?")
	}

	return entities, nil
}
