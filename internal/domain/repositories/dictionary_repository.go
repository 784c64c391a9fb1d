package repositories

import (
	"context"

	"github.com/clinscribe/transcript-correction/backend/internal/domain/entities"
)

// DictionaryRepository loads the correction dictionary from a tabular source.
// Load is called once at startup; a missing or unreadable source yields an
// empty dictionary and a diagnostic rather than a fatal error.
type DictionaryRepository interface {
	Load(ctx context.Context) (*entities.CorrectionDictionary, error)
}
