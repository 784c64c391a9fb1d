package dictionary

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/clinscribe/transcript-correction/backend/internal/domain/entities"
	"github.com/clinscribe/transcript-correction/backend/internal/domain/repositories"
	apperrors "github.com/clinscribe/transcript-correction/backend/pkg/errors"
)

// CSVAdapter loads the correction dictionary from a CSV file with an
// "incorrect" and a "correct" column. Row order in the file becomes the
// dictionary's key order.
type CSVAdapter struct {
	path string
}

// NewCSVAdapter creates a CSV-backed dictionary loader.
func NewCSVAdapter(path string) repositories.DictionaryRepository {
	return &CSVAdapter{path: path}
}

// Load reads the CSV file into a dictionary. A missing file is not an error:
// the service starts with an empty dictionary and passes text through
// unchanged until a dictionary is provided.
func (a *CSVAdapter) Load(ctx context.Context) (*entities.CorrectionDictionary, error) {
	dict := entities.NewCorrectionDictionary()

	file, err := os.Open(a.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn().Str("path", a.path).Msg("Correction dictionary file not found, starting with empty dictionary")
			return dict, nil
		}
		return nil, apperrors.NewInternalError("failed to open correction dictionary", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return dict, nil
		}
		return nil, apperrors.NewInternalError("failed to read correction dictionary header", err)
	}

	incorrectCol, correctCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "incorrect":
			incorrectCol = i
		case "correct":
			correctCol = i
		}
	}
	if incorrectCol < 0 || correctCol < 0 {
		return nil, apperrors.NewValidationError("correction dictionary must have incorrect and correct columns")
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.NewInternalError("failed to read correction dictionary row", err)
		}
		if incorrectCol >= len(row) || correctCol >= len(row) {
			continue
		}
		dict.Add(row[incorrectCol], row[correctCol])
	}

	log.Info().Str("path", a.path).Int("entries", dict.Len()).Msg("Loaded correction dictionary from CSV")
	return dict, nil
}
