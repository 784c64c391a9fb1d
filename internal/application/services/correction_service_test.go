package services

import (
	"context"
	"errors"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinscribe/transcript-correction/backend/internal/adapters/oracle"
	"github.com/clinscribe/transcript-correction/backend/internal/correction"
	"github.com/clinscribe/transcript-correction/backend/internal/domain/entities"
)

type stubExtractor struct {
	entities mapset.Set[string]
	err      error
	calls    int
}

func (s *stubExtractor) Extract(ctx context.Context, text string) (mapset.Set[string], error) {
	s.calls++
	return s.entities, s.err
}

func testDictionary() *entities.CorrectionDictionary {
	d := entities.NewCorrectionDictionary()
	d.Add("paracitamol", "Paracetamol")
	d.Add("amoxicilin", "Amoxicillin")
	d.Add("para", "Para")
	d.Add("cetamol", "Cetamol")
	return d
}

func newTestService(extractor *stubExtractor) *CorrectionService {
	english := oracle.FromWords("take", "now", "the", "patient", "was", "seen", "by")
	corrector := correction.NewCorrector(testDictionary(), english, nil, nil, 0)
	return NewCorrectionService(corrector, extractor)
}

func TestCorrectTranscript_FusedDose(t *testing.T) {
	svc := newTestService(&stubExtractor{entities: mapset.NewSet[string]()})

	result := svc.CorrectTranscript(context.Background(), "Take paracitamol500mg now.")

	require.NotNil(t, result)
	assert.Equal(t, "Take paracitamol500mg now.", result.Original)
	assert.Equal(t, "Take Paracetamol 500mg now.", result.Corrected)
}

func TestCorrectTranscript_FuzzyWordWithSeparateDose(t *testing.T) {
	svc := newTestService(&stubExtractor{entities: mapset.NewSet[string]()})

	result := svc.CorrectTranscript(context.Background(), "amoxicilin 250mg")

	assert.Equal(t, "Amoxicillin 250mg", result.Corrected)
}

func TestCorrectTranscript_CollapsesWhitespace(t *testing.T) {
	svc := newTestService(&stubExtractor{entities: mapset.NewSet[string]()})

	result := svc.CorrectTranscript(context.Background(), "take   paracitamol\nnow")

	assert.Equal(t, "take Paracetamol now", result.Corrected)
}

func TestCorrectTranscript_EntitiesProtected(t *testing.T) {
	extractor := &stubExtractor{entities: mapset.NewSet("okafor")}
	svc := newTestService(extractor)

	result := svc.CorrectTranscript(context.Background(), "the patient Okafor was seen")

	assert.Equal(t, "the patient Okafor was seen", result.Corrected)
	assert.Equal(t, 1, extractor.calls)
}

func TestCorrectTranscript_ExtractorFailureIsNonFatal(t *testing.T) {
	svc := newTestService(&stubExtractor{err: errors.New("ner service down")})

	result := svc.CorrectTranscript(context.Background(), "take paracitamol now")

	assert.Equal(t, "take Paracetamol now", result.Corrected)
}

func TestCorrectTranscript_NilExtractor(t *testing.T) {
	corrector := correction.NewCorrector(testDictionary(), nil, nil, nil, 0)
	svc := NewCorrectionService(corrector, nil)

	result := svc.CorrectTranscript(context.Background(), "paracitamol")

	assert.Equal(t, "Paracetamol", result.Corrected)
}

func TestCorrectTranscript_EmptyText(t *testing.T) {
	svc := newTestService(&stubExtractor{entities: mapset.NewSet[string]()})

	result := svc.CorrectTranscript(context.Background(), "")

	assert.Equal(t, "", result.Original)
	assert.Equal(t, "", result.Corrected)
}
