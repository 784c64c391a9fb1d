package services

import (
	"context"
	"strings"
	"sync"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/clinscribe/transcript-correction/backend/internal/correction"
	"github.com/clinscribe/transcript-correction/backend/internal/domain/entities"
	"github.com/clinscribe/transcript-correction/backend/internal/domain/providers"
)

// CorrectionService corrects medical transcripts word by word. It extracts
// named entities once per transcript so person, organisation and place names
// survive correction, then runs every whitespace-separated chunk through the
// word corrector.
type CorrectionService struct {
	corrector *correction.Corrector
	extractor providers.EntityExtractor
}

var (
	correctionMetricsOnce sync.Once
	transcriptCounter     metric.Int64Counter
	correctionDuration    metric.Float64Histogram
)

// NewCorrectionService creates a new correction service.
func NewCorrectionService(corrector *correction.Corrector, extractor providers.EntityExtractor) *CorrectionService {
	return &CorrectionService{
		corrector: corrector,
		extractor: extractor,
	}
}

// CorrectTranscript corrects a whole transcript and returns both the
// original and the corrected text. Runs of whitespace between chunks
// collapse to single spaces in the output.
func (s *CorrectionService) CorrectTranscript(ctx context.Context, text string) *entities.CorrectionResult {
	start := time.Now()

	entitySet := s.extractEntities(ctx, text)

	chunks := strings.Fields(text)
	corrected := make([]string, len(chunks))
	for i, chunk := range chunks {
		corrected[i] = s.corrector.CorrectWord(ctx, chunk, entitySet)
	}

	result := &entities.CorrectionResult{
		Original:  text,
		Corrected: strings.Join(corrected, " "),
	}

	recordCorrectionMetrics(ctx, len(chunks), time.Since(start))
	return result
}

// extractEntities asks the extractor for protected names. Extraction failure
// is not fatal: correction proceeds without entity protection.
func (s *CorrectionService) extractEntities(ctx context.Context, text string) mapset.Set[string] {
	if s.extractor == nil {
		return mapset.NewSet[string]()
	}

	entitySet, err := s.extractor.Extract(ctx, text)
	if err != nil {
		log.Warn().Err(err).Msg("Entity extraction failed, correcting without entity protection")
		return mapset.NewSet[string]()
	}
	if entitySet == nil {
		return mapset.NewSet[string]()
	}
	return entitySet
}

func initCorrectionMetrics() {
	meter := otel.Meter("github.com/clinscribe/transcript-correction/backend/correction")
	if counter, err := meter.Int64Counter(
		"correction.transcript_chunks.count",
		metric.WithDescription("Count of transcript chunks processed by the corrector"),
	); err == nil {
		transcriptCounter = counter
	}
	if histogram, err := meter.Float64Histogram(
		"correction.transcript.duration_ms",
		metric.WithDescription("Time taken to correct a transcript in milliseconds"),
	); err == nil {
		correctionDuration = histogram
	}
}

func recordCorrectionMetrics(ctx context.Context, chunks int, elapsed time.Duration) {
	correctionMetricsOnce.Do(initCorrectionMetrics)
	if transcriptCounter != nil {
		transcriptCounter.Add(ctx, int64(chunks))
	}
	if correctionDuration != nil {
		correctionDuration.Record(ctx, float64(elapsed.Milliseconds()))
	}
}
