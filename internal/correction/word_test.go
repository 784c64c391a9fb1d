package correction

import (
	"context"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"

	"github.com/clinscribe/transcript-correction/backend/internal/domain/entities"
)

type stubOracle struct {
	words map[string]bool
}

func oracleOf(words ...string) *stubOracle {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return &stubOracle{words: m}
}

func (o *stubOracle) Contains(word string) bool {
	return o.words[word]
}

type stubSink struct {
	recorded []string
}

func (s *stubSink) RecordIfAbsent(_ context.Context, word string) error {
	for _, existing := range s.recorded {
		if existing == word {
			return nil
		}
	}
	s.recorded = append(s.recorded, word)
	return nil
}

func noEntities() mapset.Set[string] {
	return mapset.NewSet[string]()
}

func TestCorrectWord_ExactLookupReplacesCore(t *testing.T) {
	dict := dictFromPairs("paracitamol", "Paracetamol")
	c := NewCorrector(dict, nil, nil, nil, DefaultThreshold)

	got := c.CorrectWord(context.Background(), "paracitamol", noEntities())
	assert.Equal(t, "Paracetamol", got)
}

func TestCorrectWord_PunctuationPreserved(t *testing.T) {
	dict := dictFromPairs("paracitamol", "Paracetamol")
	c := NewCorrector(dict, nil, nil, nil, DefaultThreshold)

	got := c.CorrectWord(context.Background(), "(paracitamol),", noEntities())
	assert.Equal(t, "(Paracetamol),", got)
}

func TestCorrectWord_SelfMappingIsIdempotent(t *testing.T) {
	dict := dictFromPairs("aspirin", "aspirin")
	c := NewCorrector(dict, nil, nil, nil, DefaultThreshold)

	// The mapped value only differs in case from the core: replacing it
	// would be no-op noise, so the original token is kept.
	got := c.CorrectWord(context.Background(), "Aspirin", noEntities())
	assert.Equal(t, "Aspirin", got)
}

func TestCorrectWord_DoseTokenResolved(t *testing.T) {
	dict := dictFromPairs("paracitamol", "Paracetamol")
	c := NewCorrector(dict, nil, nil, nil, DefaultThreshold)

	got := c.CorrectWord(context.Background(), "paracitamol500mg", noEntities())
	assert.Equal(t, "Paracetamol 500mg", got)
}

func TestCorrectWord_DoseTakesPrecedenceOverExactLookup(t *testing.T) {
	// Even with a whole-token dictionary entry present, the dose grammar is
	// consulted first.
	dict := dictFromPairs(
		"paracitamol500mg", "WholeTokenEntry",
		"paracitamol", "Paracetamol",
	)
	c := NewCorrector(dict, nil, nil, nil, DefaultThreshold)

	got := c.CorrectWord(context.Background(), "paracitamol500mg", noEntities())
	assert.Equal(t, "Paracetamol 500mg", got)
}

func TestCorrectWord_DoseMedicationFallsBackToSmartSplit(t *testing.T) {
	dict := dictFromPairs("para", "Para", "cetamol", "Cetamol")
	c := NewCorrector(dict, nil, nil, nil, DefaultThreshold)

	got := c.CorrectWord(context.Background(), "paracetamol500mg", noEntities())
	assert.Equal(t, "Para Cetamol 500mg", got)
}

func TestCorrectWord_UnresolvedDoseKeepsMedication(t *testing.T) {
	dict := dictFromPairs("ibuprofen", "Ibuprofen")
	c := NewCorrector(dict, nil, nil, nil, DefaultThreshold)

	got := c.CorrectWord(context.Background(), "zolpidemex10mg", noEntities())
	assert.Equal(t, "zolpidemex 10mg", got)
}

func TestCorrectWord_NumericGuard(t *testing.T) {
	dict := dictFromPairs("paracitamol", "Paracetamol")
	c := NewCorrector(dict, nil, nil, nil, DefaultThreshold)

	for _, token := range []string{"2023", "250mg", "1,000"} {
		got := c.CorrectWord(context.Background(), token, noEntities())
		assert.Equal(t, token, got)
	}
}

func TestCorrectWord_FuzzyMatchAboveThreshold(t *testing.T) {
	dict := dictFromPairs("amoxicillin", "Amoxicillin")
	c := NewCorrector(dict, nil, nil, nil, DefaultThreshold)

	got := c.CorrectWord(context.Background(), "amoxicilin", noEntities())
	assert.Equal(t, "Amoxicillin", got)
}

func TestCorrectWord_OracleWordsNeverLoggedOrSplit(t *testing.T) {
	dict := dictFromPairs("para", "Para", "cetamol", "Cetamol")
	sink := &stubSink{}
	english := oracleOf("paracetamol")
	c := NewCorrector(dict, english, nil, sink, DefaultThreshold)

	// "paracetamol" would smart-split, but the English oracle recognizes it.
	got := c.CorrectWord(context.Background(), "paracetamol", noEntities())
	assert.Equal(t, "paracetamol", got)
	assert.Empty(t, sink.recorded)
}

func TestCorrectWord_NamedEntityExcluded(t *testing.T) {
	dict := entities.NewCorrectionDictionary()
	sink := &stubSink{}
	c := NewCorrector(dict, nil, nil, sink, DefaultThreshold)

	got := c.CorrectWord(context.Background(), "Okafor", mapset.NewSet("okafor"))
	assert.Equal(t, "Okafor", got)
	assert.Empty(t, sink.recorded)
}

func TestCorrectWord_UnknownWordRecorded(t *testing.T) {
	dict := dictFromPairs("paracitamol", "Paracetamol")
	sink := &stubSink{}
	c := NewCorrector(dict, oracleOf("take"), oracleOf("the"), sink, DefaultThreshold)

	got := c.CorrectWord(context.Background(), "blorvix", noEntities())
	assert.Equal(t, "blorvix", got)
	assert.Equal(t, []string{"blorvix"}, sink.recorded)
}

func TestCorrectWord_SmartSplitForUnknownConcatenation(t *testing.T) {
	dict := dictFromPairs("para", "Para", "cetamol", "Cetamol")
	sink := &stubSink{}
	c := NewCorrector(dict, nil, nil, sink, DefaultThreshold)

	got := c.CorrectWord(context.Background(), "paracetamol!", noEntities())
	assert.Equal(t, "Para Cetamol!", got)
	assert.Empty(t, sink.recorded)
}

func TestCorrectWord_PurePunctuationUnchanged(t *testing.T) {
	dict := dictFromPairs("paracitamol", "Paracetamol")
	sink := &stubSink{}
	c := NewCorrector(dict, nil, nil, sink, DefaultThreshold)

	for _, token := range []string{"...", "—", "()"} {
		got := c.CorrectWord(context.Background(), token, noEntities())
		assert.Equal(t, token, got)
	}
	assert.Empty(t, sink.recorded)
}

func TestCorrectWord_EmptyDictionaryPassesThrough(t *testing.T) {
	dict := entities.NewCorrectionDictionary()
	c := NewCorrector(dict, oracleOf("take"), nil, nil, DefaultThreshold)

	for _, token := range []string{"take", "Paracetamol,", "500mg"} {
		got := c.CorrectWord(context.Background(), token, noEntities())
		assert.Equal(t, token, got)
	}
}
