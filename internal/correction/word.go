// Package correction implements the medical transcript correction core:
// dictionary lookup, fuzzy matching, fused dose parsing and smart splitting
// of concatenated terms. The package is pure in the sense that all state is
// injected at construction; the only side effect is the best-effort write of
// unresolved words to the unknown-word sink.
package correction

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog/log"

	"github.com/clinscribe/transcript-correction/backend/internal/domain/entities"
	"github.com/clinscribe/transcript-correction/backend/internal/domain/providers"
)

// DefaultThreshold is the minimum similarity ratio for accepting a fuzzy
// dictionary match.
const DefaultThreshold = 85

// tokenBoundary splits a whitespace-delimited chunk into leading non-word
// characters and a word/number/hyphen core; everything after the core is the
// trailing part, so reassembly of the three pieces always reproduces the
// original chunk.
var tokenBoundary = regexp.MustCompile(`^(\W*)([\w-]+)`)

// Corrector applies per-token correction against a read-only dictionary and
// membership oracles. It is safe for concurrent use: the dictionary and
// oracles are never mutated after construction and the sink owns its own
// synchronization.
type Corrector struct {
	dict      *entities.CorrectionDictionary
	english   providers.WordOracle
	stopwords providers.WordOracle
	sink      providers.UnknownWordSink
	threshold int
}

// NewCorrector builds a Corrector. A non-positive threshold falls back to
// DefaultThreshold. Oracles and sink may be nil; a nil oracle recognizes
// nothing and a nil sink drops unknown words.
func NewCorrector(
	dict *entities.CorrectionDictionary,
	english providers.WordOracle,
	stopwords providers.WordOracle,
	sink providers.UnknownWordSink,
	threshold int,
) *Corrector {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Corrector{
		dict:      dict,
		english:   english,
		stopwords: stopwords,
		sink:      sink,
		threshold: threshold,
	}
}

// CorrectWord corrects a single whitespace-delimited token, preserving its
// leading and trailing punctuation. Steps are tried in strict order and the
// first one that resolves wins: fused dose parsing, the numeric guard, exact
// dictionary lookup, whole-word fuzzy matching, then smart splitting for
// words unknown to every oracle. Words that remain unresolved are recorded
// in the unknown-word sink and returned unchanged.
func (c *Corrector) CorrectWord(ctx context.Context, raw string, namedEntities mapset.Set[string]) (corrected string) {
	// Correction must never destroy input text: any unexpected failure while
	// handling one token falls back to the raw token.
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Interface("panic", r).Str("token", raw).Msg("word correction failed, keeping original token")
			corrected = raw
		}
	}()

	prefix, core, suffix := splitToken(raw)
	if core == "" || !hasAlphanumeric(core) {
		return raw
	}
	lower := strings.ToLower(core)

	// Fused dose tokens ("paracitamol500mg") resolve before anything else,
	// even when the whole token is itself a dictionary key.
	if dose, ok := ParseDose(core); ok {
		return prefix + c.resolveDose(dose) + suffix
	}

	// Bare numbers, years and dose remainders are never altered.
	if strings.ContainsAny(core, "0123456789") {
		return raw
	}

	if value, ok := c.dict.Lookup(lower); ok {
		if strings.ToLower(value) == lower {
			// Mapped to itself: replacing would be noise.
			return raw
		}
		return prefix + value + suffix
	}

	if match, ok := BestMatch(lower, c.dict.Keys()); ok && match.Score >= c.threshold {
		value, _ := c.dict.Lookup(match.Key)
		return prefix + value + suffix
	}

	// Unrecognized. Proper nouns, common English words and stopwords are left
	// alone without logging.
	if c.isKnownWord(lower, namedEntities) {
		return raw
	}

	if split, ok := SmartSplit(lower, c.dict, c.threshold); ok {
		log.Debug().Str("word", lower).Str("split", split).Msg("resolved concatenated terms")
		return prefix + split + suffix
	}

	c.recordUnknown(ctx, lower)
	return raw
}

// Threshold returns the fuzzy acceptance threshold in use.
func (c *Corrector) Threshold() int {
	return c.threshold
}

// resolveDose maps the medication part of a parsed dose token through the
// dictionary: exact lookup first, then smart split, otherwise the lowercase
// medication is kept as-is. The dosage digits and unit are re-joined
// unchanged.
func (c *Corrector) resolveDose(dose DoseMatch) string {
	med := strings.ToLower(dose.Medication)

	resolved := med
	if value, ok := c.dict.Lookup(med); ok {
		resolved = value
	} else if split, ok := SmartSplit(med, c.dict, c.threshold); ok {
		resolved = split
	}

	out := resolved + " " + dose.Number + dose.Unit
	if dose.Trailing != "" {
		out += " " + dose.Trailing
	}
	return out
}

func (c *Corrector) isKnownWord(lower string, namedEntities mapset.Set[string]) bool {
	if c.english != nil && c.english.Contains(lower) {
		return true
	}
	if c.stopwords != nil && c.stopwords.Contains(lower) {
		return true
	}
	if namedEntities != nil && namedEntities.Contains(lower) {
		return true
	}
	return false
}

// recordUnknown is best-effort: a sink failure is logged and swallowed, it
// must never alter the corrected output.
func (c *Corrector) recordUnknown(ctx context.Context, word string) {
	if c.sink == nil {
		return
	}
	if err := c.sink.RecordIfAbsent(ctx, word); err != nil {
		log.Warn().Err(err).Str("word", word).Msg("failed to record unknown word")
	}
}

// splitToken decomposes a chunk into (leading punctuation, core, trailing).
// Chunks without a word character yield an empty core.
func splitToken(raw string) (prefix, core, suffix string) {
	loc := tokenBoundary.FindStringSubmatchIndex(raw)
	if loc == nil {
		return "", "", raw
	}
	prefix = raw[loc[2]:loc[3]]
	core = raw[loc[4]:loc[5]]
	suffix = raw[loc[5]:]
	return prefix, core, suffix
}

func hasAlphanumeric(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	})
}
