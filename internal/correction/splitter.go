package correction

import (
	"strings"

	"github.com/clinscribe/transcript-correction/backend/internal/domain/entities"
)

// SmartSplit attempts to explain word as the concatenation of exactly two
// dictionary terms ("paracetamolibuprofen" → "Paracetamol Ibuprofen").
//
// Split positions are scanned left to right and the first position where both
// halves resolve wins; this is deliberately not a best-of-all-positions
// search. Both halves must be at least 3 characters, enforced by the loop
// bounds. At each position an exact lookup of both halves is tried first,
// then an independent fuzzy match of each half against all dictionary keys,
// accepted only when both scores reach threshold and both matched keys are
// literal dictionary entries.
func SmartSplit(word string, dict *entities.CorrectionDictionary, threshold int) (string, bool) {
	word = strings.ToLower(word)
	keys := dict.Keys()

	for i := 3; i <= len(word)-3; i++ {
		prefix := word[:i]
		suffix := word[i:]

		prefixValue, prefixOK := dict.Lookup(prefix)
		suffixValue, suffixOK := dict.Lookup(suffix)
		if prefixOK && suffixOK {
			return prefixValue + " " + suffixValue, true
		}

		prefixMatch, prefixFound := BestMatch(prefix, keys)
		suffixMatch, suffixFound := BestMatch(suffix, keys)
		if prefixFound && suffixFound &&
			prefixMatch.Score >= threshold && suffixMatch.Score >= threshold &&
			dict.Contains(prefixMatch.Key) && dict.Contains(suffixMatch.Key) {
			prefixValue, _ := dict.Lookup(prefixMatch.Key)
			suffixValue, _ := dict.Lookup(suffixMatch.Key)
			return prefixValue + " " + suffixValue, true
		}
	}

	return "", false
}
