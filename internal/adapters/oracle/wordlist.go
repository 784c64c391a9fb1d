package oracle

import (
	"bufio"
	"os"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog/log"

	"github.com/clinscribe/transcript-correction/backend/internal/domain/providers"
	apperrors "github.com/clinscribe/transcript-correction/backend/pkg/errors"
)

// Wordlist answers membership queries against an in-memory set of lowercase
// words, typically a general English vocabulary or a stopword list.
type Wordlist struct {
	words mapset.Set[string]
}

// FromWords builds a wordlist from the given words.
func FromWords(words ...string) providers.WordOracle {
	set := mapset.NewSet[string]()
	for _, word := range words {
		if w := strings.ToLower(strings.TrimSpace(word)); w != "" {
			set.Add(w)
		}
	}
	return &Wordlist{words: set}
}

// FromFile builds a wordlist from a file with one word per line. A missing
// file yields an empty oracle so the corrector still runs, it just cannot
// recognise vocabulary words.
func FromFile(path string) (providers.WordOracle, error) {
	set := mapset.NewSet[string]()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn().Str("path", path).Msg("Wordlist file not found, starting with empty wordlist")
			return &Wordlist{words: set}, nil
		}
		return nil, apperrors.NewInternalError("failed to open wordlist", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if word := strings.ToLower(strings.TrimSpace(scanner.Text())); word != "" {
			set.Add(word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read wordlist", err)
	}

	log.Info().Str("path", path).Int("words", set.Cardinality()).Msg("Loaded wordlist")
	return &Wordlist{words: set}, nil
}

// Contains reports whether the word is in the list. Lookup is
// case-insensitive.
func (w *Wordlist) Contains(word string) bool {
	return w.words.Contains(strings.ToLower(word))
}
