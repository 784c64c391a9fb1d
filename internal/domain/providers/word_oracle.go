package providers

// WordOracle is a read-only membership set of lowercase words. The corrector
// consults oracles (known English words, stopwords) before treating a word as
// unrecognized; it never modifies them.
type WordOracle interface {
	Contains(word string) bool
}
