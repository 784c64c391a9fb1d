package entities

import "strings"

// CorrectionDictionary maps lowercase incorrect terms to their canonical
// corrected form. It is built once at startup by a dictionary loader and is
// read-only afterwards, so it can be shared by all requests without locking.
//
// Keys keep their insertion order; fuzzy matching iterates them in that order
// so tie-breaks between equal scores are deterministic across requests.
type CorrectionDictionary struct {
	entries map[string]string
	keys    []string
}

// NewCorrectionDictionary creates an empty dictionary.
func NewCorrectionDictionary() *CorrectionDictionary {
	return &CorrectionDictionary{
		entries: make(map[string]string),
	}
}

// Add inserts a single incorrect→correct mapping. The key is trimmed and
// lowercased; the value is trimmed but keeps its authored casing. Rows with
// an empty key or value after trimming are discarded. Re-adding an existing
// key overwrites its value without duplicating the key order entry.
func (d *CorrectionDictionary) Add(incorrect, correct string) {
	key := strings.ToLower(strings.TrimSpace(incorrect))
	value := strings.TrimSpace(correct)
	if key == "" || value == "" {
		return
	}
	if _, exists := d.entries[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.entries[key] = value
}

// Lookup returns the canonical form for a lowercase term.
func (d *CorrectionDictionary) Lookup(term string) (string, bool) {
	value, ok := d.entries[term]
	return value, ok
}

// Contains reports whether the lowercase term is a dictionary key.
func (d *CorrectionDictionary) Contains(term string) bool {
	_, ok := d.entries[term]
	return ok
}

// Keys returns the dictionary keys in insertion order. The returned slice is
// shared; callers must not modify it.
func (d *CorrectionDictionary) Keys() []string {
	return d.keys
}

// Len returns the number of entries.
func (d *CorrectionDictionary) Len() int {
	return len(d.entries)
}
