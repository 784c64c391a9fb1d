package correction

import "regexp"

// doseGrammar recognizes tokens where a medication name is fused with a
// dosage, e.g. "paracitamol500mg" or "ibuprofen400mgdaily". The whole token
// must match. The optional single "z" before the digits is part of the
// grammar but carries no meaning of its own.
var doseGrammar = regexp.MustCompile(`^([a-zA-Z-]+)(z)?(\d+)(mg|ml|mcg|g|units)?([a-zA-Z]*)$`)

// DoseMatch is the decomposition of a fused medication+dosage token.
type DoseMatch struct {
	Medication string
	Number     string
	Unit       string
	Trailing   string
}

// ParseDose matches word against the dose grammar. It returns false when the
// token does not match end-to-end; tokens without a letter prefix (plain
// "500mg") or without digits never match.
func ParseDose(word string) (DoseMatch, bool) {
	m := doseGrammar.FindStringSubmatch(word)
	if m == nil {
		return DoseMatch{}, false
	}
	return DoseMatch{
		Medication: m[1],
		Number:     m[3],
		Unit:       m[4],
		Trailing:   m[5],
	}, true
}
