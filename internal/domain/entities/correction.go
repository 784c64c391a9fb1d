package entities

// CorrectionResult is the outcome of correcting one transcript.
type CorrectionResult struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
}
