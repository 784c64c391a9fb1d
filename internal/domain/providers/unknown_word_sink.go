package providers

import "context"

// UnknownWordSink persists words the corrector could not resolve, for offline
// dictionary review. RecordIfAbsent is idempotent: recording the same
// lowercase word twice leaves a single entry. Implementations own uniqueness
// and ordering; the core only appends and never reads back.
type UnknownWordSink interface {
	RecordIfAbsent(ctx context.Context, word string) error
}
