package providers

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"
)

// EntityExtractor identifies named entities in free text so the corrector can
// leave them untouched. Implementations return lowercase surface forms of
// person, organization and location mentions; all other categories are
// ignored.
type EntityExtractor interface {
	Extract(ctx context.Context, text string) (mapset.Set[string], error)
}
