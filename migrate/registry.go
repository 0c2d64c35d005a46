package migrate

import (
	"fmt"
	"sync"

	"github.com/ilsedelangerecords/archivist"
)

// maxSlugAttempts bounds collision disambiguation per base slug.
const maxSlugAttempts = 100

// Registry hands out unique slugs per record type. Claims are
// serialized under a mutex so concurrent page workers cannot race a
// check-then-insert; a colliding base slug gets a numeric suffix
// rather than overwriting the earlier claim.
type Registry struct {
	mu    sync.Mutex
	slugs map[string]map[string]bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{slugs: make(map[string]map[string]bool)}
}

// Claim reserves slug under the given record type, returning the slug
// actually reserved. The first claim gets the base slug; later claims
// of the same base get "-2", "-3" and so on, in claim order. Returns
// ECONFLICT when the attempt bound is exhausted.
func (r *Registry) Claim(recordType, slug string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set := r.slugs[recordType]
	if set == nil {
		set = make(map[string]bool)
		r.slugs[recordType] = set
	}

	if !set[slug] {
		set[slug] = true
		return slug, nil
	}
	for i := 2; i <= maxSlugAttempts; i++ {
		candidate := fmt.Sprintf("%s-%d", slug, i)
		if !set[candidate] {
			set[candidate] = true
			return candidate, nil
		}
	}
	return "", archivist.Errorf(archivist.ECONFLICT, "no free slug for %q after %d attempts", slug, maxSlugAttempts)
}
