package archivist

import (
	"strings"
	"unicode"
)

// Slugify creates a URL-safe slug from a title: lowercase, restricted
// to [a-z0-9], internal whitespace collapsed to single hyphens, no
// leading or trailing hyphens. Slugify is deterministic; uniqueness
// within a run is the registry's job, not this function's.
func Slugify(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
