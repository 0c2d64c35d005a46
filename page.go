package archivist

import "context"

// SourcePage is one raw page handed to the extraction pipeline.
type SourcePage struct {
	// Name is the page's filename, e.g. "world of hurt.html".
	Name string

	// Path is the source-relative path used in mappings and reports.
	Path string

	// Markup is the raw page content.
	Markup string
}

// PageMeta holds pre-extracted metadata fields from a page's head.
type PageMeta struct {
	Title       string
	Description string
	Keywords    []string
}

// NormalizedPage is the markup-free view of a page that all extractors
// and classifiers operate on.
type NormalizedPage struct {
	// Text is the visible text with whitespace collapsed to single
	// spaces. Empty only when the page has no text nodes.
	Text string

	// Lines is the visible text split on element boundaries with blank
	// lines removed, for line-oriented consumers such as the lyrics
	// segmenter.
	Lines []string

	// Meta holds head metadata.
	Meta PageMeta

	// Images lists referenced image paths in document order with
	// navigation and script assets filtered out.
	Images []string
}

// Normalizer strips markup noise from a raw page. Implementations must
// tolerate malformed markup and degrade to best-effort extraction
// rather than failing; they never mutate shared state.
type Normalizer interface {
	Normalize(markup string) *NormalizedPage
}

// PageSource enumerates the raw pages of a run.
// Implementations hide filesystem walking vs remote acquisition and
// skip navigation, index, and template files.
type PageSource interface {
	Pages(ctx context.Context) ([]*SourcePage, error)
}
