package mock

import (
	"context"

	"github.com/ilsedelangerecords/archivist"
)

var _ archivist.PageSource = (*PageSource)(nil)

// PageSource is a mock implementation of archivist.PageSource.
type PageSource struct {
	PagesFn func(ctx context.Context) ([]*archivist.SourcePage, error)
}

func (s *PageSource) Pages(ctx context.Context) ([]*archivist.SourcePage, error) {
	return s.PagesFn(ctx)
}

var _ archivist.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of archivist.Normalizer.
type Normalizer struct {
	NormalizeFn func(markup string) *archivist.NormalizedPage
}

func (n *Normalizer) Normalize(markup string) *archivist.NormalizedPage {
	return n.NormalizeFn(markup)
}
