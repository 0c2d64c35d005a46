package mock

import (
	"context"

	"github.com/ilsedelangerecords/archivist"
)

var _ archivist.ArchiveWriter = (*ArchiveWriter)(nil)

// ArchiveWriter is a mock implementation of archivist.ArchiveWriter.
type ArchiveWriter struct {
	WriteArchiveFn func(ctx context.Context, archive *archivist.Archive) error
}

func (w *ArchiveWriter) WriteArchive(ctx context.Context, archive *archivist.Archive) error {
	return w.WriteArchiveFn(ctx, archive)
}
