package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ilsedelangerecords/archivist"
)

// Ensure LoggingArchiveWriter implements archivist.ArchiveWriter.
var _ archivist.ArchiveWriter = (*LoggingArchiveWriter)(nil)

// LoggingArchiveWriter wraps an ArchiveWriter with info logging.
type LoggingArchiveWriter struct {
	next   archivist.ArchiveWriter
	logger *slog.Logger
}

// NewLoggingArchiveWriter creates a new LoggingArchiveWriter.
func NewLoggingArchiveWriter(next archivist.ArchiveWriter, logger *slog.Logger) *LoggingArchiveWriter {
	return &LoggingArchiveWriter{next: next, logger: logger}
}

// WriteArchive delegates to the wrapped writer and logs the operation.
func (w *LoggingArchiveWriter) WriteArchive(ctx context.Context, archive *archivist.Archive) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("archive write",
			"albums", len(archive.Albums),
			"lyrics", len(archive.Lyrics),
			"live", len(archive.LivePerformances),
			"images", len(archive.Images),
			"failed", len(archive.Summary.Failed),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteArchive(ctx, archive)
}
