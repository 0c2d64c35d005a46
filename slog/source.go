// Package slog provides logging decorators for the boundary
// interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ilsedelangerecords/archivist"
)

// Ensure LoggingPageSource implements archivist.PageSource.
var _ archivist.PageSource = (*LoggingPageSource)(nil)

// LoggingPageSource wraps a PageSource with info logging.
type LoggingPageSource struct {
	next   archivist.PageSource
	logger *slog.Logger
}

// NewLoggingPageSource creates a new LoggingPageSource.
func NewLoggingPageSource(next archivist.PageSource, logger *slog.Logger) *LoggingPageSource {
	return &LoggingPageSource{next: next, logger: logger}
}

// Pages delegates to the wrapped source and logs the operation.
func (s *LoggingPageSource) Pages(ctx context.Context) (pages []*archivist.SourcePage, err error) {
	defer func(begin time.Time) {
		s.logger.Info("page enumeration",
			"count", len(pages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Pages(ctx)
}
