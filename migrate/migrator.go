// Package migrate runs the page extraction pipeline: it normalizes raw
// pages, classifies them, extracts structured records, and accumulates
// them into an archive with stable identities and URL mappings.
package migrate

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/ilsedelangerecords/archivist"
	"github.com/ilsedelangerecords/archivist/classify"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the worker pool size used when none is set.
const DefaultConcurrency = 4

// Migrator converts a batch of source pages into an archive. Pages are
// processed concurrently; a page that cannot be converted is recorded
// in the summary and skipped, never aborting the batch.
type Migrator struct {
	Source     archivist.PageSource
	Normalizer archivist.Normalizer
	Images     archivist.ImageSource
	Roster     *archivist.Roster

	// Concurrency bounds the worker pool. Zero means DefaultConcurrency.
	Concurrency int

	Logger *slog.Logger

	// Now returns record timestamps. Defaults to time.Now.
	Now func() time.Time
}

// Run processes every source page and returns the finished archive.
// It fails only for run-level problems: an unusable roster, a source
// that cannot enumerate, or an empty source.
func (m *Migrator) Run(ctx context.Context) (*archivist.Archive, error) {
	if m.Roster == nil {
		return nil, archivist.Errorf(archivist.EINVALID, "roster required")
	}
	if err := m.Roster.Validate(); err != nil {
		return nil, err
	}

	logger := m.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	now := m.Now
	if now == nil {
		now = time.Now
	}
	concurrency := m.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	pages, err := m.Source.Pages(ctx)
	if err != nil {
		return nil, fmt.Errorf("enumerating source pages: %w", err)
	}
	if len(pages) == 0 {
		return nil, archivist.Errorf(archivist.ENOTFOUND, "no source pages found")
	}

	run := &run{
		migrator: m,
		archive:  archivist.NewArchive(m.Roster),
		registry: NewRegistry(),
		logger:   logger,
		now:      now,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, page := range pages {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			run.process(page)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	run.linkTrackLyrics()
	run.finalize(len(pages))
	return run.archive, nil
}

// run is the mutable state of one Run call. The mutex guards every
// archive mutation; extraction itself runs outside the lock.
type run struct {
	migrator *Migrator
	archive  *archivist.Archive
	registry *Registry
	logger   *slog.Logger
	now      func() time.Time

	mu sync.Mutex
}

func (r *run) process(page *archivist.SourcePage) {
	norm := r.migrator.Normalizer.Normalize(page.Markup)
	kind := classify.PageKind(page.Name)

	var err error
	switch kind {
	case classify.KindLyrics:
		err = r.addLyric(page, norm)
	case classify.KindAlbum, classify.KindSingle, classify.KindCollaboration, classify.KindVarious:
		err = r.addAlbum(page, norm)
	case classify.KindLive:
		err = r.addLivePerformance(page, norm)
	default:
		r.logger.Debug("skipping non-record page", "file", page.Name, "kind", string(kind))
		return
	}
	if err != nil {
		r.fail(page.Name, err)
	}
}

// fail records a page-level failure and moves on.
func (r *run) fail(name string, err error) {
	r.logger.Error("page failed", "file", name, "error", err)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.archive.Summary.Failed = append(r.archive.Summary.Failed, archivist.FailedFile{
		Name:   name,
		Reason: err.Error(),
	})
}

// artistFor maps a classified attribution onto a roster artist. Roster
// gaps fall back to the primary artist so no record is left orphaned.
func (r *run) artistFor(attribution archivist.Attribution) *archivist.Artist {
	roster := r.migrator.Roster
	id := roster.PrimaryID
	switch attribution {
	case archivist.AttributionDuo:
		if roster.DuoID != "" {
			id = roster.DuoID
		}
	case archivist.AttributionVarious:
		if roster.VariousID != "" {
			id = roster.VariousID
		}
	}
	return roster.ByID(id)
}

// linkTrackLyrics marks album tracks whose titles match an extracted
// lyric. The linkage is a naming convention, not a foreign key.
func (r *run) linkTrackLyrics() {
	r.mu.Lock()
	defer r.mu.Unlock()

	titles := make(map[string]bool, len(r.archive.Lyrics))
	for _, lyric := range r.archive.Lyrics {
		titles[archivist.Slugify(lyric.Title)] = true
	}
	for _, album := range r.archive.Albums {
		for i := range album.Tracks {
			if titles[archivist.Slugify(album.Tracks[i].Title)] {
				album.Tracks[i].HasLyrics = true
			}
		}
	}
}

// finalize fills the run summary with counts and sorted identity lists.
func (r *run) finalize(pages int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := &r.archive.Summary
	s.Pages = pages
	s.Artists = len(r.archive.Artists)
	s.Albums = len(r.archive.Albums)
	s.Lyrics = len(r.archive.Lyrics)
	s.LivePerformances = len(r.archive.LivePerformances)
	s.Images = len(r.archive.Images)
	s.IDs = map[string][]string{
		"artists":          sortedKeys(r.archive.Artists),
		"albums":           sortedKeys(r.archive.Albums),
		"lyrics":           sortedKeys(r.archive.Lyrics),
		"livePerformances": sortedKeys(r.archive.LivePerformances),
		"images":           sortedKeys(r.archive.Images),
	}
	sort.Slice(s.Failed, func(i, j int) bool { return s.Failed[i].Name < s.Failed[j].Name })
}

func sortedKeys[V any](m map[string]*V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
