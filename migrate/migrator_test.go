package migrate_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ilsedelangerecords/archivist"
	"github.com/ilsedelangerecords/archivist/migrate"
	"github.com/ilsedelangerecords/archivist/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster() *archivist.Roster {
	return &archivist.Roster{
		Artists: []*archivist.Artist{
			{ID: "a1", Name: "Ilse DeLange", Slug: "ilse-delange", Type: archivist.ArtistSolo},
			{ID: "a2", Name: "The Common Linnets", Slug: "the-common-linnets", Type: archivist.ArtistBand},
			{ID: "a3", Name: "Various Artists", Slug: "various-artists", Type: archivist.ArtistBand},
		},
		PrimaryID: "a1",
		DuoID:     "a2",
		VariousID: "a3",
	}
}

// cannedNormalizer returns pre-built pages keyed by markup, so tests
// control extraction input without real HTML.
func cannedNormalizer(pages map[string]*archivist.NormalizedPage) *mock.Normalizer {
	return &mock.Normalizer{
		NormalizeFn: func(markup string) *archivist.NormalizedPage {
			if page, ok := pages[markup]; ok {
				return page
			}
			return &archivist.NormalizedPage{}
		},
	}
}

func sourceOf(pages ...*archivist.SourcePage) *mock.PageSource {
	return &mock.PageSource{
		PagesFn: func(context.Context) ([]*archivist.SourcePage, error) {
			return pages, nil
		},
	}
}

func TestMigrator_Run(t *testing.T) {
	t.Parallel()

	t.Run("converts a batch of pages into records", func(t *testing.T) {
		t.Parallel()

		normalized := map[string]*archivist.NormalizedPage{
			"album": {
				Meta: archivist.PageMeta{
					Title:       "Ilse DeLange World Of Hurt Album",
					Description: "The debut album recorded in Nashville.",
					Keywords:    []string{"world of hurt", "album"},
				},
				Text: "Released: 1998 Warner Records 01: World of Hurt (3:45) 02: Flying Blind",
				Lines: []string{
					"Released: 1998",
					"01: World of Hurt (3:45)",
					"02: Flying Blind",
				},
				Images: []string{
					"images/world of hurt front.jpg",
					"images/world of hurt back.jpg",
				},
			},
			"lyric": {
				Meta: archivist.PageMeta{Title: "Ilse DeLange World Of Hurt Lyrics"},
				Lines: []string{
					"World of hurt",
					"Verse 1",
					"I walked away",
					"Chorus",
					"You left me here",
				},
			},
			"live": {
				Meta: archivist.PageMeta{Title: "Live In Ahoy"},
				Text: "Recorded live at Ahoy Rotterdam in 2019. Available on CD and DVD.",
			},
		}

		m := &migrate.Migrator{
			Source: sourceOf(
				&archivist.SourcePage{Name: "world of hurt album.html", Path: "world of hurt album.html", Markup: "album"},
				&archivist.SourcePage{Name: "world of hurt lyrics.html", Path: "world of hurt lyrics.html", Markup: "lyric"},
				&archivist.SourcePage{Name: "live in ahoy.html", Path: "live in ahoy.html", Markup: "live"},
				&archivist.SourcePage{Name: "index.html", Path: "index.html", Markup: "home"},
			),
			Normalizer: cannedNormalizer(normalized),
			Images: &mock.ImageSource{
				StatFn: func(ref string) (*archivist.ImageInfo, bool) {
					return &archivist.ImageInfo{Path: "/src/" + ref, Size: 2048, Width: 500, Height: 500}, true
				},
			},
			Roster: testRoster(),
			Now:    func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
		}

		archive, err := m.Run(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 4, archive.Summary.Pages)
		assert.Equal(t, 3, archive.Summary.Artists)
		assert.Equal(t, 1, archive.Summary.Albums)
		assert.Equal(t, 1, archive.Summary.Lyrics)
		assert.Equal(t, 1, archive.Summary.LivePerformances)
		assert.Equal(t, 2, archive.Summary.Images)
		assert.Empty(t, archive.Summary.Failed)

		require.Len(t, archive.Albums, 1)
		var album *archivist.Album
		for _, a := range archive.Albums {
			album = a
		}
		assert.Equal(t, "World Of Hurt", album.Title)
		assert.Equal(t, "world-of-hurt", album.Slug)
		assert.Equal(t, "a1", album.ArtistID)
		assert.Equal(t, archivist.AlbumStudio, album.Type)
		assert.Equal(t, 1998, album.ReleaseYear)
		assert.Equal(t, "1998-01-01", album.ReleaseDate)
		assert.Equal(t, "Warner Records", album.RecordLabel)
		assert.Equal(t, "The debut album recorded in Nashville.", album.Description)
		require.Len(t, album.Tracks, 2)
		assert.Equal(t, "World of Hurt", album.Tracks[0].Title)
		assert.Equal(t, "3:45", album.Tracks[0].Duration)
		assert.True(t, album.Tracks[0].HasLyrics, "lyric page for the same title exists")
		assert.Equal(t, archivist.DefaultDuration, album.Tracks[1].Duration)
		assert.False(t, album.Tracks[1].HasLyrics)
		assert.True(t, strings.HasPrefix(album.CoverImage, "/images/world-of-hurt-front-"), album.CoverImage)
		require.Len(t, album.AdditionalImages, 1)

		require.Len(t, archive.Lyrics, 1)
		var lyric *archivist.Lyric
		for _, l := range archive.Lyrics {
			lyric = l
		}
		assert.Equal(t, "World Of Hurt", lyric.Title)
		assert.Equal(t, "I walked away\nYou left me here", lyric.Content)
		assert.Equal(t, "en", lyric.Language)
		assert.False(t, lyric.Verified)
		require.Len(t, lyric.Structure, 2)
		assert.Equal(t, archivist.SectionVerse, lyric.Structure[0].Section)
		require.NotNil(t, lyric.Structure[0].SectionNumber)
		assert.Equal(t, 1, *lyric.Structure[0].SectionNumber)
		assert.Equal(t, archivist.SectionChorus, lyric.Structure[1].Section)

		require.Len(t, archive.LivePerformances, 1)
		var perf *archivist.LivePerformance
		for _, p := range archive.LivePerformances {
			perf = p
		}
		assert.Equal(t, "Live In Ahoy", perf.Title)
		assert.Equal(t, "Ahoy", perf.VenueName)
		assert.Equal(t, "Rotterdam, Netherlands", perf.VenueLocation)
		assert.Equal(t, "2019", perf.PerformanceDate)
		assert.Equal(t, []string{"CD", "DVD"}, perf.AvailableFormats)

		assert.Equal(t, "/albums/world-of-hurt", archive.URLMapping["world of hurt album.html"])
		assert.Equal(t, "/lyrics/world-of-hurt", archive.URLMapping["world of hurt lyrics.html"])
		assert.Equal(t, "/live/live-in-ahoy", archive.URLMapping["live in ahoy.html"])
		assert.NotContains(t, archive.URLMapping, "index.html")

		require.Len(t, archive.ImageMapping, 2)
		mapping := archive.ImageMapping["images/world of hurt front.jpg"]
		assert.Equal(t, album.CoverImage, mapping.WebPath)
		asset := archive.Images[mapping.AssetID]
		require.NotNil(t, asset)
		assert.Equal(t, archivist.ImageAlbumCover, asset.Type)
		assert.Equal(t, archivist.UsageRights, asset.UsageRights)
		assert.Equal(t, int64(2048), asset.FileSize)
	})

	t.Run("applies defaults when extraction finds nothing", func(t *testing.T) {
		t.Parallel()

		normalized := map[string]*archivist.NormalizedPage{
			"sparse": {
				Meta: archivist.PageMeta{Title: "Ilse DeLange Incredible Album"},
				Text: "no facts here",
			},
		}

		m := &migrate.Migrator{
			Source: sourceOf(
				&archivist.SourcePage{Name: "incredible album.html", Path: "incredible album.html", Markup: "sparse"},
			),
			Normalizer: cannedNormalizer(normalized),
			Roster:     testRoster(),
		}

		archive, err := m.Run(context.Background())
		require.NoError(t, err)

		require.Len(t, archive.Albums, 1)
		for _, album := range archive.Albums {
			assert.Equal(t, archivist.UnknownYear, album.ReleaseYear)
			assert.Equal(t, "2000-01-01", album.ReleaseDate)
			assert.Equal(t, archivist.UnknownLabel, album.RecordLabel)
			assert.Equal(t, archivist.PlaceholderImage, album.CoverImage)
			assert.Empty(t, album.Tracks)
		}
	})

	t.Run("live pages without format mentions default to digital", func(t *testing.T) {
		t.Parallel()

		normalized := map[string]*archivist.NormalizedPage{
			"quiet": {
				Meta: archivist.PageMeta{Title: "Live In Paradiso"},
				Text: "An acoustic evening recorded in Amsterdam.",
			},
		}

		m := &migrate.Migrator{
			Source: sourceOf(
				&archivist.SourcePage{Name: "live in paradiso.html", Path: "live in paradiso.html", Markup: "quiet"},
			),
			Normalizer: cannedNormalizer(normalized),
			Roster:     testRoster(),
		}

		archive, err := m.Run(context.Background())
		require.NoError(t, err)

		require.Len(t, archive.LivePerformances, 1)
		for _, perf := range archive.LivePerformances {
			assert.Equal(t, []string{"digital"}, perf.AvailableFormats)
		}
	})

	t.Run("lyric lines equal to the title survive past the heading", func(t *testing.T) {
		t.Parallel()

		normalized := map[string]*archivist.NormalizedPage{
			"hurricane": {
				Meta: archivist.PageMeta{Title: "Ilse DeLange Hurricane Lyrics"},
				Lines: []string{
					"Hurricane",
					"Verse 1",
					"I can feel it coming",
					"Hurricane",
					"it blows through the night",
				},
			},
		}

		m := &migrate.Migrator{
			Source: sourceOf(
				&archivist.SourcePage{Name: "hurricane lyrics.html", Path: "hurricane lyrics.html", Markup: "hurricane"},
			),
			Normalizer: cannedNormalizer(normalized),
			Roster:     testRoster(),
		}

		archive, err := m.Run(context.Background())
		require.NoError(t, err)

		require.Len(t, archive.Lyrics, 1)
		for _, lyric := range archive.Lyrics {
			assert.Equal(t, "I can feel it coming\nHurricane\nit blows through the night", lyric.Content)
		}
	})

	t.Run("duplicate titles get distinct slugs", func(t *testing.T) {
		t.Parallel()

		normalized := map[string]*archivist.NormalizedPage{
			"ahoy": {Meta: archivist.PageMeta{Title: "Live in Ahoy"}},
		}

		m := &migrate.Migrator{
			Source: sourceOf(
				&archivist.SourcePage{Name: "live 2018.html", Path: "live 2018.html", Markup: "ahoy"},
				&archivist.SourcePage{Name: "live 2019.html", Path: "live 2019.html", Markup: "ahoy"},
			),
			Normalizer:  cannedNormalizer(normalized),
			Roster:      testRoster(),
			Concurrency: 1,
		}

		archive, err := m.Run(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "/live/live-in-ahoy", archive.URLMapping["live 2018.html"])
		assert.Equal(t, "/live/live-in-ahoy-2", archive.URLMapping["live 2019.html"])
	})

	t.Run("a failed page is recorded and the batch continues", func(t *testing.T) {
		t.Parallel()

		normalized := map[string]*archivist.NormalizedPage{
			"good": {Meta: archivist.PageMeta{Title: "Hurricane Single"}},
			"bad":  {Meta: archivist.PageMeta{Title: "Empty Lyrics"}},
		}

		m := &migrate.Migrator{
			Source: sourceOf(
				&archivist.SourcePage{Name: "hurricane single.html", Path: "hurricane single.html", Markup: "good"},
				&archivist.SourcePage{Name: "empty lyrics.html", Path: "empty lyrics.html", Markup: "bad"},
			),
			Normalizer: cannedNormalizer(normalized),
			Roster:     testRoster(),
		}

		archive, err := m.Run(context.Background())
		require.NoError(t, err)

		assert.Len(t, archive.Albums, 1)
		assert.Empty(t, archive.Lyrics)
		require.Len(t, archive.Summary.Failed, 1)
		assert.Equal(t, "empty lyrics.html", archive.Summary.Failed[0].Name)
		assert.Contains(t, archive.Summary.Failed[0].Reason, "no lyric content")
	})

	t.Run("empty source fails the run", func(t *testing.T) {
		t.Parallel()

		m := &migrate.Migrator{
			Source:     sourceOf(),
			Normalizer: cannedNormalizer(nil),
			Roster:     testRoster(),
		}

		_, err := m.Run(context.Background())
		require.Error(t, err)
		assert.Equal(t, archivist.ENOTFOUND, archivist.ErrorCode(err))
	})

	t.Run("source errors abort the run", func(t *testing.T) {
		t.Parallel()

		m := &migrate.Migrator{
			Source: &mock.PageSource{
				PagesFn: func(context.Context) ([]*archivist.SourcePage, error) {
					return nil, errors.New("disk gone")
				},
			},
			Normalizer: cannedNormalizer(nil),
			Roster:     testRoster(),
		}

		_, err := m.Run(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk gone")
	})

	t.Run("missing roster fails the run", func(t *testing.T) {
		t.Parallel()

		m := &migrate.Migrator{
			Source:     sourceOf(),
			Normalizer: cannedNormalizer(nil),
		}

		_, err := m.Run(context.Background())
		require.Error(t, err)
		assert.Equal(t, archivist.EINVALID, archivist.ErrorCode(err))
	})
}
