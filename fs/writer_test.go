package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ilsedelangerecords/archivist"
	"github.com/ilsedelangerecords/archivist/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testArchive() *archivist.Archive {
	archive := archivist.NewArchive(&archivist.Roster{
		Artists: []*archivist.Artist{
			{ID: "a1", Name: "Ilse DeLange", Slug: "ilse-delange", Type: archivist.ArtistSolo},
		},
		PrimaryID: "a1",
	})
	archive.Albums["al1"] = &archivist.Album{
		ID: "al1", Title: "World Of Hurt", Slug: "world-of-hurt", ArtistID: "a1",
		Type: archivist.AlbumStudio, ReleaseYear: 1998,
	}
	archive.URLMapping["world of hurt.html"] = "/albums/world-of-hurt"
	archive.URLMapping["world of hurt copy.html"] = "/albums/world-of-hurt"
	archive.Summary = archivist.Summary{
		Pages:  2,
		Albums: 1,
		Failed: []archivist.FailedFile{{Name: "broken.html", Reason: "no usable title"}},
	}
	return archive
}

func TestWriter_WriteArchive(t *testing.T) {
	t.Parallel()

	t.Run("writes record documents and artifacts", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "out")
		w := fs.NewWriter(dir, "https://www.ilsedelangerecords.nl/")

		require.NoError(t, w.WriteArchive(context.Background(), testArchive()))

		data, err := os.ReadFile(filepath.Join(dir, "albums.json"))
		require.NoError(t, err)
		var albums map[string]*archivist.Album
		require.NoError(t, json.Unmarshal(data, &albums))
		require.Contains(t, albums, "al1")
		assert.Equal(t, "World Of Hurt", albums["al1"].Title)

		data, err = os.ReadFile(filepath.Join(dir, "url_mapping.json"))
		require.NoError(t, err)
		var mapping map[string]string
		require.NoError(t, json.Unmarshal(data, &mapping))
		assert.Equal(t, "/albums/world-of-hurt", mapping["world of hurt.html"])

		sitemap, err := os.ReadFile(filepath.Join(dir, "sitemap.xml"))
		require.NoError(t, err)
		assert.Contains(t, string(sitemap), `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)
		// Two source paths map to one target; the sitemap lists it once.
		assert.Equal(t, 1, strings.Count(string(sitemap), "<loc>https://www.ilsedelangerecords.nl/albums/world-of-hurt</loc>"))

		report, err := os.ReadFile(filepath.Join(dir, "migration_report.md"))
		require.NoError(t, err)
		assert.Contains(t, string(report), "Albums: 1")
		assert.Contains(t, string(report), "`broken.html`: no usable title")

		for _, name := range []string{
			"artists.json", "lyrics.json", "live_performances.json",
			"images.json", "image_mapping.json", "summary.json",
		} {
			_, err := os.Stat(filepath.Join(dir, name))
			assert.NoError(t, err, name)
		}
	})

	t.Run("cancelled context aborts the write", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		w := fs.NewWriter(filepath.Join(t.TempDir(), "out"), "https://example.com")
		err := w.WriteArchive(ctx, testArchive())
		assert.ErrorIs(t, err, context.Canceled)
	})
}
