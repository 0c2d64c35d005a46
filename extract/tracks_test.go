package extract_test

import (
	"strings"
	"testing"

	"github.com/ilsedelangerecords/archivist"
	"github.com/ilsedelangerecords/archivist/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageFromLines(text string) *archivist.NormalizedPage {
	lines := strings.Split(text, "\n")
	return &archivist.NormalizedPage{
		Text:  strings.Join(lines, " "),
		Lines: lines,
	}
}

func TestTracks(t *testing.T) {
	t.Parallel()

	t.Run("parses NN colon form", func(t *testing.T) {
		t.Parallel()

		tracks := extract.Tracks(pageFromLines("01: Hurricane (3:45)\n02: OK (4:02)"))

		assert.Equal(t, []archivist.Track{
			{Number: 1, Title: "Hurricane", Duration: "3:45"},
			{Number: 2, Title: "OK", Duration: "4:02"},
		}, tracks)
	})

	t.Run("parses dotted form", func(t *testing.T) {
		t.Parallel()

		tracks := extract.Tracks(pageFromLines("1. I'm Not So Tough (3:49)\n2. World Of Hurt (4:11)"))

		require.Len(t, tracks, 2)
		assert.Equal(t, "I'm Not So Tough", tracks[0].Title)
		assert.Equal(t, 2, tracks[1].Number)
	})

	t.Run("parses dash form with en dash", func(t *testing.T) {
		t.Parallel()

		tracks := extract.Tracks(pageFromLines("1 – Flying Blind (3:30)\n2 - Blue Bittersweet (2:58)"))

		require.Len(t, tracks, 2)
		assert.Equal(t, "Flying Blind", tracks[0].Title)
		assert.Equal(t, "Blue Bittersweet", tracks[1].Title)
	})

	t.Run("missing duration gets default", func(t *testing.T) {
		t.Parallel()

		tracks := extract.Tracks(pageFromLines("01: Hurricane\n02: OK"))

		require.Len(t, tracks, 2)
		assert.Equal(t, archivist.DefaultDuration, tracks[0].Duration)
	})

	t.Run("duplicate numbers keep first occurrence", func(t *testing.T) {
		t.Parallel()

		tracks := extract.Tracks(pageFromLines("01: Hurricane (3:45)\n01: Hurricane Reprise (1:02)\n02: OK (4:02)"))

		require.Len(t, tracks, 2)
		assert.Equal(t, "Hurricane", tracks[0].Title)
	})

	t.Run("numbers strictly increasing after sort", func(t *testing.T) {
		t.Parallel()

		tracks := extract.Tracks(pageFromLines("03: Third (1:00)\n01: First (1:00)\n02: Second (1:00)"))

		require.Len(t, tracks, 3)
		for i := 1; i < len(tracks); i++ {
			assert.Greater(t, tracks[i].Number, tracks[i-1].Number)
		}
	})

	t.Run("first matching pattern wins over later ones", func(t *testing.T) {
		t.Parallel()

		// Both forms present: only the NN: form's matches are used.
		tracks := extract.Tracks(pageFromLines("01: Hurricane (3:45)\n2. Stray (3:10)"))

		require.Len(t, tracks, 1)
		assert.Equal(t, "Hurricane", tracks[0].Title)
	})

	t.Run("single character titles skipped", func(t *testing.T) {
		t.Parallel()

		tracks := extract.Tracks(pageFromLines("01: X (3:45)\n02: OK (4:02)"))

		require.Len(t, tracks, 1)
		assert.Equal(t, "OK", tracks[0].Title)
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		page := pageFromLines("02: OK (4:02)\n01: Hurricane (3:45)")
		first := extract.Tracks(page)
		second := extract.Tracks(page)

		assert.Equal(t, first, second)
	})

	t.Run("no tracks yields nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, extract.Tracks(pageFromLines("Just some prose about the album.")))
	})
}
