package classify_test

import (
	"testing"

	"github.com/ilsedelangerecords/archivist"
	"github.com/ilsedelangerecords/archivist/classify"
	"github.com/stretchr/testify/assert"
)

func TestSelectCover(t *testing.T) {
	t.Parallel()

	t.Run("prefers front image", func(t *testing.T) {
		t.Parallel()

		cover, additional := classify.SelectCover([]string{
			"world of hurt back.jpg",
			"world of hurt front.jpg",
			"world of hurt disc.jpg",
		})

		assert.Equal(t, "world of hurt front.jpg", cover)
		assert.Equal(t, []string{"world of hurt back.jpg", "world of hurt disc.jpg"}, additional)
	})

	t.Run("cover keyword excluded by back", func(t *testing.T) {
		t.Parallel()

		cover, additional := classify.SelectCover([]string{
			"album cover back.jpg",
			"album cover.jpg",
		})

		assert.Equal(t, "album cover.jpg", cover)
		assert.Equal(t, []string{"album cover back.jpg"}, additional)
	})

	t.Run("falls back to first image", func(t *testing.T) {
		t.Parallel()

		cover, additional := classify.SelectCover([]string{"band.jpg", "stage.jpg"})

		assert.Equal(t, "band.jpg", cover)
		assert.Equal(t, []string{"stage.jpg"}, additional)
	})

	t.Run("placeholder when empty", func(t *testing.T) {
		t.Parallel()

		cover, additional := classify.SelectCover(nil)

		assert.Equal(t, archivist.PlaceholderImage, cover)
		assert.Empty(t, additional)
	})
}

func TestImageTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		want     []string
	}{
		{"world of hurt album cd front.jpg", []string{"album", "cd", "cover-art"}},
		{"single promo limited.jpg", []string{"single", "promotional", "limited-edition"}},
		{"vinyl back.jpg", []string{"vinyl", "back-cover"}},
		{"band photo.jpg", nil},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, classify.ImageTags(tt.filename))
		})
	}
}

func TestAltText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		want     string
	}{
		{"world_of_hurt-front.jpg", "World Of Hurt Front"},
		{"cover123.jpg", "Cover"},
		{"12345.jpg", "Album artwork"},
		{"promo shoot.png", "Promo Shoot"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, classify.AltText(tt.filename))
		})
	}
}

func TestPageKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		want     classify.Kind
	}{
		{"Hurricane lyrics.html", classify.KindLyrics},
		{"TCL lyrics.html", classify.KindLyrics},
		{"albums.html", classify.KindAlbum},
		{"singles.html", classify.KindSingle},
		{"tcl album.html", classify.KindAlbum},
		{"index.html", classify.KindHomepage},
		{"live.html", classify.KindLive},
		{"Various artist.html", classify.KindVarious},
		{"other artist.html", classify.KindOther},
		{"items.html", classify.KindItems},
		{"disclaimer.html", classify.KindPage},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, classify.PageKind(tt.filename))
		})
	}
}
