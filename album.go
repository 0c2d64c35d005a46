package archivist

import "time"

// AlbumType categorizes a release.
type AlbumType string

// Album type constants, in classification precedence order.
const (
	AlbumLive          AlbumType = "live"
	AlbumSingle        AlbumType = "single"
	AlbumCompilation   AlbumType = "compilation"
	AlbumSoundtrack    AlbumType = "soundtrack"
	AlbumCollaboration AlbumType = "collaboration"
	AlbumStudio        AlbumType = "studio"
)

// Attribution identifies which artist a release belongs to.
type Attribution string

// Attribution constants.
const (
	AttributionPrimary Attribution = "primary"
	AttributionDuo     Attribution = "duo"
	AttributionVarious Attribution = "various"
)

// Sentinel values applied by the assembler when extraction finds
// nothing. Best-effort fields always carry a defined default; the
// placeholder year is a known limitation of the source material.
const (
	UnknownYear     = 2000
	UnknownLabel    = "Unknown"
	DefaultDuration = "3:30"
)

// Track is one entry in an album's ordered track listing.
type Track struct {
	Number    int    `json:"number"`
	Title     string `json:"title"`
	Duration  string `json:"duration"`
	HasLyrics bool   `json:"hasLyrics"`
}

// Album represents a release extracted from a single source page.
// Singles, live albums, and compilations are all albums distinguished
// by Type; which lists to expose is a presentation-layer decision.
type Album struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Slug              string    `json:"slug"`
	ArtistID          string    `json:"artistId"`
	Type              AlbumType `json:"type"`
	ReleaseYear       int       `json:"releaseYear"`
	ReleaseDate       string    `json:"releaseDate"`
	RecordLabel       string    `json:"recordLabel"`
	CatalogNumber     string    `json:"catalogNumber"`
	Description       string    `json:"description"`
	ChartPerformance  []string  `json:"chartPerformance"`
	ProductionCredits []string  `json:"productionCredits"`
	CoverImage        string    `json:"coverImage"`
	AdditionalImages  []string  `json:"additionalImages"`
	Tracks            []Track   `json:"tracks"`
	SourceFile        string    `json:"sourceFile"`
	SEO               SEO       `json:"seo"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Validate returns an error if the album contains invalid fields.
func (a *Album) Validate() error {
	if a.Title == "" {
		return Errorf(EINVALID, "album title required")
	}
	if a.ArtistID == "" {
		return Errorf(EINVALID, "album artist ID required")
	}
	return nil
}
