package archivist

import "context"

// SEO holds the search metadata carried by every public record.
type SEO struct {
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	Keywords        []string `json:"keywords"`
}

// ImageMapping maps an original image path to its catalogued asset.
type ImageMapping struct {
	NewPath string `json:"newPath"`
	AssetID string `json:"assetId"`
	WebPath string `json:"webPath"`
}

// FailedFile records one source file excluded from the output.
type FailedFile struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Summary enumerates what a run produced and what it skipped.
type Summary struct {
	Pages            int                 `json:"pages"`
	Artists          int                 `json:"artists"`
	Albums           int                 `json:"albums"`
	Lyrics           int                 `json:"lyrics"`
	LivePerformances int                 `json:"livePerformances"`
	Images           int                 `json:"images"`
	IDs              map[string][]string `json:"ids"`
	Failed           []FailedFile        `json:"failed"`
}

// Archive is the complete structured output of one extraction run.
// Record maps are keyed by identity. The URL and image mappings are
// append-only; the first entry for a source path wins.
type Archive struct {
	Artists          map[string]*Artist          `json:"artists"`
	Albums           map[string]*Album           `json:"albums"`
	Lyrics           map[string]*Lyric           `json:"lyrics"`
	LivePerformances map[string]*LivePerformance `json:"livePerformances"`
	Images           map[string]*ImageAsset      `json:"images"`
	URLMapping       map[string]string           `json:"urlMapping"`
	ImageMapping     map[string]ImageMapping     `json:"imageMapping"`
	Summary          Summary                     `json:"summary"`
}

// NewArchive returns an empty archive seeded with the roster artists.
func NewArchive(roster *Roster) *Archive {
	a := &Archive{
		Artists:          make(map[string]*Artist),
		Albums:           make(map[string]*Album),
		Lyrics:           make(map[string]*Lyric),
		LivePerformances: make(map[string]*LivePerformance),
		Images:           make(map[string]*ImageAsset),
		URLMapping:       make(map[string]string),
		ImageMapping:     make(map[string]ImageMapping),
	}
	for _, artist := range roster.Artists {
		a.Artists[artist.ID] = artist
	}
	return a
}

// ArchiveWriter persists a finished archive.
// Implementations hide the output format: JSON documents per record
// type, redirect mappings, sitemap, and report.
type ArchiveWriter interface {
	WriteArchive(ctx context.Context, archive *Archive) error
}
