package archivist

import "time"

// ArtistType distinguishes solo artists from duos and bands.
type ArtistType string

// Artist type constants.
const (
	ArtistSolo ArtistType = "solo"
	ArtistBand ArtistType = "band"
)

// Artist represents one of the site's fixed roster of artists.
// The roster is supplied as static configuration at the start of a run
// and is immutable thereafter except for timestamp updates.
type Artist struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Type        ArtistType        `json:"type"`
	Origin      string            `json:"origin"`
	Genres      []string          `json:"genres"`
	Biography   string            `json:"biography"`
	SocialLinks map[string]string `json:"socialLinks,omitempty"`
	SEO         SEO               `json:"seo"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// Validate returns an error if the artist contains invalid fields.
func (a *Artist) Validate() error {
	if a.Name == "" {
		return Errorf(EINVALID, "artist name required")
	}
	if a.Type != ArtistSolo && a.Type != ArtistBand {
		return Errorf(EINVALID, "artist type must be %q or %q", ArtistSolo, ArtistBand)
	}
	return nil
}

// Roster is the fixed set of artists known to a run, plus the
// classification signals derived from them. PrimaryID is the artist
// attributed when no other signal matches; DuoID is the artist
// attributed when duo keywords match.
type Roster struct {
	Artists   []*Artist
	PrimaryID string
	DuoID     string
	VariousID string
}

// ByID returns the artist with the given ID, or nil.
func (r *Roster) ByID(id string) *Artist {
	for _, a := range r.Artists {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// Names returns the display names of all roster artists. Field
// extractors use these to strip artist-name prefixes from page titles.
func (r *Roster) Names() []string {
	names := make([]string, 0, len(r.Artists))
	for _, a := range r.Artists {
		names = append(names, a.Name)
	}
	return names
}

// Validate returns an error if the roster is unusable for a run.
func (r *Roster) Validate() error {
	if len(r.Artists) == 0 {
		return Errorf(EINVALID, "roster must contain at least one artist")
	}
	for _, a := range r.Artists {
		if err := a.Validate(); err != nil {
			return err
		}
	}
	if r.PrimaryID == "" {
		return Errorf(EINVALID, "roster primary artist required")
	}
	return nil
}
