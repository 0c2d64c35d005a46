package archivist

import "time"

// Section is a lyrics-structuring tag.
type Section string

// Section constants.
const (
	SectionIntro  Section = "intro"
	SectionVerse  Section = "verse"
	SectionChorus Section = "chorus"
	SectionBridge Section = "bridge"
	SectionOutro  Section = "outro"
)

// LyricLine is one emitted line of structured lyrics. SectionNumber is
// set for verse lines only.
type LyricLine struct {
	Section       Section `json:"sectionType"`
	SectionNumber *int    `json:"sectionNumber"`
	Text          string  `json:"content"`
}

// Lyric represents a song lyric extracted from a lyrics page.
// Lyrics relate to album tracks only by title-matching convention;
// there is no enforced foreign key.
type Lyric struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	ArtistID   string      `json:"artistId"`
	Content    string      `json:"content"`
	Structure  []LyricLine `json:"structure"`
	Language   string      `json:"language"`
	Verified   bool        `json:"verified"` // always false at creation; human review gate
	SourceFile string      `json:"sourceFile"`
	SEO        SEO         `json:"seo"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// Validate returns an error if the lyric contains invalid fields.
func (l *Lyric) Validate() error {
	if l.Title == "" {
		return Errorf(EINVALID, "lyric title required")
	}
	if l.ArtistID == "" {
		return Errorf(EINVALID, "lyric artist ID required")
	}
	return nil
}
