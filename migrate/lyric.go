package migrate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/ilsedelangerecords/archivist"
	"github.com/ilsedelangerecords/archivist/classify"
	"github.com/ilsedelangerecords/archivist/extract"
	"github.com/ilsedelangerecords/archivist/lyrics"
)

var copyrightRe = regexp.MustCompile(`(?i)(copyright|all rights reserved|©)`)

func (r *run) addLyric(page *archivist.SourcePage, norm *archivist.NormalizedPage) error {
	title, ok := extract.Title(norm.Meta, r.migrator.Roster.Names())
	if !ok {
		title = titleFromFilename(page.Name)
	}
	if title == "" {
		return archivist.Errorf(archivist.EINVALID, "no usable title")
	}

	artist := r.artistFor(classify.Attribution(page.Name, title))

	structure := lyrics.Segment(lyricLines(norm, title, r.migrator.Roster.Names()))
	texts := make([]string, 0, len(structure))
	for _, line := range structure {
		texts = append(texts, line.Text)
	}
	content := strings.Join(texts, "\n")
	if content == "" {
		return archivist.Errorf(archivist.EINVALID, "no lyric content found")
	}

	slug, err := r.registry.Claim("lyrics", archivist.Slugify(title))
	if err != nil {
		return err
	}

	ts := r.now().UTC()
	lyric := &archivist.Lyric{
		ID:         uuid.NewString(),
		Title:      title,
		ArtistID:   artist.ID,
		Content:    content,
		Structure:  structure,
		Language:   lyrics.DetectLanguage(content),
		Verified:   false,
		SourceFile: page.Path,
		SEO: archivist.SEO{
			MetaTitle:       fmt.Sprintf("%s Lyrics - %s", title, artist.Name),
			MetaDescription: truncate(fmt.Sprintf("Lyrics for %s by %s", title, artist.Name), maxMetaDescription),
			Keywords:        keywordsFor(norm.Meta, title, artist.Name, "lyrics"),
		},
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if err := lyric.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.archive.Lyrics[lyric.ID] = lyric
	if _, ok := r.archive.URLMapping[page.Path]; !ok {
		r.archive.URLMapping[page.Path] = "/lyrics/" + slug
	}
	return nil
}

// lyricLines filters page lines down to lyric content. Heading lines
// repeating the song title or an artist name are dropped only until
// the first content line; after that a line equal to the title is
// lyric content (a common chorus form) and passes through. Copyright
// footers are dropped anywhere.
func lyricLines(norm *archivist.NormalizedPage, title string, artistNames []string) []string {
	heading := map[string]bool{archivist.Slugify(title): true}
	for _, name := range artistNames {
		heading[archivist.Slugify(name)] = true
	}

	var out []string
	inContent := false
	for _, line := range norm.Lines {
		if copyrightRe.MatchString(line) {
			continue
		}
		if !inContent && heading[archivist.Slugify(line)] {
			continue
		}
		inContent = true
		out = append(out, line)
	}
	return out
}
