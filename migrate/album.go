package migrate

import (
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/ilsedelangerecords/archivist"
	"github.com/ilsedelangerecords/archivist/classify"
	"github.com/ilsedelangerecords/archivist/extract"
)

// maxMetaDescription caps generated meta descriptions at a length
// search engines display in full.
const maxMetaDescription = 160

func (r *run) addAlbum(page *archivist.SourcePage, norm *archivist.NormalizedPage) error {
	title, ok := extract.Title(norm.Meta, r.migrator.Roster.Names())
	if !ok {
		title = titleFromFilename(page.Name)
	}
	if title == "" {
		return archivist.Errorf(archivist.EINVALID, "no usable title")
	}

	artist := r.artistFor(classify.Attribution(page.Name, title))
	albumType := classify.AlbumType(page.Name, title, norm.Text)

	year, ok := extract.Year(norm)
	if !ok {
		year = archivist.UnknownYear
	}
	label, ok := extract.Label(norm)
	if !ok {
		label = archivist.UnknownLabel
	}
	catalog, _ := extract.CatalogNumber(norm)
	description, ok := extract.Description(norm)
	if !ok {
		description = fmt.Sprintf("%s by %s", title, artist.Name)
	}

	slug, err := r.registry.Claim("albums", archivist.Slugify(title))
	if err != nil {
		return err
	}

	cover, additional := classify.SelectCover(norm.Images)
	coverPath := r.catalogImage(cover)
	additionalPaths := make([]string, 0, len(additional))
	for _, img := range additional {
		additionalPaths = append(additionalPaths, r.catalogImage(img))
	}

	ts := r.now().UTC()
	album := &archivist.Album{
		ID:               uuid.NewString(),
		Title:            title,
		Slug:             slug,
		ArtistID:         artist.ID,
		Type:             albumType,
		ReleaseYear:      year,
		ReleaseDate:      fmt.Sprintf("%d-01-01", year),
		RecordLabel:      label,
		CatalogNumber:    catalog,
		Description:      description,
		CoverImage:       coverPath,
		AdditionalImages: additionalPaths,
		Tracks:           extract.Tracks(norm),
		SourceFile:       page.Path,
		SEO: archivist.SEO{
			MetaTitle:       fmt.Sprintf("%s - %s", title, artist.Name),
			MetaDescription: truncate(description, maxMetaDescription),
			Keywords:        keywordsFor(norm.Meta, title, artist.Name, string(albumType)),
		},
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if err := album.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.archive.Albums[album.ID] = album
	if _, ok := r.archive.URLMapping[page.Path]; !ok {
		r.archive.URLMapping[page.Path] = "/albums/" + slug
	}
	return nil
}

// titleFromFilename derives a display title from a page filename when
// the page itself yields none.
func titleFromFilename(name string) string {
	stem := strings.TrimSuffix(path.Base(name), path.Ext(name))
	stem = strings.NewReplacer("_", " ", "-", " ").Replace(stem)
	return strings.Join(strings.Fields(stem), " ")
}

// keywordsFor prefers the page's own keywords and falls back to terms
// derived from the record.
func keywordsFor(meta archivist.PageMeta, terms ...string) []string {
	if len(meta.Keywords) > 0 {
		return meta.Keywords
	}
	keywords := make([]string, 0, len(terms))
	for _, t := range terms {
		if t != "" {
			keywords = append(keywords, strings.ToLower(t))
		}
	}
	return keywords
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
