// Package classify assigns album types, artist attribution, image
// roles, and page kinds from filename, title, and content signals.
//
// All classification runs through a single first-match routine over
// ordered rule tables, so precedence is auditable and testable in
// isolation. Classification is filename/title-driven because the
// legacy markup has no reliable structured artist field.
package classify

import (
	"strings"

	"github.com/ilsedelangerecords/archivist"
)

// Rule pairs a category with the keyword set that selects it.
type Rule struct {
	Category string
	Keywords []string
}

// AlbumTypeRules is the ordered table for album type classification.
var AlbumTypeRules = []Rule{
	{Category: string(archivist.AlbumLive), Keywords: []string{"live", "concert", "tour", "ahoy", "gelredome"}},
	{Category: string(archivist.AlbumSingle), Keywords: []string{"single", "promo", "ep"}},
	{Category: string(archivist.AlbumCompilation), Keywords: []string{"compilation", "collection", "hits", "best", "greatest", "various"}},
	{Category: string(archivist.AlbumSoundtrack), Keywords: []string{"soundtrack", "movie", "film"}},
	{Category: string(archivist.AlbumCollaboration), Keywords: []string{"tcl", "common linnets", "linnets"}},
}

// AttributionRules is the ordered table for artist attribution.
var AttributionRules = []Rule{
	{Category: string(archivist.AttributionVarious), Keywords: []string{
		"kane", "blof", "zucchero", "rosemary", "bosshoss", "paul de leeuw",
		"various artist", "other artist", "artiesten voor", "friends for war",
	}},
	{Category: string(archivist.AttributionDuo), Keywords: []string{"tcl", "common linnets", "linnets"}},
}

// ImageTypeRules is the ordered table for image role classification.
var ImageTypeRules = []Rule{
	{Category: string(archivist.ImageAlbumCover), Keywords: []string{"cover", "front"}},
	{Category: string(archivist.ImageAlbumCover), Keywords: []string{"back", "rear"}},
	{Category: string(archivist.ImageAlbumCover), Keywords: []string{"disc", "cd", "vinyl"}},
	{Category: string(archivist.ImagePackaging), Keywords: []string{"booklet", "inside"}},
	{Category: string(archivist.ImagePromotional), Keywords: []string{"promo"}},
}

// FirstMatch evaluates fields in precedence order against an ordered
// rule table. Within a field, rules are tried in table order and the
// first rule with a contained keyword decides. Empty fields are
// skipped. Returns false when nothing matches.
func FirstMatch(rules []Rule, fields ...string) (string, bool) {
	for _, field := range fields {
		f := strings.ToLower(field)
		if f == "" {
			continue
		}
		for _, rule := range rules {
			for _, kw := range rule.Keywords {
				if strings.Contains(f, kw) {
					return rule.Category, true
				}
			}
		}
	}
	return "", false
}

// AlbumType classifies a release. Precedence is title, then filename,
// then content; unmatched pages default to studio.
func AlbumType(filename, title, content string) archivist.AlbumType {
	if cat, ok := FirstMatch(AlbumTypeRules, title, filename, content); ok {
		return archivist.AlbumType(cat)
	}
	return archivist.AlbumStudio
}

// Attribution resolves which roster artist a page belongs to.
// Unmatched pages default to the primary solo artist.
func Attribution(filename, title string) archivist.Attribution {
	if cat, ok := FirstMatch(AttributionRules, title, filename); ok {
		return archivist.Attribution(cat)
	}
	return archivist.AttributionPrimary
}

// ImageType classifies an image by filename keywords.
func ImageType(filename string) archivist.ImageType {
	if cat, ok := FirstMatch(ImageTypeRules, filename); ok {
		return archivist.ImageType(cat)
	}
	return archivist.ImageArtwork
}
