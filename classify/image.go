package classify

import (
	"path"
	"strings"
	"unicode"

	"github.com/ilsedelangerecords/archivist"
)

// coverExclude disqualifies a front/cover candidate that is actually
// the back, inlay, booklet, or disc shot.
var coverExclude = []string{"back", "inlay", "booklet", "disc"}

// SelectCover picks the representative cover image from a page's
// referenced images: the first path containing "front" or "cover" and
// none of the exclusion words, else the first referenced image, else
// the placeholder. All remaining images are returned as additional
// images with order preserved.
func SelectCover(images []string) (cover string, additional []string) {
	if len(images) == 0 {
		return archivist.PlaceholderImage, nil
	}

	coverIdx := 0
	for i, img := range images {
		if isCoverCandidate(img) {
			coverIdx = i
			break
		}
	}

	additional = make([]string, 0, len(images)-1)
	for i, img := range images {
		if i != coverIdx {
			additional = append(additional, img)
		}
	}
	return images[coverIdx], additional
}

func isCoverCandidate(img string) bool {
	l := strings.ToLower(img)
	if !strings.Contains(l, "front") && !strings.Contains(l, "cover") {
		return false
	}
	for _, word := range coverExclude {
		if strings.Contains(l, word) {
			return false
		}
	}
	return true
}

// tagRules maps filename keywords to asset tags. Unlike the
// classification tables, every matching rule contributes a tag.
var tagRules = []Rule{
	{Category: "album", Keywords: []string{"album"}},
	{Category: "single", Keywords: []string{"single"}},
	{Category: "promotional", Keywords: []string{"promo"}},
	{Category: "limited-edition", Keywords: []string{"limited"}},
	{Category: "cd", Keywords: []string{"cd", "disc"}},
	{Category: "vinyl", Keywords: []string{"vinyl"}},
	{Category: "dvd", Keywords: []string{"dvd"}},
	{Category: "cover-art", Keywords: []string{"cover", "front"}},
	{Category: "back-cover", Keywords: []string{"back"}},
	{Category: "booklet", Keywords: []string{"booklet"}},
}

// ImageTags derives the keyword tag set for an image filename.
func ImageTags(filename string) []string {
	name := strings.ToLower(filename)
	var tags []string
	for _, rule := range tagRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(name, kw) {
				tags = append(tags, rule.Category)
				break
			}
		}
	}
	return tags
}

// AltText derives descriptive alt text from an image filename: the
// stem with separators spaced, digits removed, and words capitalized.
// Filenames that reduce to nothing yield "Album artwork".
func AltText(filename string) string {
	stem := strings.TrimSuffix(path.Base(filename), path.Ext(filename))

	var sb strings.Builder
	for _, r := range stem {
		switch {
		case r == '_' || r == '-':
			sb.WriteRune(' ')
		case r >= '0' && r <= '9':
			// digits dropped
		default:
			sb.WriteRune(r)
		}
	}

	words := strings.Fields(sb.String())
	if len(words) == 0 {
		return "Album artwork"
	}
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
