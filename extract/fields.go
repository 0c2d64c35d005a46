// Package extract implements best-effort field extraction from
// normalized page text. Every extractor is a pure, order-independent
// function returning an optional value; callers supply defaults when
// the value is absent. Heuristic pattern matching against free-form
// legacy HTML carries no correctness guarantee.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ilsedelangerecords/archivist"
)

// Year extraction bounds for bare 4-digit tokens.
const (
	minYear = 1990
	maxYear = 2025
)

var (
	siteSuffixRe = regexp.MustCompile(`(?i)\s*-\s*www\.ilsedelangerecords\.nl.*$`)
	qualifierRe  = regexp.MustCompile(`(?i)\s+(lyrics?|lyric|album|single)\s*$`)
	whitespaceRe = regexp.MustCompile(`\s+`)

	releasedYearRe = regexp.MustCompile(`(?i)Released:?\s*(?:\w+\s+)?(\d{4})`)
	explicitYearRe = regexp.MustCompile(`(?i)Year:?\s*(\d{4})`)
	bareYearRe     = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)

	recordLabelRe  = regexp.MustCompile(`(?i)Record\s+label:?\s*([^\n]+)`)
	labelRe        = regexp.MustCompile(`(?i)\bLabel:\s*([^\n]+)`)
	labelHeurRe    = regexp.MustCompile(`\b([A-Z][a-z]+\s+Records?)\b`)
	catalogRe      = regexp.MustCompile(`(?i)Catalog\s+number:?\s*([^\n]+)`)
	catalogAbbrvRe = regexp.MustCompile(`(?i)Cat\.?\s*no\.?:?\s*([^\n]+)`)
	bareCatalogRe  = regexp.MustCompile(`\b(\d{6,})\b`)
	letterDigitRe  = regexp.MustCompile(`\b([A-Z]{2,}[0-9]+)\b`)
)

// Title cleans a page title into a record title: the site suffix and
// trailing qualifier words are stripped, as is any known artist-name
// prefix, and whitespace is collapsed. Returns false when nothing
// remains.
func Title(meta archivist.PageMeta, artistNames []string) (string, bool) {
	title := strings.TrimSpace(meta.Title)
	if title == "" {
		return "", false
	}

	title = siteSuffixRe.ReplaceAllString(title, "")

	for _, name := range artistNames {
		lower := strings.ToLower(title)
		prefix := strings.ToLower(name)
		if strings.HasPrefix(lower, prefix) {
			title = strings.TrimLeft(title[len(prefix):], " \t-")
		}
	}

	// Qualifiers can stack ("Hurricane single lyrics"), so strip until
	// stable.
	for {
		stripped := qualifierRe.ReplaceAllString(title, "")
		if stripped == title {
			break
		}
		title = stripped
	}

	title = strings.TrimSpace(whitespaceRe.ReplaceAllString(title, " "))
	switch strings.ToLower(title) {
	case "", "lyric", "lyrics", "album", "single":
		return "", false
	}
	return title, true
}

// Year finds a release year: an explicit "Released: YYYY" pattern
// first, then "Year: YYYY", then any bare 4-digit token within
// [1990, 2025]. First match wins.
func Year(page *archivist.NormalizedPage) (int, bool) {
	for _, re := range []*regexp.Regexp{releasedYearRe, explicitYearRe} {
		if m := re.FindStringSubmatch(page.Text); m != nil {
			year, err := strconv.Atoi(m[1])
			if err == nil {
				return year, true
			}
		}
	}
	for _, m := range bareYearRe.FindAllStringSubmatch(page.Text, -1) {
		year, err := strconv.Atoi(m[1])
		if err == nil && year >= minYear && year <= maxYear {
			return year, true
		}
	}
	return 0, false
}

// Label finds a record label: "Record label:" or "Label:" prefixed
// lines first, else a "<Capitalized Word> Records" token anywhere in
// the text.
func Label(page *archivist.NormalizedPage) (string, bool) {
	lines := strings.Join(page.Lines, "\n")
	for _, re := range []*regexp.Regexp{recordLabelRe, labelRe} {
		if m := re.FindStringSubmatch(lines); m != nil {
			label := strings.TrimSpace(whitespaceRe.ReplaceAllString(m[1], " "))
			if label != "" {
				return label, true
			}
		}
	}
	if m := labelHeurRe.FindStringSubmatch(page.Text); m != nil {
		return m[1], true
	}
	return "", false
}

// CatalogNumber finds a catalog number: explicit "Catalog number:" or
// "Cat. no.:" prefixed lines first, else a bare token of six or more
// digits, else an uppercase-letters-followed-by-digits token.
func CatalogNumber(page *archivist.NormalizedPage) (string, bool) {
	lines := strings.Join(page.Lines, "\n")
	for _, re := range []*regexp.Regexp{catalogRe, catalogAbbrvRe} {
		if m := re.FindStringSubmatch(lines); m != nil {
			number := strings.TrimSpace(m[1])
			if number != "" {
				return number, true
			}
		}
	}
	for _, re := range []*regexp.Regexp{bareCatalogRe, letterDigitRe} {
		if m := re.FindStringSubmatch(page.Text); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// Description prefers the page's meta description; otherwise it joins
// the first two substantial text blocks. Blocks shorter than 21
// characters or starting with a digit are skipped to avoid picking up
// track listings.
func Description(page *archivist.NormalizedPage) (string, bool) {
	if desc := strings.TrimSpace(page.Meta.Description); desc != "" {
		return desc, true
	}

	var blocks []string
	for _, line := range page.Lines {
		line = strings.TrimSpace(line)
		if len(line) <= 20 {
			continue
		}
		if line[0] >= '0' && line[0] <= '9' {
			continue
		}
		blocks = append(blocks, line)
		if len(blocks) == 2 {
			break
		}
	}
	if len(blocks) == 0 {
		return "", false
	}
	return strings.Join(blocks, " "), true
}
