// Package goquery implements the text normalizer on goquery's HTML DOM.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ilsedelangerecords/archivist"
	"golang.org/x/net/html"
)

// Ensure Normalizer implements archivist.Normalizer at compile time.
var _ archivist.Normalizer = (*Normalizer)(nil)

// Normalizer strips markup noise from legacy pages: scripts, styles,
// and navigation elements are removed, entities are decoded, and
// whitespace is collapsed. It is a pure function over its input and
// never fails; malformed markup degrades to best-effort extraction.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize converts raw markup into the markup-free page view.
func (n *Normalizer) Normalize(markup string) *archivist.NormalizedPage {
	page := &archivist.NormalizedPage{}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		// The HTML parser tolerates malformed markup; an error here
		// means the input could not be read at all.
		return page
	}

	page.Meta = extractMeta(doc)
	page.Images = extractImages(doc)

	doc.Find("script, style, nav").Remove()
	doc.Find("[class*=nav], [class*=menu]").Remove()

	// The legacy site keeps page content in div#divMain; fall back to
	// the whole body when it is absent.
	container := doc.Find("#divMain")
	if container.Length() == 0 {
		container = doc.Find("body")
	}

	var lines []string
	for _, node := range container.Nodes {
		collectLines(node, &lines)
	}
	page.Lines = lines
	page.Text = strings.Join(lines, " ")
	return page
}

// collectLines walks text nodes in document order, emitting one
// trimmed, internally collapsed line per text segment.
func collectLines(n *html.Node, out *[]string) {
	if n.Type == html.TextNode {
		for _, raw := range strings.Split(n.Data, "\n") {
			if line := strings.Join(strings.Fields(raw), " "); line != "" {
				*out = append(*out, line)
			}
		}
		return
	}
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectLines(c, out)
	}
}

func extractMeta(doc *goquery.Document) archivist.PageMeta {
	meta := archivist.PageMeta{
		Title: strings.Join(strings.Fields(doc.Find("title").First().Text()), " "),
	}
	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		meta.Description = strings.TrimSpace(desc)
	}
	if kw, ok := doc.Find(`meta[name="keywords"]`).Attr("content"); ok {
		for _, k := range strings.Split(kw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				meta.Keywords = append(meta.Keywords, k)
			}
		}
	}
	return meta
}

// extractImages lists referenced image paths in document order,
// URL-unescaped, with the template's navigation and script assets
// filtered out and duplicates dropped.
func extractImages(doc *goquery.Document) []string {
	seen := make(map[string]bool)
	var images []string

	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src, ok := sel.Attr("src")
		if !ok || src == "" {
			return
		}
		if unescaped, err := url.PathUnescape(src); err == nil {
			src = unescaped
		}
		if strings.HasPrefix(src, "wpimages/") || strings.HasPrefix(src, "wpscripts/") {
			return
		}
		if !seen[src] {
			seen[src] = true
			images = append(images, src)
		}
	})

	return images
}
