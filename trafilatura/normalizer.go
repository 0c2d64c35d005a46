// Package trafilatura implements the text normalizer on go-trafilatura's
// boilerplate-stripping content extraction. It yields cleaner text than
// the DOM-based normalizer on template-heavy pages, at the cost of
// sometimes dropping short content blocks.
package trafilatura

import (
	"net/url"
	"strings"

	"github.com/ilsedelangerecords/archivist"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Normalizer implements archivist.Normalizer at compile time.
var _ archivist.Normalizer = (*Normalizer)(nil)

// Normalizer wraps go-trafilatura to extract main content from markup.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize converts raw markup into the markup-free page view.
func (n *Normalizer) Normalize(markup string) *archivist.NormalizedPage {
	page := &archivist.NormalizedPage{}
	if markup == "" {
		return page
	}

	page.Images = extractImages(markup)

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(markup), opts)
	if err != nil {
		// Pages trafilatura rejects outright still normalize, just
		// without text content.
		return page
	}

	for _, raw := range strings.Split(result.ContentText, "\n") {
		if line := strings.Join(strings.Fields(raw), " "); line != "" {
			page.Lines = append(page.Lines, line)
		}
	}
	page.Text = strings.Join(page.Lines, " ")
	page.Meta = archivist.PageMeta{
		Title:       strings.TrimSpace(result.Metadata.Title),
		Description: strings.TrimSpace(result.Metadata.Description),
	}
	return page
}

// extractImages lists image references from the raw markup, since
// trafilatura's content extraction drops them. Filtering matches the
// DOM-based normalizer: template assets out, duplicates dropped,
// document order preserved.
func extractImages(markup string) []string {
	node, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var images []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "img" {
			for _, attr := range n.Attr {
				if attr.Key != "src" || attr.Val == "" {
					continue
				}
				src := attr.Val
				if unescaped, err := url.PathUnescape(src); err == nil {
					src = unescaped
				}
				if strings.HasPrefix(src, "wpimages/") || strings.HasPrefix(src, "wpscripts/") {
					continue
				}
				if !seen[src] {
					seen[src] = true
					images = append(images, src)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(node)
	return images
}
