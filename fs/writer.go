package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/beevik/etree"
	"github.com/ilsedelangerecords/archivist"
)

// Ensure Writer implements archivist.ArchiveWriter at compile time.
var _ archivist.ArchiveWriter = (*Writer)(nil)

// Writer persists an archive as a directory of JSON documents plus the
// sitemap and migration report.
type Writer struct {
	baseDir string
	baseURL string
}

// NewWriter creates a Writer that writes under baseDir. baseURL
// prefixes sitemap locations, e.g. "https://www.ilsedelangerecords.nl".
func NewWriter(baseDir, baseURL string) *Writer {
	return &Writer{
		baseDir: baseDir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// WriteArchive writes every record collection and derived artifact.
func (w *Writer) WriteArchive(ctx context.Context, archive *archivist.Archive) error {
	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	documents := []struct {
		name string
		data any
	}{
		{"artists.json", archive.Artists},
		{"albums.json", archive.Albums},
		{"lyrics.json", archive.Lyrics},
		{"live_performances.json", archive.LivePerformances},
		{"images.json", archive.Images},
		{"url_mapping.json", archive.URLMapping},
		{"image_mapping.json", archive.ImageMapping},
		{"summary.json", archive.Summary},
	}
	for _, doc := range documents {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.writeJSON(doc.name, doc.data); err != nil {
			return err
		}
	}

	if err := w.writeSitemap(archive); err != nil {
		return err
	}
	return w.writeReport(archive)
}

func (w *Writer) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	return os.WriteFile(filepath.Join(w.baseDir, name), append(data, '\n'), 0644)
}

// writeSitemap emits one sitemap entry per mapped URL, sorted and
// deduplicated.
func (w *Writer) writeSitemap(archive *archivist.Archive) error {
	seen := make(map[string]bool)
	var targets []string
	for _, target := range archive.URLMapping {
		if !seen[target] {
			seen[target] = true
			targets = append(targets, target)
		}
	}
	sort.Strings(targets)

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", "http://www.sitemaps.org/schemas/sitemap/0.9")
	for _, target := range targets {
		urlset.CreateElement("url").CreateElement("loc").SetText(w.baseURL + target)
	}
	doc.Indent(2)
	return doc.WriteToFile(filepath.Join(w.baseDir, "sitemap.xml"))
}

// writeReport renders a human-readable markdown summary of the run.
func (w *Writer) writeReport(archive *archivist.Archive) error {
	s := archive.Summary
	var b strings.Builder
	b.WriteString("# Migration Report\n\n")
	b.WriteString("## Records\n\n")
	fmt.Fprintf(&b, "- Pages processed: %d\n", s.Pages)
	fmt.Fprintf(&b, "- Artists: %d\n", s.Artists)
	fmt.Fprintf(&b, "- Albums: %d\n", s.Albums)
	fmt.Fprintf(&b, "- Lyrics: %d\n", s.Lyrics)
	fmt.Fprintf(&b, "- Live performances: %d\n", s.LivePerformances)
	fmt.Fprintf(&b, "- Images: %d\n", s.Images)
	fmt.Fprintf(&b, "- URL mappings: %d\n", len(archive.URLMapping))

	if len(s.Failed) > 0 {
		b.WriteString("\n## Failed files\n\n")
		for _, f := range s.Failed {
			fmt.Fprintf(&b, "- `%s`: %s\n", f.Name, f.Reason)
		}
	}

	return os.WriteFile(filepath.Join(w.baseDir, "migration_report.md"), []byte(b.String()), 0644)
}
