// Package fs provides filesystem-backed sources and the archive
// writer: it enumerates legacy pages, resolves image files, loads the
// roster configuration, and persists finished archives as JSON
// documents plus redirect and sitemap artifacts.
package fs

import (
	"context"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ilsedelangerecords/archivist"
)

// minPageSize filters out stub pages; anything smaller is template
// chrome without content.
const minPageSize = 500

// skipNames marks non-content pages by filename substring.
var skipNames = []string{
	"index", "navigation", "menu", "template", "disclaimer", "help", "wanted",
}

// SkipPage reports whether a file is not a content page: wrong
// extension, a navigation or template name, or too small to hold
// content. Every page source applies the same rule.
func SkipPage(name string, size int64) bool {
	lower := strings.ToLower(name)
	ext := filepath.Ext(lower)
	if ext != ".html" && ext != ".htm" {
		return true
	}
	for _, skip := range skipNames {
		if strings.Contains(lower, skip) {
			return true
		}
	}
	return size < minPageSize
}

// Ensure DirSource implements archivist.PageSource at compile time.
var _ archivist.PageSource = (*DirSource)(nil)

// DirSource enumerates legacy HTML pages under a directory.
type DirSource struct {
	dir string
}

// NewDirSource creates a DirSource rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// Pages walks the directory and returns every content page, sorted by
// path for deterministic processing order. Navigation, template, and
// stub files are skipped.
func (s *DirSource) Pages(ctx context.Context) ([]*archivist.SourcePage, error) {
	var pages []*archivist.SourcePage

	err := filepath.WalkDir(s.dir, func(p string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		if SkipPage(d.Name(), info.Size()) {
			return nil
		}

		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(s.dir, p)
		if err != nil {
			return err
		}
		pages = append(pages, &archivist.SourcePage{
			Name:   d.Name(),
			Path:   filepath.ToSlash(rel),
			Markup: string(data),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].Path < pages[j].Path })
	return pages, nil
}
