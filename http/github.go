package http

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ilsedelangerecords/archivist"
	"github.com/ilsedelangerecords/archivist/fs"
)

// imageExts are the asset formats mirrored alongside pages.
var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".svg": true, ".webp": true,
}

// entry is one item of a GitHub contents API directory listing.
type entry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type"`
	Size        int64  `json:"size"`
	DownloadURL string `json:"download_url"`
}

// Ensure RepoSource implements archivist.PageSource at compile time.
var _ archivist.PageSource = (*RepoSource)(nil)

// RepoSource enumerates legacy pages straight from a GitHub
// repository, applying the same content-page filter as the directory
// source.
type RepoSource struct {
	client *Client
	repo   string
	dir    string
}

// NewRepoSource creates a RepoSource for the "owner/name" repository,
// reading pages under dir ("" for the repository root).
func NewRepoSource(client *Client, repo, dir string) *RepoSource {
	return &RepoSource{client: client, repo: repo, dir: dir}
}

// Pages lists and downloads every content page in the repository,
// sorted by path.
func (s *RepoSource) Pages(ctx context.Context) ([]*archivist.SourcePage, error) {
	entries, err := s.client.walk(ctx, s.repo, s.dir)
	if err != nil {
		return nil, err
	}

	var pages []*archivist.SourcePage
	for _, e := range entries {
		if fs.SkipPage(e.Name, e.Size) {
			continue
		}
		data, err := s.client.get(ctx, e.DownloadURL)
		if err != nil {
			return nil, fmt.Errorf("downloading %s: %w", e.Path, err)
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(e.Path, s.dir), "/")
		pages = append(pages, &archivist.SourcePage{
			Name:   e.Name,
			Path:   rel,
			Markup: string(data),
		})
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].Path < pages[j].Path })
	return pages, nil
}

// Mirror downloads every page and image under dir in the repository
// into dest, preserving relative paths. The result is a tree the
// directory source and image source can run against offline.
func (c *Client) Mirror(ctx context.Context, repo, dir, dest string) error {
	entries, err := c.walk(ctx, repo, dir)
	if err != nil {
		return err
	}

	for _, e := range entries {
		ext := strings.ToLower(path.Ext(e.Name))
		isPage := ext == ".html" || ext == ".htm"
		if !isPage && !imageExts[ext] {
			continue
		}

		data, err := c.get(ctx, e.DownloadURL)
		if err != nil {
			return fmt.Errorf("downloading %s: %w", e.Path, err)
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(e.Path, dir), "/")
		target := filepath.Join(dest, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0644); err != nil {
			return err
		}
	}
	return nil
}

// walk lists files recursively via the contents API.
func (c *Client) walk(ctx context.Context, repo, dir string) ([]entry, error) {
	listURL := fmt.Sprintf("%s/repos/%s/contents", c.apiBase, repo)
	if dir != "" {
		listURL += "/" + dir
	}

	data, err := c.get(ctx, listURL)
	if err != nil {
		return nil, err
	}
	var listing []entry
	if err := json.Unmarshal(data, &listing); err != nil {
		return nil, fmt.Errorf("decoding listing for %q: %w", dir, err)
	}

	var files []entry
	for _, e := range listing {
		switch e.Type {
		case "file":
			files = append(files, e)
		case "dir":
			sub, err := c.walk(ctx, repo, e.Path)
			if err != nil {
				return nil, err
			}
			files = append(files, sub...)
		}
	}
	return files, nil
}
