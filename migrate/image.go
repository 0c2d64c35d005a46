package migrate

import (
	"fmt"
	"path"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/ilsedelangerecords/archivist"
	"github.com/ilsedelangerecords/archivist/classify"
)

// catalogImage resolves an image reference into a catalogued asset and
// returns the web path records should point at. Unresolvable
// references pass through unchanged so records never lose their
// pointer; the placeholder passes through untouched. The first worker
// to catalog a reference wins, later ones reuse its mapping.
func (r *run) catalogImage(ref string) string {
	if ref == "" || ref == archivist.PlaceholderImage {
		return ref
	}

	r.mu.Lock()
	if m, ok := r.archive.ImageMapping[ref]; ok {
		r.mu.Unlock()
		return m.WebPath
	}
	r.mu.Unlock()

	if r.migrator.Images == nil {
		return ref
	}
	info, ok := r.migrator.Images.Stat(ref)
	if !ok {
		r.logger.Warn("image reference unresolved", "ref", ref)
		return ref
	}

	base := path.Base(ref)
	newName := safeImageName(ref)
	ts := r.now().UTC()
	asset := &archivist.ImageAsset{
		ID:               uuid.NewString(),
		Filename:         newName,
		OriginalFilename: base,
		FilePath:         info.Path,
		FileSize:         info.Size,
		Width:            info.Width,
		Height:           info.Height,
		Type:             classify.ImageType(base),
		AltText:          classify.AltText(base),
		UsageRights:      archivist.UsageRights,
		Tags:             classify.ImageTags(base),
		CreatedAt:        ts,
		UpdatedAt:        ts,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.archive.ImageMapping[ref]; ok {
		// Another worker catalogued the same reference meanwhile.
		return m.WebPath
	}
	mapping := archivist.ImageMapping{
		NewPath: "public/images/" + newName,
		AssetID: asset.ID,
		WebPath: "/images/" + newName,
	}
	r.archive.Images[asset.ID] = asset
	r.archive.ImageMapping[ref] = mapping
	return mapping.WebPath
}

// safeImageName builds a collision-safe output filename: the slugified
// stem plus a short hash of the full original reference, so distinct
// source paths with identical basenames never clobber each other.
func safeImageName(ref string) string {
	base := path.Base(ref)
	ext := strings.ToLower(path.Ext(base))
	stem := archivist.Slugify(strings.TrimSuffix(base, path.Ext(base)))
	if stem == "" {
		stem = "image"
	}
	return fmt.Sprintf("%s-%08x%s", stem, uint32(xxhash.Sum64String(ref)), ext)
}
