package fs

import (
	"image"
	"os"
	"path/filepath"

	// Registered decoders for the formats the legacy site uses.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/ilsedelangerecords/archivist"
)

// Ensure DirImageSource implements archivist.ImageSource at compile time.
var _ archivist.ImageSource = (*DirImageSource)(nil)

// DirImageSource resolves image references against files under a root
// directory. Only the image header is decoded; pixels are never read.
type DirImageSource struct {
	root string
}

// NewDirImageSource creates a DirImageSource rooted at root.
func NewDirImageSource(root string) *DirImageSource {
	return &DirImageSource{root: root}
}

// Stat reports whether the referenced image exists under the root and
// returns its size and dimensions. Dimensions are zero when the file
// exists but is not a decodable image.
func (s *DirImageSource) Stat(ref string) (*archivist.ImageInfo, bool) {
	p := filepath.Join(s.root, filepath.FromSlash(ref))
	fi, err := os.Stat(p)
	if err != nil || fi.IsDir() {
		return nil, false
	}

	info := &archivist.ImageInfo{
		Path: p,
		Size: fi.Size(),
	}

	f, err := os.Open(p)
	if err != nil {
		return nil, false
	}
	defer f.Close()
	if cfg, _, err := image.DecodeConfig(f); err == nil {
		info.Width = cfg.Width
		info.Height = cfg.Height
	}
	return info, true
}
