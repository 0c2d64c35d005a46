package archivist

import "time"

// ImageType categorizes an image asset by its role.
type ImageType string

// Image type constants.
const (
	ImageAlbumCover  ImageType = "album_cover"
	ImagePackaging   ImageType = "packaging"
	ImagePromotional ImageType = "promotional"
	ImageArtwork     ImageType = "artwork"
)

// UsageRights is the fixed rights label applied to every asset.
const UsageRights = "fan_site"

// PlaceholderImage is the cover reference used when a page lists no
// usable images.
const PlaceholderImage = "/images/placeholder.svg"

// ImageAsset represents a catalogued image file.
type ImageAsset struct {
	ID               string    `json:"id"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"originalFilename"`
	FilePath         string    `json:"filePath"`
	FileSize         int64     `json:"fileSize"`
	Width            int       `json:"width"`
	Height           int       `json:"height"`
	Type             ImageType `json:"imageType"`
	AltText          string    `json:"altText"`
	UsageRights      string    `json:"usageRights"`
	Tags             []string  `json:"tags"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ImageInfo is the resolvable path/size/dimensions triple supplied by
// an ImageSource for an existing image.
type ImageInfo struct {
	Path   string
	Size   int64
	Width  int
	Height int
}

// ImageSource resolves image references against actual files.
// Implementations hide filesystem layout and decoding.
type ImageSource interface {
	// Stat reports whether the referenced image exists and, if so,
	// returns its resolved path, byte size, and pixel dimensions.
	Stat(ref string) (*ImageInfo, bool)
}
