package mock

import "github.com/ilsedelangerecords/archivist"

var _ archivist.ImageSource = (*ImageSource)(nil)

// ImageSource is a mock implementation of archivist.ImageSource.
type ImageSource struct {
	StatFn func(ref string) (*archivist.ImageInfo, bool)
}

func (s *ImageSource) Stat(ref string) (*archivist.ImageInfo, bool) {
	return s.StatFn(ref)
}
