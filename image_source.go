package fern

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ImageSource is a Loadable image read from a file system. PNG, JPEG, BMP,
// and WebP are recognized.
type ImageSource struct {
	fsys fs.FS
	path string
	img  image.Image
}

// NewImageSource returns an unloaded source for path within fsys.
func NewImageSource(fsys fs.FS, path string) *ImageSource {
	return &ImageSource{fsys: fsys, path: path}
}

// Path returns the source path.
func (s *ImageSource) Path() string {
	return s.path
}

// Load reads and decodes the image.
func (s *ImageSource) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := s.fsys.Open(s.path)
	if err != nil {
		return fmt.Errorf("fern: open image %s: %w", s.path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("fern: decode image %s: %w", s.path, err)
	}
	s.img = img
	return nil
}

// IsLoaded reports whether Load succeeded.
func (s *ImageSource) IsLoaded() bool {
	return s.img != nil
}

// Image returns the decoded image, or nil before Load.
func (s *ImageSource) Image() image.Image {
	return s.img
}

// ToSprite returns a sprite of the decoded image.
func (s *ImageSource) ToSprite() (*Sprite, error) {
	if s.img == nil {
		return nil, fmt.Errorf("fern: image %s: %w", s.path, ErrNotLoaded)
	}
	return NewSprite(s.img), nil
}
