package fern

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"path"
	"slices"
	"strings"
)

// ErrRegionNotFound is returned when an atlas has no region of the
// requested name.
var ErrRegionNotFound = errors.New("fern: atlas region not found")

// AtlasRegion describes a named sub-rectangle within an atlas page.
type AtlasRegion struct {
	Page int             // page index
	Rect image.Rectangle // sub-image rect within the page
	// OriginalW and OriginalH are the untrimmed size as authored.
	OriginalW, OriginalH int
	// OffsetX and OffsetY are the trim offsets inside the original size.
	OffsetX, OffsetY int
	// Rotated is true if the region is stored 90 degrees clockwise.
	Rotated bool
}

// Atlas is a Loadable TexturePacker sprite sheet: a JSON descriptor plus
// one or more page images read from a file system. Both the hash format
// (a single "frames" object with "meta.image") and the array format
// ("textures" with per-page frame lists) are recognized.
type Atlas struct {
	fsys    fs.FS
	path    string
	pages   []image.Image
	regions map[string]AtlasRegion
}

// NewAtlas returns an unloaded atlas for the JSON descriptor at path.
// Page image paths are resolved relative to the descriptor.
func NewAtlas(fsys fs.FS, path string) *Atlas {
	return &Atlas{fsys: fsys, path: path}
}

// --- JSON structure types ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame            jsonRect `json:"frame"`
	Rotated          bool     `json:"rotated"`
	Trimmed          bool     `json:"trimmed"`
	SpriteSourceSize jsonRect `json:"spriteSourceSize"`
	SourceSize       jsonSize `json:"sourceSize"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

type jsonAtlas struct {
	Frames   map[string]jsonFrame `json:"frames"`
	Textures []jsonTexturePage    `json:"textures"`
	Meta     struct {
		Image string `json:"image"`
	} `json:"meta"`
}

// Load reads the descriptor and decodes every page image.
func (a *Atlas) Load(ctx context.Context) error {
	data, err := fs.ReadFile(a.fsys, a.path)
	if err != nil {
		return fmt.Errorf("fern: read atlas %s: %w", a.path, err)
	}
	regions, pageFiles, err := parseAtlas(data)
	if err != nil {
		return fmt.Errorf("fern: atlas %s: %w", a.path, err)
	}

	dir := path.Dir(a.path)
	pages := make([]image.Image, len(pageFiles))
	for i, name := range pageFiles {
		src := NewImageSource(a.fsys, path.Join(dir, name))
		if err := src.Load(ctx); err != nil {
			return err
		}
		pages[i] = src.Image()
	}
	a.pages, a.regions = pages, regions
	return nil
}

// parseAtlas decodes a TexturePacker descriptor into regions and the page
// image names in page order.
func parseAtlas(data []byte) (map[string]AtlasRegion, []string, error) {
	var doc jsonAtlas
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	regions := make(map[string]AtlasRegion)
	switch {
	case doc.Textures != nil:
		pages := make([]string, len(doc.Textures))
		for i, tex := range doc.Textures {
			pages[i] = tex.Image
			for name, f := range tex.Frames {
				regions[name] = frameToRegion(f, i)
			}
		}
		return regions, pages, nil
	case doc.Frames != nil:
		for name, f := range doc.Frames {
			regions[name] = frameToRegion(f, 0)
		}
		if doc.Meta.Image == "" {
			return nil, nil, errors.New(`hash format requires "meta.image"`)
		}
		return regions, []string{doc.Meta.Image}, nil
	default:
		return nil, nil, errors.New(`neither "frames" nor "textures" key`)
	}
}

func frameToRegion(f jsonFrame, page int) AtlasRegion {
	return AtlasRegion{
		Page:      page,
		Rect:      image.Rect(f.Frame.X, f.Frame.Y, f.Frame.X+f.Frame.W, f.Frame.Y+f.Frame.H),
		OriginalW: f.SourceSize.W,
		OriginalH: f.SourceSize.H,
		OffsetX:   f.SpriteSourceSize.X,
		OffsetY:   f.SpriteSourceSize.Y,
		Rotated:   f.Rotated,
	}
}

// IsLoaded reports whether Load succeeded.
func (a *Atlas) IsLoaded() bool {
	return a.regions != nil
}

// Region returns the named region.
func (a *Atlas) Region(name string) (AtlasRegion, bool) {
	r, ok := a.regions[name]
	return r, ok
}

// Names returns every region name with the given prefix, sorted. Frame
// sequences such as "walk_00", "walk_01" come back in order.
func (a *Atlas) Names(prefix string) []string {
	var out []string
	for name := range a.regions {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Sprite returns a sprite of the named region. Rotated regions are not
// supported.
func (a *Atlas) Sprite(name string) (*Sprite, error) {
	if !a.IsLoaded() {
		return nil, fmt.Errorf("fern: atlas %s: %w", a.path, ErrNotLoaded)
	}
	r, ok := a.regions[name]
	if !ok {
		return nil, fmt.Errorf("fern: %q: %w", name, ErrRegionNotFound)
	}
	if r.Rotated {
		return nil, fmt.Errorf("fern: atlas region %q is rotated", name)
	}
	if r.Page < 0 || r.Page >= len(a.pages) {
		return nil, fmt.Errorf("fern: atlas region %q: page %d out of range", name, r.Page)
	}
	page, ok := a.pages[r.Page].(subImager)
	if !ok {
		return nil, fmt.Errorf("fern: atlas page %d cannot be sliced", r.Page)
	}
	return NewSprite(page.SubImage(r.Rect)), nil
}

// Animation builds an animation from every region with the given prefix,
// in name order.
func (a *Atlas) Animation(prefix string, frameDuration float64) (*Animation, error) {
	names := a.Names(prefix)
	if len(names) == 0 {
		return nil, fmt.Errorf("fern: prefix %q: %w", prefix, ErrRegionNotFound)
	}
	frames := make([]Graphic, len(names))
	for i, name := range names {
		s, err := a.Sprite(name)
		if err != nil {
			return nil, err
		}
		frames[i] = s
	}
	return NewAnimation(frameDuration, frames...), nil
}

var _ Loadable = (*Atlas)(nil)
