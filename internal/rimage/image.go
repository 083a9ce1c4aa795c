// Package rimage implements the RGBA8 image primitives the packer and
// compositor are built on: create, open, save, alpha-trim, 90°-rotate,
// verbatim composite and border-stamp.
//
// Pixels are stored non-premultiplied, 8 bits per channel, matching the
// wire format PNG sprites arrive in. Composite is an overwrite, never a
// source-over blend — sprites are assumed already alpha-trimmed, so there
// is no transparent fringe to blend away.
package rimage

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	_ "github.com/woozymasta/png" // registers a faster PNG decoder with image.Decode
)

// Image is an RGBA8, non-premultiplied-alpha pixel grid.
type Image struct {
	pix *image.NRGBA
}

// New creates a w×h fully-transparent image. w and h must be positive.
func New(w, h int) (*Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("rimage.New: width and height must be positive, got %dx%d", w, h)
	}
	return &Image{pix: image.NewNRGBA(image.Rect(0, 0, w, h))}, nil
}

// Open decodes a PNG file into an RGBA8 image.
func Open(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %v", ErrDecode, path, err)
	}
	defer func() { _ = f.Close() }()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %q: %v", ErrDecode, path, err)
	}

	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)

	return &Image{pix: dst}, nil
}

// Save encodes the image as a PNG file at path.
func (im *Image) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %q: %v", ErrEncode, path, err)
	}
	defer func() { _ = f.Close() }()

	if err := png.Encode(f, im.pix); err != nil {
		return fmt.Errorf("%w: encode %q: %v", ErrEncode, path, err)
	}

	return nil
}

// Width returns the image's width in pixels.
func (im *Image) Width() int { return im.pix.Rect.Dx() }

// Height returns the image's height in pixels.
func (im *Image) Height() int { return im.pix.Rect.Dy() }

// NRGBA exposes the underlying pixel buffer for callers that need direct
// stdlib image.Image interop (e.g. handing the atlas to png.Encode).
func (im *Image) NRGBA() *image.NRGBA { return im.pix }

// Bytes returns the raw pixel bytes, useful for computing a content hash
// of the rendered atlas.
func (im *Image) Bytes() []byte { return im.pix.Pix }
