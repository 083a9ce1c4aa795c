// Package pack implements the sprite atlas pack pipeline: scan a
// directory of sprites, alpha-trim each one, run the MaxRects packer once
// per heuristic and keep the best occupancy, then composite the
// trimmed/bordered/rotated sprites into the final bin image.
package pack

import (
	"github.com/woozymasta/spritesqueeze/internal/packer"
	"github.com/woozymasta/spritesqueeze/internal/rimage"
)

// TrimInfo records where a sprite's tight bounding box sat within its
// original, untrimmed image.
type TrimInfo struct {
	OffsetLeft, OffsetTop     int
	OriginWidth, OriginHeight int
}

// SpriteEntry is everything the descriptor emitter needs for one input
// sprite, from directory scan through final placement.
type SpriteEntry struct {
	ShortName   string
	SourcePath  string
	TrimmedSize packer.Size
	Trim        TrimInfo
	Placement   packer.Placement
}

// Options configures one pack invocation.
type Options struct {
	Width, Height  int
	AllowRotations bool
	Border         bool
	Verbose        bool
	Logf           func(format string, args ...any) // nil disables logging
}

func (o Options) logf(format string, args ...any) {
	if o.Verbose && o.Logf != nil {
		o.Logf(format, args...)
	}
}

// Result is the outcome of a successful pack invocation.
type Result struct {
	Width, Height int
	Atlas         *rimage.Image
	Sprites       []SpriteEntry
	Occupancy     float64
	Rule          packer.Rule
	ContentHash   uint64
}
