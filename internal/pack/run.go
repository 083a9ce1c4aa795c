package pack

import (
	"fmt"

	"github.com/woozymasta/spritesqueeze/internal/packer"
	"github.com/woozymasta/spritesqueeze/internal/rimage"
)

// Run packs every PNG sprite in dir into a single bin according to opts.
//
// It tries all five MaxRects heuristics in order and keeps the one with
// the highest occupancy; on a tie the earlier heuristic in the sequence
// wins. Sprites are re-opened and re-trimmed during rendering, and the
// result is asserted to match the sizes the heuristics packed against —
// a mismatch means the trim step is non-deterministic and is reported as
// an internal error rather than silently producing a corrupt atlas.
func Run(dir string, opts Options) (*Result, error) {
	sprites, err := scanAndTrim(dir, opts)
	if err != nil {
		return nil, err
	}

	sizes := make([]packer.Size, len(sprites))
	for i, s := range sprites {
		sizes[i] = s.trimmedSize
	}

	var (
		bestPlacements []packer.Placement
		bestOccupancy  float64
		bestRule       packer.Rule
		haveBest       bool
	)

	for _, rule := range packer.Rules {
		placements, occupancy, err := packer.Pack(opts.Width, opts.Height, sizes, rule, opts.AllowRotations)
		if err != nil {
			opts.logf("heuristic %s: %v", rule, err)
			continue
		}
		opts.logf("heuristic %s: occupancy %.4f", rule, occupancy)
		if !haveBest || occupancy > bestOccupancy {
			haveBest = true
			bestOccupancy = occupancy
			bestPlacements = placements
			bestRule = rule
		}
	}

	if !haveBest {
		return nil, fmt.Errorf("%w: no heuristic could place all %d sprites into %dx%d",
			ErrPackingFailed, len(sprites), opts.Width, opts.Height)
	}
	opts.logf("selected heuristic %s with occupancy %.4f", bestRule, bestOccupancy)

	atlas, err := rimage.New(opts.Width, opts.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: creating atlas canvas: %v", ErrIO, err)
	}

	entries := make([]SpriteEntry, len(sprites))
	for i, s := range sprites {
		placement := bestPlacements[i]
		opts.logf("rendering %s at (%d,%d) rotated=%v", s.sourcePath, placement.Left, placement.Top, placement.Rotated)

		img, err := rimage.Open(s.sourcePath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScan, err)
		}

		_, _, hadOpaque := img.Trim()
		if !hadOpaque || img.Width() != s.trimmedSize.W || img.Height() != s.trimmedSize.H {
			return nil, fmt.Errorf("%w: %q re-trimmed to %dx%d (opaque=%v), expected %dx%d",
				ErrPlacementAssertion, s.sourcePath, img.Width(), img.Height(), hadOpaque,
				s.trimmedSize.W, s.trimmedSize.H)
		}

		if opts.Border {
			img.AddBorder()
		}
		if placement.Rotated {
			img.Rotate90CW()
		}

		if err := rimage.Composite(atlas, img, placement.Left, placement.Top); err != nil {
			return nil, fmt.Errorf("%w: compositing %q: %v", ErrIO, s.sourcePath, err)
		}

		entries[i] = SpriteEntry{
			ShortName:   s.shortName,
			SourcePath:  s.sourcePath,
			TrimmedSize: s.trimmedSize,
			Trim:        s.trim,
			Placement:   placement,
		}
	}

	result := &Result{
		Width:     opts.Width,
		Height:    opts.Height,
		Atlas:     atlas,
		Sprites:   entries,
		Occupancy: bestOccupancy,
		Rule:      bestRule,
	}

	if opts.Verbose {
		result.ContentHash = contentHash(result)
		opts.logf("content hash %016x", result.ContentHash)
	}

	return result, nil
}
