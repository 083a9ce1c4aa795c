// Package packer implements the MaxRects (Jukka Jylänki) free-rectangle
// bin packer used to place sprites into a fixed-size atlas. Given a bin
// size, a list of rectangle sizes, a heuristic, and whether 90° rotation
// is allowed, Pack produces either a placement for every input (position
// plus rotated flag) and an occupancy ratio, or a failure.
package packer

import "errors"

// ErrUnplaceable is returned when some input cannot be placed under the
// requested heuristic and rotation setting.
var ErrUnplaceable = errors.New("unplaceable")

// Rule selects the heuristic used to choose the next (input, free
// rectangle, orientation) triple. Lower score wins; each rule defines its
// own primary/secondary score.
type Rule int

const (
	BestShortSideFit Rule = iota // BSSF: minimize the smaller leftover side.
	BestLongSideFit               // BLSF: minimize the larger leftover side.
	BestAreaFit                   // BAF: minimize leftover area.
	BottomLeft                    // BL: Tetris-style placement, lowest then leftmost.
	ContactPoint                  // CP: maximize touching perimeter with bin edges/placed rects.
)

// Rules is the fixed sequence the pack pipeline tries, in order, keeping
// whichever produces the highest occupancy.
var Rules = [...]Rule{BestShortSideFit, BestLongSideFit, BestAreaFit, BottomLeft, ContactPoint}

var ruleNames = [...]string{"BestShortSideFit", "BestLongSideFit", "BestAreaFit", "BottomLeft", "ContactPoint"}

func (r Rule) String() string {
	if r < 0 || int(r) >= len(ruleNames) {
		return "Rule(unknown)"
	}
	return ruleNames[r]
}

// Size is an ordered (w,h) pair. (w,h) and (h,w) are distinct: the latter
// is the 90°-rotated form of the former.
type Size struct {
	W, H int
}

// Placement is where an input rectangle ended up in the bin.
type Placement struct {
	Left, Top int
	Rotated   bool
}

// EffectiveSize returns the placed rectangle's width/height, accounting
// for rotation.
func (p Placement) EffectiveSize(s Size) Size {
	if p.Rotated {
		return Size{W: s.H, H: s.W}
	}
	return Size{W: s.W, H: s.H}
}

// rect is a plain axis-aligned rectangle, used for both free-space and
// placed-rectangle bookkeeping. Kept as an owned, indexable slice of
// value-type records rather than a pointer-linked free-list.
type rect struct {
	X, Y, W, H int
}

func (r rect) right() int  { return r.X + r.W }
func (r rect) bottom() int { return r.Y + r.H }
