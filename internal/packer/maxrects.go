package packer

import "fmt"

// packer owns one bin's free-rectangle bookkeeping for the duration of a
// single Pack call.
type packer struct {
	w, h int
	free []rect
	used []rect
}

func newPacker(w, h int) *packer {
	return &packer{
		w:    w,
		h:    h,
		free: []rect{{X: 0, Y: 0, W: w, H: h}},
		used: make([]rect, 0, 64),
	}
}

// candidate is one (input, free rectangle, orientation) triple under
// consideration during selection.
type candidate struct {
	inputIdx   int
	x, y, w, h int
	rotated    bool
	pri, sec   int
}

// less reports whether a ranks strictly ahead of b: lower heuristic score
// first, then the heuristic's own tiebreak, then (per spec) smaller free
// rectangle Y, then smaller X, then smaller input index, then normal
// orientation before rotated.
func less(a, b candidate) bool {
	if a.pri != b.pri {
		return a.pri < b.pri
	}
	if a.sec != b.sec {
		return a.sec < b.sec
	}
	if a.y != b.y {
		return a.y < b.y
	}
	if a.x != b.x {
		return a.x < b.x
	}
	if a.inputIdx != b.inputIdx {
		return a.inputIdx < b.inputIdx
	}
	return !a.rotated && b.rotated
}

// selectBest scans every unplaced input against every free rectangle,
// under both orientations when rotation is allowed, and returns the
// candidate with the lowest score.
func (p *packer) selectBest(sizes []Size, placed []bool, rule Rule, allowRotate bool) (candidate, bool) {
	var best candidate
	found := false

	for i, s := range sizes {
		if placed[i] {
			continue
		}

		for _, fr := range p.free {
			if fr.W >= s.W && fr.H >= s.H {
				pri, sec := p.score(rule, fr, s.W, s.H)
				c := candidate{inputIdx: i, x: fr.X, y: fr.Y, w: s.W, h: s.H, rotated: false, pri: pri, sec: sec}
				if !found || less(c, best) {
					best, found = c, true
				}
			}

			if allowRotate && fr.W >= s.H && fr.H >= s.W {
				pri, sec := p.score(rule, fr, s.H, s.W)
				c := candidate{inputIdx: i, x: fr.X, y: fr.Y, w: s.H, h: s.W, rotated: true, pri: pri, sec: sec}
				if !found || less(c, best) {
					best, found = c, true
				}
			}
		}
	}

	return best, found
}

// place records a newly placed rectangle, applying the guillotine
// split-then-prune update to the free list.
func (p *packer) place(u rect) {
	for i := 0; i < len(p.free); {
		if p.splitFree(i, u) {
			p.free = removeAt(p.free, i)
			continue
		}
		i++
	}

	p.pruneFree()
	p.used = append(p.used, u)
}

// Pack places every input rectangle into a W×H bin using the given
// heuristic, returning a placement per input (index-aligned with sizes)
// and the resulting occupancy, or ErrUnplaceable if some input cannot be
// placed under rot.
func Pack(w, h int, sizes []Size, rule Rule, allowRotate bool) ([]Placement, float64, error) {
	if w <= 0 || h <= 0 {
		return nil, 0, fmt.Errorf("packer.Pack: bin size must be positive, got %dx%d", w, h)
	}

	n := len(sizes)
	placements := make([]Placement, n)
	placed := make([]bool, n)
	p := newPacker(w, h)

	for remaining := n; remaining > 0; remaining-- {
		cand, ok := p.selectBest(sizes, placed, rule, allowRotate)
		if !ok {
			return nil, 0, fmt.Errorf("%w: no free rectangle fits input %d (%dx%d) into %dx%d bin",
				ErrUnplaceable, firstUnplaced(placed), sizes[firstUnplaced(placed)].W, sizes[firstUnplaced(placed)].H, w, h)
		}

		placements[cand.inputIdx] = Placement{Left: cand.x, Top: cand.y, Rotated: cand.rotated}
		placed[cand.inputIdx] = true
		p.place(rect{X: cand.x, Y: cand.y, W: cand.w, H: cand.h})
	}

	var area int
	for _, s := range sizes {
		area += s.W * s.H
	}

	occupancy := float64(area) / float64(w*h)
	return placements, occupancy, nil
}

func firstUnplaced(placed []bool) int {
	for i, v := range placed {
		if !v {
			return i
		}
	}
	return -1
}
