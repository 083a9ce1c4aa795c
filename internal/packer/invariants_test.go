package packer

import "testing"

// TestFreeListStaysMaximal drives the packer's internal state directly
// (white-box) and checks, after every placement, that no free rectangle
// is contained in another (spec.md §8 item 3).
func TestFreeListStaysMaximal(t *testing.T) {
	t.Parallel()

	sizes := []Size{{10, 12}, {8, 8}, {5, 14}, {20, 3}, {7, 7}, {9, 9}, {1, 1}}
	p := newPacker(32, 32)
	placed := make([]bool, len(sizes))

	for remaining := len(sizes); remaining > 0; remaining-- {
		cand, ok := p.selectBest(sizes, placed, BestAreaFit, true)
		if !ok {
			t.Fatalf("selectBest failed with %d inputs remaining", remaining)
		}
		placed[cand.inputIdx] = true
		p.place(rect{X: cand.x, Y: cand.y, W: cand.w, H: cand.h})

		for i := range p.free {
			for j := range p.free {
				if i == j {
					continue
				}
				if containedIn(p.free[i], p.free[j]) {
					t.Fatalf("free rect %+v is contained in %+v after placing input %d",
						p.free[i], p.free[j], cand.inputIdx)
				}
			}
		}
	}
}

// TestCoverageIsExact checks spec.md §8 item 1: the union of placed
// rectangles plus the final free set exactly covers the bin, with no
// overlap between placed rectangles. It walks every bin pixel and checks
// that no pixel lies in more than one placed rect and that each pixel lies
// in a placed rect or at least one free rect.
func TestCoverageIsExact(t *testing.T) {
	t.Parallel()

	const w, h = 16, 16
	sizes := []Size{{6, 6}, {6, 6}, {4, 16}, {6, 10}}
	p := newPacker(w, h)
	placed := make([]bool, len(sizes))

	for remaining := len(sizes); remaining > 0; remaining-- {
		cand, ok := p.selectBest(sizes, placed, BottomLeft, false)
		if !ok {
			t.Fatalf("selectBest failed with %d inputs remaining", remaining)
		}
		placed[cand.inputIdx] = true
		p.place(rect{X: cand.x, Y: cand.y, W: cand.w, H: cand.h})
	}

	var covered [w][h]bool
	for _, u := range p.used {
		for x := u.X; x < u.right(); x++ {
			for y := u.Y; y < u.bottom(); y++ {
				if covered[x][y] {
					t.Fatalf("pixel (%d,%d) covered by more than one placed rect", x, y)
				}
				covered[x][y] = true
			}
		}
	}
	for _, f := range p.free {
		for x := f.X; x < f.right(); x++ {
			for y := f.Y; y < f.bottom(); y++ {
				covered[x][y] = true
			}
		}
	}

	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if !covered[x][y] {
				t.Fatalf("pixel (%d,%d) is covered by neither a placed rect nor a free rect", x, y)
			}
		}
	}
}
