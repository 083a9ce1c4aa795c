package packer

// splitFree removes the portion of free rectangle free[freeIdx] that
// overlaps u, replacing it with up to four sub-rectangles covering the
// strips of free space left over (above, below, left, right of the
// intersection). Returns true if the free rectangle intersected u and
// should be removed by the caller.
func (p *packer) splitFree(freeIdx int, u rect) bool {
	fr := p.free[freeIdx]

	// Separating axis test: no overlap, nothing to split.
	if u.X >= fr.right() || u.right() <= fr.X || u.Y >= fr.bottom() || u.bottom() <= fr.Y {
		return false
	}

	if u.X < fr.right() && u.right() > fr.X {
		if u.Y > fr.Y && u.Y < fr.bottom() {
			// strip above u
			p.free = append(p.free, rect{X: fr.X, Y: fr.Y, W: fr.W, H: u.Y - fr.Y})
		}
		if u.bottom() < fr.bottom() {
			// strip below u
			p.free = append(p.free, rect{X: fr.X, Y: u.bottom(), W: fr.W, H: fr.bottom() - u.bottom()})
		}
	}

	if u.Y < fr.bottom() && u.bottom() > fr.Y {
		if u.X > fr.X && u.X < fr.right() {
			// strip left of u
			p.free = append(p.free, rect{X: fr.X, Y: fr.Y, W: u.X - fr.X, H: fr.H})
		}
		if u.right() < fr.right() {
			// strip right of u
			p.free = append(p.free, rect{X: u.right(), Y: fr.Y, W: fr.right() - u.right(), H: fr.H})
		}
	}

	return true
}

// pruneFree removes any free rectangle that is fully contained in another,
// restoring the maximality invariant after splitFree may have introduced
// redundant rectangles.
func (p *packer) pruneFree() {
	for i := 0; i < len(p.free); i++ {
		a := p.free[i]
		for j := i + 1; j < len(p.free); j++ {
			b := p.free[j]
			if containedIn(a, b) {
				p.free = removeAt(p.free, i)
				i--
				break
			}
			if containedIn(b, a) {
				p.free = removeAt(p.free, j)
				j--
			}
		}
	}
}

// containedIn reports whether a is fully inside b.
func containedIn(a, b rect) bool {
	return a.X >= b.X && a.Y >= b.Y && a.right() <= b.right() && a.bottom() <= b.bottom()
}

// removeAt deletes the element at index i, preserving the order of the
// remaining elements.
func removeAt[T any](s []T, i int) []T {
	if i < 0 || i >= len(s) {
		return s
	}
	copy(s[i:], s[i+1:])
	return s[:len(s)-1]
}
