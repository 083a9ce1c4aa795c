package packer

// score computes a candidate's (primary, secondary) score for placing a
// rw×rh rectangle into free rectangle fr, per the chosen heuristic. Lower
// is better; callers compare ties via the secondary value and then the
// selection-wide tiebreak in less.
func (p *packer) score(rule Rule, fr rect, rw, rh int) (pri, sec int) {
	switch rule {
	case BestShortSideFit:
		leftoverH := fr.W - rw
		leftoverV := fr.H - rh
		shortSide, longSide := leftoverH, leftoverV
		if leftoverV < shortSide {
			shortSide = leftoverV
		}
		if leftoverH > longSide {
			longSide = leftoverH
		}
		return shortSide, longSide

	case BestLongSideFit:
		leftoverH := fr.W - rw
		leftoverV := fr.H - rh
		shortSide, longSide := leftoverH, leftoverV
		if leftoverV < shortSide {
			shortSide = leftoverV
		}
		if leftoverH > longSide {
			longSide = leftoverH
		}
		return longSide, shortSide

	case BestAreaFit:
		areaFit := fr.W*fr.H - rw*rh
		leftoverH := fr.W - rw
		leftoverV := fr.H - rh
		shortSide := leftoverH
		if leftoverV < shortSide {
			shortSide = leftoverV
		}
		return areaFit, shortSide

	case BottomLeft:
		return fr.Y + rh, fr.X

	case ContactPoint:
		// Maximize contact => minimize its negation.
		return -p.contactScore(fr.X, fr.Y, rw, rh), 0

	default:
		return 1 << 30, 1 << 30
	}
}

// contactScore sums the length of edges that, after placing a rw×rh
// rectangle at (x,y), touch either a bin edge or a previously placed
// rectangle's edge. Collinear overlap counts, not mere adjacency.
func (p *packer) contactScore(x, y, rw, rh int) int {
	score := 0
	if x == 0 {
		score += rh
	}
	if x+rw == p.w {
		score += rh
	}
	if y == 0 {
		score += rw
	}
	if y+rh == p.h {
		score += rw
	}

	for _, u := range p.used {
		if u.X == x+rw || u.right() == x {
			score += commonInterval(u.Y, u.bottom(), y, y+rh)
		}
		if u.Y == y+rh || u.bottom() == y {
			score += commonInterval(u.X, u.right(), x, x+rw)
		}
	}

	return score
}

// commonInterval returns the overlap length of intervals [a0,a1) and
// [b0,b1).
func commonInterval(a0, a1, b0, b1 int) int {
	if a1 <= b0 || b1 <= a0 {
		return 0
	}

	end := a1
	if b1 < end {
		end = b1
	}
	start := a0
	if b0 > start {
		start = b0
	}

	return end - start
}
