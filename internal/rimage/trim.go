package rimage

import "image"

// Trim replaces the image with the tightest bounding box of pixels whose
// alpha is non-zero, returning the top-left offset of that box within the
// original image. If no pixel has non-zero alpha, the image is left
// unchanged, (0,0) is returned, and hadOpaque is false — callers that must
// treat a fully-transparent sprite as an error check hadOpaque rather than
// inferring it from the (always-unchanged, always-positive) dimensions.
func (im *Image) Trim() (offLeft, offTop int, hadOpaque bool) {
	p := im.pix
	w, h := p.Rect.Dx(), p.Rect.Dy()

	rowHasAlpha := func(y int) bool {
		row := p.Pix[y*p.Stride : y*p.Stride+w*4]
		for x := 0; x < w; x++ {
			if row[x*4+3] != 0 {
				return true
			}
		}
		return false
	}
	colHasAlpha := func(x int) bool {
		for y := 0; y < h; y++ {
			if p.Pix[y*p.Stride+x*4+3] != 0 {
				return true
			}
		}
		return false
	}

	top := -1
	for y := 0; y < h; y++ {
		if rowHasAlpha(y) {
			top = y
			break
		}
	}
	if top == -1 {
		return 0, 0, false
	}

	bottom := h - 1
	for y := h - 1; y >= 0; y-- {
		if rowHasAlpha(y) {
			bottom = y
			break
		}
	}

	left := 0
	for x := 0; x < w; x++ {
		if colHasAlpha(x) {
			left = x
			break
		}
	}

	right := w - 1
	for x := w - 1; x >= 0; x-- {
		if colHasAlpha(x) {
			right = x
			break
		}
	}

	if left == 0 && right == w-1 && top == 0 && bottom == h-1 {
		return 0, 0, true
	}

	newW := right - left + 1
	newH := bottom - top + 1
	dst := image.NewNRGBA(image.Rect(0, 0, newW, newH))
	for y := 0; y < newH; y++ {
		srcOff := (top+y)*p.Stride + left*4
		dstOff := y * dst.Stride
		copy(dst.Pix[dstOff:dstOff+newW*4], p.Pix[srcOff:srcOff+newW*4])
	}

	im.pix = dst
	return left, top, true
}
