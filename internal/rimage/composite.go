package rimage

import "fmt"

// Composite copies src's pixels verbatim (no alpha blending) into dst at
// offset (left, top). src must fit entirely within dst at that offset.
func Composite(dst, src *Image, left, top int) error {
	if left < 0 || top < 0 || left+src.Width() > dst.Width() || top+src.Height() > dst.Height() {
		return fmt.Errorf("rimage.Composite: src %dx%d at (%d,%d) does not fit dst %dx%d",
			src.Width(), src.Height(), left, top, dst.Width(), dst.Height())
	}

	sw := src.Width()
	for y := 0; y < src.Height(); y++ {
		srcOff := y * src.pix.Stride
		dstOff := (top+y)*dst.pix.Stride + left*4
		copy(dst.pix.Pix[dstOff:dstOff+sw*4], src.pix.Pix[srcOff:srcOff+sw*4])
	}

	return nil
}
