package rimage

import "image"

// Rotate90CW replaces the image with its 90° clockwise rotation:
// (x,y) in the source maps to (h-1-y, x) in the result, so the new width
// equals the old height. The compositor relies on this exact mapping when
// it places a rotated sprite.
func (im *Image) Rotate90CW() {
	src := im.pix
	w, h := src.Rect.Dx(), src.Rect.Dy()

	dst := image.NewNRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		srcRow := src.Pix[y*src.Stride : y*src.Stride+w*4]
		for x := 0; x < w; x++ {
			destX := h - 1 - y
			destY := x
			off := destY*dst.Stride + destX*4
			copy(dst.Pix[off:off+4], srcRow[x*4:x*4+4])
		}
	}

	im.pix = dst
}
