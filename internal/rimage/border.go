package rimage

var borderPixel = [4]byte{255, 0, 0, 255}

// AddBorder overwrites the outermost row/column of pixels with opaque red.
func (im *Image) AddBorder() {
	p := im.pix
	w, h := p.Rect.Dx(), p.Rect.Dy()

	setPixel := func(x, y int) {
		off := y*p.Stride + x*4
		copy(p.Pix[off:off+4], borderPixel[:])
	}

	for x := 0; x < w; x++ {
		setPixel(x, 0)
		setPixel(x, h-1)
	}
	for y := 0; y < h; y++ {
		setPixel(0, y)
		setPixel(w-1, y)
	}
}
