package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf, one
// pixel per cell.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// gridLines darkens the last pixel row and column of every cell so a scaled
// board shows cell outlines. buf holds a (cols*scale) x (rows*scale) RGBA image.
func gridLines(buf []byte, rows, cols, scale int, line color.Color) {
	if scale < 4 {
		return
	}
	r, g, b, a := line.RGBA()
	w := cols * scale
	for y := 0; y < rows*scale; y++ {
		for x := 0; x < w; x++ {
			if x%scale != scale-1 && y%scale != scale-1 {
				continue
			}
			base := (y*w + x) * 4
			buf[base+0] = uint8(r >> 8)
			buf[base+1] = uint8(g >> 8)
			buf[base+2] = uint8(b >> 8)
			buf[base+3] = uint8(a >> 8)
		}
	}
}

// scaleRGBA expands a one-pixel-per-cell image by an integer factor.
func scaleRGBA(dst, src []byte, rows, cols, scale int) {
	w := cols * scale
	for y := 0; y < rows*scale; y++ {
		srcRow := (y / scale) * cols
		for x := 0; x < w; x++ {
			s := (srcRow + x/scale) * 4
			d := (y*w + x) * 4
			copy(dst[d:d+4], src[s:s+4])
		}
	}
}
