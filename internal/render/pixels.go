package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
// Cells are row-major, so the buffer matches an image cols wide.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	onRGBA := rgba(on)
	offRGBA := rgba(off)
	for i, c := range cells {
		px := offRGBA
		if c != 0 {
			px = onRGBA
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
