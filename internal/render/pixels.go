package render

import "image/color"

// fillPackedRGBA expands n bit-packed cells (row-major, least significant
// bit first within each byte) into RGBA pixels in buf, using on for live
// cells and off for dead ones.
func fillPackedRGBA(buf []byte, cells []byte, n int, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i := 0; i < n; i++ {
		base := i * 4
		if cells[i/8]&(1<<(i%8)) != 0 {
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
