package glow

import "github.com/gogpu/gg"

// Over composites src onto dst with premultiplied source-over:
// d = s + d*(1-sa). Only the overlapping top-left region of the two
// pixmaps is touched.
func Over(dst, src *gg.Pixmap) {
	if dst == nil || src == nil {
		return
	}
	width := min(dst.Width(), src.Width())
	height := min(dst.Height(), src.Height())
	dd, sd := dst.Data(), src.Data()
	dw, sw := dst.Width(), src.Width()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			s := sd[(y*sw+x)*4 : (y*sw+x)*4+4]
			if s[3] == 0 {
				continue
			}
			d := dd[(y*dw+x)*4 : (y*dw+x)*4+4]
			if s[3] == 255 {
				copy(d, s)
				continue
			}
			inv := 255 - uint32(s[3])
			for c := 0; c < 4; c++ {
				d[c] = s[c] + uint8((uint32(d[c])*inv+127)/255)
			}
		}
	}
	dst.NotifyPixelsChanged()
}
