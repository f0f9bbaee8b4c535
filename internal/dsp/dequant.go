package dsp

const (
	coeffMin = -32768
	coeffMax = 32767
)

func clipCoeff(v int64) int16 {
	if v < coeffMin {
		return coeffMin
	}
	if v > coeffMax {
		return coeffMax
	}
	return int16(v)
}

func dequantStore(dst []int16, stride int, src []int32, w, h int, scale int64, shift uint) {
	add := int64(1) << (shift - 1)
	for y := 0; y < h; y++ {
		row := dst[y*stride : y*stride+w]
		in := src[y*w : y*w+w]
		for x, l := range in {
			if l == 0 {
				row[x] = 0
				continue
			}
			row[x] = clipCoeff((int64(l)*scale + add) >> shift)
		}
	}
}

// dequantStore4 handles four coefficients per step. Rows narrower than four
// fall back to dequantStore.
func dequantStore4(dst []int16, stride int, src []int32, w, h int, scale int64, shift uint) {
	if w&3 != 0 {
		dequantStore(dst, stride, src, w, h, scale, shift)
		return
	}
	add := int64(1) << (shift - 1)
	for y := 0; y < h; y++ {
		row := dst[y*stride : y*stride+w]
		in := src[y*w : y*w+w]
		for x := 0; x < w; x += 4 {
			s := in[x : x+4 : x+4]
			d := row[x : x+4 : x+4]
			if s[0]|s[1]|s[2]|s[3] == 0 {
				d[0], d[1], d[2], d[3] = 0, 0, 0, 0
				continue
			}
			d[0] = clipCoeff((int64(s[0])*scale + add) >> shift)
			d[1] = clipCoeff((int64(s[1])*scale + add) >> shift)
			d[2] = clipCoeff((int64(s[2])*scale + add) >> shift)
			d[3] = clipCoeff((int64(s[3])*scale + add) >> shift)
		}
	}
}

func accumulate(src []int32, w, h int, vertical bool) {
	if vertical {
		for y := 1; y < h; y++ {
			for x := 0; x < w; x++ {
				src[y*w+x] = int32(clipCoeff(int64(src[(y-1)*w+x]) + int64(src[y*w+x])))
			}
		}
		return
	}
	for y := 0; y < h; y++ {
		row := src[y*w : y*w+w]
		for x := 1; x < w; x++ {
			row[x] = int32(clipCoeff(int64(row[x-1]) + int64(row[x])))
		}
	}
}
