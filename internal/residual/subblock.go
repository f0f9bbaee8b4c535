package residual

import "github.com/deepteams/vvc/internal/scan"

// role selects how a sub-block reader starts and which significance flags
// it infers.
type role uint8

const (
	// roleGeneric is a sub-block with a signalled coded_sub_block_flag. Its
	// DC significance is inferred when every other position was zero.
	roleGeneric role = iota
	// roleFirst holds the last significant coefficient. Decoding starts at
	// that position, whose significance is implicit.
	roleFirst
	// roleDC covers the block origin and is always coded.
	roleDC
)

// sbLevels are the levels of one sub-block, indexed by scan position.
type sbLevels struct {
	abs   [16]int32
	val   [16]int32
	start int // highest visited scan position
	first int // lowest significant scan position
	last  int // highest significant scan position
	num   int
}

func (lv *sbLevels) reset(start int) {
	lv.abs = [16]int32{}
	lv.val = [16]int32{}
	lv.start = start
	lv.first, lv.last, lv.num = -1, -1, 0
}

func (lv *sbLevels) summarize() {
	for n := lv.start; n >= 0; n-- {
		if lv.abs[n] == 0 {
			continue
		}
		if lv.last < 0 {
			lv.last = n
		}
		lv.first = n
		lv.num++
	}
}

// subBlock configures one run of the shared sub-block reader.
type subBlock struct {
	role   role
	x0, y0 int // coefficient position of the top-left corner
	start  int // first scan position visited

	// Context biases by scan position, derived from the distance of each
	// coefficient to the block origin. Sub-blocks far from the origin keep
	// the zero maps.
	sigBias [16]uint8
	absBias [16]uint8
}

// setup prepares the descriptor for sub-block i of g.
func (sb *subBlock) setup(g *scan.Geometry, i int, r role, start int, chroma bool) {
	sb.role = r
	sb.start = start
	sb.x0, sb.y0 = g.Origin(i)
	sb.sigBias = [16]uint8{}
	sb.absBias = [16]uint8{}
	if sb.x0+sb.y0 >= 10 {
		return
	}
	for n, p := range g.Scan {
		d := sb.x0 + sb.y0 + int(p.X) + int(p.Y)
		sb.sigBias[n], sb.absBias[n] = distanceBias(d, chroma)
	}
}

func distanceBias(d int, chroma bool) (sig, abs uint8) {
	if chroma {
		if d < 2 {
			sig = 4
		}
		if d == 0 {
			abs = 5
		}
		return sig, abs
	}
	switch {
	case d < 2:
		sig = 8
	case d < 5:
		sig = 4
	}
	switch {
	case d == 0:
		abs = 15
	case d < 3:
		abs = 10
	case d < 10:
		abs = 5
	}
	return sig, abs
}

func (d *Decoder) sigCtx(sum1 int, bias uint8, set int) int {
	c := min((sum1+1)>>1, 3) + int(bias)
	if d.chroma {
		return sigChromaBase + 8*set + c
	}
	return 12*set + c
}

// decodeSubBlock runs the three passes of regular residual coding over one
// coded sub-block and reconstructs its signed values into d.lv.
func (d *Decoder) decodeSubBlock(sb *subBlock) {
	lv := &d.lv
	lv.reset(sb.start)
	g := d.geo
	d.mode.begin()

	inferDC := sb.role == roleGeneric
	var needRem uint16

	// Pass 1: significance, gt1, parity and gt3 while the context-coded
	// bin budget lasts.
	n := sb.start
	for ; n >= 0 && d.remBins >= 4; n-- {
		p := g.Scan[n]
		x, y := sb.x0+int(p.X), sb.y0+int(p.Y)
		sum1, numSig := d.tr.PassOne(x, y)
		isLast := sb.role == roleFirst && n == sb.start

		sig := 1
		if !isLast && !(n == 0 && inferDC) {
			sig = d.src.DecodeBin(&d.ctx.Sig[d.sigCtx(sum1, sb.sigBias[n], d.mode.sigSet())])
			d.remBins--
			if sig != 0 {
				inferDC = false
			}
		}
		var a1 int32
		if sig != 0 {
			off := 0
			if !isLast {
				off = 1 + min(sum1-numSig, 4) + int(sb.absBias[n])
			}
			if d.chroma {
				off += absChromaBase
			}
			a1 = 1
			if d.src.DecodeBin(&d.ctx.Gtx[off]) != 0 {
				par := d.src.DecodeBin(&d.ctx.Par[off])
				gt3 := d.src.DecodeBin(&d.ctx.Gtx[gtx1Base+off])
				d.remBins -= 2
				a1 += int32(1 + par + 2*gt3)
				if gt3 != 0 {
					needRem |= 1 << uint(n)
				}
			}
			d.remBins--
			d.tr.UpdateFirstPass(x, y, int(a1))
		}
		lv.abs[n] = a1
		d.mode.advance(a1)
	}
	escape := n

	// Pass 2: remainders of levels that reached gt3.
	for m := sb.start; m > escape; m-- {
		if needRem&(1<<uint(m)) == 0 {
			continue
		}
		p := g.Scan[m]
		x, y := sb.x0+int(p.X), sb.y0+int(p.Y)
		rem := d.src.DecodeRemAbs(riceParam(d.tr.AbsSum(x, y) - 20))
		lv.abs[m] += int32(2 * rem)
		d.tr.AddRemainder(x, y, int(2*rem))
	}

	// Pass 3: whole levels in bypass once the budget is spent.
	for m := escape; m >= 0; m-- {
		p := g.Scan[m]
		x, y := sb.x0+int(p.X), sb.y0+int(p.Y)
		rice := riceParam(d.tr.AbsSum(x, y))
		a := escapeLevel(d.src.DecodeRemAbs(rice), d.mode.zeroPos(rice))
		lv.abs[m] = a
		d.tr.UpdateBypassed(x, y, int(a))
		d.mode.advance(a)
	}

	lv.summarize()
	d.mode.reconstruct(d.src, lv)
}

// escapeLevel maps a dec_abs_level value to an absolute level.
func escapeLevel(v, zeroPos uint32) int32 {
	switch {
	case v == zeroPos:
		return 0
	case v < zeroPos:
		return int32(v + 1)
	}
	return int32(v)
}
