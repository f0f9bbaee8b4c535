package residual

import (
	"github.com/deepteams/vvc/internal/dsp"
	"github.com/deepteams/vvc/internal/pool"
	"github.com/deepteams/vvc/internal/scan"
)

const (
	tsRice      = 1
	tsMaxGtx    = 5
	tsRemainder = 10 // pass 2 level from which a remainder follows
)

func sign(v int32) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// tsSignCtx derives the context of a transform-skip sign from the signs of
// the left and above levels.
func tsSignCtx(left, above int32, bdpcm bool) int {
	l, a := sign(left), sign(above)
	c := 2
	switch {
	case l == 0 && a == 0, l*a < 0:
		c = 0
	case l >= 0 && a >= 0:
		c = 1
	}
	if bdpcm {
		c += 3
	}
	return c
}

// tsPredict maps a parsed absolute level using the larger of the left and
// above absolute levels as a predictor.
func tsPredict(a, left, above int32) int32 {
	if a == 0 {
		return 0
	}
	pred := max(abs32(left), abs32(above))
	switch {
	case a == 1 && pred > 0:
		return pred
	case a <= pred:
		return a - 1
	}
	return a
}

// decodeTS parses a transform-skip residual. Sub-blocks and positions are
// visited in forward scan order, signs are context coded while the bin
// budget lasts, and levels are predicted from their left and above
// neighbours unless BDPCM is active.
func (d *Decoder) decodeTS(b *Block, dq Dequant, dst []int16) Result {
	g := scan.Select(b.Log2W, b.Log2H)
	w, h := 1<<b.Log2W, 1<<b.Log2H
	d.tr.Reset(w, h)
	remBins := (w * h * 7) >> 2

	levels := pool.GetInt32(w * h)
	defer pool.PutInt32(levels)
	clear(levels)

	var res Result
	var coded uint64
	lastSb := g.NumSubBlocks - 1
	inferCbf := true
	for i := 0; i <= lastSb; i++ {
		xS, yS := g.SubBlock(i)
		if i != lastSb || !inferCbf {
			c := csbfTSChroma
			if !d.chroma {
				c = csbfTSLuma
				if xS > 0 && coded>>uint(yS<<g.Log2GridW|(xS-1))&1 != 0 {
					c++
				}
				if yS > 0 && coded>>uint((yS-1)<<g.Log2GridW|xS)&1 != 0 {
					c++
				}
			}
			if d.src.DecodeBin(&d.ctx.CSBF[c]) == 0 {
				continue
			}
			if i < lastSb {
				inferCbf = false
			}
		}
		coded |= 1 << uint(yS<<g.Log2GridW|xS)
		x0, y0 := g.Origin(i)
		if d.decodeTSSubBlock(g, x0, y0, b.BDPCM, &remBins, levels, w) {
			res.SigMap |= 1 << uint(yS<<g.Log2GridW|xS)
		}
	}

	for _, v := range levels {
		if v != 0 {
			res.NumSig++
		}
	}
	if b.BDPCM {
		dsp.Accumulate(levels, w, h, b.BDPCMVertical)
	}
	dsp.DequantStore(dst, w, levels, w, h, dq.Scale, dq.Shift)
	return res
}

func (d *Decoder) decodeTSSubBlock(g *scan.Geometry, x0, y0 int, bdpcm bool, remBins *int, levels []int32, stride int) bool {
	var (
		abs     [16]int32
		neg     uint16
		gtxMask [16]uint8 // bit j set when abs_level_gtx_flag[n][j] is 1
	)
	tr := d.tr
	numCoeff := g.NumCoeff
	inferSig := true
	lastPass1 := -1

	// Pass 1: significance, context coded sign, gt1 and parity.
	for n := 0; n < numCoeff && *remBins >= 4; n++ {
		p := g.Scan[n]
		x, y := x0+int(p.X), y0+int(p.Y)
		left, above := tr.TS(x-1, y), tr.TS(x, y-1)
		numNb := 0
		if left != 0 {
			numNb++
		}
		if above != 0 {
			numNb++
		}
		sig := 1
		if n != numCoeff-1 || !inferSig {
			sig = d.src.DecodeBin(&d.ctx.Sig[sigTSBase+numNb])
			*remBins--
			if sig != 0 {
				inferSig = false
			}
		}
		if sig != 0 {
			if d.src.DecodeBin(&d.ctx.SignTS[tsSignCtx(left, above, bdpcm)]) != 0 {
				neg |= 1 << uint(n)
			}
			gctx := gtxTSFirst + numNb
			if bdpcm {
				gctx = gtxTSFirst + 3
			}
			a := int32(1)
			if d.src.DecodeBin(&d.ctx.Gtx[gctx]) != 0 {
				gtxMask[n] = 1
				a += 1 + int32(d.src.DecodeBin(&d.ctx.Par[parTS]))
				*remBins--
			}
			*remBins -= 2
			abs[n] = a
			v := a
			if neg&(1<<uint(n)) != 0 {
				v = -a
			}
			tr.SetTS(x, y, v)
		}
		lastPass1 = n
	}

	// Pass 2: gt3, gt5, gt7 and gt9.
	lastPass2 := -1
	for n := 0; n < numCoeff && *remBins >= 4; n++ {
		for j := 1; j < tsMaxGtx; j++ {
			if gtxMask[n]&(1<<uint(j-1)) == 0 {
				break
			}
			if d.src.DecodeBin(&d.ctx.Gtx[gtxTSRest+j]) != 0 {
				gtxMask[n] |= 1 << uint(j)
				abs[n] += 2
			}
			*remBins--
		}
		lastPass2 = n
	}

	// Pass 3: remainders, bypass levels and signs, then level mapping.
	nonzero := false
	for n := 0; n < numCoeff; n++ {
		p := g.Scan[n]
		x, y := x0+int(p.X), y0+int(p.Y)
		a := abs[n]
		switch {
		case n <= lastPass2:
			if a >= tsRemainder {
				a += 2 * int32(d.src.DecodeRemAbs(tsRice))
			}
		case n <= lastPass1:
			if a >= 2 {
				a += 2 * int32(d.src.DecodeRemAbs(tsRice))
			}
		default:
			a = int32(d.src.DecodeRemAbs(tsRice))
			if a != 0 && d.src.DecodeBypass() != 0 {
				neg |= 1 << uint(n)
			}
		}
		if !bdpcm && n <= lastPass1 {
			a = tsPredict(a, tr.TS(x-1, y), tr.TS(x, y-1))
		}
		v := a
		if neg&(1<<uint(n)) != 0 {
			v = -a
		}
		tr.SetTS(x, y, v)
		levels[y*stride+x] = v
		if v != 0 {
			nonzero = true
		}
	}
	return nonzero
}
