package residual

import (
	"github.com/pkg/errors"

	"github.com/deepteams/vvc/internal/dsp"
	"github.com/deepteams/vvc/internal/pool"
	"github.com/deepteams/vvc/internal/scan"
)

var (
	ErrInvalidBlockSize    = errors.New("residual: invalid transform block size")
	ErrInvalidLastPosition = errors.New("residual: last position outside coded area")
	ErrBufferTooSmall      = errors.New("residual: destination buffer too small")
)

// MaxLog2 is the largest transform size (64) along either axis.
const MaxLog2 = 6

// Block describes one transform block to parse.
type Block struct {
	Log2W, Log2H int
	Chroma       bool

	TransformSkip bool
	BDPCM         bool // only with TransformSkip
	BDPCMVertical bool
	SBTZeroOut    bool

	// LastX, LastY is the last significant position in scan order, as
	// parsed by the caller. When ParseLast is set it is read from the
	// source instead. Transform-skip blocks ignore both.
	LastX, LastY int
	ParseLast    bool
}

// Options selects the quantisation discipline of the slice.
type Options struct {
	DepQuant   bool
	SignHiding bool
}

// Result summarises a decoded block.
type Result struct {
	// SigMap has bit (yS<<log2GridW | xS) set for every sub-block holding a
	// nonzero level.
	SigMap uint64
	NumSig int
	// LastX, LastY is the last significant position used.
	LastX, LastY int
}

var trackers = pool.NewOf(func() *Tracker { return new(Tracker) })

// Decoder parses transform blocks from one bin source and context set. It is
// not safe for concurrent use; use one Decoder per entry point.
type Decoder struct {
	src BinSource
	ctx *Contexts

	tr     *Tracker
	geo    *scan.Geometry
	chroma bool

	mode    quantMode
	dq      depQuant
	sh      signHiding
	remBins int

	sb     subBlock
	lv     sbLevels
	raster [16]int32
}

// NewDecoder returns a decoder reading from src with contexts ctx.
func NewDecoder(src BinSource, ctx *Contexts) *Decoder {
	return &Decoder{src: src, ctx: ctx}
}

// ValidSize reports whether a transform of the given log2 size can carry a
// residual.
func ValidSize(log2W, log2H int, chroma, transformSkip bool) bool {
	if log2W > MaxLog2 || log2H > MaxLog2 {
		return false
	}
	if (chroma || transformSkip) && (log2W > scan.MaxLog2 || log2H > scan.MaxLog2) {
		return false
	}
	return scan.Valid(min(log2W, scan.MaxLog2), min(log2H, scan.MaxLog2))
}

// Decode parses the residual of b and stores the dequantised coefficients
// row by row into dst, which must hold (1<<b.Log2W)*(1<<b.Log2H) values.
// Positions without a coded level are zeroed.
func (d *Decoder) Decode(b *Block, opt Options, dq Dequant, dst []int16) (Result, error) {
	if !ValidSize(b.Log2W, b.Log2H, b.Chroma, b.TransformSkip) {
		return Result{}, errors.Wrapf(ErrInvalidBlockSize, "log2 size %dx%d", b.Log2W, b.Log2H)
	}
	w, h := 1<<b.Log2W, 1<<b.Log2H
	if len(dst) < w*h {
		return Result{}, errors.Wrapf(ErrBufferTooSmall, "have %d, need %d", len(dst), w*h)
	}
	clear(dst[:w*h])
	d.chroma = b.Chroma

	d.tr = trackers.Get()
	defer func() {
		trackers.Put(d.tr)
		d.tr = nil
	}()

	if b.TransformSkip {
		return d.decodeTS(b, dq, dst), nil
	}

	zw, zh := ZeroOut(b.Log2W, b.Log2H, b.Chroma, b.SBTZeroOut)
	lastX, lastY := b.LastX, b.LastY
	if b.ParseLast {
		lastX, lastY = ReadLastPos(d.src, d.ctx, b.Log2W, b.Log2H, b.Chroma, b.SBTZeroOut)
	}
	if lastX < 0 || lastY < 0 || lastX >= 1<<zw || lastY >= 1<<zh {
		return Result{}, errors.Wrapf(ErrInvalidLastPosition, "(%d,%d) in %dx%d", lastX, lastY, 1<<zw, 1<<zh)
	}

	if opt.DepQuant {
		d.dq.reset()
		d.mode = &d.dq
	} else {
		d.sh = signHiding{enabled: opt.SignHiding}
		d.mode = &d.sh
	}
	res := Result{LastX: lastX, LastY: lastY}

	if lastX == 0 && lastY == 0 {
		d.decodeDC(dq, dst, &res)
		return res, nil
	}

	d.geo = scan.Select(zw, zh)
	d.tr.Reset(1<<zw, 1<<zh)
	d.remBins = (7 << (zw + zh)) >> 2
	lastSb, lastPos := d.geo.Locate(lastX, lastY)

	if d.geo.NumSubBlocks == 2 && d.geo.Shape == scan.Shape2x2 {
		d.decodePair(lastSb, lastPos, dq, dst, w, &res)
		return res, nil
	}

	g := d.geo
	gw, gh := 1<<g.Log2GridW, 1<<g.Log2GridH
	var coded uint64
	for i := lastSb; i >= 0; i-- {
		xS, yS := g.SubBlock(i)
		r, start := roleGeneric, g.NumCoeff-1
		switch {
		case i == lastSb:
			r, start = roleFirst, lastPos
		case i == 0:
			r = roleDC
		}
		if r == roleGeneric {
			c := 0
			if xS+1 < gw && coded>>uint(yS<<g.Log2GridW|(xS+1))&1 != 0 {
				c = 1
			}
			if yS+1 < gh && coded>>uint((yS+1)<<g.Log2GridW|xS)&1 != 0 {
				c = 1
			}
			if d.chroma {
				c += 2
			}
			if d.src.DecodeBin(&d.ctx.CSBF[c]) == 0 {
				// Uncoded sub-blocks hold an even number of zeros, which
				// leaves the dependent quantisation state unchanged.
				continue
			}
		}
		coded |= 1 << uint(yS<<g.Log2GridW|xS)
		d.runSubBlock(i, r, start, dq, dst, w, &res)
	}
	return res, nil
}

// decodePair handles blocks of exactly two 2x2 sub-blocks (chroma 4x2 and
// 2x4). Both sub-blocks are inferred coded.
func (d *Decoder) decodePair(lastSb, lastPos int, dq Dequant, dst []int16, stride int, res *Result) {
	if lastSb == 1 {
		d.runSubBlock(1, roleFirst, lastPos, dq, dst, stride, res)
		d.runSubBlock(0, roleDC, d.geo.NumCoeff-1, dq, dst, stride, res)
		return
	}
	d.runSubBlock(0, roleFirst, lastPos, dq, dst, stride, res)
}

func (d *Decoder) runSubBlock(i int, r role, start int, dq Dequant, dst []int16, stride int, res *Result) {
	g := d.geo
	d.sb.setup(g, i, r, start, d.chroma)
	d.decodeSubBlock(&d.sb)
	if d.lv.num == 0 {
		return
	}
	xS, yS := g.SubBlock(i)
	res.SigMap |= 1 << uint(yS<<g.Log2GridW|xS)
	res.NumSig += d.lv.num

	d.raster = [16]int32{}
	for n := 0; n <= start; n++ {
		p := g.Scan[n]
		d.raster[int(p.Y)<<g.Log2SbW|int(p.X)] = d.lv.val[n]
	}
	sbw, sbh := 1<<g.Log2SbW, 1<<g.Log2SbH
	dsp.DequantStore(dst[d.sb.y0*stride+d.sb.x0:], stride, d.raster[:sbw*sbh], sbw, sbh, dq.Scale, dq.Shift)
}

// decodeDC reads a block whose only candidate coefficient is the DC. Its
// significance is implicit and no neighbour can contribute to a context.
func (d *Decoder) decodeDC(dq Dequant, dst []int16, res *Result) {
	off := 0
	if d.chroma {
		off = absChromaBase
	}
	a := int32(1)
	if d.src.DecodeBin(&d.ctx.Gtx[off]) != 0 {
		par := d.src.DecodeBin(&d.ctx.Par[off])
		gt3 := d.src.DecodeBin(&d.ctx.Gtx[gtx1Base+off])
		a += int32(1 + par + 2*gt3)
		if gt3 != 0 {
			a += 2 * int32(d.src.DecodeRemAbs(riceParam(-20)))
		}
	}
	lv := &d.lv
	lv.reset(0)
	lv.abs[0] = a
	lv.summarize()
	d.mode.begin()
	d.mode.reconstruct(d.src, lv)

	res.SigMap = 1
	res.NumSig = 1
	d.raster[0] = lv.val[0]
	dsp.DequantStore(dst, 1, d.raster[:1], 1, 1, dq.Scale, dq.Shift)
}
