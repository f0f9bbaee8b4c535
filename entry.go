package vvc

import (
	"github.com/pkg/errors"

	"github.com/deepteams/vvc/internal/cabac"
	"github.com/deepteams/vvc/internal/residual"
)

// Entry decodes the residuals of one CABAC entry point: a slice, a tile or a
// wavefront row. It owns the arithmetic decoder and the context set.
type Entry struct {
	cfg SliceConfig
	eng *cabac.Engine
	ctx residual.Contexts
	dec *residual.Decoder
}

// NewEntry initialises the arithmetic decoder on data (the slice data from
// the first byte of the entry point) and seeds every context from cfg.
func NewEntry(data []byte, cfg SliceConfig) (*Entry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Entry{cfg: cfg, eng: cabac.NewEngine(data)}
	e.ctx.Init(int(cfg.InitType), cfg.QP)
	e.dec = residual.NewDecoder(e.eng, &e.ctx)
	return e, nil
}

// Reset restarts the entry on new data with freshly initialised contexts.
func (e *Entry) Reset(data []byte) {
	e.eng.Init(data)
	e.ctx.Init(int(e.cfg.InitType), e.cfg.QP)
}

// Config returns the slice configuration of the entry.
func (e *Entry) Config() SliceConfig {
	return e.cfg
}

// DecodeResidual parses the residual of tb and writes its dequantised
// coefficients, row-major with stride 1<<tb.Log2Width, into dst.
//
// When the block needed bits beyond the end of the entry the coefficients
// are still written and the error wraps ErrBitstreamExhausted.
func (e *Entry) DecodeResidual(tb *TransformBlock, dst []int16) (Result, error) {
	if tb.Component > Cr {
		return Result{}, errors.Wrapf(ErrInvalidBlockSize, "component %d", tb.Component)
	}
	b := tb.block()
	q := residual.QuantParams{
		QP:           e.cfg.qpPrime(tb.Component, tb.QPDelta),
		BitDepth:     e.cfg.BitDepth,
		DepQuant:     e.cfg.DepQuant,
		QPPrimeTSMin: e.cfg.QPPrimeTSMin,
	}
	dq := residual.DeriveDequant(q, tb.Log2Width, tb.Log2Height, tb.TransformSkip)

	res, err := e.dec.Decode(&b, e.cfg.options(), dq, dst)
	if err != nil {
		return Result{}, translate(err)
	}
	out := Result{SigMap: res.SigMap, NumSig: res.NumSig}
	if !tb.TransformSkip {
		out.LastPos = Pos(res.LastX, res.LastY)
	}
	if e.eng.Overrun() {
		return out, errors.Wrapf(ErrBitstreamExhausted, "%s %dx%d block after %d bytes",
			tb.Component, 1<<tb.Log2Width, 1<<tb.Log2Height, e.eng.BytesUsed())
	}
	return out, nil
}

// DecodeTerminate reads a terminating bin such as end_of_slice_segment_flag
// and reports whether it was set.
func (e *Entry) DecodeTerminate() (bool, error) {
	end := e.eng.DecodeTerminate() == 1
	if e.eng.Overrun() {
		return end, errors.Wrap(ErrBitstreamExhausted, "terminating bin")
	}
	return end, nil
}

// BytesUsed returns how many bytes of the entry the decoder has consumed.
func (e *Entry) BytesUsed() int {
	return e.eng.BytesUsed()
}

// Exhausted reports whether the decoder has read past the end of the entry.
func (e *Entry) Exhausted() bool {
	return e.eng.Exhausted()
}
