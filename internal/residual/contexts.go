// Package residual parses the coefficient levels of one transform block from
// a CABAC bin source and reconstructs dequantised coefficients.
package residual

import "github.com/deepteams/vvc/internal/cabac"

// NumInitTypes is the number of context initialisation tables (I, P, B).
const NumInitTypes = 3

const (
	numLastCtx   = 23
	numCSBFCtx   = 8
	numSigCtx    = 63
	numParCtx    = 33
	numGtxCtx    = 72
	numSignTSCtx = 6
)

// Context index bases inside the per-element sets.
const (
	sigChromaBase = 36 // chroma sig_coeff_flag sets start here
	sigTSBase     = 60 // transform-skip sig_coeff_flag
	absChromaBase = 21 // chroma par/gtx offsets start here
	gtx1Base      = 32 // second gtx flag set
	parTS         = 32
	gtxTSFirst    = 64
	gtxTSRest     = 67
	csbfTSLuma    = 4
	csbfTSChroma  = 7
	lastChroma    = 20
)

// BinSource is the arithmetic decoder the residual parser reads from.
// *cabac.Engine implements it.
type BinSource interface {
	DecodeBin(c *cabac.Context) int
	DecodeBypass() int
	DecodeBypassBits(n int) uint32
	DecodeRemAbs(rice uint) uint32
}

// Contexts holds every adaptive context used by residual coding of one
// entry point. The zero value must be initialised with Init before use.
type Contexts struct {
	LastX  [numLastCtx]cabac.Context
	LastY  [numLastCtx]cabac.Context
	CSBF   [numCSBFCtx]cabac.Context
	Sig    [numSigCtx]cabac.Context
	Par    [numParCtx]cabac.Context
	Gtx    [numGtxCtx]cabac.Context
	SignTS [numSignTSCtx]cabac.Context
}

// Init seeds all contexts from the table selected by initType (0 for I
// slices) at slice QP qp. initType is clamped to the valid range.
func (c *Contexts) Init(initType, qp int) {
	if initType < 0 {
		initType = 0
	} else if initType >= NumInitTypes {
		initType = NumInitTypes - 1
	}
	cabac.InitContexts(c.LastX[:], lastXInit[initType][:], qp)
	cabac.InitContexts(c.LastY[:], lastYInit[initType][:], qp)
	cabac.InitContexts(c.CSBF[:], csbfInit[initType][:], qp)
	cabac.InitContexts(c.Sig[:], sigInit[initType][:], qp)
	cabac.InitContexts(c.Par[:], parInit[initType][:], qp)
	cabac.InitContexts(c.Gtx[:], gtxInit[initType][:], qp)
	cabac.InitContexts(c.SignTS[:], signTSInit[initType][:], qp)
}

// Count returns the total number of contexts held.
func (c *Contexts) Count() int {
	return len(c.LastX) + len(c.LastY) + len(c.CSBF) + len(c.Sig) +
		len(c.Par) + len(c.Gtx) + len(c.SignTS)
}
