package vvc

import (
	"github.com/pkg/errors"

	"github.com/deepteams/vvc/internal/residual"
)

// InitType selects the context initialisation table of a slice.
type InitType int

const (
	InitI InitType = iota
	InitP
	InitB
)

// SliceConfig carries the slice-level inputs of residual decoding.
type SliceConfig struct {
	// QP is the slice luma QP (SliceQpY, 0..63). It seeds the contexts and is
	// the base of the dequantisation QP.
	QP int

	// InitType selects the context initialisation table (0 for I slices).
	InitType InitType

	// BitDepth is the sample bit depth (8..16, default 10).
	BitDepth int

	// DepQuant enables dependent quantisation. It excludes SignHiding.
	DepQuant bool

	// SignHiding enables sign data hiding.
	SignHiding bool

	// ChromaQPOffset is added to QP for Cb and Cr blocks.
	ChromaQPOffset int

	// QPPrimeTSMin is the minimum Qp' of transform-skip blocks.
	QPPrimeTSMin int
}

// DefaultSliceConfig returns the configuration of an I slice at QP 32 with
// 10-bit samples and sign data hiding.
func DefaultSliceConfig() SliceConfig {
	return SliceConfig{
		QP:           32,
		InitType:     InitI,
		BitDepth:     10,
		SignHiding:   true,
		QPPrimeTSMin: 4,
	}
}

// Validate checks the configuration ranges.
func (c *SliceConfig) Validate() error {
	switch {
	case c.QP < 0 || c.QP > 63:
		return errors.Wrapf(ErrInvalidConfig, "QP %d (must be 0-63)", c.QP)
	case c.InitType < InitI || c.InitType > InitB:
		return errors.Wrapf(ErrInvalidConfig, "InitType %d (must be 0-2)", c.InitType)
	case c.BitDepth < 8 || c.BitDepth > 16:
		return errors.Wrapf(ErrInvalidConfig, "BitDepth %d (must be 8-16)", c.BitDepth)
	case c.DepQuant && c.SignHiding:
		return errors.Wrap(ErrInvalidConfig, "DepQuant and SignHiding are exclusive")
	case c.ChromaQPOffset < -12 || c.ChromaQPOffset > 12:
		return errors.Wrapf(ErrInvalidConfig, "ChromaQPOffset %d (must be -12-12)", c.ChromaQPOffset)
	case c.QPPrimeTSMin < 0 || c.QPPrimeTSMin > 63:
		return errors.Wrapf(ErrInvalidConfig, "QPPrimeTSMin %d (must be 0-63)", c.QPPrimeTSMin)
	}
	return nil
}

func (c *SliceConfig) options() residual.Options {
	return residual.Options{DepQuant: c.DepQuant, SignHiding: c.SignHiding}
}

// qpPrime returns Qp' of a block: the component QP with the bit-depth
// offset added.
func (c *SliceConfig) qpPrime(comp Component, delta int) int {
	qp := c.QP + delta
	if comp != Y {
		qp += c.ChromaQPOffset
	}
	qp = min(max(qp, 0), 63)
	return qp + 6*(c.BitDepth-8)
}

// Component identifies a colour component.
type Component uint8

const (
	Y Component = iota
	Cb
	Cr
)

func (c Component) String() string {
	switch c {
	case Y:
		return "Y"
	case Cb:
		return "Cb"
	case Cr:
		return "Cr"
	}
	return "unknown"
}

// LastPos packs a last significant position as x | y<<8.
type LastPos uint16

// LastPosUnset asks the decoder to parse the last position itself.
const LastPosUnset LastPos = 0xffff

// Pos packs (x, y).
func Pos(x, y int) LastPos {
	return LastPos(x&0xff | (y&0xff)<<8)
}

// X returns the column of the position.
func (p LastPos) X() int { return int(p & 0xff) }

// Y returns the row of the position.
func (p LastPos) Y() int { return int(p >> 8) }

// TransformBlock describes one transform block of the coding tree.
type TransformBlock struct {
	Log2Width, Log2Height int
	Component             Component

	TransformSkip bool
	// BDPCM applies block DPCM to a transform-skip block, accumulating
	// horizontally unless BDPCMVertical is set.
	BDPCM         bool
	BDPCMVertical bool
	// SBTZeroOut marks a luma block of a sub-block transform whose 32-sample
	// dimensions code only their low 16.
	SBTZeroOut bool

	// LastPos is the last significant position, or LastPosUnset.
	LastPos LastPos

	// QPDelta is the coding unit QP delta relative to the slice QP.
	QPDelta int
}

func (tb *TransformBlock) block() residual.Block {
	b := residual.Block{
		Log2W:         tb.Log2Width,
		Log2H:         tb.Log2Height,
		Chroma:        tb.Component != Y,
		TransformSkip: tb.TransformSkip,
		BDPCM:         tb.TransformSkip && tb.BDPCM,
		BDPCMVertical: tb.BDPCMVertical,
		SBTZeroOut:    tb.SBTZeroOut,
	}
	if tb.LastPos == LastPosUnset {
		b.ParseLast = true
	} else {
		b.LastX, b.LastY = tb.LastPos.X(), tb.LastPos.Y()
	}
	return b
}

// Result summarises a decoded transform block.
type Result struct {
	// SigMap has bit (yS<<log2SubBlocksPerRow | xS) set for every coded
	// sub-block that holds a nonzero coefficient.
	SigMap uint64
	// NumSig counts the nonzero levels parsed.
	NumSig int
	// LastPos is the last significant position used (regular residual
	// coding only).
	LastPos LastPos
}
