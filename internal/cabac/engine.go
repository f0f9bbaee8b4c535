// Package cabac implements the context-adaptive binary arithmetic decoder
// used for VVC slice data, together with a matching encoder.
//
// The decoder keeps the 9-bit coding offset scaled by 2^17 in a 32-bit low
// register. The bits below the offset hold up to 16 buffered input bits
// followed by a single marker bit; once the marker has been shifted up to
// bit 16 the next two input bytes are merged in below it.
package cabac

import "math/bits"

const (
	cabacBits = 16
	cabacMask = 1<<cabacBits - 1

	// scaleShift places the 9-bit range on top of the buffered bits.
	scaleShift = cabacBits + 1

	// Parameters of the abs_remainder / dec_abs_level binarisation.
	remAbsCutoff       = 5
	log2TransformRange = 15
	remAbsMaxPrefix    = 32 - log2TransformRange
)

// renormTable gives the renormalisation shift for a range below 256,
// indexed by range>>3.
var renormTable = [32]uint8{
	6, 5, 4, 4, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 2,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
}

// Engine decodes bins from one CABAC entry (a slice segment or tile
// substream). It is not safe for concurrent use; each entry owns its engine.
type Engine struct {
	low     uint32 // scaled offset | buffered bits | marker
	rng     uint32 // 9-bit range, in [256, 510] between calls
	buf     []byte // entry bytes
	pos     int    // next byte to fetch
	pastEnd bool   // a fetch found no data left (tolerated once)
	overrun int    // fetches past end after the tolerated one
	badInit bool   // the entry opened with offset 510 or 511
}

// NewEngine creates an Engine positioned at the start of data.
func NewEngine(data []byte) *Engine {
	e := &Engine{}
	e.Init(data)
	return e
}

// Init resets the engine onto a new entry.
func (e *Engine) Init(data []byte) {
	e.buf = data
	e.pos = 0
	e.pastEnd = false
	e.overrun = 0
	e.rng = 510
	e.low = uint32(e.byteAt(0))<<18 | uint32(e.byteAt(1))<<10 | 1<<9
	e.pos = 2
	// The offset must stay below the range; 510 and 511 never start a
	// conforming entry and would overflow low.
	e.badInit = e.low>>scaleShift >= 510
}

func (e *Engine) byteAt(i int) byte {
	if i < len(e.buf) {
		return e.buf[i]
	}
	return 0
}

// fetch returns the next two input bytes placed at bits 16..1. Fetching
// beyond the entry yields zero bits; the first such fetch is tolerated and
// pins the cursor two bytes past the end, every later one counts as an
// overrun.
func (e *Engine) fetch() uint32 {
	end := len(e.buf)
	if e.pos < end {
		v := uint32(e.buf[e.pos])<<9 | uint32(e.byteAt(e.pos+1))<<1
		e.pos += 2
		return v
	}
	if e.pastEnd {
		e.overrun++
	}
	e.pastEnd = true
	e.pos = end + 2
	return 0
}

// refill merges two fresh bytes below the marker, which sits at bit 16 or
// a few bits above it after a multi-bit renormalisation.
func (e *Engine) refill() {
	i := bits.TrailingZeros32(e.low) - cabacBits
	e.low += (e.fetch() - cabacMask) << uint(i)
}

// DecodeBin decodes one context-coded bin and adapts c.
func (e *Engine) DecodeBin(c *Context) int {
	lps := c.lps(e.rng)
	mps := c.MPS()
	e.rng -= lps
	scaled := e.rng << scaleShift

	bin := mps
	if e.low >= scaled {
		bin ^= 1
		e.low -= scaled
		e.rng = lps
	}
	if e.rng < 256 {
		shift := renormTable[e.rng>>3]
		e.rng <<= shift
		e.low <<= shift
		if e.low&cabacMask == 0 {
			e.refill()
		}
	}
	c.update(bin)
	return bin
}

// DecodeBypass decodes one equiprobable bin.
func (e *Engine) DecodeBypass() int {
	e.low <<= 1
	if e.low&cabacMask == 0 {
		e.refill()
	}
	scaled := e.rng << scaleShift
	if e.low >= scaled {
		e.low -= scaled
		return 1
	}
	return 0
}

// DecodeBypassBits decodes n (<= 32) bypass bins, most significant first.
// It shifts through all buffered bits before refilling, and returns the same
// value as n successive DecodeBypass calls.
func (e *Engine) DecodeBypassBits(n int) uint32 {
	var v uint32
	scaled := e.rng << scaleShift
	for n > 0 {
		k := cabacBits - bits.TrailingZeros32(e.low)
		if k > n {
			k = n
		}
		n -= k
		for ; k > 0; k-- {
			e.low <<= 1
			v <<= 1
			if e.low >= scaled {
				e.low -= scaled
				v |= 1
			}
		}
		if e.low&cabacMask == 0 {
			e.refill()
		}
	}
	return v
}

// DecodeTerminate decodes a terminating bin (end_of_slice_segment_flag and
// friends). A 1 ends the entry and leaves the engine unnormalised.
func (e *Engine) DecodeTerminate() int {
	e.rng -= 2
	scaled := e.rng << scaleShift
	if e.low >= scaled {
		return 1
	}
	if e.rng < 256 {
		e.rng <<= 1
		e.low <<= 1
		if e.low&cabacMask == 0 {
			e.refill()
		}
	}
	return 0
}

// DecodeRemAbs decodes an abs_remainder / dec_abs_level value with Rice
// parameter rice: a unary prefix of up to 17 bins, rice suffix bits below the
// cutoff, and an escape code growing with the prefix above it.
func (e *Engine) DecodeRemAbs(rice uint) uint32 {
	prefix := 0
	for prefix < remAbsMaxPrefix && e.DecodeBypass() != 0 {
		prefix++
	}
	if prefix < remAbsCutoff {
		return uint32(prefix)<<rice + e.DecodeBypassBits(int(rice))
	}
	length := prefix - remAbsCutoff + int(rice)
	if prefix == remAbsMaxPrefix {
		length = log2TransformRange
	}
	base := (uint32(1)<<uint(prefix-remAbsCutoff) + remAbsCutoff - 1) << rice
	return base + e.DecodeBypassBits(length)
}

// DecodeTruncatedUnary decodes a bypass truncated-unary value in
// [0, maxSymbol].
func (e *Engine) DecodeTruncatedUnary(maxSymbol int) int {
	v := 0
	for v < maxSymbol && e.DecodeBypass() != 0 {
		v++
	}
	return v
}

// DecodeTruncatedBinary decodes a bypass truncated-binary value in [0, n).
func (e *Engine) DecodeTruncatedBinary(n int) int {
	if n <= 1 {
		return 0
	}
	k := bits.Len(uint(n)) - 1
	u := 1<<(k+1) - n
	v := int(e.DecodeBypassBits(k))
	if v < u {
		return v
	}
	return (v<<1 | e.DecodeBypass()) - u
}

// Range returns the current 9-bit range.
func (e *Engine) Range() uint32 {
	return e.rng
}

// Exhausted reports whether the engine has fetched past the end of the entry.
// A single such fetch is normal when the final bins sit on the boundary.
func (e *Engine) Exhausted() bool {
	return e.pastEnd
}

// Overrun reports whether the engine fetched past the end more than the one
// tolerated time, or the entry opened with an offset no encoder produces.
// Either way the entry was truncated or corrupt.
func (e *Engine) Overrun() bool {
	return e.overrun > 0 || e.badInit
}

// BytesUsed returns the number of entry bytes fetched so far, capped at the
// entry length.
func (e *Engine) BytesUsed() int {
	if e.pos > len(e.buf) {
		return len(e.buf)
	}
	return e.pos
}
