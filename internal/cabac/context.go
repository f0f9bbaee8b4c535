package cabac

// Context is one adaptive probability model. It carries two estimators that
// adapt at different speeds; their combination drives the interval split.
//
// state0 is a 10-bit estimate, state1 a 14-bit estimate. Both track the
// probability of a 1 bin.
type Context struct {
	state0 uint16
	state1 uint16
	shift0 uint8
	shift1 uint8
}

// InitValue is the (initValue, shiftIdx) pair a context is seeded from.
type InitValue struct {
	Value uint8
	Shift uint8
}

// Init seeds the context for a slice with luma QP qp.
func (c *Context) Init(iv InitValue, qp int) {
	slopeIdx := int(iv.Value >> 3)
	offsetIdx := int(iv.Value & 7)
	m := slopeIdx - 4
	n := offsetIdx*18 + 1
	pre := clip3(1, 127, ((m*(clip3(0, 63, qp)-16))>>1)+n)
	c.state0 = uint16(pre << 3)
	c.state1 = uint16(pre << 7)
	c.shift0 = (iv.Shift >> 2) + 2
	c.shift1 = (iv.Shift & 3) + 3 + c.shift0
}

// InitContexts seeds ctx[i] from ivs[i]. Both slices must have equal length.
func InitContexts(ctx []Context, ivs []InitValue, qp int) {
	ivs = ivs[:len(ctx)]
	for i := range ctx {
		ctx[i].Init(ivs[i], qp)
	}
}

// pState returns the combined 15-bit probability of a 1 bin.
func (c *Context) pState() uint32 {
	return uint32(c.state1) + 16*uint32(c.state0)
}

// MPS returns the current most probable symbol.
func (c *Context) MPS() int {
	return int(c.pState() >> 14)
}

// lps returns the LPS sub-range for the given 9-bit range.
func (c *Context) lps(rng uint32) uint32 {
	p := c.pState()
	if p>>14 != 0 {
		p = 32767 - p
	}
	return ((rng>>5)*(p>>9))>>1 + 4
}

// update adapts both estimators towards bin.
func (c *Context) update(bin int) {
	s0 := c.state0 - c.state0>>c.shift0
	s1 := c.state1 - c.state1>>c.shift1
	if bin != 0 {
		s0 += 1023 >> c.shift0
		s1 += 16383 >> c.shift1
	}
	c.state0 = s0
	c.state1 = s1
}

// State returns the raw estimator pair, for tests and diagnostics.
func (c *Context) State() (uint16, uint16) {
	return c.state0, c.state1
}

func clip3(lo, hi, v int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
