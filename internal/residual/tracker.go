package residual

const (
	gridPad    = 2
	gridStride = 32 + gridPad
	gridSize   = gridStride * gridStride

	// Sums beyond this never change a derived Rice parameter.
	absSumCap = 51
)

// Tracker accumulates, for every position of a transform block, the
// template sums over its already decoded right and below neighbours
// (x+1,y), (x+2,y), (x,y+1), (x,y+2) and (x+1,y+1).
//
// Values are pushed from each decoded coefficient to the positions that
// will later read it, so context derivation is a single lookup. The grid is
// padded above and to the left so the pushes need no bounds checks.
type Tracker struct {
	w, h int

	sum1   [gridSize]uint8 // sum of min(4+(a&1), a)
	numSig [gridSize]uint8 // number of nonzero neighbours
	sumAbs [gridSize]uint8 // sum of absolute levels, saturating at absSumCap

	// Signed levels of transform-skip blocks, indexed directly.
	ts [gridSize]int32
}

// NewTracker returns a tracker ready for a w x h block.
func NewTracker(w, h int) *Tracker {
	t := &Tracker{}
	t.Reset(w, h)
	return t
}

func gridIndex(x, y int) int {
	return (y+gridPad)*gridStride + x + gridPad
}

// Reset clears the state for a new w x h block (w, h <= 32).
func (t *Tracker) Reset(w, h int) {
	t.w, t.h = w, h
	for y := -gridPad; y < h; y++ {
		i := gridIndex(-gridPad, y)
		j := i + w + gridPad
		clear(t.sum1[i:j])
		clear(t.numSig[i:j])
		clear(t.sumAbs[i:j])
		clear(t.ts[i:j])
	}
}

var pushOffsets = [5]int{1, 2, gridStride, 2 * gridStride, gridStride + 1}

func satAdd(s uint8, a int) uint8 {
	v := int(s) + a
	if v > absSumCap {
		v = absSumCap
	}
	return uint8(v)
}

// UpdateFirstPass records a coefficient whose first-pass level a1 is known.
// The same call covers the implicitly significant last coefficient.
func (t *Tracker) UpdateFirstPass(x, y, a1 int) {
	if a1 == 0 {
		return
	}
	i := gridIndex(x, y)
	for _, o := range pushOffsets {
		k := i - o
		t.sum1[k] += uint8(a1)
		t.numSig[k]++
		t.sumAbs[k] = satAdd(t.sumAbs[k], a1)
	}
}

// AddRemainder adds the part of a level coded after the first pass.
func (t *Tracker) AddRemainder(x, y, delta int) {
	if delta == 0 {
		return
	}
	i := gridIndex(x, y)
	for _, o := range pushOffsets {
		k := i - o
		t.sumAbs[k] = satAdd(t.sumAbs[k], delta)
	}
}

// UpdateBypassed records a level decoded entirely in bypass mode. Only the
// absolute sum is maintained: once the context-coded bin budget is spent it
// stays spent, so the first-pass sums are never read again for this block.
func (t *Tracker) UpdateBypassed(x, y, a int) {
	if a == 0 {
		return
	}
	i := gridIndex(x, y)
	for _, o := range pushOffsets {
		k := i - o
		t.sumAbs[k] = satAdd(t.sumAbs[k], a)
	}
}

// PassOne returns the first-pass sum and the neighbour count at (x, y).
func (t *Tracker) PassOne(x, y int) (sum1, numSig int) {
	i := gridIndex(x, y)
	return int(t.sum1[i]), int(t.numSig[i])
}

// AbsSum returns the saturated absolute sum at (x, y).
func (t *Tracker) AbsSum(x, y int) int {
	return int(t.sumAbs[gridIndex(x, y)])
}

// SetTS stores a signed transform-skip level at (x, y).
func (t *Tracker) SetTS(x, y int, v int32) {
	t.ts[gridIndex(x, y)] = v
}

// TS returns the transform-skip level at (x, y). Positions left of or above
// the block read as zero.
func (t *Tracker) TS(x, y int) int32 {
	return t.ts[gridIndex(x, y)]
}
