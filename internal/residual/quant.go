package residual

// qStateTrans is the dependent quantisation state machine, indexed by the
// current state and the parity of the decoded level.
var qStateTrans = [4][2]uint8{{0, 2}, {2, 0}, {1, 3}, {3, 1}}

// riceTable maps a clipped template sum to a Rice parameter.
var riceTable = [32]uint8{
	0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 3, 3, 3, 3,
}

func riceParam(sum int) uint {
	if sum < 0 {
		sum = 0
	} else if sum > 31 {
		sum = 31
	}
	return uint(riceTable[sum])
}

// quantMode is the part of regular residual coding that differs between
// dependent quantisation and independent quantisation with optional sign
// data hiding.
type quantMode interface {
	// begin marks the start of a coded sub-block.
	begin()
	// sigSet selects the sig_coeff_flag context set for the next position.
	sigSet() int
	// zeroPos is the escape code that stands for a zero level.
	zeroPos(rice uint) uint32
	// advance feeds a decoded absolute level to the mode.
	advance(abs int32)
	// reconstruct reads the signs of the sub-block and fills lv.val.
	reconstruct(src BinSource, lv *sbLevels)
	// reset prepares the mode for a new transform block.
	reset()
}

// depQuant tracks the four-state trellis of dependent quantisation.
type depQuant struct {
	state uint8
	start uint8
}

func (q *depQuant) reset() { q.state, q.start = 0, 0 }
func (q *depQuant) begin() { q.start = q.state }

func (q *depQuant) sigSet() int {
	if q.state > 1 {
		return int(q.state) - 1
	}
	return 0
}

func (q *depQuant) zeroPos(rice uint) uint32 {
	if q.state < 2 {
		return 1 << rice
	}
	return 2 << rice
}

func (q *depQuant) advance(abs int32) {
	q.state = qStateTrans[q.state][abs&1]
}

// reconstruct reads one bypass sign per nonzero level and maps each level to
// its reconstruction index 2*abs - (state > 1), replaying the state machine
// from the state the sub-block started in.
func (q *depQuant) reconstruct(src BinSource, lv *sbLevels) {
	if lv.num == 0 {
		return
	}
	signs := src.DecodeBypassBits(lv.num)
	k := lv.num - 1
	s := q.start
	for n := lv.start; n >= 0; n-- {
		a := lv.abs[n]
		if a == 0 {
			lv.val[n] = 0
			s = qStateTrans[s][0]
			continue
		}
		v := 2 * a
		if s > 1 {
			v--
		}
		if signs>>uint(k)&1 != 0 {
			v = -v
		}
		k--
		lv.val[n] = v
		s = qStateTrans[s][a&1]
	}
}

// signHiding is independent scalar quantisation. When enabled, the sign of
// the first significant coefficient of a sub-block whose significant span
// exceeds three scan positions is implied by the parity of the level sum.
type signHiding struct {
	enabled bool
}

func (signHiding) reset()                   {}
func (signHiding) begin()                   {}
func (signHiding) sigSet() int              { return 0 }
func (signHiding) zeroPos(rice uint) uint32 { return 1 << rice }
func (signHiding) advance(int32)            {}

func (h signHiding) reconstruct(src BinSource, lv *sbLevels) {
	if lv.num == 0 {
		return
	}
	hidden := h.enabled && lv.last-lv.first > 3
	nbits := lv.num
	if hidden {
		nbits--
	}
	signs := src.DecodeBypassBits(nbits)
	k := nbits - 1
	var sum int32
	for n := lv.start; n >= 0; n-- {
		a := lv.abs[n]
		lv.val[n] = a
		if a == 0 {
			continue
		}
		sum += a
		if hidden && n == lv.first {
			if sum&1 != 0 {
				lv.val[n] = -a
			}
			continue
		}
		if signs>>uint(k)&1 != 0 {
			lv.val[n] = -a
		}
		k--
	}
}
