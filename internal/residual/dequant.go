package residual

var levelScale = [2][6]int64{
	{40, 45, 51, 57, 64, 72},
	{57, 64, 72, 80, 90, 102},
}

// flatScale is the scaling-list factor m when no scaling list is applied.
const flatScale = 16

// tsShift is the scaling shift of transform-skip blocks.
const tsShift = 10

// Dequant is the scaling applied to the levels of one transform block:
// coefficient = (level*Scale + (1 << (Shift-1))) >> Shift.
type Dequant struct {
	Scale int64
	Shift uint
}

// QuantParams carries the quantisation inputs of one transform block.
type QuantParams struct {
	QP           int // Qp' of the colour component
	BitDepth     int
	DepQuant     bool
	QPPrimeTSMin int
}

// DeriveDequant returns the scaling of a (1<<log2W) x (1<<log2H) block.
// Dependent quantisation reconstructs on a half step grid, so it scales with
// qP+1 and one more shift bit. Transform-skip blocks never use it.
func DeriveDequant(q QuantParams, log2W, log2H int, transformSkip bool) Dequant {
	qp := q.QP
	if transformSkip {
		qp = max(qp, q.QPPrimeTSMin)
		return Dequant{
			Scale: flatScale * levelScale[0][qp%6] << uint(qp/6),
			Shift: tsShift,
		}
	}
	rect := (log2W + log2H) & 1
	shift := q.BitDepth + rect + (log2W+log2H)/2 - 5
	if q.DepQuant {
		qp++
		shift++
	}
	return Dequant{
		Scale: flatScale * levelScale[rect][qp%6] << uint(qp/6),
		Shift: uint(shift),
	}
}
