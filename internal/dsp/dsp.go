// Package dsp holds the row kernels that turn parsed coefficient levels into
// stored transform coefficients.
//
// Kernels are reached through function variables. Init installs the
// portable versions; architecture files swap in the unrolled ones when the
// CPU reports wide vector units.
package dsp

// DequantFunc scales a w x h raster of levels by scale, rounds, shifts right
// by shift, clips to int16 and stores the rows into dst with the given
// stride.
type DequantFunc func(dst []int16, stride int, src []int32, w, h int, scale int64, shift uint)

// AccumulateFunc replaces each level of a w x h raster by the clipped running
// sum along rows (vertical == false) or columns.
type AccumulateFunc func(src []int32, w, h int, vertical bool)

var (
	DequantStore DequantFunc
	Accumulate   AccumulateFunc

	kernel string
)

// Init resets the dispatch table to the portable kernels.
func Init() {
	DequantStore = dequantStore
	Accumulate = accumulate
	kernel = "generic"
}

func init() {
	Init()
}
