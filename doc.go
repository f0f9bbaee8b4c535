// Package vvc decodes the transform coefficients of VVC/H.266 slices.
//
// It implements the CABAC arithmetic decoder and the residual coding process
// of the standard: last position, coded sub-block flags, the three-pass
// level parse under dependent quantisation or sign data hiding, the
// transform-skip residual with optional BDPCM, and flat dequantisation. The
// output of each transform block is a row-major int16 coefficient array
// ready for the inverse transform.
//
// Parameter sets, slice headers and the coding tree are parsed elsewhere.
// The caller supplies the slice-level configuration and, for each transform
// block, its size, component and coding tools.
//
// Basic usage:
//
//	entry, err := vvc.NewEntry(sliceData, vvc.DefaultSliceConfig())
//	if err != nil {
//		return err
//	}
//	coeffs := make([]int16, 16*16)
//	res, err := entry.DecodeResidual(&vvc.TransformBlock{
//		Log2Width:  4,
//		Log2Height: 4,
//		LastPos:    vvc.LastPosUnset,
//	}, coeffs)
//
// An Entry is not safe for concurrent use. Independent entry points (tiles,
// wavefront rows) each get their own Entry and may be decoded in parallel.
package vvc
