package residual

import "github.com/deepteams/vvc/internal/cabac"

var lastOffsetLuma = [6]int{0, 0, 3, 6, 10, 15}

// ZeroOut returns the log2 extents inside which coefficients may be nonzero.
// Dimensions of 64 keep only the low 32; with sbtZeroOut a 32 dimension of a
// luma block keeps only the low 16.
func ZeroOut(log2W, log2H int, chroma, sbtZeroOut bool) (int, int) {
	zw, zh := min(log2W, 5), min(log2H, 5)
	if sbtZeroOut && !chroma && log2W < 6 && log2H < 6 {
		if log2W == 5 {
			zw = 4
		}
		if log2H == 5 {
			zh = 4
		}
	}
	return zw, zh
}

func readLastPrefix(src BinSource, ctx []cabac.Context, log2Size, log2Zo int, chroma bool) int {
	maxPrefix := log2Zo<<1 - 1
	if maxPrefix <= 0 {
		return 0
	}
	offset, shift := 0, 0
	if chroma {
		offset = lastChroma
		shift = min(max((1<<log2Size)>>3, 0), 2)
	} else {
		offset = lastOffsetLuma[max(log2Size-1, 0)]
		shift = (log2Size + 1) >> 2
	}
	p := 0
	for p < maxPrefix && src.DecodeBin(&ctx[offset+p>>shift]) != 0 {
		p++
	}
	return p
}

func lastSuffix(src BinSource, prefix int) int {
	if prefix <= 3 {
		return prefix
	}
	n := prefix>>1 - 1
	return 1<<n*(2+prefix&1) + int(src.DecodeBypassBits(n))
}

// ReadLastPos parses last_sig_coeff_{x,y}_{prefix,suffix} for a block of
// the given log2 size and returns the last significant position. The
// position always lies inside the zero-out extent.
func ReadLastPos(src BinSource, ctx *Contexts, log2W, log2H int, chroma, sbtZeroOut bool) (x, y int) {
	zw, zh := ZeroOut(log2W, log2H, chroma, sbtZeroOut)
	px := readLastPrefix(src, ctx.LastX[:], log2W, zw, chroma)
	py := readLastPrefix(src, ctx.LastY[:], log2H, zh, chroma)
	return lastSuffix(src, px), lastSuffix(src, py)
}
