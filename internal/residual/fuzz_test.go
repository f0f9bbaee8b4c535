package residual

import (
	"testing"

	"github.com/deepteams/vvc/internal/cabac"
)

func FuzzDecode(f *testing.F) {
	f.Add([]byte{0x00, 0x00}, uint8(0x22), uint8(0))
	f.Add([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, uint8(0x55), uint8(1))
	f.Add([]byte{0x5a, 0xa5, 0x12, 0x34, 0x80}, uint8(0x13), uint8(6))
	f.Add([]byte{}, uint8(0x66), uint8(3))
	f.Fuzz(func(t *testing.T, data []byte, size, flags uint8) {
		b := Block{
			Log2W:         int(size & 7),
			Log2H:         int(size >> 4 & 7),
			Chroma:        flags&1 != 0,
			TransformSkip: flags&2 != 0,
			BDPCM:         flags&4 != 0,
			BDPCMVertical: flags&8 != 0,
			SBTZeroOut:    flags&16 != 0,
			ParseLast:     true,
		}
		if !ValidSize(b.Log2W, b.Log2H, b.Chroma, b.TransformSkip) {
			return
		}
		opt := Options{DepQuant: flags&32 != 0, SignHiding: flags&64 != 0}
		var ctx Contexts
		ctx.Init(int(flags>>7), 32)
		eng := cabac.NewEngine(data)
		dst := make([]int16, 1<<(b.Log2W+b.Log2H))
		res, err := NewDecoder(eng, &ctx).Decode(&b, opt, Dequant{Scale: 16 * 64, Shift: 6}, dst)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.NumSig > len(dst) {
			t.Fatalf("NumSig %d exceeds block size %d", res.NumSig, len(dst))
		}
		nz := 0
		for _, v := range dst {
			if v != 0 {
				nz++
			}
		}
		if nz > res.NumSig && !b.BDPCM {
			t.Fatalf("%d nonzero coefficients but NumSig %d", nz, res.NumSig)
		}
	})
}
