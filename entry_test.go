package vvc

import (
	"errors"
	"testing"

	"github.com/deepteams/vvc/internal/cabac"
	"github.com/deepteams/vvc/internal/residual"
)

// dcStream codes a 4x4 luma DC-only residual whose last position is given
// by the caller: gt1 = 0 and a negative sign, then end of slice.
func dcStream(cfg SliceConfig) []byte {
	var ctx residual.Contexts
	ctx.Init(int(cfg.InitType), cfg.QP)
	enc := cabac.NewEncoder()
	enc.EncodeBin(0, &ctx.Gtx[0])
	enc.EncodeBypass(1)
	return enc.Close()
}

func TestDecodeResidualDC(t *testing.T) {
	cfg := DefaultSliceConfig()
	e, err := NewEntry(dcStream(cfg), cfg)
	if err != nil {
		t.Fatal(err)
	}
	dst := make([]int16, 16)
	res, err := e.DecodeResidual(&TransformBlock{Log2Width: 2, Log2Height: 2, LastPos: Pos(0, 0)}, dst)
	if err != nil {
		t.Fatal(err)
	}
	// Qp' 44 at 10 bits: scale 16*51<<7, shift 7.
	if dst[0] != -816 {
		t.Errorf("dc = %d, want -816", dst[0])
	}
	if res.NumSig != 1 || res.SigMap != 1 || res.LastPos != Pos(0, 0) {
		t.Errorf("result = %+v", res)
	}
	end, err := e.DecodeTerminate()
	if err != nil || !end {
		t.Errorf("DecodeTerminate = %v, %v, want true, nil", end, err)
	}
}

func TestDecodeResidualParsedLast(t *testing.T) {
	cfg := DefaultSliceConfig()
	cfg.DepQuant, cfg.SignHiding = true, false
	var ctx residual.Contexts
	ctx.Init(int(cfg.InitType), cfg.QP)
	enc := cabac.NewEncoder()
	enc.EncodeBin(0, &ctx.LastX[0])
	enc.EncodeBin(0, &ctx.LastY[0])
	enc.EncodeBin(1, &ctx.Gtx[0]) // gt1
	enc.EncodeBin(0, &ctx.Par[0])
	enc.EncodeBin(0, &ctx.Gtx[32]) // gt3
	enc.EncodeBypass(0)
	data := enc.Close()

	e, err := NewEntry(data, cfg)
	if err != nil {
		t.Fatal(err)
	}
	dst := make([]int16, 16)
	res, err := e.DecodeResidual(&TransformBlock{Log2Width: 2, Log2Height: 2, LastPos: LastPosUnset}, dst)
	if err != nil {
		t.Fatal(err)
	}
	// Level 2 reconstructs to index 4 under dependent quantisation, scaled
	// with Qp' 45: 16*57<<7 >> 8.
	if want := int16((4*(16*57<<7) + 128) >> 8); dst[0] != want {
		t.Errorf("dc = %d, want %d", dst[0], want)
	}
	if res.LastPos != Pos(0, 0) {
		t.Errorf("LastPos = %#x, want 0", res.LastPos)
	}
	if end, _ := e.DecodeTerminate(); !end {
		t.Error("terminating bin not found")
	}
}

func TestDecodeResidualExhausted(t *testing.T) {
	cfg := DefaultSliceConfig()
	e, err := NewEntry([]byte{0x12}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	dst := make([]int16, 32*32)
	tb := &TransformBlock{Log2Width: 5, Log2Height: 5, LastPos: LastPosUnset}
	for i := 0; i < 4096; i++ {
		_, err = e.DecodeResidual(tb, dst)
		if err != nil {
			break
		}
	}
	if !errors.Is(err, ErrBitstreamExhausted) {
		t.Fatalf("err = %v, want ErrBitstreamExhausted", err)
	}
	if !e.Exhausted() {
		t.Error("Exhausted() = false after overrun")
	}
}

func TestDecodeResidualCorruptStart(t *testing.T) {
	e, err := NewEntry([]byte{0xff, 0xc0, 0x00, 0x00}, DefaultSliceConfig())
	if err != nil {
		t.Fatal(err)
	}
	_, err = e.DecodeResidual(&TransformBlock{Log2Width: 2, Log2Height: 2, LastPos: Pos(0, 0)}, make([]int16, 16))
	if !errors.Is(err, ErrBitstreamExhausted) {
		t.Errorf("err = %v, want ErrBitstreamExhausted", err)
	}
}

func TestDecodeResidualErrors(t *testing.T) {
	e, err := NewEntry([]byte{0, 0, 0, 0}, DefaultSliceConfig())
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		tb   TransformBlock
		n    int
		want error
	}{
		{"size", TransformBlock{Log2Width: 0, Log2Height: 0}, 1, ErrInvalidBlockSize},
		{"negative", TransformBlock{Log2Width: -1, Log2Height: 2, LastPos: Pos(0, 0)}, 16, ErrInvalidBlockSize},
		{"chroma64", TransformBlock{Log2Width: 6, Log2Height: 6, Component: Cb}, 4096, ErrInvalidBlockSize},
		{"component", TransformBlock{Log2Width: 2, Log2Height: 2, Component: 3}, 16, ErrInvalidBlockSize},
		{"buffer", TransformBlock{Log2Width: 4, Log2Height: 4}, 100, ErrBufferTooSmall},
		{"last", TransformBlock{Log2Width: 2, Log2Height: 2, LastPos: Pos(4, 0)}, 16, ErrInvalidLastPosition},
		{"last64", TransformBlock{Log2Width: 6, Log2Height: 6, LastPos: Pos(0, 33)}, 4096, ErrInvalidLastPosition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.DecodeResidual(&tt.tb, make([]int16, tt.n))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEntryReset(t *testing.T) {
	cfg := DefaultSliceConfig()
	data := dcStream(cfg)
	e, err := NewEntry(data, cfg)
	if err != nil {
		t.Fatal(err)
	}
	tb := &TransformBlock{Log2Width: 2, Log2Height: 2, LastPos: Pos(0, 0)}
	for run := 0; run < 3; run++ {
		dst := make([]int16, 16)
		if _, err := e.DecodeResidual(tb, dst); err != nil {
			t.Fatal(err)
		}
		if dst[0] != -816 {
			t.Fatalf("run %d: dc = %d, want -816", run, dst[0])
		}
		e.Reset(data)
	}
}

func TestLastPosPacking(t *testing.T) {
	for _, p := range [][2]int{{0, 0}, {31, 0}, {0, 31}, {17, 5}} {
		lp := Pos(p[0], p[1])
		if lp.X() != p[0] || lp.Y() != p[1] {
			t.Errorf("Pos(%d,%d) unpacks to (%d,%d)", p[0], p[1], lp.X(), lp.Y())
		}
		if lp == LastPosUnset {
			t.Errorf("Pos(%d,%d) collides with LastPosUnset", p[0], p[1])
		}
	}
}
