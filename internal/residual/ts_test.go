package residual

import "testing"

func TestTSPredict(t *testing.T) {
	tests := []struct {
		a, left, above int32
		want           int32
	}{
		{0, 5, 5, 0},
		{1, 0, 0, 1},
		{1, 3, -2, 3},
		{1, 0, -4, 4},
		{2, 3, 0, 1},
		{3, 3, 0, 2},
		{4, 3, 0, 4},
		{2, 0, 0, 2},
	}
	for _, tt := range tests {
		if got := tsPredict(tt.a, tt.left, tt.above); got != tt.want {
			t.Errorf("tsPredict(%d, %d, %d) = %d, want %d", tt.a, tt.left, tt.above, got, tt.want)
		}
	}
}

func TestTSSignCtx(t *testing.T) {
	tests := []struct {
		left, above int32
		bdpcm       bool
		want        int
	}{
		{0, 0, false, 0},
		{1, -1, false, 0},
		{1, 0, false, 1},
		{2, 3, false, 1},
		{-1, 0, false, 2},
		{-1, -1, false, 2},
		{0, 0, true, 3},
		{0, 5, true, 4},
		{0, -5, true, 5},
	}
	for _, tt := range tests {
		if got := tsSignCtx(tt.left, tt.above, tt.bdpcm); got != tt.want {
			t.Errorf("tsSignCtx(%d, %d, %v) = %d, want %d", tt.left, tt.above, tt.bdpcm, got, tt.want)
		}
	}
}

func TestDecodeTSSingle(t *testing.T) {
	// 4x4 transform skip, one sub-block whose coded flag is inferred. Only
	// the first position is significant; the last position is read as zero.
	bins := []int{1, 1, 0} // sig, sign (negative), gt1
	for n := 1; n < 16; n++ {
		bins = append(bins, 0)
	}
	src := &fixedSource{bins: bins}
	var ctx Contexts
	ctx.Init(0, 32)
	dst := make([]int16, 16)
	b := Block{Log2W: 2, Log2H: 2, TransformSkip: true}
	res, err := NewDecoder(src, &ctx).Decode(&b, Options{}, identity, dst)
	if err != nil {
		t.Fatal(err)
	}
	if dst[0] != -1 {
		t.Errorf("coeff[0] = %d, want -1", dst[0])
	}
	for i := 1; i < 16; i++ {
		if dst[i] != 0 {
			t.Errorf("coeff[%d] = %d, want 0", i, dst[i])
		}
	}
	if res.NumSig != 1 || res.SigMap != 1 {
		t.Errorf("result = %+v", res)
	}
	if src.short != 0 || len(src.bins) != 0 {
		t.Errorf("consumed mismatch: short %d, left %d", src.short, len(src.bins))
	}
}

func TestDecodeTSBDPCM(t *testing.T) {
	// Two ones on the top row accumulate horizontally.
	bins := []int{
		1, 0, 0, // (0,0): sig, sign +, gt1 0
		0,       // (0,1)
		1, 0, 0, // (1,0)
	}
	for n := 3; n < 16; n++ {
		bins = append(bins, 0)
	}
	src := &fixedSource{bins: bins}
	var ctx Contexts
	ctx.Init(0, 32)
	dst := make([]int16, 16)
	b := Block{Log2W: 2, Log2H: 2, TransformSkip: true, BDPCM: true}
	if _, err := NewDecoder(src, &ctx).Decode(&b, Options{}, identity, dst); err != nil {
		t.Fatal(err)
	}
	want := []int16{1, 2, 2, 2}
	for i, w := range want {
		if dst[i] != w {
			t.Errorf("row0[%d] = %d, want %d", i, dst[i], w)
		}
	}
	for i := 4; i < 16; i++ {
		if dst[i] != 0 {
			t.Errorf("coeff[%d] = %d, want 0", i, dst[i])
		}
	}
}
