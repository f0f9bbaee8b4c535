package residual

import "testing"

func TestDepQuantReconstruct(t *testing.T) {
	tests := []struct {
		name  string
		start uint8
		abs   []int32 // scan positions 0..n
		signs uint32
		want  []int32
	}{
		// State walk 0 -> 2 -> 1 -> 2 -> 3 from the highest position down.
		{"walk", 0, []int32{1, 2, 0, 1}, 0, []int32{1, 4, 0, 2}},
		{"signs", 0, []int32{1, 2, 0, 1}, 0b101, []int32{-1, 4, 0, -2}},
		{"start3", 3, []int32{0, 0, 3}, 0, []int32{0, 0, 5}},
		{"zeros", 1, []int32{0, 0, 0, 0}, 0, []int32{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &depQuant{state: tt.start}
			q.begin()
			var lv sbLevels
			lv.reset(len(tt.abs) - 1)
			copy(lv.abs[:], tt.abs)
			lv.summarize()
			src := &fixedSource{bits: []uint32{tt.signs}}
			q.reconstruct(src, &lv)
			for n, w := range tt.want {
				if lv.val[n] != w {
					t.Errorf("val[%d] = %d, want %d", n, lv.val[n], w)
				}
			}
		})
	}
}

func TestDepQuantStateMachine(t *testing.T) {
	tests := []struct {
		state uint8
		abs   int32
		want  uint8
	}{
		{0, 0, 0}, {0, 1, 2}, {1, 0, 2}, {1, 3, 0},
		{2, 2, 1}, {2, 5, 3}, {3, 0, 3}, {3, 7, 1},
	}
	for _, tt := range tests {
		q := &depQuant{state: tt.state}
		q.advance(tt.abs)
		if q.state != tt.want {
			t.Errorf("advance(%d) from %d = %d, want %d", tt.abs, tt.state, q.state, tt.want)
		}
	}

	// An even run of zeros returns to the starting state.
	for s := uint8(0); s < 4; s++ {
		q := &depQuant{state: s}
		for i := 0; i < 16; i++ {
			q.advance(0)
		}
		if q.state != s {
			t.Errorf("16 zeros from state %d ended in %d", s, q.state)
		}
	}
}

func TestDepQuantSets(t *testing.T) {
	for _, tt := range []struct {
		state   uint8
		set     int
		zeroPos uint32
	}{{0, 0, 4}, {1, 0, 4}, {2, 1, 8}, {3, 2, 8}} {
		q := &depQuant{state: tt.state}
		if got := q.sigSet(); got != tt.set {
			t.Errorf("state %d: sigSet = %d, want %d", tt.state, got, tt.set)
		}
		if got := q.zeroPos(2); got != tt.zeroPos {
			t.Errorf("state %d: zeroPos(2) = %d, want %d", tt.state, got, tt.zeroPos)
		}
	}
}

func TestEscapeLevel(t *testing.T) {
	tests := []struct {
		v, zeroPos uint32
		want       int32
	}{
		{0, 1, 1}, {1, 1, 0}, {2, 1, 2}, {9, 1, 9},
		{0, 2, 1}, {1, 2, 2}, {2, 2, 0}, {3, 2, 3},
		{3, 4, 4}, {4, 4, 0}, {5, 4, 5},
	}
	for _, tt := range tests {
		if got := escapeLevel(tt.v, tt.zeroPos); got != tt.want {
			t.Errorf("escapeLevel(%d, %d) = %d, want %d", tt.v, tt.zeroPos, got, tt.want)
		}
	}
}

func TestRiceParam(t *testing.T) {
	tests := []struct {
		sum  int
		want uint
	}{
		{-20, 0}, {0, 0}, {6, 0}, {7, 1}, {13, 1}, {14, 2}, {27, 2}, {28, 3}, {31, 3}, {51, 3},
	}
	for _, tt := range tests {
		if got := riceParam(tt.sum); got != tt.want {
			t.Errorf("riceParam(%d) = %d, want %d", tt.sum, got, tt.want)
		}
	}
}
