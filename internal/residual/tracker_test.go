package residual

import "testing"

func TestTrackerNeighbours(t *testing.T) {
	tr := NewTracker(8, 8)
	tr.UpdateFirstPass(2, 2, 3)

	for _, p := range [][2]int{{1, 2}, {0, 2}, {2, 1}, {2, 0}, {1, 1}} {
		sum1, num := tr.PassOne(p[0], p[1])
		if sum1 != 3 || num != 1 {
			t.Errorf("PassOne(%d,%d) = (%d,%d), want (3,1)", p[0], p[1], sum1, num)
		}
		if s := tr.AbsSum(p[0], p[1]); s != 3 {
			t.Errorf("AbsSum(%d,%d) = %d, want 3", p[0], p[1], s)
		}
	}
	for _, p := range [][2]int{{2, 2}, {3, 2}, {1, 0}, {0, 1}, {0, 0}, {3, 3}} {
		if sum1, num := tr.PassOne(p[0], p[1]); sum1 != 0 || num != 0 {
			t.Errorf("PassOne(%d,%d) = (%d,%d), want (0,0)", p[0], p[1], sum1, num)
		}
	}

	tr.AddRemainder(2, 2, 4)
	if s := tr.AbsSum(1, 1); s != 7 {
		t.Errorf("AbsSum after remainder = %d, want 7", s)
	}
	if sum1, _ := tr.PassOne(1, 1); sum1 != 3 {
		t.Errorf("PassOne after remainder = %d, want 3", sum1)
	}

	// (0,2) sees (2,2) at x+2 (first pass 3, remainder 4) and (1,2) at x+1.
	tr.UpdateBypassed(1, 2, 9)
	if s := tr.AbsSum(0, 2); s != 16 {
		t.Errorf("AbsSum after bypass = %d, want 16", s)
	}
	if _, num := tr.PassOne(0, 2); num != 1 {
		t.Errorf("bypassed level changed neighbour count to %d", num)
	}
}

func TestTrackerSaturates(t *testing.T) {
	tr := NewTracker(4, 4)
	for i := 0; i < 20; i++ {
		tr.UpdateBypassed(1, 0, 30)
	}
	if s := tr.AbsSum(0, 0); s != absSumCap {
		t.Errorf("AbsSum = %d, want %d", s, absSumCap)
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker(32, 32)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			tr.UpdateFirstPass(x, y, 5)
			tr.SetTS(x, y, -3)
		}
	}
	tr.Reset(16, 16)
	for y := -1; y < 16; y++ {
		for x := -1; x < 16; x++ {
			if tr.TS(x, y) != 0 {
				t.Fatalf("TS(%d,%d) = %d after reset", x, y, tr.TS(x, y))
			}
			if x < 0 || y < 0 {
				continue
			}
			if s1, n := tr.PassOne(x, y); s1 != 0 || n != 0 || tr.AbsSum(x, y) != 0 {
				t.Fatalf("(%d,%d) not cleared", x, y)
			}
		}
	}
}
