package pool

import (
	"runtime"
	"sync"
	"testing"
)

func TestGetInt16_Length(t *testing.T) {
	tests := []struct {
		name   string
		length int
		minCap int
	}{
		{"zero", 0, Size16},
		{"4x4", 16, Size16},
		{"8x8", 64, Size64},
		{"2x32", 64, Size64},
		{"16x16", 256, Size256},
		{"32x32", 1024, Size1K},
		{"64x64", 4096, Size4K},
		{"odd", 100, Size256},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := GetInt16(tt.length)
			if len(s) != tt.length {
				t.Errorf("GetInt16(%d): len = %d, want %d", tt.length, len(s), tt.length)
			}
			if cap(s) < tt.minCap {
				t.Errorf("GetInt16(%d): cap = %d, want >= %d", tt.length, cap(s), tt.minCap)
			}
			PutInt16(s)
		})
	}
}

func TestGetInt32_Large(t *testing.T) {
	// Beyond the largest class the pool allocates a fresh slice.
	n := 2 * Size4K
	s := GetInt32(n)
	if len(s) != n {
		t.Errorf("GetInt32(%d): len = %d", n, len(s))
	}
	PutInt32(s)
}

func TestBucketIndex(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0}, {16, 0}, {17, 1}, {64, 1}, {65, 2}, {256, 2},
		{257, 3}, {1024, 3}, {1025, 4}, {4096, 4}, {10000, 4},
	}
	for _, tt := range tests {
		if got := bucketIndex(tt.n); got != tt.want {
			t.Errorf("bucketIndex(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestPut_Foreign(t *testing.T) {
	// Slices not obtained from the pool must not poison a class.
	PutInt16(nil)
	PutInt16(make([]int16, 3))
	PutInt16(make([]int16, 100))
	s := GetInt16(256)
	if cap(s) < 256 {
		t.Errorf("GetInt16(256) after foreign Put: cap = %d", cap(s))
	}
	PutInt16(s)
}

func TestOf(t *testing.T) {
	type state struct{ n int }
	p := NewOf(func() *state { return &state{n: -1} })
	v := p.Get()
	if v == nil {
		t.Fatal("Get returned nil")
	}
	v.n = 7
	p.Put(v)
	p.Put(nil)
	runtime.GC()
	if w := p.Get(); w == nil {
		t.Fatal("Get after GC returned nil")
	}
}

func TestConcurrency(t *testing.T) {
	const goroutines = 32
	const iterations = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				for _, n := range []int{4, 32, 128, 512, 4096} {
					s := GetInt16(n)
					if len(s) != n {
						t.Errorf("concurrent GetInt16(%d): len = %d", n, len(s))
						return
					}
					for j := range s {
						s[j] = int16(j)
					}
					PutInt16(s)
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkGetInt16(b *testing.B) {
	for _, n := range []int{16, 1024, 4096} {
		b.Run(sizeName(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				PutInt16(GetInt16(n))
			}
		})
	}
}

func sizeName(n int) string {
	switch n {
	case 16:
		return "16"
	case 1024:
		return "1K"
	}
	return "4K"
}
