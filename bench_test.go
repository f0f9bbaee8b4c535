package vvc

import (
	"math/rand"
	"testing"
)

func benchmarkDecode(b *testing.B, log2 int, cfg SliceConfig) {
	rng := rand.New(rand.NewSource(1))
	data := make([]byte, 1<<20)
	rng.Read(data)
	e, err := NewEntry(data, cfg)
	if err != nil {
		b.Fatal(err)
	}
	dst := make([]int16, 1<<(2*log2))
	tb := &TransformBlock{Log2Width: log2, Log2Height: log2, LastPos: LastPosUnset}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.DecodeResidual(tb, dst); err != nil {
			e.Reset(data)
		}
	}
}

func BenchmarkDecodeResidual4x4(b *testing.B) {
	benchmarkDecode(b, 2, DefaultSliceConfig())
}

func BenchmarkDecodeResidual16x16(b *testing.B) {
	benchmarkDecode(b, 4, DefaultSliceConfig())
}

func BenchmarkDecodeResidual32x32DQ(b *testing.B) {
	cfg := DefaultSliceConfig()
	cfg.DepQuant, cfg.SignHiding = true, false
	benchmarkDecode(b, 5, cfg)
}
