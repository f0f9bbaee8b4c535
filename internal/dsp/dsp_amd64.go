//go:build amd64

package dsp

import "golang.org/x/sys/cpu"

// dequantStore4 is plain Go. AVX2 only serves as a hint that the core is wide
// enough to overlap its four independent products.
func init() {
	// Runs after dsp.go's init() due to alphabetical ordering.
	if cpu.X86.HasAVX2 {
		DequantStore = dequantStore4
		kernel = "unrolled"
	}
}
