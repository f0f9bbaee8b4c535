//go:build arm64

package dsp

import "golang.org/x/sys/cpu"

// dequantStore4 is plain Go. ASIMD only serves as a hint that the core is wide
// enough to overlap its four independent products.
func init() {
	if cpu.ARM64.HasASIMD {
		DequantStore = dequantStore4
		kernel = "unrolled"
	}
}
