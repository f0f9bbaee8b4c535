package dsp

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Feature is one CPU capability as reported by Features.
type Feature struct {
	Name    string
	Present bool
}

// Features lists the vector capabilities relevant to the kernels on the
// running architecture.
func Features() []Feature {
	switch runtime.GOARCH {
	case "amd64", "386":
		return []Feature{
			{"sse2", cpu.X86.HasSSE2},
			{"sse41", cpu.X86.HasSSE41},
			{"avx2", cpu.X86.HasAVX2},
			{"bmi2", cpu.X86.HasBMI2},
		}
	case "arm64":
		return []Feature{
			{"asimd", cpu.ARM64.HasASIMD},
			{"sve", cpu.ARM64.HasSVE},
		}
	}
	return nil
}

// Kernel names the dequantisation kernel currently installed.
func Kernel() string {
	return kernel
}
