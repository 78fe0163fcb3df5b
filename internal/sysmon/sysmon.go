// Package sysmon describes the host the benchmark runs on: system-wide CPU
// and memory usage, logical CPU count and the SIMD extensions available to
// the vector kernel.
package sysmon

import (
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	xcpu "golang.org/x/sys/cpu"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// Host is a static description of the machine.
type Host struct {
	Arch       string
	LogicalCPU int
	ModelName  string
	SIMD       []string
}

// Describe gathers the host description. Missing details are left empty.
func Describe() Host {
	h := Host{Arch: runtime.GOARCH, LogicalCPU: runtime.NumCPU(), SIMD: SIMDFeatures()}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		h.ModelName = strings.TrimSpace(infos[0].ModelName)
	}
	return h
}

// SIMDFeatures lists the vector extensions relevant to float64 addition.
func SIMDFeatures() []string {
	var out []string
	switch runtime.GOARCH {
	case "amd64", "386":
		if xcpu.X86.HasSSE2 {
			out = append(out, "SSE2")
		}
		if xcpu.X86.HasAVX {
			out = append(out, "AVX")
		}
		if xcpu.X86.HasAVX2 {
			out = append(out, "AVX2")
		}
		if xcpu.X86.HasAVX512F {
			out = append(out, "AVX-512F")
		}
	case "arm64":
		if xcpu.ARM64.HasASIMD {
			out = append(out, "NEON")
		}
		if xcpu.ARM64.HasSVE {
			out = append(out, "SVE")
		}
	}
	return out
}
