// Package sysmon samples system-wide CPU and memory usage and reports the
// CPU features relevant to floating-point transforms.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	xcpu "golang.org/x/sys/cpu"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent  float64 // 0.0 .. 100.0
	MemPercent  float64 // 0.0 .. 100.0
	LogicalCPUs int
	TotalMemory uint64 // bytes
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Fields are left at zero when
// the platform cannot report them.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	if n, err := cpu.Counts(true); err == nil {
		s.LogicalCPUs = n
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
		s.TotalMemory = vmem.Total
	}
	return s
}

// CPUFeatures lists the SIMD and fused multiply-add extensions available on
// this processor, in a fixed order. The list is empty on platforms where
// none of them is detected.
func CPUFeatures() []string {
	features := []struct {
		name    string
		present bool
	}{
		{"sse4.1", xcpu.X86.HasSSE41},
		{"avx", xcpu.X86.HasAVX},
		{"avx2", xcpu.X86.HasAVX2},
		{"fma", xcpu.X86.HasFMA},
		{"avx512f", xcpu.X86.HasAVX512F},
		{"asimd", xcpu.ARM64.HasASIMD},
		{"fphp", xcpu.ARM64.HasFPHP},
	}
	var out []string
	for _, f := range features {
		if f.present {
			out = append(out, f.name)
		}
	}
	return out
}
