package sysmon

import (
	"runtime"
	"slices"
	"testing"
)

func TestSample_ReturnsValidRanges(t *testing.T) {
	s := Sample()
	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent out of range: %f", s.CPUPercent)
	}
	if s.MemPercent < 0 || s.MemPercent > 100 {
		t.Errorf("MemPercent out of range: %f", s.MemPercent)
	}
}

func TestSample_HostFigures(t *testing.T) {
	s := Sample()
	if s.MemPercent == 0 {
		t.Error("expected non-zero MemPercent on a running system")
	}
	if s.TotalMemory == 0 {
		t.Error("expected non-zero TotalMemory")
	}
	if s.LogicalCPUs <= 0 {
		t.Errorf("LogicalCPUs = %d, want > 0", s.LogicalCPUs)
	}
}

func TestCPUFeatures(t *testing.T) {
	t.Parallel()
	features := CPUFeatures()
	if len(features) != len(slices.Compact(slices.Clone(features))) {
		t.Errorf("CPUFeatures has duplicates: %v", features)
	}
	if runtime.GOARCH == "amd64" && !slices.Contains(features, "sse4.1") && len(features) > 0 {
		t.Logf("amd64 without sse4.1: %v", features)
	}
	if runtime.GOARCH == "arm64" && !slices.Contains(features, "asimd") {
		t.Errorf("arm64 should report asimd, got %v", features)
	}
}
