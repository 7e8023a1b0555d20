// Package metrics reads runtime memory statistics around an operation.
package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	TotalAlloc   uint64 // cumulative bytes allocated
	Sys          uint64 // total bytes obtained from OS
	Mallocs      uint64 // cumulative heap allocations
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
}

// MemoryDelta is the memory activity between two snapshots.
type MemoryDelta struct {
	Allocated    uint64 // bytes allocated in between
	Mallocs      uint64 // heap allocations in between
	NumGC        uint32 // GC cycles completed in between
	PauseTotalNs uint64 // GC pause time in between
	PeakHeap     uint64 // larger of the two HeapAlloc readings
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		TotalAlloc:   m.TotalAlloc,
		Sys:          m.Sys,
		Mallocs:      m.Mallocs,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
	}
}

// Diff returns the activity between before and after. Cumulative counters
// never decrease, so every field is a plain difference.
func Diff(before, after MemorySnapshot) MemoryDelta {
	return MemoryDelta{
		Allocated:    after.TotalAlloc - before.TotalAlloc,
		Mallocs:      after.Mallocs - before.Mallocs,
		NumGC:        after.NumGC - before.NumGC,
		PauseTotalNs: after.PauseTotalNs - before.PauseTotalNs,
		PeakHeap:     max(before.HeapAlloc, after.HeapAlloc),
	}
}
