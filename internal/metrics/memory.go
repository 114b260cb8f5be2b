package metrics

import (
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// MemorySnapshot holds a point-in-time memory reading of the process and,
// when available, the host.
type MemorySnapshot struct {
	HeapAlloc   uint64 // bytes in use
	HeapObjects uint64
	NumGC       uint32

	// System percentages are 0..100; both stay zero when sampling fails.
	SystemCPU float64
	SystemMem float64
}

// ReadMemory returns current runtime memory statistics together with a
// host-wide CPU and memory sample.
func ReadMemory() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	s := MemorySnapshot{HeapAlloc: m.HeapAlloc, HeapObjects: m.HeapObjects, NumGC: m.NumGC}
	s.SystemCPU, s.SystemMem = sampleSystem()
	return s
}

// sampleSystem reads host CPU (delta since the previous call) and memory
// usage. Errors yield zero values.
func sampleSystem() (cpuPct, memPct float64) {
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		cpuPct = pcts[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil && vm != nil {
		memPct = vm.UsedPercent
	}
	return cpuPct, memPct
}
