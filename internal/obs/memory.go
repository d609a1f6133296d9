package obs

import (
	"runtime"
	"strconv"
)

// MemorySpan captures heap and GC activity between two points, used to
// report the allocation cost of one benchmark run. Never sample inside
// a measured phase.
type MemorySpan struct {
	start runtime.MemStats
	end   runtime.MemStats
}

// Start snapshots the current runtime memory stats.
func (m *MemorySpan) Start() {
	runtime.ReadMemStats(&m.start)
}

// Stop snapshots again; the span then reports deltas.
func (m *MemorySpan) Stop() {
	runtime.ReadMemStats(&m.end)
}

// AllocBytes is the total heap allocation over the span.
func (m *MemorySpan) AllocBytes() uint64 {
	return m.end.TotalAlloc - m.start.TotalAlloc
}

// GCCount is the number of collections over the span.
func (m *MemorySpan) GCCount() uint32 {
	return m.end.NumGC - m.start.NumGC
}

// PauseTotalNanos is the accumulated stop-the-world time over the span.
func (m *MemorySpan) PauseTotalNanos() uint64 {
	return m.end.PauseTotalNs - m.start.PauseTotalNs
}

// String renders a compact one-line report.
func (m *MemorySpan) String() string {
	buf := make([]byte, 0, 96)
	buf = append(buf, "alloc="...)
	buf = appendBytes(buf, m.AllocBytes())
	buf = append(buf, " heap_inuse="...)
	buf = appendBytes(buf, m.end.HeapInuse)
	buf = append(buf, " gc="...)
	buf = strconv.AppendUint(buf, uint64(m.GCCount()), 10)
	buf = append(buf, " stw_ms="...)
	buf = strconv.AppendFloat(buf, float64(m.PauseTotalNanos())/1e6, 'f', 3, 64)
	return string(buf)
}

func appendBytes(buf []byte, v uint64) []byte {
	const threshold = 1 << 13
	units := []string{"B", "KB", "MB", "GB"}
	i := 0
	for v >= threshold && i < len(units)-1 {
		v >>= 10
		i++
	}
	buf = strconv.AppendUint(buf, v, 10)
	return append(buf, units[i]...)
}
