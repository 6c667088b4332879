// Package sysmon provides system-wide CPU and memory usage sampling.
package sysmon

import (
	"context"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Snapshot holds a single snapshot of system-wide resource usage.
type Snapshot struct {
	LogicalCPUs   int
	CPUPercent    float64 // 0.0 .. 100.0
	MemPercent    float64 // 0.0 .. 100.0
	MemAvailBytes uint64
}

// Sample collects a system-wide snapshot. CPU usage is measured as the delta
// since the previous call (interval 0). Fields that cannot be read stay zero.
func Sample(ctx context.Context) Snapshot {
	var s Snapshot
	if n, err := cpu.CountsWithContext(ctx, true); err == nil {
		s.LogicalCPUs = n
	}
	if pcts, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil && vm != nil {
		s.MemPercent = vm.UsedPercent
		s.MemAvailBytes = vm.Available
	}
	return s
}
