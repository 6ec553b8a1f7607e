// Package recorder reports the analyzer's own resource footprint.
package recorder

import (
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// RunSnapshot captures the process's resource state at the end of a run.
type RunSnapshot struct {
	Elapsed    time.Duration
	CPUSeconds float64
	MemRSSMB   float64
}

// Snapshot reads the current process's CPU time and resident memory. Fields
// that cannot be read stay zero; taking the snapshot never fails the run.
func Snapshot(start time.Time) RunSnapshot {
	snap := RunSnapshot{Elapsed: time.Since(start)}

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return snap
	}
	if times, err := proc.Times(); err == nil {
		snap.CPUSeconds = times.User + times.System
	}
	if mem, err := proc.MemoryInfo(); err == nil {
		snap.MemRSSMB = float64(mem.RSS) / 1024 / 1024
	}
	return snap
}
