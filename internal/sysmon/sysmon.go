// Package sysmon reports host-level CPU and memory usage for the
// interactive explorer's stats line.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is one reading of host-level resource usage. Percentages are in
// the range 0..100. A zero value means the platform could not report the
// figure, or the sampler has not accumulated a CPU delta yet.
type Stats struct {
	CPUPercent float64
	MemPercent float64
}

// Sampler takes periodic host readings. CPU usage is computed from the
// delta between consecutive kernel counter reads, so the constructor
// primes the counter and every later Sample reflects load since the
// previous call.
type Sampler struct {
	primed bool
}

// NewSampler records the current CPU counters without blocking, so the
// first real Sample has a delta to report.
func NewSampler() *Sampler {
	_, err := cpu.Percent(0, false)
	return &Sampler{primed: err == nil}
}

// Primed reports whether the CPU counter baseline was captured. When it
// returns false, CPUPercent stays zero on every reading.
func (s *Sampler) Primed() bool {
	return s.primed
}

// Sample returns current host CPU and memory usage. Fields the platform
// cannot report are left zero.
func (s *Sampler) Sample() Stats {
	var st Stats
	if s.primed {
		if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
			st.CPUPercent = pcts[0]
		}
	}
	if vm, err := mem.VirtualMemory(); err == nil && vm != nil {
		st.MemPercent = vm.UsedPercent
	}
	return st
}
