// Package resources tracks the fixed hardware budget of a single
// owner and the share of it currently reserved by running processes.
package resources

import "github.com/nulltrace/hackcore/internal/process"

// Pool is a fixed cpu/ram/net budget with derived usage counters.
// HDD cost is carried on processes but not constrained here.
//
// The pool is plain data owned by one scheduler; it does no locking.
type Pool struct {
	TotalCPU int
	TotalRAM int
	TotalNet int

	UsedCPU int
	UsedRAM int
	UsedNet int
}

// NewPool creates a pool with the given totals and nothing reserved.
func NewPool(cpu, ram, net int) *Pool {
	return &Pool{TotalCPU: cpu, TotalRAM: ram, TotalNet: net}
}

// CanFit reports whether usage fits within the remaining budget on
// every constrained dimension.
func (p *Pool) CanFit(u process.ResourceUsage) bool {
	return p.UsedCPU+u.CPU <= p.TotalCPU &&
		p.UsedRAM+u.RAM <= p.TotalRAM &&
		p.UsedNet+u.Net <= p.TotalNet
}

// FitsBudget reports whether usage could ever fit, i.e. whether it is
// within the total budget on every constrained dimension regardless of
// current load.
func (p *Pool) FitsBudget(u process.ResourceUsage) bool {
	return u.CPU <= p.TotalCPU &&
		u.RAM <= p.TotalRAM &&
		u.Net <= p.TotalNet
}

// Reserve claims usage from the pool. Returns false without mutating
// anything if it does not fit.
func (p *Pool) Reserve(u process.ResourceUsage) bool {
	if !p.CanFit(u) {
		return false
	}
	p.UsedCPU += u.CPU
	p.UsedRAM += u.RAM
	p.UsedNet += u.Net
	return true
}

// Release returns usage to the pool, clamping each counter at zero
// so a double release cannot drive usage negative.
func (p *Pool) Release(u process.ResourceUsage) {
	p.UsedCPU = max0(p.UsedCPU - u.CPU)
	p.UsedRAM = max0(p.UsedRAM - u.RAM)
	p.UsedNet = max0(p.UsedNet - u.Net)
}

// Usage returns the current used counters (cpu, ram, net).
func (p *Pool) Usage() (cpu, ram, net int) {
	return p.UsedCPU, p.UsedRAM, p.UsedNet
}

// Percentages returns usage as a percentage of each total.
// A zero total reports 0.
func (p *Pool) Percentages() (cpu, ram, net float64) {
	if p.TotalCPU > 0 {
		cpu = float64(p.UsedCPU) / float64(p.TotalCPU) * 100.0
	}
	if p.TotalRAM > 0 {
		ram = float64(p.UsedRAM) / float64(p.TotalRAM) * 100.0
	}
	if p.TotalNet > 0 {
		net = float64(p.UsedNet) / float64(p.TotalNet) * 100.0
	}
	return cpu, ram, net
}

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
