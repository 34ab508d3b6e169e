// Package scheduler admits, queues and runs a single owner's
// processes against a fixed hardware budget.
//
// A Scheduler is plain, unsynchronized data: it must be confined to
// one goroutine (the session package provides that confinement).
// Every method is synchronous and returns immediately; time progress
// is derived from wall-clock reads, and completions are only detected
// when the host calls UpdateProcesses.
package scheduler

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nulltrace/hackcore/internal/hclog"
	"github.com/nulltrace/hackcore/internal/process"
	"github.com/nulltrace/hackcore/internal/resources"
)

// Domain errors returned by id-based operations.
var (
	ErrInsufficientResources = errors.New("insufficient resources to queue process")
	ErrProcessNotFound       = errors.New("process not found")
)

// Scheduler owns the authoritative process map plus the FIFO queue
// and running set. Admission is strict FIFO with head-of-line
// blocking: a blocked queue head stops the whole scheduling pass,
// even when later, smaller jobs would fit.
type Scheduler struct {
	processes map[uuid.UUID]*process.Process
	queue     []uuid.UUID
	running   []uuid.UUID

	maxConcurrent int
	pool          *resources.Pool
	acct          *resources.Accountant // optional

	log *slog.Logger
}

// New creates a scheduler with the given admission slot count and
// cpu/ram/net budget.
func New(maxConcurrent, totalCPU, totalRAM, totalNet int) *Scheduler {
	return &Scheduler{
		processes:     make(map[uuid.UUID]*process.Process),
		maxConcurrent: maxConcurrent,
		pool:          resources.NewPool(totalCPU, totalRAM, totalNet),
		log:           hclog.For("scheduler"),
	}
}

// SetAccountant wires an optional audit trail for budget
// reservations and releases.
func (s *Scheduler) SetAccountant(a *resources.Accountant) {
	s.acct = a
}

// AddProcess stores a process and queues it for admission, then runs
// a scheduling pass. A process is rejected with
// ErrInsufficientResources only when its cost alone exceeds the total
// budget on some dimension: a job that merely does not fit under
// current load is queued, not rejected.
func (s *Scheduler) AddProcess(p *process.Process) (uuid.UUID, error) {
	if !s.pool.FitsBudget(p.ResourceUsage) {
		s.log.Debug("admission rejected",
			"type", p.Type.String(),
			"cpu", p.ResourceUsage.CPU,
			"ram", p.ResourceUsage.RAM,
			"net", p.ResourceUsage.Net)
		return uuid.Nil, ErrInsufficientResources
	}

	s.processes[p.ID] = p
	s.queue = append(s.queue, p.ID)
	s.scheduleNext()
	return p.ID, nil
}

// scheduleNext admits queued processes while slots and budget allow.
// The pass stops entirely at the first queue head that does not fit;
// later queued jobs are never scheduled ahead of a blocked head.
func (s *Scheduler) scheduleNext() {
	for len(s.running) < s.maxConcurrent && len(s.queue) > 0 {
		id := s.queue[0]
		s.queue = s.queue[1:]

		p, ok := s.processes[id]
		if !ok {
			// Stale queue entry, drop it.
			continue
		}

		if !s.reserve(p) {
			// Head of line blocks: put it back and stop the pass.
			s.queue = append([]uuid.UUID{id}, s.queue...)
			return
		}
		p.Start()
		s.running = append(s.running, id)
		s.log.Debug("process admitted", "id", id, "type", p.Type.String())
	}
}

func (s *Scheduler) reserve(p *process.Process) bool {
	if !s.pool.Reserve(p.ResourceUsage) {
		return false
	}
	if s.acct != nil {
		s.acct.Record(p, resources.EventReserve)
	}
	return true
}

func (s *Scheduler) release(p *process.Process) {
	s.pool.Release(p.ResourceUsage)
	if s.acct != nil {
		s.acct.Record(p, resources.EventRelease)
	}
}

// PauseProcess pauses a process, frees its budget share, and runs a
// scheduling pass (freed capacity may admit a queued job).
func (s *Scheduler) PauseProcess(id uuid.UUID) error {
	p, ok := s.processes[id]
	if !ok {
		return fmt.Errorf("pause %s: %w", id, ErrProcessNotFound)
	}
	p.Pause()
	s.release(p)
	s.removeRunning(id)
	s.scheduleNext()
	return nil
}

// ResumeProcess resumes a paused process in place when a slot and
// budget are immediately available. Otherwise the id goes to the
// queue tail and the process stays Paused until a scheduling pass
// reaches it; the pass admits it through Start, not Resume.
func (s *Scheduler) ResumeProcess(id uuid.UUID) error {
	p, ok := s.processes[id]
	if !ok {
		return fmt.Errorf("resume %s: %w", id, ErrProcessNotFound)
	}
	if len(s.running) < s.maxConcurrent && s.reserve(p) {
		p.Resume()
		s.running = append(s.running, id)
		return nil
	}
	s.queue = append(s.queue, id)
	return nil
}

// CancelProcess cancels a process wherever it is: frees budget when
// active, drops it from the queue when queued, then runs a scheduling
// pass. Cancellation is synchronous; the pass may admit a different
// queued job before this call returns.
func (s *Scheduler) CancelProcess(id uuid.UUID) error {
	p, ok := s.processes[id]
	if !ok {
		return fmt.Errorf("cancel %s: %w", id, ErrProcessNotFound)
	}
	if p.IsActive() {
		s.release(p)
		s.removeRunning(id)
	}
	p.Cancel()
	s.removeQueued(id)
	s.scheduleNext()
	return nil
}

// CompleteProcess marks a process completed, frees its budget share
// when active, and runs a scheduling pass.
func (s *Scheduler) CompleteProcess(id uuid.UUID) error {
	p, ok := s.processes[id]
	if !ok {
		return fmt.Errorf("complete %s: %w", id, ErrProcessNotFound)
	}
	if p.IsActive() {
		s.release(p)
		s.removeRunning(id)
	}
	p.Complete()
	s.scheduleNext()
	s.log.Debug("process completed", "id", id, "type", p.Type.String())
	return nil
}

// FailProcess marks a process failed with the given message, freeing
// its budget share when active, and runs a scheduling pass.
func (s *Scheduler) FailProcess(id uuid.UUID, errMsg string) error {
	p, ok := s.processes[id]
	if !ok {
		return fmt.Errorf("fail %s: %w", id, ErrProcessNotFound)
	}
	if p.IsActive() {
		s.release(p)
		s.removeRunning(id)
	}
	p.Fail(errMsg)
	s.scheduleNext()
	return nil
}

// UpdateProcesses is the pull-based tick: it completes every running
// process whose remaining time has reached zero and returns the ids
// it completed, in scan order, so the host can dispatch completion
// effects. The scheduler has no timer of its own; the host is
// responsible for calling this on a cadence.
func (s *Scheduler) UpdateProcesses() []uuid.UUID {
	var done []uuid.UUID
	for _, id := range s.running {
		if p, ok := s.processes[id]; ok && p.RemainingTime() == 0 {
			done = append(done, id)
		}
	}
	for _, id := range done {
		_ = s.CompleteProcess(id)
	}
	return done
}

// GetProcess returns a process by id.
func (s *Scheduler) GetProcess(id uuid.UUID) (*process.Process, error) {
	p, ok := s.processes[id]
	if !ok {
		return nil, fmt.Errorf("get %s: %w", id, ErrProcessNotFound)
	}
	return p, nil
}

// RunningProcesses returns the currently admitted processes.
func (s *Scheduler) RunningProcesses() []*process.Process {
	out := make([]*process.Process, 0, len(s.running))
	for _, id := range s.running {
		if p, ok := s.processes[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

// QueuedProcesses returns the processes awaiting admission, in queue
// order.
func (s *Scheduler) QueuedProcesses() []*process.Process {
	out := make([]*process.Process, 0, len(s.queue))
	for _, id := range s.queue {
		if p, ok := s.processes[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

// RunningCount returns the number of admitted processes.
func (s *Scheduler) RunningCount() int { return len(s.running) }

// QueuedCount returns the number of queued processes.
func (s *Scheduler) QueuedCount() int { return len(s.queue) }

// ResourceUsage returns the used cpu/ram/net counters.
func (s *Scheduler) ResourceUsage() (cpu, ram, net int) {
	return s.pool.Usage()
}

// ResourcePercentages returns usage as a percentage of each budget
// dimension.
func (s *Scheduler) ResourcePercentages() (cpu, ram, net float64) {
	return s.pool.Percentages()
}

func (s *Scheduler) removeRunning(id uuid.UUID) {
	for i, rid := range s.running {
		if rid == id {
			s.running = append(s.running[:i], s.running[i+1:]...)
			return
		}
	}
}

func (s *Scheduler) removeQueued(id uuid.UUID) {
	for i, qid := range s.queue {
		if qid == id {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return
		}
	}
}
