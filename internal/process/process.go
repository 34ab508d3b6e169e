package process

import (
	"time"

	"github.com/google/uuid"
)

// Process is one owner-initiated, time-bounded, resource-consuming
// job. Once submitted it is owned exclusively by the scheduler;
// callers mutate it only through the transition methods below.
//
// TargetID, TargetIP and FileID are optional references; the zero
// value means unset. Metadata is a string-keyed side channel between
// process creation and completion dispatch (see the effects package
// for each key's expected shape).
type Process struct {
	ID       uuid.UUID
	Type     Type
	Priority Priority
	State    State
	OwnerID  int

	TargetID int
	TargetIP string
	FileID   int

	StartedAt   time.Time
	PausedAt    time.Time
	CompletedAt time.Time

	TotalDuration   time.Duration // fixed at creation
	ElapsedDuration time.Duration // only ever grows

	ResourceUsage ResourceUsage // fixed at creation

	Metadata     map[string]string
	ErrorMessage string

	ParentID uuid.UUID
	ChildIDs []uuid.UUID
}

// New creates a queued process with a fresh id.
func New(t Type, ownerID int, total time.Duration, usage ResourceUsage) *Process {
	return &Process{
		ID:            uuid.New(),
		Type:          t,
		Priority:      PriorityNormal,
		State:         StateQueued,
		OwnerID:       ownerID,
		TotalDuration: total,
		ResourceUsage: usage,
		Metadata:      make(map[string]string),
	}
}

// WithTarget sets the target references.
func (p *Process) WithTarget(targetID int, targetIP string) *Process {
	p.TargetID = targetID
	p.TargetIP = targetIP
	return p
}

// WithFile sets the file reference.
func (p *Process) WithFile(fileID int) *Process {
	p.FileID = fileID
	return p
}

// WithPriority sets the priority.
func (p *Process) WithPriority(prio Priority) *Process {
	p.Priority = prio
	return p
}

// WithMetadata sets one metadata key.
func (p *Process) WithMetadata(key, value string) *Process {
	p.Metadata[key] = value
	return p
}

// Start moves the process to Running and stamps StartedAt.
func (p *Process) Start() {
	p.State = StateRunning
	p.StartedAt = time.Now()
}

// Pause suspends a Running process, folding the just-elapsed interval
// into ElapsedDuration. No-op in any other state.
func (p *Process) Pause() {
	if p.State != StateRunning {
		return
	}
	p.State = StatePaused
	p.PausedAt = time.Now()
	if !p.StartedAt.IsZero() {
		p.ElapsedDuration += time.Since(p.StartedAt)
	}
}

// Resume restarts a Paused process. No-op in any other state.
func (p *Process) Resume() {
	if p.State != StatePaused {
		return
	}
	p.State = StateRunning
	p.StartedAt = time.Now()
	p.PausedAt = time.Time{}
}

// Complete ends the process, folding the final interval into
// ElapsedDuration. No-op once terminal.
func (p *Process) Complete() {
	if p.State.IsTerminal() {
		return
	}
	p.State = StateCompleted
	p.CompletedAt = time.Now()
	if !p.StartedAt.IsZero() {
		p.ElapsedDuration += time.Since(p.StartedAt)
	}
}

// Fail ends the process with an error message. Unlike Complete it
// does not fold the final interval into ElapsedDuration; RemainingTime
// after a failure reflects that. No-op once terminal.
func (p *Process) Fail(errMsg string) {
	if p.State.IsTerminal() {
		return
	}
	p.State = StateFailed
	p.ErrorMessage = errMsg
	p.CompletedAt = time.Now()
}

// Cancel ends the process without folding the final interval,
// same asymmetry as Fail. No-op once terminal.
func (p *Process) Cancel() {
	if p.State.IsTerminal() {
		return
	}
	p.State = StateCancelled
	p.CompletedAt = time.Now()
}

// currentElapsed is ElapsedDuration plus the live interval when
// Running.
func (p *Process) currentElapsed() time.Duration {
	if p.State == StateRunning && !p.StartedAt.IsZero() {
		return p.ElapsedDuration + time.Since(p.StartedAt)
	}
	return p.ElapsedDuration
}

// Progress returns completion in percent, capped at 100.
// A zero-duration process is always at 100.
func (p *Process) Progress() float64 {
	if p.TotalDuration == 0 {
		return 100.0
	}
	progress := float64(p.currentElapsed()) / float64(p.TotalDuration) * 100.0
	if progress > 100.0 {
		return 100.0
	}
	return progress
}

// RemainingTime returns time left until completion, saturating at
// zero.
func (p *Process) RemainingTime() time.Duration {
	remaining := p.TotalDuration - p.currentElapsed()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsComplete reports whether the process finished successfully.
func (p *Process) IsComplete() bool {
	return p.State == StateCompleted
}

// IsActive reports whether the process is Running or Paused.
func (p *Process) IsActive() bool {
	return p.State.IsActive()
}
