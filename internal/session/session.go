// Package session confines a scheduler to a single goroutine and
// exposes a channel-backed command API around it. The scheduler
// itself does no locking; confinement here is what makes the whole
// core safe for concurrent callers.
package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/nulltrace/hackcore/internal/hclog"
	"github.com/nulltrace/hackcore/internal/process"
	"github.com/nulltrace/hackcore/internal/resources"
	"github.com/nulltrace/hackcore/internal/scheduler"
	"github.com/nulltrace/hackcore/internal/tracing"
)

// ErrSessionClosed is returned by every command once the session's
// run loop has exited.
var ErrSessionClosed = errors.New("session closed")

// command runs inside the session goroutine with exclusive access to
// the scheduler.
type command func(*scheduler.Scheduler)

// Session owns one owner's scheduler. Commands are serialized through
// the run loop; every public method is safe for concurrent use and
// blocks until the loop has executed it (or ctx is done).
type Session struct {
	sched *scheduler.Scheduler
	cmds  chan command
	done  chan struct{}

	tracer trace.Tracer
}

// New creates a session around a fresh scheduler with the given slot
// count and cpu/ram/net budget. Run must be started for commands to
// make progress.
func New(maxConcurrent, totalCPU, totalRAM, totalNet int) *Session {
	return &Session{
		sched:  scheduler.New(maxConcurrent, totalCPU, totalRAM, totalNet),
		cmds:   make(chan command),
		done:   make(chan struct{}),
		tracer: tracing.Tracer(),
	}
}

// SetAccountant wires a budget audit trail. Call before Run.
func (s *Session) SetAccountant(a *resources.Accountant) {
	s.sched.SetAccountant(a)
}

// Run executes commands until ctx is cancelled. It owns the scheduler
// for its whole lifetime; no other goroutine ever touches it.
func (s *Session) Run(ctx context.Context) {
	log := hclog.For("session")
	log.Info("session started")
	defer func() {
		close(s.done)
		log.Info("session stopped")
	}()

	for {
		select {
		case cmd := <-s.cmds:
			cmd(s.sched)
		case <-ctx.Done():
			return
		}
	}
}

// exec ships fn into the run loop and waits for it to finish.
func (s *Session) exec(ctx context.Context, op string, fn func(*scheduler.Scheduler) error, attrs ...attribute.KeyValue) error {
	ctx, span := s.tracer.Start(ctx, "session."+op, trace.WithAttributes(attrs...))
	defer span.End()

	errCh := make(chan error, 1)
	select {
	case s.cmds <- func(sc *scheduler.Scheduler) { errCh <- fn(sc) }:
	case <-ctx.Done():
		span.SetStatus(codes.Error, ctx.Err().Error())
		return ctx.Err()
	case <-s.done:
		span.SetStatus(codes.Error, ErrSessionClosed.Error())
		return ErrSessionClosed
	}

	select {
	case err := <-errCh:
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// AddProcess submits a process for admission.
func (s *Session) AddProcess(ctx context.Context, p *process.Process) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.exec(ctx, "add_process", func(sc *scheduler.Scheduler) error {
		var err error
		id, err = sc.AddProcess(p)
		return err
	},
		attribute.String("process.type", p.Type.String()),
		attribute.Int("process.owner", p.OwnerID),
	)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// PauseProcess pauses a process and frees its budget share.
func (s *Session) PauseProcess(ctx context.Context, id uuid.UUID) error {
	return s.exec(ctx, "pause_process", func(sc *scheduler.Scheduler) error {
		return sc.PauseProcess(id)
	}, attribute.String("process.id", id.String()))
}

// ResumeProcess resumes a process, possibly deferring it to the
// queue tail.
func (s *Session) ResumeProcess(ctx context.Context, id uuid.UUID) error {
	return s.exec(ctx, "resume_process", func(sc *scheduler.Scheduler) error {
		return sc.ResumeProcess(id)
	}, attribute.String("process.id", id.String()))
}

// CancelProcess cancels a process wherever it is.
func (s *Session) CancelProcess(ctx context.Context, id uuid.UUID) error {
	return s.exec(ctx, "cancel_process", func(sc *scheduler.Scheduler) error {
		return sc.CancelProcess(id)
	}, attribute.String("process.id", id.String()))
}

// FailProcess fails a process with the given message.
func (s *Session) FailProcess(ctx context.Context, id uuid.UUID, errMsg string) error {
	return s.exec(ctx, "fail_process", func(sc *scheduler.Scheduler) error {
		return sc.FailProcess(id, errMsg)
	}, attribute.String("process.id", id.String()))
}

// GetProcess returns a copy of a process's current state.
func (s *Session) GetProcess(ctx context.Context, id uuid.UUID) (process.Process, error) {
	var out process.Process
	err := s.exec(ctx, "get_process", func(sc *scheduler.Scheduler) error {
		p, err := sc.GetProcess(id)
		if err != nil {
			return err
		}
		out = *p
		return nil
	}, attribute.String("process.id", id.String()))
	return out, err
}

// Tick runs one scheduler update and returns copies of the processes
// that completed during it, in completion order, for the caller's
// effect dispatch.
func (s *Session) Tick(ctx context.Context) ([]process.Process, error) {
	var completed []process.Process
	err := s.exec(ctx, "tick", func(sc *scheduler.Scheduler) error {
		for _, id := range sc.UpdateProcesses() {
			if p, err := sc.GetProcess(id); err == nil {
				completed = append(completed, *p)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return completed, nil
}

// Snapshot is a point-in-time view of the scheduler for monitoring.
type Snapshot struct {
	Running int
	Queued  int

	UsedCPU int
	UsedRAM int
	UsedNet int

	CPUPercent float64
	RAMPercent float64
	NetPercent float64
}

// Stats returns a consistent snapshot of counts and budget usage.
func (s *Session) Stats(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	err := s.exec(ctx, "stats", func(sc *scheduler.Scheduler) error {
		snap.Running = sc.RunningCount()
		snap.Queued = sc.QueuedCount()
		snap.UsedCPU, snap.UsedRAM, snap.UsedNet = sc.ResourceUsage()
		snap.CPUPercent, snap.RAMPercent, snap.NetPercent = sc.ResourcePercentages()
		return nil
	})
	return snap, err
}
