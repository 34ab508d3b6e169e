package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/nulltrace/hackcore/internal/process"
	"github.com/nulltrace/hackcore/internal/scheduler"
)

func startSession(t *testing.T) (*Session, context.Context) {
	t.Helper()
	sess := New(3, 100, 4096, 100)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go sess.Run(ctx)
	return sess, ctx
}

func newProc(total time.Duration) *process.Process {
	return process.New(process.TypeDownload, 1, total, process.ResourceUsage{CPU: 30, RAM: 1024, Net: 50})
}

func TestAddAndGet(t *testing.T) {
	sess, ctx := startSession(t)

	id, err := sess.AddProcess(ctx, newProc(time.Hour))
	if err != nil {
		t.Fatalf("AddProcess: %v", err)
	}
	got, err := sess.GetProcess(ctx, id)
	if err != nil {
		t.Fatalf("GetProcess: %v", err)
	}
	if got.State != process.StateRunning {
		t.Errorf("State=%v, want running", got.State)
	}
}

func TestPauseResume(t *testing.T) {
	sess, ctx := startSession(t)

	id, _ := sess.AddProcess(ctx, newProc(time.Hour))
	if err := sess.PauseProcess(ctx, id); err != nil {
		t.Fatalf("PauseProcess: %v", err)
	}
	p, _ := sess.GetProcess(ctx, id)
	if p.State != process.StatePaused {
		t.Errorf("State=%v, want paused", p.State)
	}

	if err := sess.ResumeProcess(ctx, id); err != nil {
		t.Fatalf("ResumeProcess: %v", err)
	}
	p, _ = sess.GetProcess(ctx, id)
	if p.State != process.StateRunning {
		t.Errorf("State=%v, want running", p.State)
	}
}

func TestTickReturnsCompleted(t *testing.T) {
	sess, ctx := startSession(t)

	id, _ := sess.AddProcess(ctx, newProc(0)) // completes on first tick
	completed, err := sess.Tick(ctx)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if len(completed) != 1 || completed[0].ID != id {
		t.Fatalf("Tick completed=%v, want [%v]", completed, id)
	}
	if completed[0].State != process.StateCompleted {
		t.Errorf("State=%v, want completed", completed[0].State)
	}

	// Copies are snapshots: the returned value is usable after the
	// session moves on.
	if again, _ := sess.Tick(ctx); len(again) != 0 {
		t.Errorf("second Tick=%v, want empty", again)
	}
}

func TestStats(t *testing.T) {
	sess, ctx := startSession(t)

	if _, err := sess.AddProcess(ctx, newProc(time.Hour)); err != nil {
		t.Fatalf("AddProcess: %v", err)
	}
	snap, err := sess.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if snap.Running != 1 || snap.Queued != 0 {
		t.Errorf("snapshot running=%d queued=%d, want 1/0", snap.Running, snap.Queued)
	}
	if snap.UsedCPU != 30 || snap.UsedRAM != 1024 || snap.UsedNet != 50 {
		t.Errorf("usage=(%d, %d, %d), want (30, 1024, 50)", snap.UsedCPU, snap.UsedRAM, snap.UsedNet)
	}
	if snap.CPUPercent != 30.0 {
		t.Errorf("CPUPercent=%v, want 30", snap.CPUPercent)
	}
}

func TestDomainErrorsPassThrough(t *testing.T) {
	sess, ctx := startSession(t)

	big := process.New(process.TypeCrack, 1, time.Hour, process.ResourceUsage{CPU: 500})
	if _, err := sess.AddProcess(ctx, big); !errors.Is(err, scheduler.ErrInsufficientResources) {
		t.Errorf("err=%v, want ErrInsufficientResources", err)
	}

	ghost := newProc(time.Hour)
	if err := sess.CancelProcess(ctx, ghost.ID); !errors.Is(err, scheduler.ErrProcessNotFound) {
		t.Errorf("err=%v, want ErrProcessNotFound", err)
	}
}

func TestConcurrentCommands(t *testing.T) {
	sess, ctx := startSession(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := process.New(process.TypePortScan, 1, time.Hour, process.ResourceUsage{CPU: 5, RAM: 64, Net: 1})
			if _, err := sess.AddProcess(ctx, p); err != nil {
				t.Errorf("AddProcess: %v", err)
			}
		}()
	}
	wg.Wait()

	snap, err := sess.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if snap.Running+snap.Queued != 10 {
		t.Errorf("running+queued=%d, want 10", snap.Running+snap.Queued)
	}
	if snap.Running > 3 {
		t.Errorf("running=%d, want <= maxConcurrent 3", snap.Running)
	}
}

func TestClosedSessionRejectsCommands(t *testing.T) {
	sess := New(3, 100, 4096, 100)
	runCtx, cancel := context.WithCancel(context.Background())
	go sess.Run(runCtx)

	// Prove the loop is up, then stop it.
	if _, err := sess.Stats(context.Background()); err != nil {
		t.Fatalf("Stats before close: %v", err)
	}
	cancel()
	<-sess.done

	if _, err := sess.AddProcess(context.Background(), newProc(time.Hour)); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("err=%v, want ErrSessionClosed", err)
	}
}

func TestTickerDispatchesCompletions(t *testing.T) {
	sess, ctx := startSession(t)

	id, _ := sess.AddProcess(ctx, newProc(0))

	doneCh := make(chan process.Process, 1)
	ticker := NewTicker(sess, 10*time.Millisecond, func(p process.Process) {
		doneCh <- p
	})

	tickerCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go ticker.Run(tickerCtx)

	select {
	case p := <-doneCh:
		if p.ID != id {
			t.Errorf("completed id=%v, want %v", p.ID, id)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("ticker never reported the completion")
	}
}
