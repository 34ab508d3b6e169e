package session

import (
	"context"
	"time"

	"github.com/nulltrace/hackcore/internal/hclog"
	"github.com/nulltrace/hackcore/internal/process"
)

// Ticker drives a session's pull-based clock: it calls Tick on a
// fixed cadence and hands every completed process to the callback.
// The scheduler itself has no timer; without a running Ticker (or a
// host calling Tick directly) processes never complete.
type Ticker struct {
	sess     *Session
	interval time.Duration
	onDone   func(process.Process)
}

// NewTicker creates a ticker for the session. onDone may be nil when
// the host has no completion effects to run.
func NewTicker(sess *Session, interval time.Duration, onDone func(process.Process)) *Ticker {
	return &Ticker{sess: sess, interval: interval, onDone: onDone}
}

// Run ticks until ctx is cancelled or the session closes.
func (t *Ticker) Run(ctx context.Context) error {
	log := hclog.For("ticker")
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			completed, err := t.sess.Tick(ctx)
			if err != nil {
				return err
			}
			for _, p := range completed {
				log.Info("process finished", "id", p.ID, "type", p.Type.String())
				if t.onDone != nil {
					t.onDone(p)
				}
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
