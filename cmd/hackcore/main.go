// Command hackcore runs a game-process session for one owner: it
// builds a costed process chain, submits it, ticks the scheduler
// until everything completes, and applies completion effects to the
// player.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nulltrace/hackcore/internal/config"
	"github.com/nulltrace/hackcore/internal/effects"
	"github.com/nulltrace/hackcore/internal/formula"
	"github.com/nulltrace/hackcore/internal/hclog"
	"github.com/nulltrace/hackcore/internal/player"
	"github.com/nulltrace/hackcore/internal/process"
	"github.com/nulltrace/hackcore/internal/resources"
	"github.com/nulltrace/hackcore/internal/session"
	"github.com/nulltrace/hackcore/internal/tracing"
)

func main() {
	ownerID := flag.Int("owner", 1, "owner player id")
	cpuBudget := flag.Int("cpu", 100, "total CPU budget")
	ramBudget := flag.Int("ram", 4096, "total RAM budget (MB)")
	netBudget := flag.Int("net", 100, "total network budget (Mbps)")
	maxConcurrent := flag.Int("max-concurrent", 3, "max simultaneously running processes")
	tickInterval := flag.Duration("tick", time.Second, "scheduler tick interval")
	configPath := flag.String("config", "", "optional YAML config for formula tunables")
	logLevel := flag.String("log-level", "info", "log level (debug|info|warn|error)")
	logFile := flag.String("log-file", "", "optional JSON log file")
	procType := flag.String("type", "crack", "process type to launch")
	flag.Parse()

	if err := hclog.Init(*logLevel, *logFile); err != nil {
		log.Fatalf("init logging: %v", err)
	}
	logger := hclog.For("main")

	sessionTS := time.Now().Format("20060102-150405")
	shutdownTracing, err := tracing.Setup(sessionTS, *ownerID)
	if err != nil {
		logger.Error("tracing setup failed", "err", err)
		os.Exit(1)
	}

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			logger.Error("load config failed", "err", err, "path", *configPath)
			os.Exit(1)
		}
	}

	pl := &player.Player{
		PlayerID:      *ownerID,
		CPUMHz:        3000,
		RAMMB:         *ramBudget,
		HDDMB:         100 * 1024,
		InternetSpeed: *netBudget,
		HackingSkill:  50,
	}
	tg := &player.Target{
		TargetID:      1001,
		TargetIP:      "10.13.37.1",
		SecurityLevel: 40,
	}

	sess := session.New(*maxConcurrent, *cpuBudget, *ramBudget, *netBudget)
	acct := resources.NewAccountant()
	sess.SetAccountant(acct)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sess.Run(ctx)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Build and submit the chain for the requested type.
	chain := formula.Chain(process.TypeFromString(*procType), pl, tg, &cfg)
	pending := make(map[string]bool, len(chain))
	for _, p := range chain {
		id, err := sess.AddProcess(ctx, p)
		if err != nil {
			logger.Error("submit failed", "type", p.Type.String(), "err", err)
			continue
		}
		pending[id.String()] = true
		logger.Info("process submitted",
			"id", id,
			"type", p.Type.String(),
			"duration", p.TotalDuration,
			"cpu", p.ResourceUsage.CPU,
			"ram", p.ResourceUsage.RAM,
			"net", p.ResourceUsage.Net)
	}

	if len(pending) == 0 {
		logger.Error("nothing submitted")
		os.Exit(1)
	}

	allDone := make(chan struct{})
	ticker := session.NewTicker(sess, *tickInterval, func(p process.Process) {
		msg, err := effects.HandleCompletion(&p, pl, &cfg)
		if err != nil {
			logger.Warn("completion effect failed", "id", p.ID, "type", p.Type.String(), "err", err)
		} else {
			logger.Info(msg, "id", p.ID)
		}
		if pending[p.ID.String()] {
			delete(pending, p.ID.String())
			if len(pending) == 0 {
				close(allDone)
			}
		}
	})
	go func() {
		if err := ticker.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Error("ticker stopped", "err", err)
		}
	}()

	select {
	case <-allDone:
		snap, err := sess.Stats(ctx)
		if err == nil {
			logger.Info("all processes finished",
				"running", snap.Running,
				"queued", snap.Queued,
				"reservations", acct.EventCount())
		}
	case sig := <-sigCh:
		logger.Info("shutting down", "signal", sig.String())
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	shutdownTracing(shutdownCtx)
}
