package formula

import (
	"time"

	"github.com/nulltrace/hackcore/internal/config"
	"github.com/nulltrace/hackcore/internal/player"
	"github.com/nulltrace/hackcore/internal/process"
)

// Chain builds the primary process for a type plus its type-specific
// follow-ups, each costed through the same formulas. Follow-ups point
// at the primary via ParentID. The result is ordered, primary first;
// submitting each process to a scheduler is the caller's job, the
// chain itself enqueues nothing.
//
// Follow-up table: Crack -> SystemScan, Download -> VirusScan,
// SystemScan -> HideLog.
func Chain(t process.Type, pl *player.Player, tg *player.Target, cfg *config.ProcessConfig) []*process.Process {
	primary := build(t, pl, tg, cfg)
	if tg.TargetID != 0 && tg.TargetIP != "" {
		primary.WithTarget(tg.TargetID, tg.TargetIP)
	}

	chain := []*process.Process{primary}

	var followUp process.Type
	switch t.Kind() {
	case process.KindCrack:
		followUp = process.TypeSystemScan // scan the system once inside
	case process.KindDownload:
		followUp = process.TypeVirusScan // check the haul for viruses
	case process.KindSystemScan:
		followUp = process.TypeHideLog // cover the tracks
	default:
		return chain
	}

	child := build(followUp, pl, tg, cfg)
	child.ParentID = primary.ID
	return append(chain, child)
}

func build(t process.Type, pl *player.Player, tg *player.Target, cfg *config.ProcessConfig) *process.Process {
	seconds := Duration(t, pl, tg, cfg)
	usage := Usage(t, tg, cfg)
	return process.New(t, pl.PlayerID, time.Duration(seconds)*time.Second, usage)
}
