package formula

import (
	"math"

	"github.com/nulltrace/hackcore/internal/config"
	"github.com/nulltrace/hackcore/internal/player"
	"github.com/nulltrace/hackcore/internal/process"
)

// SuccessChance returns the probability (percent) of a process type
// succeeding once it completes. Only the attack types carry real
// odds; everything else succeeds if it completes.
//
// Clamping mirrors the legacy tables exactly: cfg.MaxSuccessChance
// caps the attack branches, Hijack carries a hard 50% ceiling
// regardless of config, and cfg.MinSuccessChance floors the final
// result (so a non-attack type reports 100 untouched by the max cap).
func SuccessChance(t process.Type, pl *player.Player, tg *player.Target, cfg *config.ProcessConfig) float64 {
	var chance float64
	switch t.Kind() {
	case process.KindCrack:
		skill := float64(orInt(pl.HackingSkill, 1))
		defense := float64(orInt(tg.SecurityLevel, 50))
		chance = math.Min(skill/(skill+defense)*100.0, cfg.MaxSuccessChance)

	case process.KindBruteForce:
		cpuPower := float64(pl.CPUMHz)
		strength := float64(orInt(tg.PasswordStrength, 100))
		chance = math.Min(cpuPower/10000.0/strength*100.0, cfg.MaxSuccessChance)

	case process.KindHijack:
		skill := float64(orInt(pl.HackingSkill, 1))
		protection := float64(orInt(tg.HijackProtection, 80))
		chance = math.Min(skill/(skill+protection*2.0)*100.0, 50.0)

	case process.KindDDoSAttack:
		attackPower := float64(pl.InternetSpeed) * (float64(pl.CPUMHz) / 1000.0)
		protection := float64(orInt(tg.DDoSProtection, 100))
		chance = math.Min(attackPower/(attackPower+protection)*100.0, cfg.MaxSuccessChance)

	default:
		chance = 100.0
	}

	return math.Max(chance, cfg.MinSuccessChance)
}
