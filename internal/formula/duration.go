// Package formula computes process durations, resource costs,
// success chances and skill modifiers from attacker and target
// snapshots. Every function is pure: deterministic given its inputs,
// no shared state.
package formula

import (
	"math"

	"github.com/nulltrace/hackcore/internal/config"
	"github.com/nulltrace/hackcore/internal/player"
	"github.com/nulltrace/hackcore/internal/process"
)

// Duration returns the total process duration in seconds for a type
// against the given player and target. The per-type base duration is
// divided by the player's skill modifier, floored at
// cfg.MinProcessTime and capped at cfg.MaxProcessTime.
func Duration(t process.Type, pl *player.Player, tg *player.Target, cfg *config.ProcessConfig) int {
	complexity := t.BaseComplexity()

	var base float64
	switch t.Kind() {
	case process.KindDownload, process.KindUpload:
		fileSize := float64(orInt(tg.FileSize, 1024*1024))
		netSpeed := float64(pl.InternetSpeed)
		targetSpeed := float64(orInt(tg.NetSpeed, 100))
		effective := math.Min(netSpeed, targetSpeed)
		base = math.Ceil(fileSize / 1024.0 / effective * cfg.NetworkTimeFactor)

	case process.KindCrack, process.KindBruteForce:
		cpuPower := float64(pl.CPUMHz)
		security := float64(orInt(tg.SecurityLevel, 50))
		base = math.Ceil(complexity * security * cfg.CPUTimeFactor / (cpuPower / 1000.0))

	case process.KindDecrypt, process.KindEncrypt:
		cpuPower := float64(pl.CPUMHz)
		ramSize := float64(pl.RAMMB)
		encryption := float64(orInt(tg.EncryptionLevel, 128))
		base = math.Ceil(complexity * encryption * cfg.CryptoTimeFactor /
			((cpuPower / 1000.0) * math.Sqrt(ramSize/1024.0)))

	case process.KindVirusScan, process.KindSystemScan:
		hddSize := float64(orInt(tg.HDDSize, 10*1024))
		scanSpeed := float64(pl.CPUMHz) / 100.0
		base = math.Ceil(hddSize / scanSpeed * cfg.ScanTimeFactor)

	case process.KindDDoSAttack:
		attackPower := float64(pl.InternetSpeed) * (float64(pl.CPUMHz) / 1000.0)
		defense := float64(orInt(tg.DDoSProtection, 100))
		base = math.Ceil(complexity * defense * cfg.DDoSTimeFactor / attackPower)

	case process.KindResearch:
		current := pl.SoftwareLevel("research")
		target := tg.ResearchTarget
		if target == 0 {
			target = current + 1.0
		}
		diff := target - current
		base = math.Ceil(complexity * diff * diff * cfg.ResearchTimeFactor * 100.0)

	case process.KindBankTransfer:
		amount := float64(orInt(tg.TransferAmount, 1000))
		securityChecks := math.Max(math.Log(amount/10000.0), 1.0)
		base = math.Ceil(complexity * securityChecks * cfg.FinanceTimeFactor * 10.0)

	case process.KindBitcoinMine:
		hashPower := float64(pl.CPUMHz) * float64(orInt(pl.GPUCores, 1))
		difficulty := float64(orInt(tg.MiningDifficulty, 1000000))
		base = math.Ceil(difficulty / hashPower * cfg.MiningTimeFactor)

	default:
		base = math.Ceil(complexity * cfg.DefaultTimeFactor * 60.0)
	}

	final := base / SkillModifier(pl, t)
	if final < float64(cfg.MinProcessTime) {
		final = float64(cfg.MinProcessTime)
	}
	if final > float64(cfg.MaxProcessTime) {
		return cfg.MaxProcessTime
	}
	return int(final)
}

// SkillModifier returns the multiplicative speed factor from the
// player's type-specific skill and total experience. Types with no
// associated skill use a flat base of 1.
func SkillModifier(pl *player.Player, t process.Type) float64 {
	var baseSkill float64
	switch t.Kind() {
	case process.KindCrack, process.KindBruteForce:
		baseSkill = float64(orInt(pl.HackingSkill, 1)) / 100.0
	case process.KindDecrypt, process.KindEncrypt:
		baseSkill = float64(orInt(pl.CryptoSkill, 1)) / 100.0
	case process.KindVirusScan, process.KindAntiVirusRun:
		baseSkill = float64(orInt(pl.AntivirusSkill, 1)) / 100.0
	case process.KindHideLog, process.KindDeleteLog:
		baseSkill = float64(orInt(pl.StealthSkill, 1)) / 100.0
	case process.KindResearch:
		baseSkill = float64(orInt(pl.ResearchSkill, 1)) / 100.0
	case process.KindDDoSAttack:
		baseSkill = float64(orInt(pl.NetworkSkill, 1)) / 100.0
	default:
		baseSkill = 1.0
	}

	expBonus := math.Min(math.Sqrt(float64(pl.TotalExp)/1000000.0), 2.0)

	return (baseSkill + 1.0) * (1.0 + expBonus*0.1)
}

// orInt substitutes a default when a snapshot field is unset.
func orInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
