// Package effects turns a terminated process into its game-state
// side effect on the owning player.
//
// Metadata keys consumed here form a small untyped protocol between
// process creation and completion:
//
//	"amount"        BitcoinMine: float, optional, default 0.001
//	                BankTransfer: integer, REQUIRED, parse errors reported
//	"software"      Research: software name, REQUIRED
//	"viruses_found" VirusScan: integer, optional, default 0
package effects

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/nulltrace/hackcore/internal/config"
	"github.com/nulltrace/hackcore/internal/player"
	"github.com/nulltrace/hackcore/internal/process"
)

// Effect-dispatch domain errors.
var (
	ErrNoFile        = errors.New("no file specified for download")
	ErrNoTarget      = errors.New("no target specified")
	ErrNoSoftware    = errors.New("no software specified for research")
	ErrNoAmount      = errors.New("no amount specified for transfer")
	ErrInvalidAmount = errors.New("invalid transfer amount")
)

// HandleCompletion applies the side effect of a terminated process to
// the player and returns a human-readable result. Missing required
// references or metadata produce a domain error, never a panic.
func HandleCompletion(p *process.Process, pl *player.Player, cfg *config.ProcessConfig) (string, error) {
	switch p.Type.Kind() {
	case process.KindDownload:
		if p.FileID == 0 {
			return "", ErrNoFile
		}
		pl.DownloadedFiles = append(pl.DownloadedFiles, p.FileID)
		return fmt.Sprintf("File %d downloaded successfully", p.FileID), nil

	case process.KindCrack:
		if p.TargetID == 0 {
			return "", fmt.Errorf("%w for crack", ErrNoTarget)
		}
		pl.MarkCracked(p.TargetID)
		pl.TotalExp += cfg.CrackExpReward
		return fmt.Sprintf("System %d cracked successfully. +%d EXP", p.TargetID, cfg.CrackExpReward), nil

	case process.KindResearch:
		software, ok := p.Metadata["software"]
		if !ok {
			return "", ErrNoSoftware
		}
		current := pl.SoftwareLevel(software)
		pl.SetSoftwareLevel(software, current+0.1)
		pl.TotalExp += cfg.ResearchExpReward
		return fmt.Sprintf("%s upgraded to version %.1f", software, current+0.1), nil

	case process.KindBitcoinMine:
		mined := 0.001
		if s, ok := p.Metadata["amount"]; ok {
			if v, err := strconv.ParseFloat(s, 64); err == nil {
				mined = v
			}
		}
		pl.BitcoinAmount += mined
		return fmt.Sprintf("Mined %v BTC", mined), nil

	case process.KindBankTransfer:
		s, ok := p.Metadata["amount"]
		if !ok {
			return "", ErrNoAmount
		}
		amount, err := strconv.Atoi(s)
		if err != nil {
			return "", ErrInvalidAmount
		}
		pl.Money += int64(amount)
		return fmt.Sprintf("Transferred $%d", amount), nil

	case process.KindDDoSAttack:
		if p.TargetIP == "" {
			return "", fmt.Errorf("%w for ddos", ErrNoTarget)
		}
		pl.DDoSAttacksPerformed++
		return fmt.Sprintf("DDoS attack on %s completed", p.TargetIP), nil

	case process.KindVirusScan:
		found := 0
		if s, ok := p.Metadata["viruses_found"]; ok {
			if v, err := strconv.Atoi(s); err == nil {
				found = v
			}
		}
		if found > 0 {
			return fmt.Sprintf("Scan complete: %d viruses found", found), nil
		}
		return "Scan complete: System clean", nil

	default:
		return fmt.Sprintf("%s process completed", p.Type), nil
	}
}
