package formula

import (
	"testing"

	"github.com/nulltrace/hackcore/internal/config"
	"github.com/nulltrace/hackcore/internal/player"
	"github.com/nulltrace/hackcore/internal/process"
)

func testPlayer() *player.Player {
	return &player.Player{
		PlayerID:      1,
		CPUMHz:        3000,
		RAMMB:         8192,
		InternetSpeed: 100,
		HackingSkill:  75,
	}
}

func testConfig() *config.ProcessConfig {
	cfg := config.Default()
	return &cfg
}

func TestCrackDuration(t *testing.T) {
	pl := testPlayer()
	tg := &player.Target{SecurityLevel: 50}
	cfg := testConfig()

	got := Duration(process.TypeCrack, pl, tg, cfg)
	if got < cfg.MinProcessTime {
		t.Errorf("Duration=%d, want >= %d", got, cfg.MinProcessTime)
	}
	if got >= cfg.MaxProcessTime {
		t.Errorf("Duration=%d, want < %d", got, cfg.MaxProcessTime)
	}

	// Higher security takes longer.
	hard := &player.Target{SecurityLevel: 99}
	if harder := Duration(process.TypeCrack, pl, hard, cfg); harder <= got {
		t.Errorf("security 99 Duration=%d, want > security 50 (%d)", harder, got)
	}
}

func TestDownloadDuration(t *testing.T) {
	pl := testPlayer()
	// 10 MB at min(100, 50) Mbps effective speed.
	tg := &player.Target{FileSize: 10 * 1024 * 1024, NetSpeed: 50}
	cfg := testConfig()

	got := Duration(process.TypeDownload, pl, tg, cfg)
	if got < 1 {
		t.Errorf("Duration=%d, want >= 1", got)
	}

	// Slower link takes longer.
	slow := &player.Target{FileSize: 10 * 1024 * 1024, NetSpeed: 10}
	if slower := Duration(process.TypeDownload, pl, slow, cfg); slower <= got {
		t.Errorf("10 Mbps Duration=%d, want > 50 Mbps (%d)", slower, got)
	}
}

func TestDurationClampedToMax(t *testing.T) {
	// A pitiful rig against a fortress: the raw formula explodes but
	// the result must stay at MaxProcessTime.
	pl := &player.Player{PlayerID: 1, CPUMHz: 1, InternetSpeed: 1}
	tg := &player.Target{SecurityLevel: 100}
	cfg := testConfig()

	if got := Duration(process.TypeBruteForce, pl, tg, cfg); got != cfg.MaxProcessTime {
		t.Errorf("Duration=%d, want capped at %d", got, cfg.MaxProcessTime)
	}
}

func TestDurationFlooredToMin(t *testing.T) {
	pl := &player.Player{PlayerID: 1, CPUMHz: 1000000, InternetSpeed: 100000, TotalExp: 100000000}
	tg := &player.Target{SecurityLevel: 1}
	cfg := testConfig()

	if got := Duration(process.TypeCrack, pl, tg, cfg); got < cfg.MinProcessTime {
		t.Errorf("Duration=%d, want >= %d", got, cfg.MinProcessTime)
	}
}

func TestSkillModifier(t *testing.T) {
	pl := testPlayer() // hacking 75, no exp
	mod := SkillModifier(pl, process.TypeCrack)
	// (75/100 + 1) * (1 + 0*0.1) = 1.75
	if mod != 1.75 {
		t.Errorf("SkillModifier=%v, want 1.75", mod)
	}

	// Non-skill type uses the flat base.
	flat := SkillModifier(pl, process.TypeDelete)
	if flat != 2.0 {
		t.Errorf("flat SkillModifier=%v, want 2.0", flat)
	}
}

func TestSkillModifierExpBonusCapped(t *testing.T) {
	pl := testPlayer()
	pl.TotalExp = 100000000 // sqrt(100) = 10, capped at 2
	mod := SkillModifier(pl, process.TypeCrack)
	// (0.75 + 1) * (1 + 2*0.1) = 2.1
	if mod < 2.09 || mod > 2.11 {
		t.Errorf("SkillModifier=%v, want ~2.1 (exp bonus capped)", mod)
	}
}

func TestUsageCrack(t *testing.T) {
	tg := &player.Target{SecurityLevel: 50}
	u := Usage(process.TypeCrack, tg, testConfig())
	// cpu = 3.0*50/2 = 75, ram = 512*max(50/25,1) = 1024, net = 5
	if u.CPU != 75 || u.RAM != 1024 || u.Net != 5 {
		t.Errorf("Usage=(%d, %d, %d), want (75, 1024, 5)", u.CPU, u.RAM, u.Net)
	}
}

func TestUsageClamps(t *testing.T) {
	// Huge file: net demand clamps at 1000, cpu floor stays >= 1.
	tg := &player.Target{FileSize: 1024 * 1024 * 1024}
	u := Usage(process.TypeDownload, tg, testConfig())
	if u.Net != 1000 {
		t.Errorf("Net=%d, want clamped to 1000", u.Net)
	}
	if u.CPU < 1 || u.CPU > 100 {
		t.Errorf("CPU=%d, want within 1..100", u.CPU)
	}
	if u.RAM < 64 {
		t.Errorf("RAM=%d, want >= 64", u.RAM)
	}

	// security 100 -> raw cpu 150, clamped to 100
	hard := &player.Target{SecurityLevel: 100}
	if u := Usage(process.TypeCrack, hard, testConfig()); u.CPU != 100 {
		t.Errorf("CPU=%d, want clamped to 100", u.CPU)
	}
}

func TestUsageDeterministic(t *testing.T) {
	tg := &player.Target{SecurityLevel: 50}
	cfg := testConfig()
	a := Usage(process.TypeCrack, tg, cfg)
	b := Usage(process.TypeCrack, tg, cfg)
	if a != b {
		t.Errorf("Usage not deterministic: %+v vs %+v", a, b)
	}
}

func TestSuccessChanceRange(t *testing.T) {
	pl := testPlayer()
	tg := &player.Target{}
	cfg := testConfig()

	types := []process.Type{
		process.TypeCrack, process.TypeBruteForce, process.TypeHijack,
		process.TypeDDoSAttack, process.TypeDownload,
	}
	for _, typ := range types {
		chance := SuccessChance(typ, pl, tg, cfg)
		if chance < cfg.MinSuccessChance {
			t.Errorf("%v SuccessChance=%v, want >= %v", typ, chance, cfg.MinSuccessChance)
		}
		if chance > 100.0 {
			t.Errorf("%v SuccessChance=%v, want <= 100", typ, chance)
		}
	}
}

func TestSuccessChanceNonAttackFull(t *testing.T) {
	// Non-attack types report 100 untouched by the max cap.
	if got := SuccessChance(process.TypeDownload, testPlayer(), &player.Target{}, testConfig()); got != 100.0 {
		t.Errorf("download SuccessChance=%v, want 100", got)
	}
}

func TestHijackHardCap(t *testing.T) {
	// Even absurd skill never pushes a hijack past 50%.
	pl := &player.Player{PlayerID: 1, HackingSkill: 1000000, CPUMHz: 3000}
	tg := &player.Target{HijackProtection: 1}
	if got := SuccessChance(process.TypeHijack, pl, tg, testConfig()); got > 50.0 {
		t.Errorf("hijack SuccessChance=%v, want <= 50", got)
	}
}

func TestCrackChanceRespectsMaxCap(t *testing.T) {
	pl := &player.Player{PlayerID: 1, HackingSkill: 100000, CPUMHz: 3000}
	tg := &player.Target{SecurityLevel: 1}
	cfg := testConfig()
	if got := SuccessChance(process.TypeCrack, pl, tg, cfg); got != cfg.MaxSuccessChance {
		t.Errorf("crack SuccessChance=%v, want capped at %v", got, cfg.MaxSuccessChance)
	}
}

func TestChainCrack(t *testing.T) {
	pl := testPlayer()
	tg := &player.Target{TargetID: 42, TargetIP: "10.0.0.5", SecurityLevel: 50}
	cfg := testConfig()

	chain := Chain(process.TypeCrack, pl, tg, cfg)
	if len(chain) != 2 {
		t.Fatalf("len(chain)=%d, want 2", len(chain))
	}
	primary, child := chain[0], chain[1]

	if primary.Type != process.TypeCrack {
		t.Errorf("primary Type=%v, want crack", primary.Type)
	}
	if primary.TargetID != 42 || primary.TargetIP != "10.0.0.5" {
		t.Errorf("primary target=(%d, %q), want (42, 10.0.0.5)", primary.TargetID, primary.TargetIP)
	}
	if child.Type != process.TypeSystemScan {
		t.Errorf("child Type=%v, want system_scan", child.Type)
	}
	if child.ParentID != primary.ID {
		t.Errorf("child ParentID=%v, want %v", child.ParentID, primary.ID)
	}
	if primary.TotalDuration <= 0 || child.TotalDuration <= 0 {
		t.Errorf("chain durations=(%v, %v), want positive", primary.TotalDuration, child.TotalDuration)
	}
}

func TestChainNoFollowUp(t *testing.T) {
	chain := Chain(process.TypeDelete, testPlayer(), &player.Target{}, testConfig())
	if len(chain) != 1 {
		t.Fatalf("len(chain)=%d, want 1 (delete has no follow-up)", len(chain))
	}
}

func TestChainSystemScanHidesLogs(t *testing.T) {
	chain := Chain(process.TypeSystemScan, testPlayer(), &player.Target{}, testConfig())
	if len(chain) != 2 {
		t.Fatalf("len(chain)=%d, want 2", len(chain))
	}
	if chain[1].Type != process.TypeHideLog {
		t.Errorf("follow-up Type=%v, want hide_log", chain[1].Type)
	}
}
