// Package player defines the read-only attacker and target snapshots
// consumed by the formula library, plus the mutable player fields
// written by completion effects. Snapshots are supplied by the host;
// zero values select the documented per-field defaults, so a sparse
// snapshot is never an error.
package player

// Player is one owner's hardware, skills and accumulated game state.
type Player struct {
	PlayerID int

	// Hardware
	CPUMHz        int
	RAMMB         int
	HDDMB         int
	InternetSpeed int // Mbps
	GPUCores      int // 0 = default 1

	// Skills, 0 = unset (formulas default to 1)
	HackingSkill   int
	CryptoSkill    int
	AntivirusSkill int
	StealthSkill   int
	ResearchSkill  int
	NetworkSkill   int

	TotalExp int64

	// Installed software versions by name.
	SoftwareLevels map[string]float64

	// Mutable game state, written by completion effects.
	Money                int64
	BitcoinAmount        float64
	DownloadedFiles      []int
	CrackedSystems       map[int]struct{}
	DDoSAttacksPerformed int
}

// SoftwareLevel returns the installed version of a software, or 1.0
// when absent.
func (p *Player) SoftwareLevel(name string) float64 {
	if p.SoftwareLevels != nil {
		if v, ok := p.SoftwareLevels[name]; ok {
			return v
		}
	}
	return 1.0
}

// SetSoftwareLevel records a software version, allocating the map on
// first use.
func (p *Player) SetSoftwareLevel(name string, version float64) {
	if p.SoftwareLevels == nil {
		p.SoftwareLevels = make(map[string]float64)
	}
	p.SoftwareLevels[name] = version
}

// MarkCracked adds a target to the cracked-systems set.
func (p *Player) MarkCracked(targetID int) {
	if p.CrackedSystems == nil {
		p.CrackedSystems = make(map[int]struct{})
	}
	p.CrackedSystems[targetID] = struct{}{}
}

// Target is a snapshot of the machine a process acts against.
// Zero values mean "unknown"; each formula substitutes its own
// documented default.
type Target struct {
	TargetID int
	TargetIP string

	FileSize     int // bytes; default 1 MiB
	SoftwareSize int // default 100
	NetSpeed     int // Mbps; default 100

	SecurityLevel    int // default 50
	EncryptionLevel  int // default 128
	PasswordStrength int // default 100
	DDoSProtection   int // default 100
	HijackProtection int // default 80

	HDDSize int // MB; default 10240

	ResearchTarget float64 // target version; default current+1

	TransferAmount   int // default 1000
	MiningDifficulty int // default 1000000
}
