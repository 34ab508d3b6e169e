package process

// Kind enumerates the known process kinds.
type Kind int

const (
	KindDownload Kind = iota
	KindUpload
	KindDelete
	KindInstall
	KindUninstall
	KindCrack
	KindDecrypt
	KindEncrypt
	KindHideLog
	KindDeleteLog
	KindBruteForce
	KindPortScan
	KindSystemScan
	KindVirusScan
	KindAntiVirusRun
	KindFirewallAnalysis
	KindDDoSAttack
	KindHijack
	KindResearch
	KindUpgrade
	KindBankTransfer
	KindBitcoinMine
	KindBitcoinTransfer
	KindMissionTask
	KindCustom // open variant, carries its own name
)

// Type identifies what a process does. The known kinds form a closed
// set; unrecognized type strings become a custom type carrying the
// original (lowercased) name, so content the core doesn't understand
// structurally still round-trips.
type Type struct {
	kind Kind
	name string // set only for KindCustom
}

// Known process types.
var (
	TypeDownload         = Type{kind: KindDownload}
	TypeUpload           = Type{kind: KindUpload}
	TypeDelete           = Type{kind: KindDelete}
	TypeInstall          = Type{kind: KindInstall}
	TypeUninstall        = Type{kind: KindUninstall}
	TypeCrack            = Type{kind: KindCrack}
	TypeDecrypt          = Type{kind: KindDecrypt}
	TypeEncrypt          = Type{kind: KindEncrypt}
	TypeHideLog          = Type{kind: KindHideLog}
	TypeDeleteLog        = Type{kind: KindDeleteLog}
	TypeBruteForce       = Type{kind: KindBruteForce}
	TypePortScan         = Type{kind: KindPortScan}
	TypeSystemScan       = Type{kind: KindSystemScan}
	TypeVirusScan        = Type{kind: KindVirusScan}
	TypeAntiVirusRun     = Type{kind: KindAntiVirusRun}
	TypeFirewallAnalysis = Type{kind: KindFirewallAnalysis}
	TypeDDoSAttack       = Type{kind: KindDDoSAttack}
	TypeHijack           = Type{kind: KindHijack}
	TypeResearch         = Type{kind: KindResearch}
	TypeUpgrade          = Type{kind: KindUpgrade}
	TypeBankTransfer     = Type{kind: KindBankTransfer}
	TypeBitcoinMine      = Type{kind: KindBitcoinMine}
	TypeBitcoinTransfer  = Type{kind: KindBitcoinTransfer}
	TypeMissionTask      = Type{kind: KindMissionTask}
)

// CustomType returns the open variant for an unrecognized type name.
func CustomType(name string) Type {
	return Type{kind: KindCustom, name: name}
}

// Kind returns the type's kind tag.
func (t Type) Kind() Kind { return t.kind }

// String returns the canonical lowercase type name.
func (t Type) String() string {
	switch t.kind {
	case KindDownload:
		return "download"
	case KindUpload:
		return "upload"
	case KindDelete:
		return "delete"
	case KindInstall:
		return "install"
	case KindUninstall:
		return "uninstall"
	case KindCrack:
		return "crack"
	case KindDecrypt:
		return "decrypt"
	case KindEncrypt:
		return "encrypt"
	case KindHideLog:
		return "hide_log"
	case KindDeleteLog:
		return "delete_log"
	case KindBruteForce:
		return "brute_force"
	case KindPortScan:
		return "port_scan"
	case KindSystemScan:
		return "system_scan"
	case KindVirusScan:
		return "virus_scan"
	case KindAntiVirusRun:
		return "anti_virus_run"
	case KindFirewallAnalysis:
		return "firewall_analysis"
	case KindDDoSAttack:
		return "ddos_attack"
	case KindHijack:
		return "hijack"
	case KindResearch:
		return "research"
	case KindUpgrade:
		return "upgrade"
	case KindBankTransfer:
		return "bank_transfer"
	case KindBitcoinMine:
		return "bitcoin_mine"
	case KindBitcoinTransfer:
		return "bitcoin_transfer"
	case KindMissionTask:
		return "mission_task"
	case KindCustom:
		return t.name
	default:
		return "unknown"
	}
}

// BaseComplexity returns the fixed complexity scalar for the kind.
// Used by the default duration and cost formulas.
func (t Type) BaseComplexity() float64 {
	switch t.kind {
	case KindDownload, KindUpload, KindBitcoinTransfer:
		return 1.0
	case KindDelete:
		return 0.5
	case KindInstall:
		return 1.5
	case KindUninstall:
		return 0.8
	case KindCrack:
		return 3.0
	case KindDecrypt:
		return 2.5
	case KindEncrypt:
		return 2.0
	case KindHideLog:
		return 1.2
	case KindDeleteLog:
		return 0.3
	case KindBruteForce:
		return 4.0
	case KindPortScan:
		return 1.5
	case KindSystemScan:
		return 2.0
	case KindVirusScan:
		return 1.8
	case KindAntiVirusRun:
		return 2.2
	case KindFirewallAnalysis:
		return 2.5
	case KindDDoSAttack:
		return 3.5
	case KindHijack:
		return 5.0
	case KindResearch:
		return 3.0
	case KindUpgrade:
		return 2.0
	case KindBankTransfer:
		return 1.5
	case KindBitcoinMine:
		return 4.0
	case KindMissionTask:
		return 2.0
	default:
		return 1.0
	}
}

// Priority scales duration and cost for callers that want it.
// The default formulas and the admission logic do not consult it;
// it is an extension hook, not part of scheduling order.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityNormal
	PriorityHigh
	PriorityCritical
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityNormal:
		return "normal"
	case PriorityHigh:
		return "high"
	case PriorityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// SpeedMultiplier returns the duration scaling hook for a priority.
func (p Priority) SpeedMultiplier() float64 {
	switch p {
	case PriorityLow:
		return 0.5
	case PriorityHigh:
		return 1.5
	case PriorityCritical:
		return 2.0
	default:
		return 1.0
	}
}

// ResourceMultiplier returns the cost scaling hook for a priority.
func (p Priority) ResourceMultiplier() float64 {
	switch p {
	case PriorityLow:
		return 0.7
	case PriorityHigh:
		return 1.3
	case PriorityCritical:
		return 1.6
	default:
		return 1.0
	}
}

// State is a process's lifecycle state.
type State int

const (
	StateQueued State = iota
	StateRunning
	StatePaused
	StateCompleted
	StateFailed
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateQueued:
		return "queued"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// IsActive reports whether the state is Running or Paused.
func (s State) IsActive() bool {
	return s == StateRunning || s == StatePaused
}

// IsTerminal reports whether the state is final and immutable.
func (s State) IsTerminal() bool {
	return s == StateCompleted || s == StateFailed || s == StateCancelled
}

// ResourceUsage is a process's cost on each hardware dimension.
// HDD is tracked per process but not budget-constrained by the
// scheduler.
type ResourceUsage struct {
	CPU int
	RAM int
	Net int
	HDD int
}
