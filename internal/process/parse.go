package process

import "strings"

// TypeFromString maps a free-form type string to a canonical Type.
// Matching is case-insensitive and tolerates the spellings used by
// legacy content. Unknown strings never fail: they become the custom
// variant carrying the lowercased name.
func TypeFromString(s string) Type {
	switch strings.ToLower(s) {
	case "download":
		return TypeDownload
	case "upload":
		return TypeUpload
	case "delete":
		return TypeDelete
	case "install":
		return TypeInstall
	case "uninstall":
		return TypeUninstall
	case "crack":
		return TypeCrack
	case "decrypt":
		return TypeDecrypt
	case "encrypt":
		return TypeEncrypt
	case "hidelog", "hide_log":
		return TypeHideLog
	case "deletelog", "delete_log":
		return TypeDeleteLog
	case "bruteforce", "brute_force":
		return TypeBruteForce
	case "portscan", "port_scan":
		return TypePortScan
	case "systemscan", "system_scan":
		return TypeSystemScan
	case "virusscan", "virus_scan":
		return TypeVirusScan
	case "antivirus", "anti_virus_run":
		return TypeAntiVirusRun
	case "firewall_analysis":
		return TypeFirewallAnalysis
	case "ddos", "ddos_attack":
		return TypeDDoSAttack
	case "hijack":
		return TypeHijack
	case "research":
		return TypeResearch
	case "upgrade":
		return TypeUpgrade
	case "bank_transfer":
		return TypeBankTransfer
	case "bitcoin_mine":
		return TypeBitcoinMine
	case "bitcoin_transfer":
		return TypeBitcoinTransfer
	case "mission", "mission_task":
		return TypeMissionTask
	default:
		return CustomType(strings.ToLower(s))
	}
}
