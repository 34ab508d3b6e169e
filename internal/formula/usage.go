package formula

import (
	"github.com/nulltrace/hackcore/internal/config"
	"github.com/nulltrace/hackcore/internal/player"
	"github.com/nulltrace/hackcore/internal/process"
)

// Usage returns the resource cost of a process type against a target.
// The result is produced once at process creation and never
// recomputed. Clamps: cpu 1..100, ram >= 64, net 0..1000, hdd >= 0.
// cfg is accepted for signature symmetry with Duration; the default
// cost tables do not consult it.
func Usage(t process.Type, tg *player.Target, cfg *config.ProcessConfig) process.ResourceUsage {
	_ = cfg
	complexity := t.BaseComplexity()

	var cpu, ram, net, hdd int
	switch t.Kind() {
	case process.KindDownload:
		fileSize := orInt(tg.FileSize, 1024*1024)
		cpu = 10
		ram = 256
		net = maxInt(fileSize/1024/100, 10)
		hdd = fileSize / 1024 / 1024

	case process.KindUpload:
		fileSize := orInt(tg.FileSize, 1024*1024)
		cpu = 10
		ram = 256
		net = maxInt(fileSize/1024/100, 10)

	case process.KindCrack, process.KindBruteForce:
		security := orInt(tg.SecurityLevel, 50)
		cpu = int(complexity * float64(security) / 2.0)
		ram = 512 * maxInt(security/25, 1)
		net = 5

	case process.KindDecrypt, process.KindEncrypt:
		encryption := orInt(tg.EncryptionLevel, 128)
		cpu = int(complexity * 30.0)
		ram = encryption * 8

	case process.KindVirusScan, process.KindSystemScan:
		scanSize := orInt(tg.HDDSize, 10*1024)
		cpu = 20
		ram = 512
		hdd = minInt(scanSize/100, 100)

	case process.KindDDoSAttack:
		cpu, ram, net = 40, 1024, 100

	case process.KindResearch:
		cpu, ram, net, hdd = 50, 2048, 10, 100

	case process.KindBitcoinMine:
		cpu, ram, net, hdd = 90, 4096, 20, 50

	case process.KindInstall, process.KindUninstall:
		softwareSize := orInt(tg.SoftwareSize, 100)
		cpu = 15
		ram = softwareSize * 2
		hdd = softwareSize

	default:
		cpu = int(complexity * 10.0)
		ram = int(complexity * 256.0)
		net = int(complexity * 5.0)
	}

	return process.ResourceUsage{
		CPU: clampInt(cpu, 1, 100),
		RAM: maxInt(ram, 64),
		Net: clampInt(net, 0, 1000),
		HDD: maxInt(hdd, 0),
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
