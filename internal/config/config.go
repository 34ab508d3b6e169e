// Package config holds the tunables that drive the process formulas.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProcessConfig tunes the duration, resource and success formulas.
// Each *TimeFactor scales its category's base duration; the min/max
// fields clamp final durations (seconds) and success chances
// (percent). The host loads one of these and passes it by reference
// into every formula call.
type ProcessConfig struct {
	NetworkTimeFactor  float64 `yaml:"network_time_factor"`
	CPUTimeFactor      float64 `yaml:"cpu_time_factor"`
	CryptoTimeFactor   float64 `yaml:"crypto_time_factor"`
	ScanTimeFactor     float64 `yaml:"scan_time_factor"`
	DDoSTimeFactor     float64 `yaml:"ddos_time_factor"`
	ResearchTimeFactor float64 `yaml:"research_time_factor"`
	FinanceTimeFactor  float64 `yaml:"finance_time_factor"`
	MiningTimeFactor   float64 `yaml:"mining_time_factor"`
	DefaultTimeFactor  float64 `yaml:"default_time_factor"`

	MinProcessTime int `yaml:"min_process_time"` // seconds
	MaxProcessTime int `yaml:"max_process_time"` // seconds

	MinSuccessChance float64 `yaml:"min_success_chance"` // percent
	MaxSuccessChance float64 `yaml:"max_success_chance"` // percent

	CrackExpReward    int64 `yaml:"crack_exp_reward"`
	ResearchExpReward int64 `yaml:"research_exp_reward"`
}

// Default returns the baseline tuning: unit time factors, durations
// between one second and one day, success chances between 5% and 95%.
func Default() ProcessConfig {
	return ProcessConfig{
		NetworkTimeFactor:  1.0,
		CPUTimeFactor:      1.0,
		CryptoTimeFactor:   1.0,
		ScanTimeFactor:     1.0,
		DDoSTimeFactor:     1.0,
		ResearchTimeFactor: 1.0,
		FinanceTimeFactor:  1.0,
		MiningTimeFactor:   1.0,
		DefaultTimeFactor:  1.0,
		MinProcessTime:     1,
		MaxProcessTime:     86400,
		MinSuccessChance:   5.0,
		MaxSuccessChance:   95.0,
		CrackExpReward:     100,
		ResearchExpReward:  50,
	}
}

// Load reads a YAML config file over the defaults, so a partial file
// only overrides the keys it names.
func Load(path string) (ProcessConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
