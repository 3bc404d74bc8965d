package sched

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	yaml "github.com/goccy/go-yaml"

	"mcsched/internal/job"
)

// Config mirrors config.yml
type Config struct {
	CPUs        int    `yaml:"cpus"`          // 8 (by default)
	Tasks       int    `yaml:"tasks"`         // 64 (by default)
	Ticks       int    `yaml:"ticks"`         // 1000 (by default), global dispatch steps
	FirstTaskID uint64 `yaml:"first_task_id"` // 1000 (by default)
	Seed        uint64 `yaml:"seed"`          // 0 = seed from the wall clock
	Workload    string `yaml:"workload"`      // randomuser (by default) or fixed
	Quantum     uint64 `yaml:"quantum"`       // work per slice for the fixed workload
	TraceCSV    string `yaml:"trace_csv"`     // optional CSV event trace
}

// DefaultConfig is used when no config file is found.
func DefaultConfig() Config {
	return Config{
		CPUs:        8,
		Tasks:       64,
		Ticks:       1000,
		FirstTaskID: 1000,
		Workload:    job.NameRandomUser,
		Quantum:     10,
	}
}

// Load reads YAML and overrides defaults; empty path or a missing file = defaults only.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.Normalize()
	return cfg, nil
}

// Normalize applies the sanity clamps.
func (c *Config) Normalize() {
	d := DefaultConfig()
	if c.CPUs <= 0 {
		c.CPUs = d.CPUs
	}
	if c.Tasks < 0 {
		c.Tasks = 0
	}
	if c.Ticks <= 0 {
		c.Ticks = d.Ticks
	}
	if c.FirstTaskID == uint64(IdleTaskID) {
		c.FirstTaskID = d.FirstTaskID
	}
	if c.Workload == "" {
		c.Workload = d.Workload
	}
	if c.Quantum == 0 {
		c.Quantum = d.Quantum
	}
}
