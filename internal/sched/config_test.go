package sched

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("EmptyPath", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("MissingFile", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("Overrides", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, `
cpus: 2
tasks: 5
ticks: 30
first_task_id: 10
seed: 99
workload: fixed
quantum: 3
trace_csv: out.csv
`))
		require.NoError(t, err)
		assert.Equal(t, Config{
			CPUs:        2,
			Tasks:       5,
			Ticks:       30,
			FirstTaskID: 10,
			Seed:        99,
			Workload:    "fixed",
			Quantum:     3,
			TraceCSV:    "out.csv",
		}, cfg)
	})

	t.Run("PartialKeepsDefaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "cpus: 4\n"))
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.CPUs)
		assert.Equal(t, 64, cfg.Tasks)
		assert.Equal(t, 1000, cfg.Ticks)
		assert.Equal(t, uint64(1000), cfg.FirstTaskID)
	})

	t.Run("Clamps", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "cpus: -1\ntasks: -3\nticks: 0\nfirst_task_id: 0\nworkload: \"\"\n"))
		require.NoError(t, err)
		assert.Equal(t, 8, cfg.CPUs)
		assert.Equal(t, 0, cfg.Tasks)
		assert.Equal(t, 1000, cfg.Ticks)
		assert.Equal(t, uint64(1000), cfg.FirstTaskID)
		assert.Equal(t, "randomuser", cfg.Workload)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := Load(writeConfig(t, "cpus: [1, 2\n"))
		assert.Error(t, err)
	})
}
