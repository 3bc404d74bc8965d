package sched

import (
	"io"

	"golang.org/x/exp/rand"

	"mcsched/internal/job"
)

// stateWork is a test workload that reports a chosen next state.
type stateWork struct {
	quantum uint64
	next    TaskState
}

func (w stateWork) Name() string { return "state" }
func (w stateWork) DoWork(*rand.Rand) uint64 { return w.quantum }
func (w stateWork) NextState() TaskState { return w.next }

// reentrantWork calls back into its CPU while it is being dispatched.
type reentrantWork struct {
	cpu *CPU
}

func (w *reentrantWork) Name() string { return "reentrant" }
func (w *reentrantWork) DoWork(*rand.Rand) uint64 {
	w.cpu.NextTask()
	return 1
}

func newTestEnv(out io.Writer) *Env {
	return NewEnv(42, NewRecorder(out))
}

// addFixed inserts a fixed-quantum task and queues it on cpu.
func addFixed(env *Env, cpu *CPU, id TaskID, quantum uint64) Handle {
	h, err := env.Tasks.Insert(NewTask(id, job.Fixed{Quantum: quantum}))
	if err != nil {
		panic(err)
	}
	cpu.Enqueue(h)
	return h
}

func fixedConfig(cpus, tasks, ticks int) Config {
	cfg := DefaultConfig()
	cfg.CPUs = cpus
	cfg.Tasks = tasks
	cfg.Ticks = ticks
	cfg.Seed = 1
	cfg.Workload = job.NameFixed
	cfg.Quantum = 5
	return cfg
}
