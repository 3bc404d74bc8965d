package sched

import "golang.org/x/exp/rand"

// Env is what the CPUs of one simulation share: the task arena, the random
// source handed to workloads and the event recorder.
type Env struct {
	Tasks    *TaskTable
	Rand     *rand.Rand
	Recorder *Recorder

	tick uint64
}

// NewEnv builds an environment around a seeded random source.
func NewEnv(seed uint64, rec *Recorder) *Env {
	return &Env{
		Tasks:    NewTaskTable(),
		Rand:     rand.New(rand.NewSource(seed)),
		Recorder: rec,
	}
}

func (e *Env) emit(ev StatusEvent) {
	if e.Recorder == nil {
		return
	}
	ev.Tick = e.tick
	e.Recorder.handleEvent(ev)
}
