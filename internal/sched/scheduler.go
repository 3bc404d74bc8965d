// internal/sched/scheduler.go

package sched

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"mcsched/internal/job"
)

var errNoCPUs = errors.New("scheduler has no cpus")

// Scheduler owns a fixed set of CPUs and steps them round-robin, one
// dispatch per global tick.
type Scheduler struct {
	cfg    Config
	cpus   []*CPU
	env    *Env
	ticks  Clock             // global ticks executed so far
	onTick func(tick uint64) // optional, called after every tick
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithOutput sends the per-dispatch lines to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Scheduler) { s.env.Recorder = NewRecorder(w) }
}

// WithOnTick registers fn to be called after every tick with the number
// of ticks executed so far.
func WithOnTick(fn func(tick uint64)) Option {
	return func(s *Scheduler) { s.onTick = fn }
}

// New creates a Scheduler with no CPUs and no tasks.
func New(cfg Config, opts ...Option) *Scheduler {
	cfg.Normalize()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	s := &Scheduler{
		cfg: cfg,
		env: NewEnv(seed, NewRecorder(os.Stdout)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddCPUs appends n CPUs, numbered after the existing ones.
func (s *Scheduler) AddCPUs(n int) {
	for i := 0; i < n; i++ {
		s.cpus = append(s.cpus, NewCPU(len(s.cpus), s.env))
	}
}

// AddTasks creates count tasks with consecutive ids starting at the
// configured base and places each on CPU id mod cpu count. The placement
// is never revisited.
func (s *Scheduler) AddTasks(count int) error {
	if len(s.cpus) == 0 {
		return errNoCPUs
	}

	// fail before anything is queued on a bad workload name
	if _, err := job.ByName(s.cfg.Workload, s.cfg.Quantum); err != nil {
		return fmt.Errorf("add tasks: %w", err)
	}

	first := TaskID(s.cfg.FirstTaskID)
	for id := first; id < first+TaskID(count); id++ {
		work, _ := job.ByName(s.cfg.Workload, s.cfg.Quantum)
		h, err := s.env.Tasks.Insert(NewTask(id, work))
		if err != nil {
			return fmt.Errorf("add tasks: %w", err)
		}
		s.cpus[s.CPUFor(id)].Enqueue(h)
	}
	return nil
}

// CPUFor is the static placement of a task id.
func (s *Scheduler) CPUFor(id TaskID) int {
	return int(uint64(id) % uint64(len(s.cpus)))
}

// Step runs one global tick: the next CPU in id order does one dispatch.
func (s *Scheduler) Step() error {
	if len(s.cpus) == 0 {
		return errNoCPUs
	}

	tick := s.ticks.Now()
	s.env.tick = tick
	s.cpus[tick%uint64(len(s.cpus))].NextTask()
	s.ticks.Advance(1)

	if s.onTick != nil {
		s.onTick(s.ticks.Now())
	}
	return nil
}

// RunForever runs the configured tick budget and then returns. Despite the
// name it is bounded; ctx only allows stopping it early.
func (s *Scheduler) RunForever(ctx context.Context) error {
	for i := 0; i < s.cfg.Ticks; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Ticks is the number of global ticks executed so far.
func (s *Scheduler) Ticks() uint64 { return s.ticks.Now() }

func (s *Scheduler) Config() Config { return s.cfg }

func (s *Scheduler) CPUs() []*CPU { return s.cpus }

func (s *Scheduler) Tasks() *TaskTable { return s.env.Tasks }

func (s *Scheduler) Recorder() *Recorder { return s.env.Recorder }
