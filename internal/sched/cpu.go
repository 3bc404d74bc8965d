package sched

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"mcsched/internal/job"
)

// CPU is a virtual processor with its own FIFO run queue and idle task.
type CPU struct {
	id         int
	clock      Clock
	runq       *linkedlistqueue.Queue // FIFO of Handle, never holds idle
	running    Handle
	idle       Handle
	dispatches uint64
	inDispatch bool // guards NextTask against reentry from a workload
	env        *Env
}

// NewCPU creates a CPU and registers its idle task in env's task table.
// The idle task starts out as the running task.
func NewCPU(id int, env *Env) *CPU {
	idle := env.Tasks.insertIdle(NewTask(IdleTaskID, job.Idle{}))
	return &CPU{
		id:      id,
		runq:    linkedlistqueue.New(),
		running: idle,
		idle:    idle,
		env:     env,
	}
}

// Enqueue appends h to the tail of the run queue.
func (c *CPU) Enqueue(h Handle) {
	if h == c.idle {
		panic(fmt.Sprintf("cpu %d: idle task must never enter the run queue", c.id))
	}
	c.runq.Enqueue(h)

	t := c.env.Tasks.Get(h)
	c.env.emit(StatusEvent{
		Kind:     StatusEnqueue,
		CPU:      c.id,
		TaskID:   t.ID,
		Workload: t.Work.Name(),
		Runtime:  t.TotalRuntime,
		Clock:    c.clock.Now(),
	})
}

// NextTask performs one dispatch step: requeue the previous runner, pick
// the head of the run queue (or idle), run one slice and charge the clock.
func (c *CPU) NextTask() {
	if c.inDispatch {
		panic(fmt.Sprintf("cpu %d: NextTask re-entered during a dispatch", c.id))
	}
	c.inDispatch = true
	defer func() { c.inDispatch = false }()

	tasks := c.env.Tasks

	// 1) the previous runner goes behind everything already waiting
	if old := c.running; old != c.idle {
		if t := tasks.Get(old); t.State == StateRunnable {
			c.runq.Enqueue(old)
			c.emitFor(StatusRequeue, t)
		}
	}

	// 2) pop the head, or fall back to idle when nothing is runnable
	next := c.idle
	if v, ok := c.runq.Dequeue(); ok {
		next = v.(Handle)
	} else {
		c.emitFor(StatusIdle, tasks.Get(next))
	}
	c.running = next
	t := tasks.Get(next)
	t.State = StateRunning

	// 3) run exactly one slice
	out := t.Run(c)

	// 4) charge the CPU
	c.clock.Advance(out.Consumed)
	c.dispatches++

	// 5) a slice may end RUNNABLE or WAIT, never RUNNING
	if out.Next == StateRunning {
		panic(fmt.Sprintf("cpu %d: task %d returned next state %s, want RUNNABLE or WAIT",
			c.id, t.ID, out.Next))
	}
	t.State = out.Next
	if t.State == StateWait {
		c.emitFor(StatusWait, t)
	}
}

func (c *CPU) emitFor(kind StatusKind, t *Task) {
	c.env.emit(StatusEvent{
		Kind:     kind,
		CPU:      c.id,
		TaskID:   t.ID,
		Workload: t.Work.Name(),
		Runtime:  t.TotalRuntime,
		Clock:    c.clock.Now(),
	})
}

func (c *CPU) ID() int { return c.id }

// Clock returns the work units consumed on this CPU so far.
func (c *CPU) Clock() uint64 { return c.clock.Now() }

// Running returns the handle of the task that ran last (idle initially).
func (c *CPU) Running() Handle { return c.running }

// IdleHandle returns the handle of this CPU's idle task.
func (c *CPU) IdleHandle() Handle { return c.idle }

// IdleTime is the runtime accumulated by the idle task.
func (c *CPU) IdleTime() uint64 { return c.env.Tasks.Get(c.idle).TotalRuntime }

// Dispatches is the number of dispatch steps executed.
func (c *CPU) Dispatches() uint64 { return c.dispatches }

func (c *CPU) QueueLen() int { return c.runq.Size() }

// Queue returns a copy of the run queue, head first.
func (c *CPU) Queue() []Handle {
	vals := c.runq.Values()
	out := make([]Handle, len(vals))
	for i, v := range vals {
		out[i] = v.(Handle)
	}
	return out
}
