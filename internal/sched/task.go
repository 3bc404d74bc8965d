package sched

import "mcsched/internal/job"

// TaskID uniquely identifies a task in the scheduler.
type TaskID uint64

// IdleTaskID is carried by every CPU's idle task. User tasks may not use it.
const IdleTaskID TaskID = 0

// Task represents one schedulable task unit.
type Task struct {
	ID           TaskID
	State        TaskState
	TotalRuntime uint64       // work units consumed over the task's lifetime
	Dispatches   uint64       // number of slices the task has been given
	Work         job.Workload // what the task does on every slice
}

// StateReporter is implemented by workloads that pick the task's state
// after a slice. Workloads without it always go back to StateRunnable.
type StateReporter interface {
	NextState() TaskState
}

// SliceOutput is what a single dispatch hands back to the CPU.
type SliceOutput struct {
	Next     TaskState
	Consumed uint64
}

// NewTask creates a runnable task with no accumulated runtime.
func NewTask(id TaskID, work job.Workload) *Task {
	return &Task{
		ID:    id,
		State: StateRunnable,
		Work:  work,
	}
}

// Run executes one slice of the task's workload on cpu.
// NOTE: only the CPU calls this, and only while t is its running task.
func (t *Task) Run(cpu *CPU) SliceOutput {
	cpu.env.emit(StatusEvent{
		Kind:     StatusDispatch,
		CPU:      cpu.id,
		TaskID:   t.ID,
		Workload: t.Work.Name(),
		Runtime:  t.TotalRuntime,
		Clock:    cpu.clock.Now(),
	})

	consumed := t.Work.DoWork(cpu.env.Rand)
	t.TotalRuntime += consumed
	t.Dispatches++

	next := StateRunnable
	if r, ok := t.Work.(StateReporter); ok {
		next = r.NextState()
	}
	return SliceOutput{Next: next, Consumed: consumed}
}
