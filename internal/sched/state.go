package sched

// TaskState is the lifecycle state of a task.
type TaskState int

const (
	StateRunnable TaskState = iota // eligible to be picked, queued or about to be
	StateRunning                   // only held for the duration of a dispatch
	StateWait                      // blocked; only reachable through a StateReporter workload
)

func (s TaskState) String() string {
	switch s {
	case StateRunnable:
		return "RUNNABLE"
	case StateRunning:
		return "RUNNING"
	case StateWait:
		return "WAIT"
	default:
		return "UNKNOWN"
	}
}
