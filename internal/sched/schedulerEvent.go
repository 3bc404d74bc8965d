// internal/sched/schedulerEvent.go

package sched

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// StatusKind represents the type of scheduler event
type StatusKind int

const (
	StatusEnqueue  StatusKind = iota // task assigned to a CPU
	StatusDispatch                   // task picked as the CPU's runner
	StatusRequeue                    // previous runner put back at the tail
	StatusIdle                       // run queue empty, idle task picked
	StatusWait                       // task left the CPU in WAIT
)

// StatusEvent is emitted on every scheduling action.
type StatusEvent struct {
	Tick     uint64 // global tick the event happened on
	Kind     StatusKind
	CPU      int
	TaskID   TaskID
	Workload string
	Runtime  uint64 // task runtime before the action
	Clock    uint64 // CPU clock before the action
}

func (sk StatusKind) String() string {
	switch sk {
	case StatusEnqueue:
		return "Enqueued"
	case StatusDispatch:
		return "Dispatch"
	case StatusRequeue:
		return "Requeue"
	case StatusIdle:
		return "Idle"
	case StatusWait:
		return "Wait"
	default:
		return "Unknown"
	}
}

// Recorder prints dispatch lines and optionally traces every event to CSV.
type Recorder struct {
	out io.Writer

	// logging-related
	csvFile   io.Closer
	csvWriter *csv.Writer
}

// NewRecorder writes dispatch lines to out. A nil out discards them.
func NewRecorder(out io.Writer) *Recorder {
	if out == nil {
		out = io.Discard
	}
	return &Recorder{out: out}
}

// EnableCSVLogging creates the file at path and traces events into it.
// Must be called before the simulation runs.
func (r *Recorder) EnableCSVLogging(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create trace %s: %w", path, err)
	}
	r.EnableCSV(f)
	r.csvFile = f
	return nil
}

// EnableCSV traces events into w.
func (r *Recorder) EnableCSV(w io.Writer) {
	cw := csv.NewWriter(w)

	// write header
	_ = cw.Write([]string{"tick", "cpu", "event", "task_id", "workload", "runtime", "clock"})
	r.csvWriter = cw
}

// Close flushes the CSV trace and closes the file opened by EnableCSVLogging.
func (r *Recorder) Close() error {
	if r.csvWriter == nil {
		return nil
	}
	r.csvWriter.Flush()
	err := r.csvWriter.Error()
	if r.csvFile != nil {
		if cerr := r.csvFile.Close(); err == nil {
			err = cerr
		}
		r.csvFile = nil
	}
	r.csvWriter = nil
	return err
}

func (r *Recorder) handleEvent(ev StatusEvent) {
	if ev.Kind == StatusDispatch {
		fmt.Fprintf(r.out, "task %d (%s) running on cpu %d, total runtime %d\n",
			ev.TaskID, ev.Workload, ev.CPU, ev.Runtime)
	}

	// CSV output
	if r.csvWriter != nil {
		_ = r.csvWriter.Write([]string{
			strconv.FormatUint(ev.Tick, 10),
			strconv.Itoa(ev.CPU),
			ev.Kind.String(),
			strconv.FormatUint(uint64(ev.TaskID), 10),
			ev.Workload,
			strconv.FormatUint(ev.Runtime, 10),
			strconv.FormatUint(ev.Clock, 10),
		})
	}
}
